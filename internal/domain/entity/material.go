package entity

import "time"

// Tipos de material da biblioteca.
const (
	MaterialKindVideo  = "video"
	MaterialKindPDF    = "pdf"
	MaterialKindArtigo = "artigo"
)

// Material item da biblioteca de materiais/aulas.
// Premium marca conteúdo exclusivo de ALUNO_PRO ou acima; a listagem filtra no servidor.
type Material struct {
	ID          string
	Title       string
	Description string
	ContentURL  string
	Kind        string // video, pdf, artigo
	Premium     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
