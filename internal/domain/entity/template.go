package entity

import "time"

// Template item da biblioteca de templates (exclusiva de ALUNO_PRO ou acima).
type Template struct {
	ID          string
	Title       string
	Description string
	FileURL     string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
