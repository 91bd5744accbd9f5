package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorias do diretório (fornecedores, parceiros e ferramentas).
const (
	SupplierCategoryFornecedor = "fornecedor"
	SupplierCategoryParceiro   = "parceiro"
	SupplierCategoryFerramenta = "ferramenta"
)

// Supplier entrada do diretório curado de fornecedores/parceiros/ferramentas.
type Supplier struct {
	ID          string
	Name        string
	SearchName  string // nome normalizado (minúsculas, sem acento) para busca
	Category    string
	Description string
	WebsiteURL  string
	Instagram   string
	Discount    decimal.Decimal // percentual de desconto para membros (0 = sem desconto)
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SavedSupplier linha do CRM pessoal ("meus fornecedores") de um usuário.
// SupplierID é opcional: o membro pode anotar um contato fora do diretório.
type SavedSupplier struct {
	ID         string
	UserID     string
	SupplierID *string
	Name       string
	Contact    string
	Notes      string
	Rating     int // 0 (sem nota) a 5
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
