package entity

import "time"

// Role papel de acesso de um usuário. Enumeração fechada com ordem documentada:
//
//	BASIC < ALUNO < ALUNO_PRO < SUPORTE < ADM
//
// Os guards de rota trabalham com conjuntos explícitos de papéis (mais geral que
// um corte linear); a ordem acima existe para derivar os conjuntos "ou acima".
type Role string

// Papéis válidos para User.
const (
	RoleBasic    Role = "BASIC"
	RoleAluno    Role = "ALUNO"
	RoleAlunoPro Role = "ALUNO_PRO"
	RoleSuporte  Role = "SUPORTE"
	RoleAdm      Role = "ADM"
)

// roleLevel posição de cada papel na ordem linear.
var roleLevel = map[Role]int{
	RoleBasic:    0,
	RoleAluno:    1,
	RoleAlunoPro: 2,
	RoleSuporte:  3,
	RoleAdm:      4,
}

// Valid informa se o papel pertence à enumeração.
func (r Role) Valid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast informa se r está na posição de other ou acima na ordem linear.
// Papéis desconhecidos nunca satisfazem o corte.
func (r Role) AtLeast(other Role) bool {
	rl, ok := roleLevel[r]
	if !ok {
		return false
	}
	ol, ok := roleLevel[other]
	if !ok {
		return false
	}
	return rl >= ol
}

// User representa um usuário do portal.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Name         string
	Role         Role
	Active       bool // conta desativada bloqueia qualquer rota protegida
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
