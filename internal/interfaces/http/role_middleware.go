package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain/entity"
)

// RequireRole devolve um guard que só deixa passar papéis do conjunto informado.
// Deve ser usado DEPOIS do AuthMiddleware (precisa do principal em locals).
//
// O mecanismo é de conjunto explícito, não de corte linear: isso permite
// políticas fora da hierarquia (um papel novo pode ganhar acesso a um endpoint
// específico sem entrar na ordem). Os guards de conveniência abaixo expressam o
// caso comum "papel X ou acima" derivado da ordem documentada em entity.Role.
//
// A rejeição 403 inclui os papéis aceitos e o papel do usuário de propósito
// (nomes de papel não são segredo; o frontend usa isso no aviso de upgrade).
func RequireRole(allowed ...entity.Role) fiber.Handler {
	allowedSet := make(map[entity.Role]struct{}, len(allowed))
	names := make([]string, 0, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
		names = append(names, string(r))
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			// AuthMiddleware não rodou ou não populou o principal.
			return unauthenticated(c, "sessão sem papel definido")
		}
		if _, ok := allowedSet[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ForbiddenResponse{
				Code:          "FORBIDDEN",
				Message:       "seu papel não tem acesso a este recurso",
				RequiredRoles: names,
				UserRole:      string(role),
			})
		}
		return c.Next()
	}
}

// Guards de conveniência derivados da ordem BASIC < ALUNO < ALUNO_PRO < SUPORTE < ADM.
var (
	// RequireAdmin console administrativo.
	RequireAdmin = RequireRole(entity.RoleAdm)
	// RequireSupportOrAbove fila de tickets e operações de suporte.
	RequireSupportOrAbove = RequireRole(entity.RoleSuporte, entity.RoleAdm)
	// RequirePremiumOrAbove conteúdo exclusivo de assinantes PRO.
	RequirePremiumOrAbove = RequireRole(entity.RoleAlunoPro, entity.RoleSuporte, entity.RoleAdm)
	// RequireStudentOrAbove área de membros padrão.
	RequireStudentOrAbove = RequireRole(entity.RoleAluno, entity.RoleAlunoPro, entity.RoleSuporte, entity.RoleAdm)
)
