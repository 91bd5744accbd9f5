package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/pkg/jwt"
)

// Locals keys do principal no Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "user_role"
	LocalClaims = "jwt_claims"
)

// principalSource contrato mínimo para carregar o principal da sessão.
// Implementado por *postgres.UserRepo; a interface evita import circular e
// permite stub nos testes. O gate relê a linha a cada requisição para que
// desativação de conta e troca de papel valham imediatamente.
type principalSource interface {
	FindByID(id string) (*entity.User, error)
}

// revocationChecker contrato da lista de revogação de tokens (logout).
// Pode ser nil: sem Redis a revogação é desativada.
type revocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware valida o Bearer Token JWT, recusa tokens revogados e carrega o
// principal (id, papel, ativo) em c.Locals.
//
// Rejeições:
//   - 401 UNAUTHENTICATED   → sem token, token inválido/expirado/revogado, usuário inexistente
//   - 403 ACCOUNT_DISABLED  → principal existe mas a conta está desativada
//   - 503 → falha de infraestrutura ao consultar sessão (não é culpa do usuário)
func AuthMiddleware(jwtSecret string, users principalSource, tokens revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c, "token de autenticação ausente")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c, "formato esperado: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthenticated(c, "token vazio")
		}

		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthenticated(c, "token inválido ou expirado")
		}

		if tokens != nil {
			revoked, err := tokens.IsRevoked(c.Context(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "SESSION_CHECK_FAILED",
					Message: "não foi possível validar a sessão, tente novamente",
				})
			}
			if revoked {
				return unauthenticated(c, "sessão encerrada")
			}
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_CHECK_FAILED",
				Message: "não foi possível validar a sessão, tente novamente",
			})
		}
		if user == nil {
			return unauthenticated(c, "usuário da sessão não existe")
		}
		if !user.Active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_DISABLED",
				Message: "conta desativada, entre em contato com o suporte",
			})
		}

		c.Locals(LocalUserID, user.ID)
		// O papel da linha do usuário vence o claim do token.
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    "UNAUTHENTICATED",
		Message: msg,
	})
}

// GetUserID devolve o UserID do contexto (depois do AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o papel do contexto (depois do AuthMiddleware).
func GetRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	r, _ := v.(entity.Role)
	return r
}

// GetClaims devolve os claims JWT do contexto (usado pelo logout).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	cl, _ := v.(*jwt.Claims)
	return cl
}
