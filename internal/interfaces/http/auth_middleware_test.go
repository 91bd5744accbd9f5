package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalmembros/portal-api/internal/domain/entity"
	apphttp "github.com/portalmembros/portal-api/internal/interfaces/http"
	pkgjwt "github.com/portalmembros/portal-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "portal-membros-test"
	testExpMin    = 60
)

// stubUsers fonte de principal em memória.
type stubUsers struct {
	user *entity.User
	err  error
}

func (s *stubUsers) FindByID(id string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil || s.user.ID != id {
		return nil, nil
	}
	return s.user, nil
}

// stubTokens lista de revogação em memória.
type stubTokens struct {
	revoked map[string]bool
	err     error
}

func (s *stubTokens) IsRevoked(_ context.Context, jti string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[jti], nil
}

func activeUser(role entity.Role) *entity.User {
	return &entity.User{ID: testUserID, Email: "membro@portal.test", Role: role, Active: true}
}

// buildTestApp monta uma app Fiber mínima: AuthMiddleware + guard + handler dummy.
func buildTestApp(users *stubUsers, tokens *stubTokens, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	// Ponteiro nulo tipado viraria interface não nula dentro do middleware.
	authRequired := apphttp.AuthMiddleware(testJWTSecret, users, nil)
	if tokens != nil {
		authRequired = apphttp.AuthMiddleware(testJWTSecret, users, tokens)
	}
	handlers := []fiber.Handler{authRequired}
	if guard != nil {
		handlers = append(handlers, guard)
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":   true,
			"role": apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenForRole(t *testing.T, role entity.Role) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, string(role), testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemTokenDevolve401(t *testing.T) {
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAluno)}, nil, nil)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
}

func TestAuthMiddleware_HeaderMalFormadoDevolve401(t *testing.T) {
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAluno)}, nil, nil)
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalidoDevolve401(t *testing.T) {
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAluno)}, nil, nil)
	resp := doRequest(t, app, "Bearer nao-e-um-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenDeOutroSecretDevolve401(t *testing.T) {
	tok, err := pkgjwt.Generate("outro-secret", testUserID, string(entity.RoleAdm), testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAdm)}, nil, nil)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioInexistenteDevolve401(t *testing.T) {
	app := buildTestApp(&stubUsers{}, nil, nil)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAluno))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
}

// Conta desativada bloqueia inclusive ADM: a checagem vem antes de qualquer papel.
func TestAuthMiddleware_ContaDesativadaDevolve403MesmoParaAdm(t *testing.T) {
	user := activeUser(entity.RoleAdm)
	user.Active = false
	app := buildTestApp(&stubUsers{user: user}, nil, nil)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdm))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ACCOUNT_DISABLED", body["code"])
}

func TestAuthMiddleware_FalhaDeInfraDevolve503(t *testing.T) {
	app := buildTestApp(&stubUsers{err: errors.New("conexão recusada")}, nil, nil)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAluno))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "SESSION_CHECK_FAILED", body["code"])
}

func TestAuthMiddleware_TokenRevogadoDevolve401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, string(entity.RoleAluno), testIssuer, testExpMin)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	tokens := &stubTokens{revoked: map[string]bool{claims.ID: true}}
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAluno)}, tokens, nil)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FalhaNaChecagemDeRevogacaoDevolve503(t *testing.T) {
	tokens := &stubTokens{err: errors.New("redis fora do ar")}
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAluno)}, tokens, nil)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAluno))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

// O papel autoritativo é o da linha do usuário, não o que viaja no token.
func TestAuthMiddleware_PapelDaLinhaVenceOClaim(t *testing.T) {
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleBasic)}, nil, nil)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdm))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, string(entity.RoleBasic), body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole: grade papel × guard
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_GradePapelPorGuard(t *testing.T) {
	guards := []struct {
		name    string
		handler fiber.Handler
		allowed map[entity.Role]bool
	}{
		{
			name:    "StudentOrAbove",
			handler: apphttp.RequireStudentOrAbove,
			allowed: map[entity.Role]bool{
				entity.RoleAluno: true, entity.RoleAlunoPro: true,
				entity.RoleSuporte: true, entity.RoleAdm: true,
			},
		},
		{
			name:    "PremiumOrAbove",
			handler: apphttp.RequirePremiumOrAbove,
			allowed: map[entity.Role]bool{
				entity.RoleAlunoPro: true, entity.RoleSuporte: true, entity.RoleAdm: true,
			},
		},
		{
			name:    "SupportOrAbove",
			handler: apphttp.RequireSupportOrAbove,
			allowed: map[entity.Role]bool{
				entity.RoleSuporte: true, entity.RoleAdm: true,
			},
		},
		{
			name:    "Admin",
			handler: apphttp.RequireAdmin,
			allowed: map[entity.Role]bool{entity.RoleAdm: true},
		},
	}
	roles := []entity.Role{
		entity.RoleBasic, entity.RoleAluno, entity.RoleAlunoPro,
		entity.RoleSuporte, entity.RoleAdm,
	}

	for _, g := range guards {
		for _, role := range roles {
			t.Run(g.name+"/"+string(role), func(t *testing.T) {
				app := buildTestApp(&stubUsers{user: activeUser(role)}, nil, g.handler)
				resp := doRequest(t, app, tokenForRole(t, role))
				defer resp.Body.Close()

				if g.allowed[role] {
					assert.Equal(t, http.StatusOK, resp.StatusCode,
						"%s deveria passar no guard %s", role, g.name)
				} else {
					assert.Equal(t, http.StatusForbidden, resp.StatusCode,
						"%s não deveria passar no guard %s", role, g.name)
				}
			})
		}
	}
}

// O corpo do 403 expõe os papéis aceitos e o papel do usuário para o frontend
// montar o aviso de upgrade.
func TestRequireRole_403IncluiPapeisAceitosEPapelDoUsuario(t *testing.T) {
	app := buildTestApp(&stubUsers{user: activeUser(entity.RoleAluno)}, nil, apphttp.RequirePremiumOrAbove)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAluno))
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body struct {
		Code          string   `json:"code"`
		RequiredRoles []string `json:"requiredRoles"`
		UserRole      string   `json:"userRole"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.ElementsMatch(t, []string{"ALUNO_PRO", "SUPORTE", "ADM"}, body.RequiredRoles)
	assert.Equal(t, "ALUNO", body.UserRole)
}

// Guard sem AuthMiddleware antes devolve 401, não 500: falta o principal.
func TestRequireRole_SemPrincipalDevolve401(t *testing.T) {
	app := fiber.New()
	app.Get("/orfao", apphttp.RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/orfao", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
