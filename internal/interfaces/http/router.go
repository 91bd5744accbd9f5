package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/auth"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/application/videos"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	SupplierUC      *usecase.SupplierUseCase
	SavedSupplierUC *usecase.SavedSupplierUseCase
	MaterialUC      *usecase.MaterialUseCase
	TemplateUC      *usecase.TemplateUseCase
	TicketUC        *usecase.TicketUseCase
	UserAdminUC     *usecase.UserAdminUseCase
	VideoCache      *videos.Cache

	JWTSecret string
	Users     principalSource
	Tokens    revocationChecker // nil desativa a checagem de revogação
}

// Router registra as rotas da API. Os guards de papel ficam declarados na rota,
// não no handler: a política de acesso inteira se lê aqui.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users, deps.Tokens)

	// Auth (register/login públicos; logout/me exigem sessão)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authRequired, authHandler.Logout)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Rotas protegidas (exigem Bearer Token e conta ativa)
	protected := api.Group("/", authRequired)

	// Vídeos do canal (qualquer papel autenticado, até BASIC)
	videoHandler := NewVideoHandler(deps.VideoCache)
	protected.Get("/videos", videoHandler.List)

	// Diretório de fornecedores (leitura ALUNO+, escrita ADM)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequireStudentOrAbove, supplierHandler.List)
	suppliers.Get("/:id", RequireStudentOrAbove, supplierHandler.Get)
	suppliers.Post("/", RequireAdmin, supplierHandler.Create)
	suppliers.Put("/:id", RequireAdmin, supplierHandler.Update)
	suppliers.Delete("/:id", RequireAdmin, supplierHandler.Delete)

	// CRM pessoal de fornecedores (ALUNO+)
	mySuppliers := protected.Group("/my-suppliers", RequireStudentOrAbove)
	savedHandler := NewSavedSupplierHandler(deps.SavedSupplierUC)
	mySuppliers.Get("/", savedHandler.List)
	mySuppliers.Post("/", savedHandler.Create)
	mySuppliers.Get("/:id", savedHandler.Get)
	mySuppliers.Put("/:id", savedHandler.Update)
	mySuppliers.Delete("/:id", savedHandler.Delete)

	// Biblioteca de materiais (leitura ALUNO+, escrita ADM; premium filtrado no caso de uso)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", RequireStudentOrAbove, materialHandler.List)
	materials.Get("/:id", RequireStudentOrAbove, materialHandler.Get)
	materials.Post("/", RequireAdmin, materialHandler.Create)
	materials.Put("/:id", RequireAdmin, materialHandler.Update)
	materials.Delete("/:id", RequireAdmin, materialHandler.Delete)

	// Templates (leitura ALUNO_PRO+, escrita ADM)
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", RequirePremiumOrAbove, templateHandler.List)
	templates.Get("/:id", RequirePremiumOrAbove, templateHandler.Get)
	templates.Post("/", RequireAdmin, templateHandler.Create)
	templates.Put("/:id", RequireAdmin, templateHandler.Update)
	templates.Delete("/:id", RequireAdmin, templateHandler.Delete)

	// Tickets (membro opera os próprios; fila completa só SUPORTE+)
	tickets := protected.Group("/tickets", RequireStudentOrAbove)
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/all", RequireSupportOrAbove, ticketHandler.ListAll)
	tickets.Get("/:id", ticketHandler.Get)
	tickets.Post("/:id/reply", ticketHandler.Reply)
	tickets.Post("/:id/close", ticketHandler.Close)

	// Console admin de usuários (só ADM)
	adminUsers := protected.Group("/admin/users", RequireAdmin)
	adminHandler := NewAdminUserHandler(deps.UserAdminUC)
	adminUsers.Get("/", adminHandler.List)
	adminUsers.Put("/:id/role", adminHandler.UpdateRole)
	adminUsers.Put("/:id/active", adminHandler.SetActive)
}
