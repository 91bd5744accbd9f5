package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
)

// AdminUserHandler console admin de usuários.
type AdminUserHandler struct {
	uc *usecase.UserAdminUseCase
}

// NewAdminUserHandler constrói o handler.
func NewAdminUserHandler(uc *usecase.UserAdminUseCase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "padrão 20"
// @Param        offset  query  int  false  "padrão 0"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Trocar papel de um usuário (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.UpdateUserRoleRequest  true  "novo papel"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminUserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateUserRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.UpdateRole(c.Params("id"), entity.Role(in.Role))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return badRequest(c, "papel deve ser BASIC, ALUNO, ALUNO_PRO, SUPORTE ou ADM")
		case domain.ErrUserNotFound:
			return notFound(c, "usuário não encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Ativar/desativar conta (admin)
// @Description  A desativação vale na próxima requisição do alvo, sem esperar o
// @Description  token expirar.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.UpdateUserActiveRequest  true  "active"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/active [put]
func (h *AdminUserHandler) SetActive(c *fiber.Ctx) error {
	var in dto.UpdateUserActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Active == nil {
		return badRequest(c, "active é obrigatório")
	}
	out, err := h.uc.SetActive(c.Params("id"), *in.Active)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return notFound(c, "usuário não encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
