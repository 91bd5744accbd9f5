package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/domain"
)

// TemplateHandler biblioteca de templates (leitura ALUNO_PRO+ via guard de rota).
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler constrói o handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar templates
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "filtro de categoria"
// @Param        limit     query  int     false  "padrão 20"
// @Param        offset    query  int     false  "padrão 0"
// @Success      200  {object}  dto.TemplateListResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe de um template
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do template"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [get]
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "template não encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar template (admin)
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTemplateRequest  true  "dados do template"
// @Success      201  {object}  dto.TemplateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Title == "" || in.FileURL == "" {
		return badRequest(c, "title e file_url são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar template (admin)
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do template"
// @Param        body  body  dto.UpdateTemplateRequest  true  "campos a atualizar"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "template não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover template (admin)
// @Tags         templates
// @Security     Bearer
// @Param        id  path  string  true  "ID do template"
// @Success      204
// @Router       /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "template não encontrado")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
