package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/domain"
)

// MaterialHandler biblioteca de materiais/aulas.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler constrói o handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materiais
// @Description  Conteúdo premium só aparece para ALUNO_PRO ou acima.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "padrão 20"
// @Param        offset  query  int  false  "padrão 0"
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(GetRole(c), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe de um material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetRole(c))
	if err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c, "material exclusivo para assinantes PRO")
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "material não encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar material (admin)
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "dados do material"
// @Success      201  {object}  dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Title == "" || in.Kind == "" {
		return badRequest(c, "title e kind são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "kind deve ser video, pdf ou artigo")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar material (admin)
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "campos a atualizar"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "kind deve ser video, pdf ou artigo")
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "material não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover material (admin)
// @Tags         materials
// @Security     Bearer
// @Param        id  path  string  true  "ID do material"
// @Success      204
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "material não encontrado")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
