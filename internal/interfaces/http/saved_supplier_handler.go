package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/domain"
)

// SavedSupplierHandler CRM pessoal de fornecedores do membro autenticado.
type SavedSupplierHandler struct {
	uc *usecase.SavedSupplierUseCase
}

// NewSavedSupplierHandler constrói o handler.
func NewSavedSupplierHandler(uc *usecase.SavedSupplierUseCase) *SavedSupplierHandler {
	return &SavedSupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar minhas anotações de fornecedores
// @Tags         my-suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "padrão 20"
// @Param        offset  query  int  false  "padrão 0"
// @Success      200  {object}  dto.SavedSupplierListResponse
// @Router       /api/my-suppliers [get]
func (h *SavedSupplierHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe de uma anotação minha
// @Tags         my-suppliers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da anotação"
// @Success      200  {object}  dto.SavedSupplierResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/my-suppliers/{id} [get]
func (h *SavedSupplierHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c, "a anotação pertence a outro usuário")
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "anotação não encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar anotação de fornecedor
// @Tags         my-suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSavedSupplierRequest  true  "dados da anotação"
// @Success      201  {object}  dto.SavedSupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/my-suppliers [post]
func (h *SavedSupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSavedSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name é obrigatório")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "rating deve estar entre 0 e 5")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar anotação minha
// @Tags         my-suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da anotação"
// @Param        body  body  dto.UpdateSavedSupplierRequest  true  "campos a atualizar"
// @Success      200  {object}  dto.SavedSupplierResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/my-suppliers/{id} [put]
func (h *SavedSupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSavedSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return forbidden(c, "a anotação pertence a outro usuário")
		case domain.ErrInvalidInput:
			return badRequest(c, "rating deve estar entre 0 e 5")
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "anotação não encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover anotação minha
// @Tags         my-suppliers
// @Security     Bearer
// @Param        id  path  string  true  "ID da anotação"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/my-suppliers/{id} [delete]
func (h *SavedSupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		switch err {
		case domain.ErrForbidden:
			return forbidden(c, "a anotação pertence a outro usuário")
		case domain.ErrNotFound:
			return notFound(c, "anotação não encontrada")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
