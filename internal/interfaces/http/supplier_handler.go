package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/domain"
)

// SupplierHandler diretório de fornecedores/parceiros/ferramentas.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler constrói o handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar diretório de fornecedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "fornecedor | parceiro | ferramenta"
// @Param        search    query  string  false  "busca por nome (sem acento)"
// @Param        limit     query  int     false  "padrão 20"
// @Param        offset    query  int     false  "padrão 0"
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.Query("category"), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe de um fornecedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "fornecedor não encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar fornecedor (admin)
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "dados do fornecedor"
// @Success      201  {object}  dto.SupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Name == "" || in.Category == "" {
		return badRequest(c, "name e category são obrigatórios")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "categoria deve ser fornecedor, parceiro ou ferramenta")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar fornecedor (admin)
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do fornecedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "campos a atualizar"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "categoria deve ser fornecedor, parceiro ou ferramenta")
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "fornecedor não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover fornecedor (admin)
// @Tags         suppliers
// @Security     Bearer
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      204
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "fornecedor não encontrado")
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
