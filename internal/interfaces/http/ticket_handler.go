package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/domain"
)

// TicketHandler tickets de suporte.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler constrói o handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "subject e body"
// @Success      201  {object}  dto.TicketDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Subject == "" || in.Body == "" {
		return badRequest(c, "subject e body são obrigatórios")
	}
	out, err := h.uc.Create(GetUserID(c), GetRole(c), in)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar meus tickets
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "padrão 20"
// @Param        offset  query  int  false  "padrão 0"
// @Success      200  {object}  dto.TicketListResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Fila completa de tickets (suporte)
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "OPEN | ANSWERED | CLOSED"
// @Param        limit   query  int     false  "padrão 20"
// @Param        offset  query  int     false  "padrão 0"
// @Success      200  {object}  dto.TicketListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tickets/all [get]
func (h *TicketHandler) ListAll(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.ListAll(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "status deve ser OPEN, ANSWERED ou CLOSED")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe de um ticket com mensagens
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do ticket"
// @Success      200  {object}  dto.TicketDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrForbidden {
			return forbidden(c, "o ticket pertence a outro usuário")
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket não encontrado")
	}
	return c.JSON(out)
}

// Reply godoc
// @Summary      Responder ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ticket"
// @Param        body  body  dto.ReplyTicketRequest  true  "body"
// @Success      200  {object}  dto.TicketDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/reply [post]
func (h *TicketHandler) Reply(c *fiber.Ctx) error {
	var in dto.ReplyTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Body == "" {
		return badRequest(c, "body é obrigatório")
	}
	out, err := h.uc.Reply(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return forbidden(c, "o ticket pertence a outro usuário")
		case domain.ErrTicketClosed:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TICKET_CLOSED", Message: "ticket encerrado não aceita novas mensagens"})
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket não encontrado")
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Encerrar ticket
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/close [post]
func (h *TicketHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.Close(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return forbidden(c, "o ticket pertence a outro usuário")
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CLOSED", Message: "ticket já estava encerrado"})
		}
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket não encontrado")
	}
	return c.JSON(out)
}
