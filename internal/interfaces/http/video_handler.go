package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/portalmembros/portal-api/internal/application/videos"
)

// VideoHandler entrega o snapshot do cache de vídeos do canal. Nunca toca a
// fonte externa no caminho da requisição.
type VideoHandler struct {
	cache *videos.Cache
}

// NewVideoHandler constrói o handler.
func NewVideoHandler(cache *videos.Cache) *VideoHandler {
	return &VideoHandler{cache: cache}
}

// List godoc
// @Summary      Vídeos recentes do canal
// @Description  Responde do cache em memória; lastUpdated nulo indica que nenhum
// @Description  refresh completou ainda.
// @Tags         videos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  videos.Envelope
// @Router       /api/videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.cache.Read())
}
