package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// DeleteHandler modal de confirmación de borrado.
type DeleteHandler struct{}

// NewDeleteHandler construye el handler.
func NewDeleteHandler() *DeleteHandler { return &DeleteHandler{} }

// Request abre el modal. No llama a la API.
// POST /delete/:kind/:id
func (h *DeleteHandler) Request(c *fiber.Ctx) error {
	s := GetSession(c)
	kind, err := entity.ParseKind(c.Params("kind"))
	if err != nil {
		return fail(c, err)
	}
	if err := s.Deletion().Request(kind, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return afterAction(c, s, nil)
}

// Confirm godoc
// @Summary      Confirmar borrado pendiente
// @Description  Emite el DELETE de la acción pendiente. Sin acción pendiente no hace nada.
// @Tags         delete
// @Produce      json
// @Success      200  {object}  dto.PageView
// @Failure      502  {object}  dto.PageView
// @Router       /delete/confirm [post]
func (h *DeleteHandler) Confirm(c *fiber.Ctx) error {
	s := GetSession(c)
	return afterAction(c, s, s.Deletion().Confirm(c.UserContext()))
}

// Cancel descarta la acción pendiente.
// POST /delete/cancel
func (h *DeleteHandler) Cancel(c *fiber.Ctx) error {
	s := GetSession(c)
	s.Deletion().Cancel()
	return afterAction(c, s, nil)
}
