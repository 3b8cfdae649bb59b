package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/status"
)

// StatusHandler conectividad con la API y salud del servicio.
type StatusHandler struct {
	checker *status.Checker
	appName string
}

// NewStatusHandler construye el handler.
func NewStatusHandler(checker *status.Checker, appName string) *StatusHandler {
	return &StatusHandler{checker: checker, appName: appName}
}

// Status godoc
// @Summary      Estado de la API remota
// @Description  Sondea GET /products en la API remota.
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.APIStatus
// @Router       /api/status [get]
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.checker.Check(c.UserContext()))
}

// Health salud del propio dashboard; no depende de la API remota.
// GET /health
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.appName})
}
