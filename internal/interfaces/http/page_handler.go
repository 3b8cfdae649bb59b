package http

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
)

// minSearchLen la búsqueda global solo filtra con 2 o más caracteres.
const minSearchLen = 2

// PageHandler navegación entre secciones y modelo de página.
type PageHandler struct{}

// NewPageHandler construye el handler.
func NewPageHandler() *PageHandler { return &PageHandler{} }

// Index redirige a la sección por defecto.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return c.Redirect("/" + string(session.SectionDashboard))
}

// Show activa la sección y carga sus datos.
// GET /:section?q=&status=
//
// Con Accept: application/json devuelve dto.PageView en lugar de HTML.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	s := GetSession(c)
	if err := s.Navigate(c.UserContext(), c.Params("section")); err != nil {
		if wantsJSON(c) {
			return fail(c, err)
		}
		return fiber.ErrNotFound
	}
	return render(c, s, fiber.StatusOK)
}

// Search aplica el término a la tabla de la sección activa.
// GET /search?q=
func (h *PageHandler) Search(c *fiber.Ctx) error {
	s := GetSession(c)
	term := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(term) < minSearchLen {
		term = ""
	}
	return c.Redirect(sectionURL(s.Section(), term), fiber.StatusSeeOther)
}

// State godoc
// @Summary      Modelo de la página actual
// @Tags         state
// @Produce      json
// @Param        q       query  string  false  "Filtro de texto"
// @Param        status  query  string  false  "Filtro de estado (órdenes)"
// @Success      200  {object}  dto.PageView
// @Router       /api/state [get]
func (h *PageHandler) State(c *fiber.Ctx) error {
	return c.JSON(GetSession(c).Page(c.Query("q"), c.Query("status")))
}

// Dashboard godoc
// @Summary      Contadores del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardCounts
// @Router       /api/dashboard [get]
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(GetSession(c).Counts())
}

// Refresh recalcula el dashboard.
// POST /dashboard/refresh
func (h *PageHandler) Refresh(c *fiber.Ctx) error {
	s := GetSession(c)
	s.Refresh(c.UserContext())
	return afterAction(c, s, nil)
}

// DismissNotification cierra un aviso. Un aviso ya expirado no es un error.
// POST /notifications/:id/dismiss
func (h *PageHandler) DismissNotification(c *fiber.Ctx) error {
	s := GetSession(c)
	s.Notifier().Dismiss(notify.Handle(c.Params("id")))
	return afterAction(c, s, nil)
}
