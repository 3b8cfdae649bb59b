package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
)

// PreferenceHandler tema y sidebar.
type PreferenceHandler struct{}

// NewPreferenceHandler construye el handler.
func NewPreferenceHandler() *PreferenceHandler { return &PreferenceHandler{} }

// msgPrefsNotSaved aviso cuando el almacén de preferencias falla.
const msgPrefsNotSaved = "Preferences could not be saved"

// ToggleTheme alterna light/dark.
// POST /preferences/theme
func (h *PreferenceHandler) ToggleTheme(c *fiber.Ctx) error {
	s := GetSession(c)
	if _, err := s.ToggleTheme(c.UserContext()); err != nil {
		s.Notifier().Notify(msgPrefsNotSaved, notify.Warning)
		return afterAction(c, s, err)
	}
	return afterAction(c, s, nil)
}

// ToggleSidebar alterna sidebar colapsado.
// POST /preferences/sidebar
func (h *PreferenceHandler) ToggleSidebar(c *fiber.Ctx) error {
	s := GetSession(c)
	if _, err := s.ToggleSidebar(c.UserContext()); err != nil {
		s.Notifier().Notify(msgPrefsNotSaved, notify.Warning)
		return afterAction(c, s, err)
	}
	return afterAction(c, s, nil)
}
