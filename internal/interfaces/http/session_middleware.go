package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
)

// ClientCookie cookie con el id opaco del navegador.
const ClientCookie = "client_id"

// LocalSession key de c.Locals con la *session.Session del request.
const LocalSession = "session"

// cookieMaxAge un año: las preferencias sobreviven a reinicios del navegador.
const cookieMaxAge = 365 * 24 * 60 * 60

// SessionMiddleware resuelve la sesión del navegador a partir de la cookie client_id.
// Si la cookie falta o no es válida se crea una sesión nueva y se reescribe la cookie.
func SessionMiddleware(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.Cookies(ClientCookie)
		s := manager.Get(c.UserContext(), clientID)
		if s.ID() != clientID {
			c.Cookie(&fiber.Cookie{
				Name:     ClientCookie,
				Value:    s.ID(),
				Path:     "/",
				MaxAge:   cookieMaxAge,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(LocalSession).(*session.Session)
	return s
}
