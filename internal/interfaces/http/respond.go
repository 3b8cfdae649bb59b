package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/form"
	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
)

// pageTemplate plantilla única del dashboard (views/index.html).
const pageTemplate = "index"

// wantsJSON el cliente pide el modelo de página en lugar de HTML.
func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// render pinta la página actual de la sesión con status.
func render(c *fiber.Ctx, s *session.Session, status int) error {
	page := s.Page(c.Query("q"), c.Query("status"))
	if wantsJSON(c) {
		return c.Status(status).JSON(page)
	}
	return c.Status(status).Render(pageTemplate, page)
}

// afterAction responde a un POST: JSON con el modelo de página, o redirect a la sección
// activa para navegadores (post/redirect/get). Los errores ya se notificaron en la sesión.
func afterAction(c *fiber.Ctx, s *session.Session, err error) error {
	status := fiber.StatusOK
	if err != nil {
		status = statusFor(err)
	}
	if wantsJSON(c) {
		return c.Status(status).JSON(s.Page("", ""))
	}
	return c.Redirect("/"+string(s.Section()), fiber.StatusSeeOther)
}

// statusFor traduce la taxonomía de errores a códigos HTTP.
func statusFor(err error) int {
	var (
		verrs   domain.ValidationErrors
		netErr  *domain.NetworkError
		httpErr *domain.HTTPError
		parse   *domain.ParseError
	)
	switch {
	case errors.As(err, &verrs), errors.Is(err, domain.ErrLastItem):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrBusy), errors.Is(err, form.ErrNotOpen):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownSection), errors.Is(err, domain.ErrUnknownKind):
		return fiber.StatusNotFound
	case errors.Is(err, form.ErrItemRange):
		return fiber.StatusBadRequest
	case errors.As(err, &netErr), errors.As(err, &httpErr), errors.As(err, &parse):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// codeFor código corto de dto.ErrorResponse.
func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "BUSY"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION"
	case fiber.StatusBadGateway:
		return "API_ERROR"
	}
	return "INTERNAL"
}

func errorBody(code, message string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: code, Message: message}
}

// fail responde con dto.ErrorResponse.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: codeFor(status), Message: domain.UserMessage(err)})
}

// formFields lee los campos enviados (urlencoded o JSON con valores string).
func formFields(c *fiber.Ctx) (map[string]string, error) {
	fields := map[string]string{}
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		if len(c.Body()) == 0 {
			return fields, nil
		}
		if err := c.BodyParser(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		fields[string(k)] = string(v)
	})
	return fields, nil
}

// sectionURL "/products?q=wid".
func sectionURL(sec session.Section, query string) string {
	u := "/" + string(sec)
	if query != "" {
		u += "?q=" + url.QueryEscape(query)
	}
	return u
}
