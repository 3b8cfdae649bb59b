package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrBusy           = errors.New("operación en curso, espere a que termine")
	ErrUnknownSection = errors.New("sección desconocida")
	ErrLastItem       = errors.New("At least one item is required")
	ErrUnknownKind    = errors.New("tipo de entidad desconocido")
)

// NetworkError falla de transporte (conexión rechazada, DNS, timeout del transporte).
type NetworkError struct {
	Op  string // ej. "GET /products"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error (%s): %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError respuesta no-2xx de la API. Message es el campo "error" del cuerpo
// cuando existe; si no, "HTTP {status}: {statusText}".
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError construye el error con el mensaje genérico de la línea de estado.
func NewHTTPError(status int, serverMessage string) *HTTPError {
	msg := strings.TrimSpace(serverMessage)
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return &HTTPError{Status: status, Message: msg}
}

// ParseError cuerpo JSON malformado en una respuesta exitosa.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON response (%s): %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError fallo de validación de un campo de formulario. Nunca viaja a la red.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors conjunto de errores de validación de un formulario.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields devuelve campo -> mensaje (el primero por campo gana).
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Reason
		}
	}
	return out
}

// FieldNames lista ordenada de campos con error.
func (v ValidationErrors) FieldNames() []string {
	m := v.Fields()
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NotFoundError el id no está en la caché local.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "" {
		return "Not found"
	}
	return strings.ToUpper(e.Kind[:1]) + e.Kind[1:] + " not found"
}

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UserMessage devuelve el texto a mostrar al usuario para cualquier error de la API.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}
