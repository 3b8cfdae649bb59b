// Package restapi es el adaptador hacia la API REST de inventario (colaborador externo).
// Todas las entidades comparten un único contrato: Client.Do.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// Client emite peticiones JSON contra una URL base fija para todo el proceso.
// No reintenta; el único timeout es el del transporte (o el configurado).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout 0 = sin timeout propio.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("restapi"),
	}
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string { return c.baseURL }

// errorBody convención (best-effort) de la API para errores.
type errorBody struct {
	Error string `json:"error"`
}

// Do ejecuta method sobre path. Si body != nil se serializa como JSON; si out != nil se
// deserializa la respuesta 2xx en out.
//
// Errores: *domain.NetworkError (transporte), *domain.HTTPError (no-2xx),
// *domain.ParseError (cuerpo 2xx no parseable).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restapi: serializar %s: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("restapi: crear request %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("llamada HTTP fallida")
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	// La API no pagina: List devuelve la colección completa, sea cual sea su tamaño.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	c.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("respuesta API")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil {
			return domain.NewHTTPError(resp.StatusCode, eb.Error)
		}
		return domain.NewHTTPError(resp.StatusCode, "")
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.ParseError{Op: op, Err: err}
	}
	return nil
}

// Ping comprueba que la API responde 2xx en path (usado por el chequeo de estado).
func (c *Client) Ping(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}
