// Package views contiene las plantillas HTML del dashboard embebidas en el binario.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var FS embed.FS

// Engine motor de plantillas para fiber.Config.Views.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(FS), ".html")
}
