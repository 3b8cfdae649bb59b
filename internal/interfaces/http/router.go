package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/report"
	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
	"github.com/jhoicas/stocksync-dashboard/internal/application/status"
	"github.com/jhoicas/stocksync-dashboard/internal/interfaces/http/views"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions    *session.Manager
	Report      *report.UseCase
	Status      *status.Checker
	AppName     string
	SwaggerFile string // vacío o inexistente: sin /docs
}

// AppConfig configuración de fiber para el dashboard. Immutable: las sesiones guardan
// valores de params, cookies y query más allá del request.
func AppConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		Immutable:    true,
		Views:        views.Engine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	}
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    deps.AppName + " API",
			}))
		}
	}

	// Sin sesión
	statusHandler := NewStatusHandler(deps.Status, deps.AppName)
	app.Get("/health", statusHandler.Health)
	app.Get("/api/status", statusHandler.Status)

	reportHandler := NewReportHandler(deps.Report)
	app.Get("/reports/inventory.pdf", reportHandler.Inventory)

	// Todo lo demás opera sobre la sesión del navegador
	web := app.Group("/", SessionMiddleware(deps.Sessions))

	pages := NewPageHandler()
	web.Get("/api/state", pages.State)
	web.Get("/api/dashboard", pages.Dashboard)
	web.Post("/dashboard/refresh", pages.Refresh)
	web.Post("/notifications/:id/dismiss", pages.DismissNotification)

	prefs := NewPreferenceHandler()
	web.Post("/preferences/theme", prefs.ToggleTheme)
	web.Post("/preferences/sidebar", prefs.ToggleSidebar)

	// Borrado (antes de /:kind/:id/edit)
	deletes := NewDeleteHandler()
	web.Post("/delete/confirm", deletes.Confirm)
	web.Post("/delete/cancel", deletes.Cancel)
	web.Post("/delete/:kind/:id", deletes.Request)

	// Formularios
	forms := NewFormHandler()
	web.Post("/orders/form/items", forms.AddItem)
	web.Post("/orders/form/items/:index/remove", forms.RemoveItem)
	web.Post("/orders/form/items/:index/select", forms.SelectProduct)
	web.Post("/orders/detail/close", forms.CloseOrder)
	web.Get("/orders/:id/view", forms.ViewOrder)
	web.Post("/:kind/form/show", forms.Show)
	web.Post("/:kind/form/submit", forms.Submit)
	web.Post("/:kind/form/cancel", forms.Cancel)
	web.Post("/:kind/:id/edit", forms.Edit)

	// Páginas (al final: /:section captura cualquier nombre)
	web.Get("/", pages.Index)
	web.Get("/search", pages.Search)
	web.Get("/:section", pages.Show)
}
