package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dashboard"
	"github.com/jhoicas/stocksync-dashboard/internal/application/preference"
	"github.com/jhoicas/stocksync-dashboard/internal/application/report"
	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
	"github.com/jhoicas/stocksync-dashboard/internal/application/status"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/localprefs"
	infrapdf "github.com/jhoicas/stocksync-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/restapi"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/stocksync-dashboard/internal/interfaces/http"
	"github.com/jhoicas/stocksync-dashboard/pkg/config"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando dashboard")

	ctx := context.Background()

	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	productRepo := restapi.NewProductRepository(client)
	supplierRepo := restapi.NewSupplierRepository(client)
	orderRepo := restapi.NewOrderRepository(client)

	// Preferencias: archivo YAML local o PostgreSQL
	var prefsRepo repository.PreferenceRepository
	switch cfg.Prefs.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgPrefs := postgres.NewPreferenceRepository(pool)
		if err := pgPrefs.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de preferencias")
		}
		prefsRepo = pgPrefs
	default:
		filePrefs, err := localprefs.New(cfg.Prefs.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Prefs.Path).Msg("archivo de preferencias")
		}
		prefsRepo = filePrefs
	}
	prefsSvc := preference.NewService(prefsRepo, log)

	checker := status.NewChecker(client, log)
	sessions := session.NewManager(session.Deps{
		Products:       productRepo,
		Suppliers:      supplierRepo,
		Orders:         orderRepo,
		Preferences:    prefsSvc,
		Status:         checker,
		AppName:        cfg.App.Name,
		NotifyDuration: cfg.Notify.Duration,
		Log:            log,
	})

	// PDF: reporte de inventario
	reportUC := report.NewUseCase(
		productRepo,
		dashboard.NewAggregate(productRepo, supplierRepo, orderRepo, log),
		infrapdf.NewMarotoPDFGenerator(),
		cfg.App.Name,
	)

	jobs := scheduler.New(log)
	if err := jobs.Add("api-health", cfg.Health.Schedule, func(ctx context.Context) {
		checker.Check(ctx)
	}); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Health.Schedule).Msg("programar chequeo de API")
	}
	if err := jobs.Add("session-sweep", cfg.Session.SweepSchedule, func(context.Context) {
		if n := sessions.Sweep(cfg.Session.IdleTimeout); n > 0 {
			log.Info().Int("closed", n).Int("alive", sessions.Len()).Msg("sesiones inactivas cerradas")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Session.SweepSchedule).Msg("programar limpieza de sesiones")
	}
	jobs.Start()

	app := fiber.New(httpRouter.AppConfig(cfg.App.Name))
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:    sessions,
		Report:      reportUC,
		Status:      checker,
		AppName:     cfg.App.Name,
		SwaggerFile: "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobs.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	sessions.Close()

	log.Info().Msg("dashboard detenido")
}
