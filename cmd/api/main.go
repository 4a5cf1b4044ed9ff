package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Inventario-stock/docs"
	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/cloudsync"
	"github.com/jhoicas/Inventario-stock/internal/application/exchange"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/notification"
	"github.com/jhoicas/Inventario-stock/internal/application/state"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Inventario-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/remote"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Inventario-stock/internal/interfaces/http"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closeStore, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer closeStore()

	tokens, err := storage.OpenTokens(cfg.Token, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de token")
	}

	m := metrics.New()
	toasts := notification.NewChannel(log.Component("toast"),
		notification.WithTTL(cfg.Toast.TTL),
		notification.WithRecorder(m),
	)
	engine := inventory.NewEngine(toasts, log.Component("engine"), inventory.WithRecorder(m))
	store := state.NewStore(kv, log.Component("state"))
	remoteClient := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	session := auth.NewManager(remoteClient, tokens, store, engine, toasts, log.Component("session"))
	orchestrator := cloudsync.NewOrchestrator(session, store, remoteClient, m, log.Component("sync"))
	engine.OnChange(orchestrator.Notify)
	session.OnLogout(orchestrator.Discard)

	// La hidratación bloquea el arranque: la API no atiende hasta tener el estado local.
	session.Hydrate(ctx)

	workerCtx, stopWorker := context.WithCancel(ctx)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		orchestrator.Run(workerCtx)
	}()

	exchangeUC := exchange.NewUseCase(engine, toasts, infrapdf.NewAlertReportRenderer(), log.Component("exchange"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 << 20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Inventario Stock API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:  cfg.App.Name,
		Engine:   engine,
		Session:  session,
		Exchange: exchangeUC,
		Toasts:   toasts,
		Metrics:  m.Handler(),
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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	stopWorker()
	<-workerDone
	// Último lote pendiente antes de cerrar el almacén.
	orchestrator.Flush(shutdownCtx)

	log.Info().Msg("aplicación detenida")
}
