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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/feria-pos/internal/application/analytics"
	"github.com/jhoicas/feria-pos/internal/application/auth"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/fixtures"
	"github.com/jhoicas/feria-pos/internal/infrastructure/metrics"
	"github.com/jhoicas/feria-pos/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/feria-pos/internal/interfaces/http"
	"github.com/jhoicas/feria-pos/pkg/config"
	"github.com/jhoicas/feria-pos/pkg/logger"
)

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs --parseInternal --outputTypes go,json

// @title                       Feria POS API
// @version                     1.0
// @description                 Punto de venta, preventa, logística y auditoría del tablero de la feria.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT con el prefijo Bearer
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer closeStore()

	seedRandom := cfg.App.SeedRandom
	if seedRandom == 0 {
		seedRandom = uint64(time.Now().UnixNano())
	}
	seed := func(now time.Time) (entity.AppData, error) {
		return fixtures.Seed(fixtures.NewRand(seedRandom), now)
	}

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)
	stateUC := appstate.NewStateUseCase(repo, seed, log, appstate.WithMetrics(recorder))
	if _, err := stateUC.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot")
	}

	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Feria POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StateUC:     stateUC,
		DashboardUC: appanalytics.NewDashboardUseCase(stateUC, nil),
		AuditUC:     appanalytics.NewAuditUseCase(stateUC),
		InventoryUC: appanalytics.NewInventoryUseCase(stateUC),
		CustomerUC:  appanalytics.NewCustomerUseCase(stateUC),
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		Metrics:     promhttp.Handler(),
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

	log.Info().Msg("aplicación detenida")
}
