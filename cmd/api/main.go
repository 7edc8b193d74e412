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
	"github.com/tu-usuario/asset-ledger/internal/application/auth"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
	"github.com/tu-usuario/asset-ledger/internal/application/usecase"
	infraamqp "github.com/tu-usuario/asset-ledger/internal/infrastructure/amqp"
	infrapdf "github.com/tu-usuario/asset-ledger/internal/infrastructure/pdf"
	"github.com/tu-usuario/asset-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/asset-ledger/internal/interfaces/http"
	"github.com/tu-usuario/asset-ledger/pkg/config"
	"github.com/tu-usuario/asset-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRepo := postgres.NewTransactionRepository(pool)
	baseRepo := postgres.NewBaseRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)

	// Broker AMQP opcional: sin AMQP_URL los eventos de auditoría solo se
	// persisten en la tabla audit_events.
	var publisher ledger.AuditPublisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := infraamqp.NewAuditPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	aggregator := ledger.NewAggregator(txRepo)
	metricsUC := ledger.NewMetricsUseCase(aggregator, baseRepo, equipmentRepo)
	recordUC := ledger.NewRecordUseCase(txRepo, baseRepo, equipmentRepo, auditRepo, publisher, log)
	baseUC := usecase.NewBaseUseCase(baseRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	authUC := auth.NewAuthUseCase(userRepo, baseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	reportGenerator := infrapdf.NewMarotoReportGenerator()

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
		Title:    "Asset Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MetricsUC:       metricsUC,
		RecordUC:        recordUC,
		ReportGenerator: reportGenerator,
		BaseUC:          baseUC,
		EquipmentUC:     equipmentUC,
		AuditUC:         auditUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
