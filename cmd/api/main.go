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

	"github.com/jhoicas/AgriCore-api/internal/application/auth"
	appcrop "github.com/jhoicas/AgriCore-api/internal/application/crop"
	"github.com/jhoicas/AgriCore-api/internal/application/report"
	"github.com/jhoicas/AgriCore-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/AgriCore-api/internal/infrastructure/pdf"
	"github.com/jhoicas/AgriCore-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/AgriCore-api/internal/interfaces/http"
	"github.com/jhoicas/AgriCore-api/pkg/config"
	"github.com/jhoicas/AgriCore-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	cropRepo := postgres.NewCropRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	itemUC := usecase.NewItemUseCase(txRunner, itemRepo, stockRepo, categoryRepo)
	cropUC := appcrop.NewLifecycleUseCase(txRunner, cropRepo, stockRepo, itemRepo, categoryRepo)
	dashboardUC := usecase.NewDashboardUseCase(stockRepo, cropRepo)

	// PDF: reporte de cultivos del usuario
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewCropReportUseCase(cropRepo, userRepo, reportGenerator)

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
		Title:    "AgriCore API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		ItemUC:      itemUC,
		CropUC:      cropUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Cookie:      cfg.Cookie,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
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
