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

	"github.com/jhoicas/campus-stock-api/internal/application/auth"
	"github.com/jhoicas/campus-stock-api/internal/application/excel"
	"github.com/jhoicas/campus-stock-api/internal/application/report"
	"github.com/jhoicas/campus-stock-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/campus-stock-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/campus-stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/campus-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/campus-stock-api/internal/interfaces/http"
	"github.com/jhoicas/campus-stock-api/pkg/config"
	"github.com/jhoicas/campus-stock-api/pkg/logger"
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

	campusRepo := postgres.NewCampusRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	campusUC := usecase.NewCampusUseCase(campusRepo)
	stockUC := usecase.NewStockUseCase(campusRepo, stockRepo)
	dashboardUC := usecase.NewDashboardUseCase(stockRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Planillas xlsx: codec excelize + casos de uso de importación/exportación.
	codec := infraexcel.NewExcelizeCodec()
	importUC := excel.NewImportUseCase(campusRepo, stockRepo, codec, excel.ParsePolicy(cfg.Excel.ImportMode))
	exportUC := excel.NewExportUseCase(campusRepo, stockRepo, codec)

	// Reporte PDF por campus
	reportUC := report.NewReportUseCase(campusRepo, stockRepo, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // subidas xlsx
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Campus Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CampusUC:    campusUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		UserUC:      userUC,
		AuthUC:      authUC,
		ImportUC:    importUC,
		ExportUC:    exportUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		UploadDir:   cfg.Excel.UploadDir,
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
