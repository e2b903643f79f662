package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/campus-stock-api/internal/application/auth"
	"github.com/jhoicas/campus-stock-api/internal/application/excel"
	"github.com/jhoicas/campus-stock-api/internal/application/report"
	"github.com/jhoicas/campus-stock-api/internal/application/usecase"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CampusUC    *usecase.CampusUseCase
	StockUC     *usecase.StockUseCase
	DashboardUC *usecase.DashboardUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	ImportUC    *excel.ImportUseCase
	ExportUC    *excel.ExportUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
	UploadDir   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público, registro solo admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Campuses (lectura staff+admin; mutaciones solo admin)
	campuses := protected.Group("/campuses")
	campusHandler := NewCampusHandler(deps.CampusUC)
	campuses.Get("/", campusHandler.List)
	campuses.Get("/:id", campusHandler.GetByID)
	campuses.Post("/", adminOnly, campusHandler.Create)
	campuses.Put("/:id", adminOnly, campusHandler.Update)
	campuses.Delete("/:id", adminOnly, campusHandler.Delete)

	// Stock por campus + CRUD de ítems (protegido).
	// Las rutas estáticas /export y /template van antes de /:id.
	stockHandler := NewStockHandler(deps.StockUC)
	excelHandler := NewExcelHandler(deps.ImportUC, deps.ExportUC, deps.UploadDir)
	campuses.Get("/:id/stocks", stockHandler.ListByCampus)
	campuses.Post("/:id/stocks/import", excelHandler.Import)
	campuses.Get("/:id/stocks/export", excelHandler.ExportCampus)
	stocks := protected.Group("/stocks")
	stocks.Get("/export", excelHandler.ExportAll)
	stocks.Get("/template", excelHandler.Template)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	// Reporte PDF por campus (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	campuses.Get("/:id/report", reportHandler.CampusReport)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Usuarios (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)
}
