package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/auth"
	appcrop "github.com/jhoicas/AgriCore-api/internal/application/crop"
	"github.com/jhoicas/AgriCore-api/internal/application/report"
	"github.com/jhoicas/AgriCore-api/internal/application/usecase"
	"github.com/jhoicas/AgriCore-api/pkg/config"
	"github.com/jhoicas/AgriCore-api/pkg/logger"
)

// RouterDeps dependencias que el router necesita para montar los handlers.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	ItemUC      *usecase.ItemUseCase
	CropUC      *appcrop.LifecycleUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *report.CropReportUseCase
	Cookie      config.CookieConfig
	JWTSecret   string
	Log         *logger.Logger
}

// Router monta todas las rutas bajo /api/v1. Todo excepto registro y login
// pasa por el middleware de autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.Log)
	itemHandler := NewItemHandler(deps.CategoryUC, deps.ItemUC)
	cropHandler := NewCropHandler(deps.CropUC, deps.Log)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)

	api := app.Group("/api/v1")

	user := api.Group("/user")
	user.Post("/register", authHandler.Register)
	user.Post("/login", authHandler.Login)
	user.Post("/logOut", authHandler.Logout)
	user.Post("/update-user-password", AuthMiddleware(deps.JWTSecret), authHandler.UpdatePassword)

	item := api.Group("/item", AuthMiddleware(deps.JWTSecret))
	item.Post("/addCategory", itemHandler.AddCategory)
	item.Get("/getCategories", itemHandler.GetCategories)
	item.Post("/addItem", itemHandler.AddItem)
	item.Get("/getItems", itemHandler.GetItems)
	item.Patch("/updateItem/:id", itemHandler.UpdateItem)
	item.Delete("/delete/:id", itemHandler.DeleteItem)

	crop := api.Group("/crop", AuthMiddleware(deps.JWTSecret))
	crop.Post("/", cropHandler.Plant)
	crop.Get("/", cropHandler.List)
	crop.Patch("/:id", cropHandler.Harvest)

	api.Get("/dashboard", AuthMiddleware(deps.JWTSecret), dashboardHandler.Summary)
	api.Get("/report/crops", AuthMiddleware(deps.JWTSecret), reportHandler.Crops)
}
