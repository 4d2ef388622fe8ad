package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	PurchaseUC  *usecase.PurchaseUseCase
	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Purchases (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Delete("/:id", RequireRole(entity.RoleAdmin), purchaseHandler.Delete)
	purchases.Get("/:id/pdf", purchaseHandler.PrintPDF)

	// Sesiones de edición de factura (protegido)
	sessions := protected.Group("/purchase-sessions")
	sessions.Post("/", purchaseHandler.StartSession)
	sessions.Get("/:sid", purchaseHandler.GetSession)
	sessions.Put("/:sid/header", purchaseHandler.SetHeader)
	sessions.Post("/:sid/lines", purchaseHandler.AddLine)
	sessions.Delete("/:sid/lines/:lid", purchaseHandler.RemoveLine)
	sessions.Put("/:sid/lines/:lid", purchaseHandler.SetLineField)
	sessions.Post("/:sid/save", purchaseHandler.Save)
	sessions.Delete("/:sid", purchaseHandler.Cancel)
}
