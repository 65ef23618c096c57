package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recepcion-api/internal/application/analytics"
	"github.com/jhoicas/Recepcion-api/internal/application/auth"
	"github.com/jhoicas/Recepcion-api/internal/application/receiving"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ASNUC       *receiving.ASNUseCase
	ReceiptUC   *receiving.ReceiptUseCase
	PutawayUC   *receiving.PutawayUseCase
	BinUC       *receiving.BinUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// ASNs: crear/transicionar es trabajo del muelle (admin o recibidor)
	asns := protected.Group("/asns")
	asnHandler := NewASNHandler(deps.ASNUC)
	asns.Post("/", RequireRole(entity.RoleAdmin, entity.RoleRecibidor), asnHandler.Create)
	asns.Get("/", asnHandler.List)
	asns.Get("/:id", asnHandler.GetByID)
	asns.Patch("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleRecibidor), asnHandler.UpdateStatus)

	// Receipts
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", RequireRole(entity.RoleAdmin, entity.RoleRecibidor), receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)

	// Putaway tasks: reclamar y reportar avance es trabajo de bodega
	tasks := protected.Group("/putaway-tasks")
	putawayHandler := NewPutawayHandler(deps.PutawayUC)
	tasks.Get("/", putawayHandler.List)
	tasks.Post("/:id/assign", RequireRole(entity.RoleAdmin, entity.RoleRecibidor, entity.RoleOperario), putawayHandler.Assign)
	tasks.Patch("/:id/progress", RequireRole(entity.RoleAdmin, entity.RoleRecibidor, entity.RoleOperario), putawayHandler.UpdateProgress)

	// Bins: el registro SKU → ubicación lo mantiene el admin
	bins := protected.Group("/bins")
	binHandler := NewBinHandler(deps.BinUC)
	bins.Post("/", RequireRole(entity.RoleAdmin), binHandler.Create)
	bins.Get("/", binHandler.ListBySKU)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/receiving", dashboardHandler.GetReceivingSummary)
}
