package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/asset-ledger/internal/application/auth"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
	"github.com/tu-usuario/asset-ledger/internal/application/usecase"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MetricsUC       *ledger.MetricsUseCase
	RecordUC        *ledger.RecordUseCase
	ReportGenerator ledger.ReportGenerator
	BaseUC          *usecase.BaseUseCase
	EquipmentUC     *usecase.EquipmentUseCase
	AuditUC         *usecase.AuditUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Reglas de acceso por grupo:
//   - compras y traslados: Admin y Logistics
//   - asignaciones y gastos: Admin y Commander
//   - gestión de usuarios, auditoría y alta de recursos: solo Admin
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (todos los roles autenticados; la base se clampa en servidor)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.MetricsUC, deps.ReportGenerator)
	dashboard.Get("/", dashboardHandler.GetMetrics)
	dashboard.Get("/report", dashboardHandler.GetReport)

	txHandler := NewTransactionHandler(deps.RecordUC)

	// Compras y traslados (Admin, Logistics)
	logistics := RequireRole(entity.RoleAdmin, entity.RoleLogistics)
	purchases := protected.Group("/purchases", logistics)
	purchases.Post("/", txHandler.CreatePurchase)
	purchases.Get("/", txHandler.ListPurchases)

	transfers := protected.Group("/transfers", logistics)
	transfers.Post("/", txHandler.CreateTransfer)
	transfers.Get("/", txHandler.ListTransfers)

	// Asignaciones y gastos (Admin, Commander)
	command := RequireRole(entity.RoleAdmin, entity.RoleCommander)
	assignments := protected.Group("/assignments", command)
	assignments.Post("/", txHandler.CreateAssignment)
	assignments.Get("/", txHandler.ListAssignments)

	expenditures := protected.Group("/expenditures", command)
	expenditures.Post("/", txHandler.CreateExpenditure)
	expenditures.Get("/", txHandler.ListExpenditures)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Bases (lectura para todos; alta solo Admin)
	bases := protected.Group("/bases")
	baseHandler := NewBaseHandler(deps.BaseUC)
	bases.Get("/", baseHandler.List)
	bases.Get("/:id", baseHandler.GetByID)
	bases.Post("/", adminOnly, baseHandler.Create)

	// Equipos (lectura para todos; alta solo Admin)
	equipments := protected.Group("/equipments")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipments.Get("/", equipmentHandler.List)
	equipments.Get("/:id", equipmentHandler.GetByID)
	equipments.Post("/", adminOnly, equipmentHandler.Create)

	// Usuarios (solo Admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)

	// Log de auditoría (solo Admin)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/auditlog", adminOnly, auditHandler.List)
}
