package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acastellanos/almacen-api/internal/application/auth"
	"github.com/acastellanos/almacen-api/internal/application/inventory"
	"github.com/acastellanos/almacen-api/internal/application/usecase"
	"github.com/acastellanos/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementUC       *usecase.MovementUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. La política de roles por ruta vive
// aquí (RequireRole), no dentro de los handlers; la única regla que queda en
// un use case es la de movimientos, que depende del tipo del cuerpo.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users", RequireRole(entity.RoleAdmin), userHandler.List)

	// Productos: lectura para cualquier autenticado, mutación solo admin
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	productos.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	productos.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Movimientos: registro para ambos roles (la regla por tipo vive en el use
	// case), listado global solo admin, listado propio para cualquier autenticado
	movimientos := protected.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementUC)
	movimientos.Post("/", RequireRole(entity.RoleAdmin, entity.RoleEmployee), movementHandler.Register)
	movimientos.Get("/", RequireRole(entity.RoleAdmin), movementHandler.List)
	movimientos.Get("/:id", movementHandler.ListMine)
}
