package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ClientUC  *usecase.ClientUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	AuthUC    *auth.AuthUseCase
	Guard     *auth.Guard
	Log       *logger.Logger
	Metrics   *Metrics                        // opcional: nil no expone /metrics
	Ping      func(ctx context.Context) error // opcional: chequeo del store para /health
}

// NewApp crea la app Fiber con ErrorHandler, middlewares y rutas.
func NewApp(appName string, deps RouterDeps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: NewErrorHandler(log),
	})
	app.Use(recover.New())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Use(RequestLogger(log))

	deps.Log = log
	Router(app, deps)
	return app
}

// Router registra las rutas de la API. Sin StrictRouting, /users y /users/ son la misma ruta.
func Router(app *fiber.App, deps RouterDeps) {
	v := NewValidator()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.Message{Message: "Olá Mundo!"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				deps.Log.Error().Err(err).Msg("health: store no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authn := AuthMiddleware(deps.Guard)
	anyRole := RequireRole(deps.Guard, entity.RoleAdmin, entity.RoleGuest)
	adminOnly := RequireRole(deps.Guard, entity.RoleAdmin)

	// Auth (token público; refresh protegido)
	authHandler := NewAuthHandler(deps.AuthUC, v)
	authGroup := app.Group("/auth")
	authGroup.Post("/token", authHandler.Token)
	authGroup.Post("/refresh_token", authn, authHandler.Refresh)

	// Users (sólo admin)
	users := app.Group("/users", authn, adminOnly)
	userHandler := NewUserHandler(deps.UserUC, v)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Clients (cualquier rol autenticado)
	clients := app.Group("/clients", authn, anyRole)
	clientHandler := NewClientHandler(deps.ClientUC, v)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products (cualquier rol autenticado)
	products := app.Group("/products", authn, anyRole)
	productHandler := NewProductHandler(deps.ProductUC, v)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders (lectura cualquier rol; escritura sólo admin)
	orders := app.Group("/orders", authn, anyRole)
	orderHandler := NewOrderHandler(deps.OrderUC, v)
	orders.Post("/", adminOnly, orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", adminOnly, orderHandler.Update)
	orders.Patch("/:id", adminOnly, orderHandler.Update)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)
}
