package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/auth"
	"github.com/jhoicas/tortas-api/internal/application/catalog"
	"github.com/jhoicas/tortas-api/internal/application/customcake"
	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/application/order"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Orders       *order.Service
	Catalog      *catalog.Service
	CustomCakeUC *customcake.UseCase
	JWTSecret    string
	Prefix       string       // ej. /api
	RateLimiter  *RateLimiter // nil = sin límite
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	prefix := deps.Prefix
	if prefix == "" {
		prefix = "/api"
	}
	v := NewRequestValidator()

	authn := AuthMiddleware(deps.JWTSecret)
	current := RefreshRole(deps.AuthUC)
	admin := RequireRole(entity.RoleAdmin)
	limited := func(c *fiber.Ctx) error { return c.Next() }
	if deps.RateLimiter != nil {
		limited = deps.RateLimiter.Handler()
	}

	app.Get("/health", health)
	api := app.Group(prefix)
	api.Get("/health", health)

	// Usuarios: registro y login públicos, el resto solo admin
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC, v, log.Named("http.users"))
	users.Post("/register", limited, userHandler.Register)
	users.Post("/login", limited, userHandler.Login)
	users.Get("/me", authn, current, userHandler.Me)
	users.Get("/stats", authn, current, admin, userHandler.Stats)
	users.Get("/", authn, current, admin, userHandler.List)
	users.Patch("/:id/role", authn, current, admin, userHandler.UpdateRole)
	users.Delete("/:id", authn, current, admin, userHandler.Delete)

	// Pedidos: checkout y seguimiento públicos; las rutas estáticas van antes de /:id
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.Orders, v, log.Named("http.orders"))
	orders.Post("/", limited, orderHandler.Create)
	orders.Get("/", authn, current, admin, orderHandler.List)
	orders.Get("/stats", authn, current, admin, orderHandler.Stats)
	orders.Get("/user/:email", authn, current, RequireSelfOrAdmin("email"), orderHandler.ByUser)
	orders.Get("/track/:token", limited, OptionalAuth(deps.JWTSecret), orderHandler.Track)
	orders.Get("/track/:token/receipt", limited, orderHandler.Receipt)
	orders.Get("/:id", authn, current, admin, orderHandler.GetByID)
	orders.Patch("/:id/status", authn, current, admin, orderHandler.UpdateStatus)

	// Tortas personalizadas
	cakes := api.Group("/custom-cakes")
	cakeHandler := NewCustomCakeHandler(deps.CustomCakeUC, deps.Catalog, v, log.Named("http.custom_cakes"))
	cakes.Get("/options", cakeHandler.Options)
	cakes.Post("/", authn, cakeHandler.Create)
	cakes.Get("/user/:email", authn, current, RequireSelfOrAdmin("email"), cakeHandler.ByUser)

	// Catálogo (público)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Catalog, v, log.Named("http.products"))
	products.Get("/", productHandler.List)
	products.Get("/seasonal", productHandler.Seasonal)
	products.Get("/categories", productHandler.Categories)
	products.Get("/sizes", productHandler.Sizes)
	products.Get("/:id", productHandler.GetByID)

	api.Post("/cart/quote", productHandler.Quote)
}

// health godoc
// @Summary      Sonda de vida
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Timestamp: time.Now().UTC().Format(time.RFC3339)})
}
