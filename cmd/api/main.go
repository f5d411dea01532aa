package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/tortas-api/docs"
	"github.com/jhoicas/tortas-api/internal/application/auth"
	"github.com/jhoicas/tortas-api/internal/application/catalog"
	"github.com/jhoicas/tortas-api/internal/application/customcake"
	"github.com/jhoicas/tortas-api/internal/application/order"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
	"github.com/jhoicas/tortas-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tortas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tortas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tortas-api/internal/interfaces/http"
	"github.com/jhoicas/tortas-api/pkg/config"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// @title        Tortas API
// @version      1.0
// @description  Tienda de tortas: catálogo, carrito, pedidos con seguimiento y panel de administración.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		userRepo  repository.UserRepository
		orderRepo repository.OrderRepository
		cakeRepo  repository.CustomCakeRepository
	)
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		userRepo = postgres.NewUserRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
		cakeRepo = postgres.NewCustomCakeRepository(pool)
	default:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		userRepo = memory.NewUserRepository()
		orderRepo = memory.NewOrderRepository()
		cakeRepo = memory.NewCustomCakeRepository()
	}

	authUC, err := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar auth")
	}
	if err := authUC.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("administrador semilla")
	}

	catalogSvc := catalog.NewService()
	// PDF: comprobante del pedido con QR de seguimiento
	receipts := infrapdf.NewReceiptGenerator(cfg.Receipt.StoreName, cfg.Receipt.TrackingURL)
	orderSvc := order.NewService(orderRepo, catalogSvc, receipts, order.Config{
		MinLeadDays: cfg.Checkout.MinLeadDays,
		OrderPrefix: cfg.Checkout.OrderPrefix,
	}, log)
	customCakeUC := customcake.NewUseCase(cakeRepo, log)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		AllowOrigins: cfg.HTTP.CORSOrigins,
	}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tortas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Orders:       orderSvc,
		Catalog:      catalogSvc,
		CustomCakeUC: customCakeUC,
		JWTSecret:    cfg.JWT.Secret,
		Prefix:       cfg.HTTP.Prefix,
		RateLimiter:  httpRouter.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
		Log:          log,
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
