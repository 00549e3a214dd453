package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/revenda/api-vendas/internal/api/handler"
	"github.com/revenda/api-vendas/internal/api/middleware"
	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/service"
	"github.com/revenda/api-vendas/internal/core/token"
	"github.com/revenda/api-vendas/internal/infrastructure/config"
	mongodb "github.com/revenda/api-vendas/internal/infrastructure/db/mongo"
	redisdb "github.com/revenda/api-vendas/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("vendas"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, token.DefaultTTL)

	clienteRepo := mongodb.NewClienteRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	produtoRepo := mongodb.NewProdutoRepository(db)
	categoriaRepo := mongodb.NewCategoriaRepository(db)
	propostaRepo := mongodb.NewPropostaRepository(db)

	catalogCache := redisdb.NewCatalogCache(rdb, cfg.Redis.CatalogTTL)

	clienteService := service.NewClienteService(clienteRepo, codec)
	adminService := service.NewAdminService(adminRepo, codec)
	produtoService := service.NewProdutoService(produtoRepo, categoriaRepo, catalogCache, log)
	categoriaService := service.NewCategoriaService(categoriaRepo)
	propostaService := service.NewPropostaService(propostaRepo, produtoRepo, log)

	clienteHandler := handler.NewClienteHandler(clienteService)
	adminHandler := handler.NewAdminHandler(adminService)
	produtoHandler := handler.NewProdutoHandler(produtoService)
	categoriaHandler := handler.NewCategoriaHandler(categoriaService)
	propostaHandler := handler.NewPropostaHandler(propostaService)

	requireAdmin := middleware.RequireAdmin(codec)
	requireCliente := middleware.RequireCliente(codec)
	optionalAuth := middleware.OptionalAuth(codec)

	// --- Clientes ---
	e.POST("/clientes", clienteHandler.Register)
	e.POST("/clientes/login", clienteHandler.Login)
	e.GET("/clientes", clienteHandler.List, requireAdmin)
	e.GET("/clientes/:id", clienteHandler.Get, optionalAuth)
	e.PUT("/clientes/:id", clienteHandler.Update, optionalAuth)
	e.DELETE("/clientes/:id", clienteHandler.Delete, optionalAuth)

	// --- Administradores ---
	// POST runs under OptionalAuth so the first admin can be created without a
	// token (bootstrap); the service enforces the single-bootstrap rule.
	e.POST("/administradores", adminHandler.Create, optionalAuth)
	e.POST("/administradores/login", adminHandler.Login)
	e.GET("/administradores", adminHandler.List, requireAdmin)
	e.GET("/administradores/:id", adminHandler.Get, requireAdmin)
	e.PUT("/administradores/:id", adminHandler.Update, requireAdmin)
	e.DELETE("/administradores/:id", adminHandler.Delete, requireAdmin, middleware.RequireLevel(domain.NivelMax))

	// --- Produtos ---
	e.GET("/produtos", produtoHandler.List, optionalAuth)
	e.GET("/produtos/:id", produtoHandler.Get, optionalAuth)
	e.POST("/produtos", produtoHandler.Create, requireAdmin)
	e.PUT("/produtos/:id", produtoHandler.Update, requireAdmin)
	e.DELETE("/produtos/:id", produtoHandler.Delete, requireAdmin, middleware.RequireLevel(3))

	// --- Categorias ---
	e.GET("/categorias", categoriaHandler.List)
	e.GET("/categorias/:id", categoriaHandler.Get)
	e.POST("/categorias", categoriaHandler.Create, requireAdmin)
	e.PUT("/categorias/:id", categoriaHandler.Update, requireAdmin)
	e.DELETE("/categorias/:id", categoriaHandler.Delete, requireAdmin, middleware.RequireLevel(3))

	// --- Propostas ---
	e.POST("/propostas", propostaHandler.Create, requireCliente)
	e.GET("/propostas", propostaHandler.List, optionalAuth)
	e.GET("/propostas/:id", propostaHandler.Get, optionalAuth)
	e.DELETE("/propostas/:id", propostaHandler.Delete, optionalAuth)
	e.PUT("/propostas/:id/status", propostaHandler.UpdateStatus, requireAdmin)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
