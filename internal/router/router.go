package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stockplan/internal/config"
	"stockplan/internal/handler"
	"stockplan/internal/middleware"
	"stockplan/internal/repository"
	"stockplan/internal/service"
	"stockplan/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	materialRepo := repository.NewRawMaterialRepository(db)
	bomRepo := repository.NewBOMRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, rdb)
	materialSvc := service.NewRawMaterialService(materialRepo, rdb, dispatcher, cfg.LowStockThreshold, cfg.AlertEmail)
	bomSvc := service.NewBOMService(bomRepo, productRepo, materialRepo, rdb)
	suggestionSvc := service.NewSuggestionService(
		productRepo, materialRepo, bomRepo, rdb,
		time.Duration(cfg.SuggestionCacheTTLSeconds)*time.Second,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	materialsH := handler.NewRawMaterialsHandler(materialSvc)
	bomH := handler.NewBOMHandler(bomSvc)
	suggestionH := handler.NewSuggestionHandler(suggestionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	products := r.Group("/products")
	{
		products.GET("", productsH.List)
		products.POST("", productsH.Create)
		products.PUT("/:id", productsH.Update)
		products.DELETE("/:id", productsH.Delete)
	}

	materials := r.Group("/raw-materials")
	{
		materials.GET("", materialsH.List)
		materials.POST("", materialsH.Create)
		materials.GET("/:id", materialsH.GetByID)
		materials.PUT("/:id", materialsH.Update)
		materials.DELETE("/:id", materialsH.Delete)
	}

	bom := r.Group("/products-raw-materials")
	{
		bom.GET("", bomH.List)
		bom.POST("", bomH.Create)
		bom.GET("/:id", bomH.GetByID)
		bom.DELETE("/:id", bomH.Delete)
	}

	r.GET("/production-suggestion", suggestionH.Get)
	r.GET("/production-suggestion/pdf", suggestionH.GetPDF)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
