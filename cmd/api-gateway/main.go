package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/uta-ingest-api/api/swagger"
	"github.com/noah-isme/uta-ingest-api/internal/handler"
	"github.com/noah-isme/uta-ingest-api/internal/middleware"
	"github.com/noah-isme/uta-ingest-api/internal/service"
	"github.com/noah-isme/uta-ingest-api/pkg/cache"
	"github.com/noah-isme/uta-ingest-api/pkg/config"
	"github.com/noah-isme/uta-ingest-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/uta-ingest-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/uta-ingest-api/pkg/middleware/requestid"
)

// @title UTA Ingest API
// @version 0.1.0
// @description Course offering ingestion, normalization and class metadata resolution
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheStore *cache.Store
	if cfg.Resolver.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, resolver cache disabled", "error", err)
		} else {
			cacheStore = cache.NewStore(client, logr)
			defer cacheStore.Close() //nolint:errcheck
		}
	}

	authSvc := service.NewAuthService(cfg.Auth, validate, logr)
	importSvc := service.NewImportService(cfg.Ingest, validate, metricsSvc, logr)
	templateSvc := service.NewTemplateService(nil, logr)
	exportSvc := service.NewExportService(nil, validate, logr)

	resolverCfg := service.ResolverServiceConfig{
		CacheEnabled: cfg.Resolver.CacheEnabled,
		CacheTTL:     cfg.Resolver.CacheTTL,
	}
	var resolverSvc *service.ResolverService
	if cacheStore != nil {
		resolverSvc = service.NewResolverService(cacheStore, metricsSvc, validate, logr, resolverCfg)
	} else {
		resolverSvc = service.NewResolverService(nil, metricsSvc, validate, logr, resolverCfg)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	importHandler := handler.NewImportHandler(importSvc, templateSvc)
	resolverHandler := handler.NewResolverHandler(resolverSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.JWT(authSvc))
	}
	protected.POST("/import/timetable", importHandler.Import)
	protected.GET("/import/template", importHandler.Template)
	protected.POST("/classes/resolve", resolverHandler.Resolve)
	protected.POST("/export/normalized", exportHandler.Export)
	protected.GET("/metrics/snapshot", metricsHandler.Snapshot)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
