package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bobkin2-dev/projectbeheer/internal/config"
	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/handler"
	"github.com/bobkin2-dev/projectbeheer/internal/middleware"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting projectbeheer service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Database migration failed", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	rdb := initRedis(cfg.Redis)

	mc, err := initMinIO(cfg.MinIO)
	if err != nil {
		// import archiving is best effort, the API works without it
		zapLogger.Warn("MinIO client unavailable, workbook archiving disabled", zap.Error(err))
		mc = nil
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, mc, cfg, zapLogger)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(cfg config.MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint not configured")
	}
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// token issuing is the only route outside the auth middleware
		v1.POST("/auth/token", h.Auth.Token)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			projects := authorized.Group("/projecten")
			{
				projects.GET("", h.Project.List)
				projects.POST("", h.Project.Create)
				projects.GET("/:id", h.Project.Get)
				projects.PUT("/:id", h.Project.Update)
				projects.DELETE("/:id", h.Project.Delete)
				projects.GET("/:id/totaal", h.Project.Total)
				projects.GET("/:id/orders", h.Order.ListByProject)
				projects.GET("/:id/uren", h.Hours.ProjectSummary)
			}

			orders := authorized.Group("/orders")
			{
				orders.POST("", h.Order.Create)
				orders.GET("/:id", h.Order.Get)
				orders.PUT("/:id", h.Order.Update)
				orders.DELETE("/:id", h.Order.Delete)
				orders.PUT("/:id/status", h.Order.ChangeStatus)
				orders.GET("/:id/totalen", h.Order.Totals)
				orders.GET("/:id/uren", h.Hours.OrderSummary)

				orders.POST("/:id/items", h.Order.AddItem)
				orders.PUT("/:id/items/:itemId", h.Order.UpdateItem)
				orders.DELETE("/:id/items/:itemId", h.Order.RemoveItem)
				orders.POST("/:id/sjabloon", h.Order.ApplyTemplate)
			}

			kanban := authorized.Group("/kanban")
			{
				kanban.GET("", h.Kanban.Board)
				kanban.PUT("/orders/:id/kolom", h.Kanban.Drop)
				kanban.POST("/bulk-vlag", h.Kanban.BulkFlag)
			}

			library := authorized.Group("/bibliotheek")
			{
				library.GET("", h.Library.List)
				library.POST("", h.Library.Create)
				library.PUT("/:id", h.Library.Update)
				library.DELETE("/:id", h.Library.Delete)

				library.POST("/import/preview", h.Library.ImportPreview)
				library.POST("/import", h.Library.Import)
				library.POST("/import/bestand", h.Library.ImportFile)
			}

			templates := authorized.Group("/sjablonen")
			{
				templates.GET("", h.Template.List)
				templates.GET("/:id", h.Template.Get)
				templates.POST("", h.Template.Create)
				templates.DELETE("/:id", h.Template.Delete)
			}

			hours := authorized.Group("/uren")
			{
				hours.GET("", h.Hours.List)
				hours.POST("", h.Hours.Register)
				hours.DELETE("/:id", h.Hours.Delete)
			}

			employees := authorized.Group("/medewerkers")
			{
				employees.GET("", h.Hours.ListEmployees)
				employees.POST("", h.Hours.CreateEmployee)
				employees.PUT("/:id/actief", h.Hours.ToggleEmployee)
			}

			suppliers := authorized.Group("/leveranciers")
			{
				suppliers.GET("", h.Supplier.List)
				suppliers.POST("", h.Supplier.Create)
				suppliers.DELETE("/:id", h.Supplier.Delete)
			}
		}
	}
}
