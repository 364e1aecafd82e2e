package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pdv_backend/internal/config"
	"pdv_backend/internal/database"
	"pdv_backend/internal/handlers"
	"pdv_backend/internal/printer"
	"pdv_backend/internal/redis"
	"pdv_backend/internal/repository"
	"pdv_backend/internal/services"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if cfg.Production() {
		log.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	log.Info("database connected and migrated")

	// Redis backs the print queue; outside production printing is simulated
	// and Redis is optional.
	var queue *redis.Client
	if cfg.Production() {
		queue, err = redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}
		defer queue.Close()
	}

	dispatcher := printer.NewDispatcher(selectSink(cfg, queue, log), log)

	productRepo := repository.NewProductRepository(db)
	addOnRepo := repository.NewAddOnRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	catalogService := services.NewCatalogService(productRepo, addOnRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, addOnRepo, dispatcher, log)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	healthHandler := handlers.NewHealthHandler(db, queue, cfg.PrintQueue)

	router := gin.Default()
	router.Use(handlers.CORS())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "API do PDV está funcionando!"})
	})

	api := router.Group("/api")
	{
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.POST("/products", catalogHandler.CreateProduct)
		api.PUT("/products/:id", catalogHandler.UpdateProduct)
		api.DELETE("/products/:id", catalogHandler.DeleteProduct)

		api.GET("/addons", catalogHandler.ListAddOns)
		api.GET("/addons/:id", catalogHandler.GetAddOn)
		api.POST("/addons", catalogHandler.CreateAddOn)
		api.PUT("/addons/:id", catalogHandler.UpdateAddOn)
		api.DELETE("/addons/:id", catalogHandler.DeleteAddOn)

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)

		api.GET("/health", healthHandler.Check)
	}

	log.WithField("port", cfg.ServerPort).Info("server starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

// selectSink picks where tickets go: a direct network printer when one is
// configured, the Redis print queue otherwise, and a simulated sink outside
// production.
func selectSink(cfg *config.Config, queue *redis.Client, log *logrus.Logger) printer.Sink {
	if !cfg.Production() {
		return printer.NewLogSink(log)
	}
	if cfg.PrinterAddr != "" {
		return printer.NewTCPSink(cfg.PrinterAddr)
	}
	return printer.NewQueueSink(queue, cfg.PrintQueue)
}
