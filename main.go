package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shopify-relay/pkg/api"
	"shopify-relay/pkg/clients/shopify"
	"shopify-relay/pkg/config"
	"shopify-relay/pkg/middleware"
	"shopify-relay/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize API clients
	shopifyClient := shopify.NewClient(cfg.ShopifyAccessToken, cfg.ShopifyStoreDomain)

	// Initialize services
	signupService := services.NewSignupService(shopifyClient)

	// Set Gin to release mode in production
	gin.SetMode(gin.DebugMode)

	// Create a new Gin router with default middleware
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Initialize handlers
	handlers := api.NewHandlers(signupService)

	// Register routes
	router.POST("/addToShopify", handlers.HandleAddToShopify)
	router.GET("/health", handlers.HealthCheck)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
