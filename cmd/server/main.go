package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gamesales/backend/internal/auth"
	"gamesales/backend/internal/cache"
	"gamesales/backend/internal/config"
	"gamesales/backend/internal/database"
	"gamesales/backend/internal/handler"
	"gamesales/backend/internal/middleware"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamesales/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Game Sales API
// @version         1.0
// @description     This is the API for the video-game sales analysis service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Optional redis cache for the analysis endpoints
	analysisCache, err := cache.New(
		config.AppConfig.RedisURL,
		time.Duration(config.AppConfig.CacheTTLSecs)*time.Second,
	)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	if analysisCache != nil {
		log.Println("Analysis cache enabled.")
	}
	handler.AnalysisCache = analysisCache

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/signup", handler.SignUp)
			authRoutes.POST("/confirm-email", handler.ConfirmEmail)
			authRoutes.POST("/login", handler.Login)
		}

		// Public sale routes
		saleRoutes := apiV1.Group("/sales")
		{
			saleRoutes.GET("", handler.ListSales)
			saleRoutes.GET("/:slug", handler.GetSaleBySlug)
		}
		apiV1.GET("/sale-filters", handler.GetSaleFilters)

		// Analysis routes (rate limited per user or IP, optionally cached)
		analysisRoutes := apiV1.Group("/sale-analysis")
		analysisRoutes.Use(
			auth.OptionalAuthMiddleware(),
			middleware.RateLimit(config.AppConfig.RateLimitRPS, config.AppConfig.RateLimitBurst),
		)
		{
			analysisRoutes.GET("", handler.GetSaleAnalysis)
			analysisRoutes.GET("/top-field", handler.GetTopField)
			analysisRoutes.GET("/describe", handler.GetDescribe)
			analysisRoutes.GET("/score", handler.GetScore)
			analysisRoutes.GET("/games-annually", handler.GetGamesAnnually)
			analysisRoutes.GET("/games-by-field", handler.GetGamesByField)
		}

		// Report routes (protected)
		reportRoutes := apiV1.Group("/reports")
		reportRoutes.Use(auth.AuthMiddleware())
		{
			reportRoutes.GET("", handler.GetReports)
			reportRoutes.POST("", handler.CreateReport)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/sales")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.POST("", handler.CreateSale)
			adminRoutes.DELETE("/:slug", handler.DeleteSale)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
