package api

import (
	"systemprompthub/config"
	"systemprompthub/internal/api/category"
	"systemprompthub/internal/api/prompt"
	"systemprompthub/internal/api/stats"
	"systemprompthub/internal/database"
	"systemprompthub/internal/middleware"
	"systemprompthub/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	if _, err := database.Connect(cfg.SQLiteDSN); err != nil {
		return nil, err
	}
	if err := database.Migrate(database.DB); err != nil {
		return nil, err
	}
	if err := database.Seed(database.DB); err != nil {
		return nil, err
	}

	// The store itself is in-memory, so a missing cache is not fatal.
	if err := database.ConnectRedis(cfg); err != nil {
		logger.Log.Warn("redis unavailable, running without cache")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		prompt.RegisterRoutes(api)
		category.RegisterRoutes(api)
		stats.RegisterRoutes(api)
	}

	return router, nil
}
