package routes

import (
	"net/http"

	"second-brain-server/handlers"
	"second-brain-server/helper"
	"second-brain-server/middleware"
	"second-brain-server/models"
	"second-brain-server/repositories"
	"second-brain-server/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto a gin engine.
func Setup(db *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	contentRepo := repositories.NewContentRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	authService := services.NewAuthService(userRepo)
	contentService := services.NewContentService(contentRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	contentHandler := handlers.NewContentHandler(contentService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)

	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			content := protected.Group("/content")
			{
				content.POST("", contentHandler.CreateContent)
				content.GET("", contentHandler.GetContents)
				content.GET("/home", contentHandler.GetHomeContents)

				// One static route per type; gin matches these before /:id.
				for _, contentType := range models.ContentTypes {
					content.GET("/"+string(contentType), contentHandler.GetContentsByType(contentType))
				}

				content.GET("/:id", contentHandler.GetContent)
				content.PUT("/:id", contentHandler.UpdateContent)
				content.DELETE("/:id", contentHandler.DeleteContent)
			}

			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.POST("", tagHandler.CreateTag)
			}
		}
	}

	return router
}
