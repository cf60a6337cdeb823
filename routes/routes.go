package routes

import (
	"time"

	"espora/handlers"
	"espora/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	authLimit := middleware.RateLimitMiddleware(30, time.Minute)
	router.POST("/api/signup", authLimit, handlers.Signup)
	router.POST("/api/login", authLimit, handlers.Login)
	router.POST("/api/session", authLimit, handlers.SetSession)
	router.POST("/api/logout", handlers.Logout)
	router.GET("/api/vapid-public-key", handlers.GetVapidPublicKey)

	// Federated sign-in
	router.GET("/api/google/auth-url", handlers.GetGoogleAuthURL)
	router.GET("/api/google/callback", handlers.GoogleOAuthCallback)

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Profile and registration completion
	protected.GET("/me", handlers.GetMe)
	protected.PUT("/me/step1", handlers.CompleteStep1)
	protected.PUT("/me/step2", handlers.CompleteStep2)
	protected.POST("/me/photo", handlers.UploadProfilePhoto)
	protected.GET("/user/:id", handlers.GetUser)
	protected.GET("/user/:id/gallery", handlers.GetUserGallery)
	protected.POST("/user/:id/follow", handlers.FollowToggle)

	// Feed and posts
	protected.GET("/feed", handlers.GetFeed)
	protected.GET("/post/:id", handlers.GetPost)
	protected.POST("/post", handlers.Publish)

	// Engagement
	protected.POST("/post/:id/like", handlers.LikeToggle)
	protected.POST("/post/:id/save", handlers.SaveToggle)
	protected.POST("/post/:id/coment", handlers.ReplyPost)
	protected.POST("/coment/:id/reply", handlers.ReplyComent)

	// Push subscriptions
	protected.POST("/subscribe", handlers.SubscribePush)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
