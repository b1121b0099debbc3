package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"poll-service/internal/server/handlers"
	"poll-service/internal/server/middleware"
)

// SetupRoutes configures all the routes for the application. Identity is
// resolved once per request by the soft bearer middleware; each service
// decides whether the operation requires it.
func SetupRoutes(router *gin.Engine, jwtSecret string, sessions middleware.SessionChecker, authHandler *handlers.AuthHandler, pollHandler *handlers.PollHandler, voteHandler *handlers.VoteHandler) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.BearerAuth(jwtSecret, sessions))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
			auth.GET("/session", authHandler.Session)
		}

		polls := api.Group("/polls")
		{
			polls.GET("", pollHandler.ListPolls)
			polls.POST("", pollHandler.CreatePoll)
			polls.GET("/:id", pollHandler.GetPoll)
			polls.PUT("/:id", pollHandler.UpdatePoll)
			polls.DELETE("/:id", pollHandler.DeletePoll)
			polls.POST("/:id/vote", voteHandler.SubmitVote)
			polls.GET("/:id/results", voteHandler.GetResults)
		}
	}
}
