package server

import (
	"poll-service/internal/config"
	"poll-service/internal/server/handlers"
	"poll-service/internal/server/repository"
	"poll-service/internal/server/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App wires repositories, services and handlers onto a gin engine.
type App struct {
	router      *gin.Engine
	authService *service.AuthService
}

func NewApp(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *App {
	userRepo := repository.NewUserRepository(db)
	pollRepo := repository.NewPollRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.JWT.ExpirationTime)
	pollCache := repository.NewPollCache(redisClient, cfg.Redis.PollCacheTTL)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	pollService := service.NewPollService(pollRepo, voteRepo, pollCache)

	authHandler := handlers.NewAuthHandler(authService)
	pollHandler := handlers.NewPollHandler(pollService)
	voteHandler := handlers.NewVoteHandler(pollService)

	router := gin.Default()
	SetupRoutes(router, cfg.JWT.Secret, sessionRepo, authHandler, pollHandler, voteHandler)

	return &App{router: router, authService: authService}
}

// Router exposes the engine for the HTTP server and tests.
func (a *App) Router() *gin.Engine {
	return a.router
}

// AuthService exposes the auth gateway so session bridges can subscribe to
// auth-state changes.
func (a *App) AuthService() *service.AuthService {
	return a.authService
}
