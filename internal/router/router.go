package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/database"
	"idea-copilot-api/internal/handler"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/middleware"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/service"
)

// Config holds everything the router needs to wire the application
type Config struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Logger    *zap.Logger
	JWTSecret string
	BasePath  string
	Metrics   *metrics.Metrics
	Gemini    client.GeminiClient
	Scraper   client.ScraperClient
	Users     client.UserDirectory
	Mail      client.MailClient
	Hub       *handler.NotificationHub
}

// Setup builds the gin engine with all routes and dependencies wired
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(cfg.Metrics))

	// Repositories
	ideaRepo := repository.NewIdeaRepository(cfg.DB)
	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	phaseRepo := repository.NewPhaseRepository(cfg.DB)
	featureRepo := repository.NewFeatureRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	shareRepo := repository.NewShareRepository(cfg.DB)
	statsRepo := repository.NewStatsRepository(cfg.DB)
	achievementRepo := repository.NewAchievementRepository(cfg.DB)
	aiRepo := repository.NewAIRepository(cfg.DB)
	competitorRepo := repository.NewCompetitorRepository(cfg.DB)
	notificationRepo := repository.NewNotificationRepository(cfg.DB)

	// Services. Notifications come first: the other services feed it
	// through the notifier hooks.
	var pusher service.NotificationPusher
	if cfg.Hub != nil {
		pusher = cfg.Hub
	}
	notificationService := service.NewNotificationService(
		notificationRepo, cfg.Redis, cfg.Mail, cfg.Users, pusher, cfg.Metrics, cfg.Logger)

	achievementService := service.NewAchievementService(
		achievementRepo, statsRepo, notificationService, cfg.Metrics, cfg.Logger)
	statsService := service.NewStatsService(statsRepo, achievementService, cfg.Logger)

	accessService := service.NewAccessService(ideaRepo, shareRepo, cfg.Logger)
	ideaService := service.NewIdeaService(
		ideaRepo, categoryRepo, accessService, statsService, cfg.Metrics, cfg.Logger)
	featureService := service.NewFeatureService(
		phaseRepo, featureRepo, ideaRepo, accessService, cfg.Logger)
	commentService := service.NewCommentService(
		commentRepo, featureRepo, accessService, notificationService, cfg.Metrics, cfg.Logger)
	shareService := service.NewShareService(
		shareRepo, ideaRepo, cfg.Users, notificationService, statsService, cfg.Logger)
	aiService := service.NewAIService(
		aiRepo, ideaRepo, cfg.Gemini, statsService, cfg.Metrics, cfg.Logger)
	competitorService := service.NewCompetitorService(
		competitorRepo, ideaRepo, accessService, cfg.Scraper, cfg.Gemini, cfg.Logger)

	// Handlers
	ideaHandler := handler.NewIdeaHandler(ideaService)
	featureHandler := handler.NewFeatureHandler(featureService)
	commentHandler := handler.NewCommentHandler(commentService)
	shareHandler := handler.NewShareHandler(shareService)
	statsHandler := handler.NewStatsHandler(statsService, achievementService)
	aiHandler := handler.NewAIHandler(aiService)
	competitorHandler := handler.NewCompetitorHandler(competitorService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	wsHandler := handler.NewNotificationWSHandler(cfg.Hub, cfg.JWTSecret, cfg.Logger)

	// Health, metrics and swagger stay outside auth
	registerOperational(&r.RouterGroup, cfg)
	if cfg.BasePath != "" {
		registerOperational(r.Group(cfg.BasePath), cfg)
	}

	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		ideas := api.Group("/ideas")
		{
			ideas.POST("", ideaHandler.CreateIdea)
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.GET("/:id", ideaHandler.GetIdea)
			ideas.PUT("/:id", ideaHandler.UpdateIdea)
			ideas.DELETE("/:id", ideaHandler.DeleteIdea)

			ideas.POST("/:id/phases", featureHandler.CreatePhase)
			ideas.GET("/:id/phases", featureHandler.ListPhases)
			ideas.POST("/:id/features", featureHandler.CreateFeature)
			ideas.GET("/:id/features", featureHandler.ListFeatures)

			ideas.POST("/:id/comments", commentHandler.CreateIdeaComment)
			ideas.GET("/:id/comments", commentHandler.GetIdeaComments)

			ideas.POST("/:id/shares", shareHandler.CreateShare)
			ideas.GET("/:id/shares", shareHandler.ListShares)
			ideas.PUT("/:id/shares/:shareId", shareHandler.UpdateShare)
			ideas.DELETE("/:id/shares/:shareId", shareHandler.RevokeShare)

			ideas.GET("/:id/suggestions", aiHandler.ListSuggestions)
			ideas.GET("/:id/competitors", competitorHandler.ListResearch)
		}

		categories := api.Group("/categories")
		{
			categories.POST("", ideaHandler.CreateCategory)
			categories.GET("", ideaHandler.ListCategories)
			categories.PUT("/:id", ideaHandler.UpdateCategory)
			categories.DELETE("/:id", ideaHandler.DeleteCategory)
		}

		phases := api.Group("/phases")
		{
			phases.PUT("/:id", featureHandler.UpdatePhase)
			phases.DELETE("/:id", featureHandler.DeletePhase)
		}

		features := api.Group("/features")
		{
			features.PUT("/:id", featureHandler.UpdateFeature)
			features.DELETE("/:id", featureHandler.DeleteFeature)
			features.POST("/:id/comments", commentHandler.CreateFeatureComment)
			features.GET("/:id/comments", commentHandler.GetFeatureComments)
		}

		comments := api.Group("/comments")
		{
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		shares := api.Group("/shares")
		{
			shares.GET("/shared-with-me", shareHandler.ListSharedWithMe)
		}

		stats := api.Group("/stats")
		{
			stats.GET("", statsHandler.GetStats)
			stats.PUT("", statsHandler.UpdateStats)
			stats.POST("/increment", statsHandler.IncrementStat)
			stats.POST("/award-xp", statsHandler.AwardXP)
		}

		achievements := api.Group("/achievements")
		{
			achievements.GET("", statsHandler.ListAchievements)
			achievements.GET("/definitions", statsHandler.ListAchievementDefinitions)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/suggestions", aiHandler.GenerateSuggestions)
			ai.POST("/suggestions/:id/apply", aiHandler.ApplySuggestion)
			ai.GET("/query-logs", aiHandler.ListQueryLogs)
		}

		competitors := api.Group("/competitors")
		{
			competitors.POST("/scrape", competitorHandler.ScrapeCompetitors)
			competitors.DELETE("/:id", competitorHandler.DeleteResearch)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			notifications.POST("/motivation", notificationHandler.SendMotivation)
		}
	}

	// Websocket stream authenticates via query token inside the handler
	r.GET("/api/notifications/ws", wsHandler.HandleWS)

	return r
}

// registerOperational registers health, metrics and swagger endpoints on a
// route group
func registerOperational(g *gin.RouterGroup, cfg Config) {
	g.GET("/health", func(c *gin.Context) {
		dbStatus := "disconnected"
		if database.Ping(cfg.DB) == nil {
			dbStatus = "connected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": dbStatus,
		})
	})
	g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	g.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
