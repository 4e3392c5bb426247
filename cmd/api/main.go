package main

import (
	"context"
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/services"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/config"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/adapters"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/database"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/gin_interface/controllers"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

const (
	researchRateLimit  = 10
	audioRateLimit     = 5
	rateLimitWindow    = 15 * time.Minute
	persistWorkerCount = 64
)

func main() {
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	supabaseConfig, err := config.GetSupabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get supabase config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	databaseConfig, err := config.GetDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get database config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	if serverConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	audioGenerator := adapters.NewAudioGenerator(contentFetcher, elevenLabsConfig, zeroLogger)
	scriptGenerator := adapters.NewResearchScriptGenerator(serverConfig.ResearchServiceUrl, contentFetcher, zeroLogger)

	tokenVerifier := adapters.NewSupabaseTokenVerifier(zeroLogger, supabaseConfig)
	if !supabaseConfig.IsConfigured() {
		tokenVerifier = nil
		zeroLogger.Warn("supabase is not configured, protected routes will reject all requests")
	}

	scriptRepository := buildScriptRepository(databaseConfig, zeroLogger)

	workerPool, releasePool, err := adapters.NewAntsTaskDispatcher(persistWorkerCount)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer releasePool()

	podcastGenerator := services.NewPodcastGenerationService(zeroLogger, scriptGenerator, scriptRepository, workerPool)
	audioSynthesizer := services.NewAudioSynthesisService(zeroLogger, audioGenerator, elevenLabsConfig.VoiceId)
	scriptLibrary := services.NewScriptLibraryService(zeroLogger, scriptRepository)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(zeroLogger))

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	corsConfig := cors.DefaultConfig()
	if serverConfig.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{serverConfig.AllowedOrigin}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	controllers.NewHealthController().RegisterRoutes(router)

	authHandler := middleware.NewAuthHandler(tokenVerifier, zeroLogger)

	api := router.Group("/api")
	api.Use(authHandler.AuthMiddleware())

	podcastController := controllers.NewPodcastController(zeroLogger, podcastGenerator, audioSynthesizer)
	podcastController.RegisterRoutes(api,
		middleware.NewRouteRateLimiter(researchRateLimit, rateLimitWindow),
		middleware.NewRouteRateLimiter(audioRateLimit, rateLimitWindow),
	)

	scriptsController := controllers.NewScriptsController(zeroLogger, scriptLibrary)
	scriptsController.RegisterRoutes(api)

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func buildScriptRepository(databaseConfig *config.DatabaseConfig, logger outbound.LoggerPort) outbound.ScriptRepositoryPort {
	if !databaseConfig.IsConfigured() {
		logger.Warn("database is not configured, scripts will not be persisted")
		return nil
	}

	pool, err := database.NewPool(context.Background(), databaseConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := database.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	return adapters.NewPostgresScriptRepository(pool, logger)
}
