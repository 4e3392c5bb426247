package main

import (
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/services"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/config"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/adapters"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/gin_interface/controllers"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

func main() {
	_ = godotenv.Load()

	researcherConfig, err := config.GetResearcherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get researcher config")
	}

	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get openai config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	if researcherConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	chatCompleter := adapters.NewOpenAIChatCompleter(openAIConfig, zeroLogger)
	researchCache := adapters.NewMemoryResearchCache()

	pipeline := services.NewResearchPipeline(zeroLogger, chatCompleter, researchCache)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(zeroLogger))

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	controllers.NewHealthController().RegisterRoutes(router)

	researchController := controllers.NewResearchController(zeroLogger, pipeline)
	researchController.RegisterRoutes(router)

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(router)

	if err := router.Run(":" + researcherConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
