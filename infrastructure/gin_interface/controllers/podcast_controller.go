package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/gin_interface/dto"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/middleware"
	"github.com/gin-gonic/gin"
)

type PodcastController interface {
	GenerateResearch(c *gin.Context)
	GenerateAudio(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup, researchLimiter gin.HandlerFunc, audioLimiter gin.HandlerFunc)
}

type podcastController struct {
	logger      outbound.LoggerPort
	generator   inbound.PodcastGeneratorPort
	synthesizer inbound.AudioSynthesizerPort
}

func NewPodcastController(
	logger outbound.LoggerPort,
	generator inbound.PodcastGeneratorPort,
	synthesizer inbound.AudioSynthesizerPort,
) PodcastController {
	return &podcastController{
		logger:      logger,
		generator:   generator,
		synthesizer: synthesizer,
	}
}

func (p *podcastController) GenerateResearch(c *gin.Context) {
	var req dto.GenerateResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, p.logger, apperrors.NewInvalidInput("request body must be valid JSON"))
		return
	}

	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, p.logger, apperrors.NewUnauthenticated("authentication required"))
		return
	}

	outcome, err := p.generator.Generate(c.Request.Context(), inbound.GeneratePodcastParams{
		Topic:           req.Topic,
		DurationMinutes: req.DurationMinutes,
		Style:           req.Style,
		Owner:           identity,
	})
	if err != nil {
		respondError(c, p.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResearchResponse{
		Script:  outcome.Script,
		SavedID: outcome.SavedID(),
	})
}

func (p *podcastController) GenerateAudio(c *gin.Context) {
	var req dto.GenerateAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, p.logger, apperrors.NewInvalidInput("request body must be valid JSON"))
		return
	}

	audio, err := p.synthesizer.Synthesize(c.Request.Context(), req.Script)
	if err != nil {
		respondError(c, p.logger, err)
		return
	}

	filename := fmt.Sprintf("podcast-%d.mp3", time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (p *podcastController) RegisterRoutes(g *gin.RouterGroup, researchLimiter gin.HandlerFunc, audioLimiter gin.HandlerFunc) {
	g.POST("/generate-research", researchLimiter, p.GenerateResearch)
	g.POST("/generate-audio", audioLimiter, p.GenerateAudio)
}
