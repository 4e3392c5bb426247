package controllers

import (
	"net/http"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/gin-gonic/gin"
)

// ResearchController exposes the script generation endpoint of the research
// service. It returns the script as a bare JSON array so callers can consume
// it without unwrapping an envelope.
type ResearchController interface {
	Generate(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type researchController struct {
	logger   outbound.LoggerPort
	pipeline inbound.ResearchPipelinePort
}

func NewResearchController(logger outbound.LoggerPort, pipeline inbound.ResearchPipelinePort) ResearchController {
	return &researchController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (r *researchController) Generate(c *gin.Context) {
	var req domain.ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}
	if req.DurationMinutes <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "durationMinutes must be a positive integer"})
		return
	}

	script, err := r.pipeline.GenerateScript(c.Request.Context(), req)
	if err != nil {
		r.logger.Error(err, "script generation failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to generate script"})
		return
	}

	c.JSON(http.StatusOK, script)
}

func (r *researchController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate", r.Generate)
}
