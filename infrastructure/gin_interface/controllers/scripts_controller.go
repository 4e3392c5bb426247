package controllers

import (
	"net/http"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/infrastructure/gin_interface/dto"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/middleware"
	"github.com/gin-gonic/gin"
)

type ScriptsController interface {
	ListScripts(c *gin.Context)
	GetScript(c *gin.Context)
	DeleteScript(c *gin.Context)
	RegisterRoutes(g *gin.RouterGroup)
}

type scriptsController struct {
	logger  outbound.LoggerPort
	library inbound.ScriptLibraryPort
}

func NewScriptsController(logger outbound.LoggerPort, library inbound.ScriptLibraryPort) ScriptsController {
	return &scriptsController{
		logger:  logger,
		library: library,
	}
}

func (s *scriptsController) ListScripts(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, s.logger, apperrors.NewUnauthenticated("authentication required"))
		return
	}

	scripts, err := s.library.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListScriptsResponse{Scripts: scripts})
}

func (s *scriptsController) GetScript(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, s.logger, apperrors.NewUnauthenticated("authentication required"))
		return
	}

	record, err := s.library.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *scriptsController) DeleteScript(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, s.logger, apperrors.NewUnauthenticated("authentication required"))
		return
	}

	if err := s.library.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteScriptResponse{Message: "script deleted"})
}

func (s *scriptsController) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/scripts", s.ListScripts)
	g.GET("/scripts/:id", s.GetScript)
	g.DELETE("/scripts/:id", s.DeleteScript)
}
