package dto

import "github.com/abdulwahabthakur/AI-Podcast-Generator/domain"

type ListScriptsResponse struct {
	Scripts []domain.ScriptSummary `json:"scripts"`
}

type DeleteScriptResponse struct {
	Message string `json:"message"`
}
