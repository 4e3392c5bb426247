package dto

import "github.com/abdulwahabthakur/AI-Podcast-Generator/domain"

type GenerateResearchRequest struct {
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"durationMinutes"`
	Style           string `json:"style"`
}

type GenerateResearchResponse struct {
	Script  []domain.DialogueLine `json:"script"`
	SavedID *string               `json:"savedId"`
}
