package dto

import "github.com/abdulwahabthakur/AI-Podcast-Generator/domain"

type GenerateAudioRequest struct {
	Script []domain.DialogueLine `json:"script"`
}
