package domain

import "time"

type Speaker string

const (
	HostSpeaker  Speaker = "Host"
	GuestSpeaker Speaker = "Guest"
)

// DialogueLine is one speaker turn of a podcast script. AudioEffect is a
// non-functional annotation; synthesis ignores it.
type DialogueLine struct {
	Speaker     Speaker `json:"speaker"`
	Text        string  `json:"text"`
	AudioEffect *string `json:"audioEffect"`
}

// PodcastStyles is the fixed set of accepted script styles.
var PodcastStyles = []string{"conversational", "documentary", "investigative", "educational", "storytelling"}

func IsValidStyle(style string) bool {
	for _, s := range PodcastStyles {
		if s == style {
			return true
		}
	}
	return false
}

type ScriptRecord struct {
	ID              string         `json:"id" db:"id"`
	OwnerID         string         `json:"ownerId" db:"owner_id"`
	Topic           string         `json:"topic" db:"topic"`
	DurationMinutes int            `json:"durationMinutes" db:"duration_minutes"`
	Style           string         `json:"style" db:"style"`
	ScriptData      []DialogueLine `json:"scriptData" db:"-"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}

// ScriptSummary is a ScriptRecord without the dialogue payload, used for listings.
type ScriptSummary struct {
	ID              string    `json:"id" db:"id"`
	Topic           string    `json:"topic" db:"topic"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
	Style           string    `json:"style" db:"style"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Identity is the verified caller, derived per-request from a bearer token.
// It is never persisted here; the identity provider owns it.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
