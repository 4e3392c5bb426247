package domain

// ResearchRequest is the input of the research service.
type ResearchRequest struct {
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"durationMinutes"`
	Style           string `json:"style,omitempty"`
	Language        string `json:"language,omitempty"`
}

type OutlineSegment struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Purpose              string   `json:"purpose"`
	ApproxDurationSecond int      `json:"approxDurationSeconds"`
	Bullets              []string `json:"bullets"`
}

type EpisodeOutline struct {
	Segments []OutlineSegment `json:"segments"`
}

type KeyFact struct {
	Fact       string  `json:"fact"`
	Source     *string `json:"source"`
	Confidence float64 `json:"confidence"`
}

type ImportantTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type NotablePerson struct {
	Name        string  `json:"name"`
	WhyRelevant string  `json:"whyRelevant"`
	ShortQuote  *string `json:"shortQuote"`
}

type RecommendedSource struct {
	Title string  `json:"title"`
	URL   *string `json:"url"`
	Type  *string `json:"type"`
}

// ResearchOutput is the normalized research brief an episode script is built from.
type ResearchOutput struct {
	Topic                    string              `json:"topic"`
	Language                 string              `json:"language"`
	EstimatedDurationMinutes int                 `json:"estimatedDurationMinutes"`
	ShortSummary             string              `json:"shortSummary"`
	EpisodeOutline           EpisodeOutline      `json:"episodeOutline"`
	KeyFacts                 []KeyFact           `json:"keyFacts"`
	ImportantTerms           []ImportantTerm     `json:"importantTerms"`
	NotablePeopleOrEntities  []NotablePerson     `json:"notablePeopleOrEntities"`
	RecommendedSources       []RecommendedSource `json:"recommendedSources"`
	SuggestedHooks           []string            `json:"suggestedHooks"`
	SuggestedTone            string              `json:"suggestedTone"`
	ScriptNotesForSpeaker    []string            `json:"scriptNotesForSpeaker"`
}
