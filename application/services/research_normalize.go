package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

const (
	maxSegments     = 10
	maxBullets      = 8
	maxFacts        = 12
	maxTerms        = 10
	maxPeople       = 10
	maxSources      = 10
	maxHooks        = 8
	maxSpeakerNotes = 12
)

// normalizeResearch coerces a loosely-typed model reply into a ResearchOutput,
// filling gaps from the request and capping list lengths. Models routinely
// mistype fields, so every value goes through a coercion helper instead of a
// strict unmarshal.
func normalizeResearch(obj map[string]interface{}, req domain.ResearchRequest) domain.ResearchOutput {
	language := req.Language
	if language == "" {
		language = "English"
	}
	tone := req.Style
	if tone == "" {
		tone = "conversational"
	}

	out := domain.ResearchOutput{
		Topic:                    asString(obj["topic"], req.Topic),
		Language:                 asString(obj["language"], language),
		EstimatedDurationMinutes: asInt(obj["estimatedDurationMinutes"], req.DurationMinutes),
		ShortSummary:             asString(obj["shortSummary"], "An exploration of "+req.Topic),
		EpisodeOutline:           domain.EpisodeOutline{Segments: []domain.OutlineSegment{}},
		KeyFacts:                 []domain.KeyFact{},
		ImportantTerms:           []domain.ImportantTerm{},
		NotablePeopleOrEntities:  []domain.NotablePerson{},
		RecommendedSources:       []domain.RecommendedSource{},
		SuggestedHooks:           []string{},
		SuggestedTone:            asString(obj["suggestedTone"], tone),
		ScriptNotesForSpeaker:    []string{},
	}

	if outline, ok := obj["episodeOutline"].(map[string]interface{}); ok {
		if segments, ok := outline["segments"].([]interface{}); ok && len(segments) > 0 {
			if len(segments) > maxSegments {
				segments = segments[:maxSegments]
			}
			perSegment := int(math.Round(float64(out.EstimatedDurationMinutes*60) / float64(len(segments))))
			for i, item := range segments {
				seg, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				out.EpisodeOutline.Segments = append(out.EpisodeOutline.Segments, domain.OutlineSegment{
					ID:                   asString(seg["id"], fmt.Sprintf("s%d", i+1)),
					Title:                asString(seg["title"], fmt.Sprintf("Segment %d", i+1)),
					Purpose:              asString(seg["purpose"], ""),
					ApproxDurationSecond: asInt(seg["approxDurationSeconds"], perSegment),
					Bullets:              asStringSlice(seg["bullets"], maxBullets),
				})
			}
		}
	}

	if facts, ok := obj["keyFacts"].([]interface{}); ok {
		if len(facts) > maxFacts {
			facts = facts[:maxFacts]
		}
		for _, item := range facts {
			fact, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			out.KeyFacts = append(out.KeyFacts, domain.KeyFact{
				Fact:       asString(fact["fact"], ""),
				Source:     asOptionalString(fact["source"]),
				Confidence: clamp01(asFloat(fact["confidence"], 0.5)),
			})
		}
	}

	if terms, ok := obj["importantTerms"].([]interface{}); ok {
		if len(terms) > maxTerms {
			terms = terms[:maxTerms]
		}
		for _, item := range terms {
			term, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			out.ImportantTerms = append(out.ImportantTerms, domain.ImportantTerm{
				Term:       asString(term["term"], ""),
				Definition: asString(term["definition"], ""),
			})
		}
	}

	if people, ok := obj["notablePeopleOrEntities"].([]interface{}); ok {
		if len(people) > maxPeople {
			people = people[:maxPeople]
		}
		for _, item := range people {
			person, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			out.NotablePeopleOrEntities = append(out.NotablePeopleOrEntities, domain.NotablePerson{
				Name:        asString(person["name"], ""),
				WhyRelevant: asString(person["whyRelevant"], ""),
				ShortQuote:  asOptionalString(person["shortQuote"]),
			})
		}
	}

	if sources, ok := obj["recommendedSources"].([]interface{}); ok {
		if len(sources) > maxSources {
			sources = sources[:maxSources]
		}
		for _, item := range sources {
			source, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			out.RecommendedSources = append(out.RecommendedSources, domain.RecommendedSource{
				Title: asString(source["title"], ""),
				URL:   asOptionalString(source["url"]),
				Type:  asOptionalString(source["type"]),
			})
		}
	}

	out.SuggestedHooks = asStringSlice(obj["suggestedHooks"], maxHooks)
	out.ScriptNotesForSpeaker = asStringSlice(obj["scriptNotesForSpeaker"], maxSpeakerNotes)

	return out
}

// buildScriptFromResearch assembles a deterministic script directly from the
// research brief. Used on cache hits and as the fallback when the
// conversational pass fails.
func buildScriptFromResearch(research domain.ResearchOutput) []domain.DialogueLine {
	fadeIn := "fade_in"
	script := make([]domain.DialogueLine, 0, 16)

	intro := "Let's talk about " + research.Topic
	if len(research.SuggestedHooks) > 0 {
		intro = research.SuggestedHooks[0]
	}
	script = append(script, domain.DialogueLine{Speaker: domain.HostSpeaker, Text: intro, AudioEffect: &fadeIn})

	for _, segment := range research.EpisodeOutline.Segments {
		opener := segment.Title
		if len(segment.Bullets) > 0 {
			opener = segment.Bullets[0]
		}
		script = append(script,
			domain.DialogueLine{Speaker: domain.HostSpeaker, Text: opener},
			domain.DialogueLine{Speaker: domain.GuestSpeaker, Text: "That's interesting. Can you elaborate on that?"},
		)

		for _, bullet := range segment.Bullets[min(1, len(segment.Bullets)):] {
			script = append(script, domain.DialogueLine{Speaker: domain.HostSpeaker, Text: bullet})
		}

		if len(segment.Bullets) > 1 {
			script = append(script, domain.DialogueLine{Speaker: domain.GuestSpeaker, Text: "Wow, I didn't know that."})
		}
	}

	if len(research.ScriptNotesForSpeaker) > 0 {
		script = append(script, domain.DialogueLine{
			Speaker: domain.HostSpeaker,
			Text:    research.ScriptNotesForSpeaker[len(research.ScriptNotesForSpeaker)-1],
		})
	}

	script = append(script, domain.DialogueLine{Speaker: domain.HostSpeaker, Text: "Thanks for listening. See you next time."})

	return script
}

func asString(value interface{}, fallback string) string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return fallback
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fallback
	}
}

func asOptionalString(value interface{}) *string {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func asInt(value interface{}, fallback int) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func asFloat(value interface{}, fallback float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func asStringSlice(value interface{}, limit int) []string {
	items, ok := value.([]interface{})
	if !ok {
		return []string{}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asString(item, ""))
	}
	return out
}

func clamp01(f float64) float64 {
	return math.Min(1, math.Max(0, f))
}
