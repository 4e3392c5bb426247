package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

const (
	llmMaxAttempts  = 3
	llmRetryBackoff = 500 * time.Millisecond
)

type researchPipeline struct {
	logger    outbound.LoggerPort
	completer outbound.ChatCompleterPort
	cache     outbound.ResearchCachePort
}

// NewResearchPipeline builds the two-pass script generator: a research brief
// first, then a conversational script grounded in it. Research briefs are
// cached; a cache hit skips both model calls and assembles the script
// deterministically.
func NewResearchPipeline(logger outbound.LoggerPort, completer outbound.ChatCompleterPort, cache outbound.ResearchCachePort) inbound.ResearchPipelinePort {
	return &researchPipeline{
		logger:    logger,
		completer: completer,
		cache:     cache,
	}
}

func (p *researchPipeline) GenerateScript(ctx context.Context, req domain.ResearchRequest) ([]domain.DialogueLine, error) {
	key := cacheKey(req)

	if cached, ok := p.cache.Get(key); ok {
		p.logger.InfoWithFields("Research cache hit", map[string]interface{}{"topic": req.Topic})
		return buildScriptFromResearch(cached), nil
	}

	research, err := p.research(ctx, req)
	if err != nil {
		return nil, err
	}
	p.cache.Set(key, research)

	return p.conversationalScript(ctx, research, req), nil
}

// research runs the brief-generation call with retries and parses the reply,
// making one repair re-prompt before giving up.
func (p *researchPipeline) research(ctx context.Context, req domain.ResearchRequest) (domain.ResearchOutput, error) {
	prompt := buildResearchPrompt(req)

	var raw string
	var lastErr error
	for attempt := 0; attempt < llmMaxAttempts; attempt++ {
		raw, lastErr = p.completer.Complete(ctx, prompt)
		if lastErr == nil {
			break
		}
		p.logger.WarnWithFields("Research completion failed, retrying", map[string]interface{}{
			"attempt": attempt + 1,
			"error":   lastErr.Error(),
		})
		select {
		case <-ctx.Done():
			return domain.ResearchOutput{}, ctx.Err()
		case <-time.After(llmRetryBackoff * time.Duration(attempt+1)):
		}
	}
	if raw == "" {
		return domain.ResearchOutput{}, fmt.Errorf("LLM calls exhausted: %w", lastErr)
	}

	parsed, ok := p.parseResearch(raw)
	if !ok {
		repairRaw, err := p.completer.Complete(ctx, buildRepairPrompt(req))
		if err != nil {
			return domain.ResearchOutput{}, fmt.Errorf("unable to parse LLM response: %w", err)
		}
		parsed, ok = p.parseResearch(repairRaw)
		if !ok {
			return domain.ResearchOutput{}, fmt.Errorf("JSON parsing failed after repair attempt")
		}
	}

	return normalizeResearch(parsed, req), nil
}

func (p *researchPipeline) parseResearch(raw string) (map[string]interface{}, bool) {
	candidate := extractJSONObject(raw)
	if candidate == "" {
		candidate = raw
	}
	var parsed map[string]interface{}
	if !safeParse(candidate, &parsed) {
		return nil, false
	}
	return parsed, true
}

// conversationalScript runs the second model pass. Any failure falls back to
// the deterministic assembly so a usable script always comes back.
func (p *researchPipeline) conversationalScript(ctx context.Context, research domain.ResearchOutput, req domain.ResearchRequest) []domain.DialogueLine {
	raw, err := p.completer.Complete(ctx, buildConversationPrompt(research, req))
	if err != nil {
		p.logger.ErrorWithFields(err, "Conversational script generation failed, using research fallback", map[string]interface{}{
			"topic": research.Topic,
		})
		return buildScriptFromResearch(research)
	}

	candidate := extractJSONArray(raw)
	if candidate == "" {
		p.logger.Error(fmt.Errorf("no JSON array in reply"), "Conversational script reply unparseable, using research fallback")
		return buildScriptFromResearch(research)
	}

	var lines []domain.DialogueLine
	if !safeParse(candidate, &lines) || len(lines) == 0 {
		p.logger.Error(fmt.Errorf("invalid dialogue array"), "Conversational script reply unparseable, using research fallback")
		return buildScriptFromResearch(research)
	}

	return sanitizeScript(lines)
}

// sanitizeScript repairs speaker labels to a Host/Guest alternation and keeps
// the audio effect annotation only on the opening line, matching the research
// service contract.
func sanitizeScript(lines []domain.DialogueLine) []domain.DialogueLine {
	out := make([]domain.DialogueLine, 0, len(lines))
	for i, line := range lines {
		speaker := line.Speaker
		if speaker != domain.HostSpeaker && speaker != domain.GuestSpeaker {
			if i%2 == 0 {
				speaker = domain.HostSpeaker
			} else {
				speaker = domain.GuestSpeaker
			}
		}
		effect := line.AudioEffect
		if i != 0 {
			effect = nil
		}
		out = append(out, domain.DialogueLine{
			Speaker:     speaker,
			Text:        line.Text,
			AudioEffect: effect,
		})
	}
	return out
}

// cacheKey is the request itself, canonicalized. Struct field order makes the
// marshal deterministic.
func cacheKey(req domain.ResearchRequest) string {
	payload, _ := json.Marshal(req)
	return base64.StdEncoding.EncodeToString(payload)
}
