package services

import (
	"fmt"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

var styleGuides = map[string]string{
	"conversational": "Friendly, casual, like two friends chatting. Use colloquialisms, ask rhetorical questions, keep it light but informative.",
	"documentary":    "Formal, authoritative, journalistic. Focus on facts, timeline, verified sources. Narration-heavy, educational.",
	"investigative":  "Probing, curious, skeptical. Ask hard questions, explore controversies, dig deeper. Build suspense and intrigue.",
	"educational":    "Clear, structured, pedagogical. Define terms upfront, build from basics to complex. Think: teaching a student.",
	"storytelling":   "Narrative-driven, emotional, personal. Use anecdotes, character development, dramatic tension. Arc-based.",
}

func styleGuideFor(style string) string {
	if guide, ok := styleGuides[style]; ok {
		return guide
	}
	return styleGuides["conversational"]
}

func buildResearchPrompt(req domain.ResearchRequest) string {
	language := req.Language
	if language == "" {
		language = "English"
	}

	return fmt.Sprintf(`You are an expert podcast research assistant. Your job is to generate a structured research brief for a %d-minute podcast episode.

CRITICAL: Output ONLY valid JSON. No markdown, no explanation, no backticks. Start with { and end with }.

STYLE & TONE:
%s

TARGET DURATION: %d minutes (%d total seconds)

SCHEMA (output exactly these fields):
{
  "topic": string,
  "language": string,
  "estimatedDurationMinutes": number,
  "shortSummary": string (1-2 sentences, compelling hook),
  "episodeOutline": {
    "segments": [
      {
        "id": string (s1, s2, etc),
        "title": string (segment name matching the style),
        "purpose": string (why this segment exists),
        "approxDurationSeconds": number,
        "bullets": string[] (3-8 talking points the host can speak)
      }
    ]
  },
  "keyFacts": [
    {
      "fact": string (single fact or statistic),
      "source": string or null (URL if available),
      "confidence": number (0-1, 1.0 = verified)
    }
  ],
  "importantTerms": [
    { "term": string, "definition": string }
  ],
  "notablePeopleOrEntities": [
    { "name": string, "whyRelevant": string, "shortQuote": string (optional) }
  ],
  "recommendedSources": [
    { "title": string, "url": string (optional), "type": string (optional) }
  ],
  "suggestedHooks": string[] (4-6 opening lines, each <=20 words),
  "suggestedTone": string (one phrase describing how the host should sound),
  "scriptNotesForSpeaker": string[] (6-10 actionable notes for pacing, emotion, SFX)
}

REQUIREMENTS:
1. Create 3-6 segments. Total duration should sum to ~%d seconds.
2. Segments MUST follow the %s style guide above. Titles and bullets should reflect that style.
3. Provide 6-12 key facts with credible sources when possible. If uncertain, set source=null and confidence low.
4. Provide 4-6 hooks that grab attention and tease the episode's core value.
5. Script notes should include: pacing cues, where to pause, emotional beats, sound effect opportunities, rhetorical questions.
6. Bullets are for the HOST TO SPEAK. They should be conversational, not robotic. Make them natural talking points.
7. Important terms should define jargon the listener might not know.
8. Notable people/entities should have a short reason why they matter (not just a quote).

RESEARCH TOPIC: %s
OUTPUT LANGUAGE: %s

NOW OUTPUT THE JSON:`,
		req.DurationMinutes,
		styleGuideFor(req.Style),
		req.DurationMinutes, req.DurationMinutes*60,
		req.DurationMinutes*60,
		req.Style,
		req.Topic,
		language)
}

func buildRepairPrompt(req domain.ResearchRequest) string {
	style := req.Style
	if style == "" {
		style = "conversational"
	}
	return fmt.Sprintf(`You must output ONLY valid JSON. No explanation, no markdown.

Topic: %s
Style: %s

Output the complete research JSON matching the schema provided earlier. Start with { and end with }. Valid JSON only.`,
		req.Topic, style)
}

func buildConversationPrompt(research domain.ResearchOutput, req domain.ResearchRequest) string {
	facts := make([]string, 0, 8)
	for _, f := range capFacts(research.KeyFacts, 8) {
		facts = append(facts, "- "+f.Fact)
	}

	terms := make([]string, 0, 5)
	for _, t := range capTerms(research.ImportantTerms, 5) {
		terms = append(terms, "- "+t.Term+": "+t.Definition)
	}

	segments := make([]string, 0, len(research.EpisodeOutline.Segments))
	for _, seg := range research.EpisodeOutline.Segments {
		bullets := seg.Bullets
		if len(bullets) > 3 {
			bullets = bullets[:3]
		}
		segments = append(segments, "- "+seg.Title+": "+strings.Join(bullets, ", "))
	}

	exchanges := req.DurationMinutes * 3
	if exchanges < 15 {
		exchanges = 15
	}

	return fmt.Sprintf(`You are writing a podcast script for a %d-minute episode about "%s".

CRITICAL: Output ONLY a valid JSON array. No markdown, no explanation, no backticks. Start with [ and end with ].

STYLE: %s

CHARACTERS:
- Host: The main presenter who guides the conversation, asks probing questions, and keeps things on track. Knowledgeable but curious.
- Guest: An expert or enthusiastic co-host who brings additional insights, personal anecdotes, different perspectives, and sometimes challenges or builds on what the Host says. NOT a passive listener.

CONVERSATION RULES:
1. BOTH speakers should contribute substantive content and knowledge
2. The Guest should share facts, opinions, and ask their own questions - NOT just react with "wow" or "interesting"
3. Include natural interruptions, agreements, disagreements, and building on each other's points
4. Use casual language, filler words occasionally (like "you know", "I mean", "right?")
5. Have moments where they laugh, express surprise genuinely, or get excited
6. The Guest can correct the Host or add nuance
7. Include rhetorical questions and direct address to listeners occasionally
8. Vary the length of responses - some short reactions, some longer explanations

RESEARCH TO INCORPORATE:
Key Facts:
%s

Key Terms:
%s

Topics to Cover:
%s

Summary: %s

OUTPUT FORMAT - Array of dialogue lines:
[
  {"speaker": "Host", "text": "...", "audioEffect": "fade_in"},
  {"speaker": "Guest", "text": "...", "audioEffect": null},
  ...
]

Generate approximately %d dialogue exchanges for a %d-minute episode.
Each line should be 1-4 sentences. Make it feel like a REAL conversation between two knowledgeable friends.

NOW OUTPUT THE JSON ARRAY:`,
		req.DurationMinutes,
		research.Topic,
		styleGuideFor(req.Style),
		strings.Join(facts, "\n"),
		strings.Join(terms, "\n"),
		strings.Join(segments, "\n"),
		research.ShortSummary,
		exchanges,
		req.DurationMinutes)
}

func capFacts(facts []domain.KeyFact, n int) []domain.KeyFact {
	if len(facts) > n {
		return facts[:n]
	}
	return facts
}

func capTerms(terms []domain.ImportantTerm, n int) []domain.ImportantTerm {
	if len(terms) > n {
		return terms[:n]
	}
	return terms
}
