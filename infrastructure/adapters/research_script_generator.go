package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type researchScriptGenerator struct {
	ContentFetcher
	logger     outbound.LoggerPort
	serviceURL string
}

// NewResearchScriptGenerator is the client of the script-generation service.
// One POST per request, no retries; the service owns its own retry policy.
func NewResearchScriptGenerator(serviceURL string, contentFetcher ContentFetcher, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &researchScriptGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		serviceURL:     strings.TrimSuffix(serviceURL, "/"),
	}
}

func (g *researchScriptGenerator) GenerateScript(ctx context.Context, req domain.ResearchRequest) ([]domain.DialogueLine, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.NewUpstream("failed to marshal script generation request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.serviceURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.NewUpstream("failed to build script generation request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := g.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	// The service contract is a JSON array of dialogue lines. Anything else
	// is a contract violation, not a client error.
	var probe interface{}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, apperrors.NewUpstreamContract("script generation service returned invalid JSON", err)
	}
	if _, ok := probe.([]interface{}); !ok {
		return nil, apperrors.NewUpstreamContract("script generation service returned a non-array response", nil)
	}

	var script []domain.DialogueLine
	if err := json.Unmarshal(body, &script); err != nil {
		return nil, apperrors.NewUpstreamContract("script generation service returned malformed dialogue lines", err)
	}

	return script, nil
}
