package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/config"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type supabaseUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type supabaseTokenVerifier struct {
	logger   outbound.LoggerPort
	conf     *config.SupabaseConfig
	client   *http.Client
	endpoint string
}

// NewSupabaseTokenVerifier delegates token verification to the identity
// provider's user endpoint. One round trip per request, no caching.
func NewSupabaseTokenVerifier(logger outbound.LoggerPort, conf *config.SupabaseConfig) outbound.TokenVerifierPort {
	return &supabaseTokenVerifier{
		logger:   logger,
		conf:     conf,
		client:   &http.Client{},
		endpoint: strings.TrimSuffix(conf.Url, "/") + "/auth/v1/user",
	}
}

func (v *supabaseTokenVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		v.logger.Error(err, "Failed to create the token verification request")
		return domain.Identity{}, err
	}

	req.Header.Set("apikey", v.conf.AnonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error(err, "Failed to reach the identity provider")
		return domain.Identity{}, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			v.logger.Error(err, "Failed to close the response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return domain.Identity{}, fmt.Errorf("identity provider rejected the token with status %d", resp.StatusCode)
	}

	var user supabaseUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		v.logger.Error(err, "Failed to decode the identity provider response")
		return domain.Identity{}, err
	}
	if user.ID == "" {
		return domain.Identity{}, fmt.Errorf("identity provider returned no user id")
	}

	return domain.Identity{ID: user.ID, Email: user.Email}, nil
}
