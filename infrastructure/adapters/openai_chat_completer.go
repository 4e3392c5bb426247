package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	openai "github.com/sashabaranov/go-openai"
)

var (
	chatCompletionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_completion_requests_total",
		Help: "Chat completion requests by outcome.",
	}, []string{"outcome"})

	chatCompletionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chat_completion_duration_seconds",
		Help:    "Chat completion request latency.",
		Buckets: prometheus.DefBuckets,
	})
)

type openAIChatCompleter struct {
	logger    outbound.LoggerPort
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIChatCompleter(cfg *config.OpenAIConfig, logger outbound.LoggerPort) outbound.ChatCompleterPort {
	clientConfig := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseUrl != "" {
		clientConfig.BaseURL = cfg.BaseUrl
	}
	return &openAIChatCompleter{
		logger:    logger,
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (c *openAIChatCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: c.maxTokens,
	})
	chatCompletionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		chatCompletionRequests.WithLabelValues("error").Inc()
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		chatCompletionRequests.WithLabelValues("empty").Inc()
		return "", fmt.Errorf("chat completion returned no choices")
	}
	chatCompletionRequests.WithLabelValues("success").Inc()
	return resp.Choices[0].Message.Content, nil
}
