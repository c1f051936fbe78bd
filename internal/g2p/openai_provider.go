package g2p

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIProvider predicts phonemes by asking an OpenAI chat model for an
// ARPAbet transcription. Calls go through a circuit breaker so a failing
// API rejects quickly instead of stalling every out-of-dictionary word.
type OpenAIProvider struct {
	apiKey  string
	client  *openai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIProvider creates a new OpenAI-backed G2P provider.
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		apiKey:  config.OpenAIKey,
		client:  openai.NewClient(config.OpenAIKey),
		model:   model,
		breaker: newG2PBreaker(),
	}, nil
}

// Predict asks the chat model for an ARPAbet transcription of the word.
func (p *OpenAIProvider) Predict(ctx context.Context, word string) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("word cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a phonetician. Transcribe English words into ARPAbet phonemes. " +
					"Append a stress digit to every vowel phoneme: 1 for primary stress, 2 for secondary, 0 for unstressed. " +
					"Respond with only the space-separated phonemes, nothing else. Example: banana -> B AH0 N AE1 N AH0",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: word,
			},
		},
		Temperature: 0.0,
		MaxTokens:   60,
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, fmt.Errorf("no transcription returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return nil, err
	}

	raw := strings.Fields(strings.ToUpper(result.(string)))
	for i, s := range raw {
		raw[i] = strings.Trim(s, "/[].,")
	}
	return FilterSymbols(raw), nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is configured.
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// newG2PBreaker builds the circuit breaker guarding OpenAI predictions.
// The breaker never retries: once open, predictions fail fast and the
// caller's fallback chain takes over.
func newG2PBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai-g2p",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}
