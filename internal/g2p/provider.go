package g2p

import (
	"context"
	"fmt"
	"os"
	"regexp"
)

// Provider defines the interface for grapheme-to-phoneme predictors.
type Provider interface {
	// Predict returns ARPAbet phoneme symbols for a single word. Vowel
	// symbols may carry a trailing stress digit.
	Predict(ctx context.Context, word string) ([]string, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured and available.
	IsAvailable() error
}

// Config holds common configuration for G2P providers.
type Config struct {
	Provider string // Provider name: "espeak" or "openai"

	// espeak-ng settings
	ESpeakVoice string // Voice (e.g. "en-us", "en-gb")

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string // Chat model used for transcription

	// CachePath, when set, persists predictions in a SQLite database.
	CachePath string
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "espeak",
		ESpeakVoice: "en-us",
		OpenAIModel: "gpt-4o-mini",
	}
}

// NewProvider creates the appropriate G2P provider based on configuration,
// wrapping it with the persistent prediction cache when one is configured.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var provider Provider
	var err error

	switch config.Provider {
	case "espeak":
		provider, err = NewESpeakProvider(config)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required for the openai G2P provider")
		}
		provider, err = NewOpenAIProvider(config)
	default:
		return nil, fmt.Errorf("unknown G2P provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.CachePath != "" {
		cache, err := NewPredictionCache(config.CachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open G2P cache: %w", err)
		}
		provider = NewCachedProvider(provider, cache)
	}

	return provider, nil
}

// symbolPattern matches well-formed ARPAbet symbols with an optional
// stress digit.
var symbolPattern = regexp.MustCompile(`^[A-Z]+[0-2]?$`)

// FilterSymbols keeps only well-formed alphabetic-plus-optional-digit
// tokens, discarding punctuation placeholders and anything else the
// underlying predictor emits.
func FilterSymbols(raw []string) []string {
	filtered := make([]string, 0, len(raw))
	for _, s := range raw {
		if symbolPattern.MatchString(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FallbackProvider wraps a primary provider with a fallback option.
type FallbackProvider struct {
	primary  Provider
	fallback Provider
}

// NewFallbackProvider creates a provider that falls back to secondary if
// primary fails or predicts nothing.
func NewFallbackProvider(primary, fallback Provider) Provider {
	return &FallbackProvider{
		primary:  primary,
		fallback: fallback,
	}
}

// Predict tries the primary provider first, falls back to secondary on
// error or empty prediction.
func (p *FallbackProvider) Predict(ctx context.Context, word string) ([]string, error) {
	phonemes, err := p.primary.Predict(ctx, word)
	if err == nil && len(phonemes) > 0 {
		return phonemes, nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Primary G2P provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())
	}
	return p.fallback.Predict(ctx, word)
}

// Name returns the provider name.
func (p *FallbackProvider) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available.
func (p *FallbackProvider) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
