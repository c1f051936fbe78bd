package g2p

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

func TestFilterSymbols(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "well-formed symbols pass",
			in:   []string{"B", "AH0", "N", "AE1", "N", "AH0"},
			want: []string{"B", "AH0", "N", "AE1", "N", "AH0"},
		},
		{
			name: "punctuation placeholders dropped",
			in:   []string{"HH", "AH0", ".", ",", "'", "L", "OW1"},
			want: []string{"HH", "AH0", "L", "OW1"},
		},
		{
			name: "lowercase and bad digits dropped",
			in:   []string{"ah1", "AH3", "AH1"},
			want: []string{"AH1"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSymbols(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterSymbols(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// stubProvider is a minimal in-package test double.
type stubProvider struct {
	name     string
	phonemes []string
	err      error
	calls    int
}

func (s *stubProvider) Predict(ctx context.Context, word string) ([]string, error) {
	s.calls++
	return s.phonemes, s.err
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) IsAvailable() error { return s.err }

func TestFallbackProviderPrimarySucceeds(t *testing.T) {
	primary := &stubProvider{name: "primary", phonemes: []string{"K", "AE1", "T"}}
	fallback := &stubProvider{name: "fallback", phonemes: []string{"D", "AO1", "G"}}

	p := NewFallbackProvider(primary, fallback)
	got, err := p.Predict(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Predict() failed: %v", err)
	}
	if !reflect.DeepEqual(got, primary.phonemes) {
		t.Errorf("Predict() = %v, want primary result %v", got, primary.phonemes)
	}
	if fallback.calls != 0 {
		t.Error("fallback should not be called when primary succeeds")
	}
}

func TestFallbackProviderPrimaryFails(t *testing.T) {
	tests := []struct {
		name    string
		primary *stubProvider
	}{
		{"primary errors", &stubProvider{name: "primary", err: fmt.Errorf("boom")}},
		{"primary predicts nothing", &stubProvider{name: "primary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fallback := &stubProvider{name: "fallback", phonemes: []string{"D", "AO1", "G"}}
			p := NewFallbackProvider(tt.primary, fallback)

			got, err := p.Predict(context.Background(), "dog")
			if err != nil {
				t.Fatalf("Predict() failed: %v", err)
			}
			if !reflect.DeepEqual(got, fallback.phonemes) {
				t.Errorf("Predict() = %v, want fallback result %v", got, fallback.phonemes)
			}
		})
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(&Config{Provider: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderOpenAIRequiresKey(t *testing.T) {
	_, err := NewProvider(&Config{Provider: "openai"})
	if err == nil {
		t.Fatal("expected error when OpenAI key is missing")
	}
}
