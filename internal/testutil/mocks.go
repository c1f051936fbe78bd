package testutil

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/verselab/prosody/internal/tagger"
)

// MockG2P mocks a grapheme-to-phoneme provider.
type MockG2P struct {
	Predictions map[string][]string
	Errors      map[string]error
	Calls       []string
}

// Predict returns the canned prediction for a word, or an empty prediction
// when none is configured.
func (m *MockG2P) Predict(ctx context.Context, word string) ([]string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("predict %s", word))

	key := strings.ToLower(word)
	if err, ok := m.Errors[key]; ok {
		return nil, err
	}
	if phonemes, ok := m.Predictions[key]; ok {
		return phonemes, nil
	}
	return nil, nil
}

// Name returns the provider name.
func (m *MockG2P) Name() string { return "mock" }

// IsAvailable always reports the mock as available.
func (m *MockG2P) IsAvailable() error { return nil }

// MockTagger is a deterministic rule-table tagger for pipeline tests. It
// splits on whitespace, peels trailing punctuation into separate tokens and
// tags words from a small built-in lexicon (defaulting to NOUN).
type MockTagger struct {
	Err error
}

var mockLexicon = map[string]string{
	"a": tagger.Determiner, "an": tagger.Determiner, "the": tagger.Determiner,
	"my": tagger.Determiner, "some": tagger.Determiner,
	"i": tagger.Pronoun, "you": tagger.Pronoun, "it": tagger.Pronoun,
	"he": tagger.Pronoun, "she": tagger.Pronoun, "they": tagger.Pronoun,
	"there": tagger.Pronoun,
	"of":    tagger.Adposition, "in": tagger.Adposition, "on": tagger.Adposition,
	"over": tagger.Adposition, "down": tagger.Adposition, "to": tagger.Adposition,
	"is": tagger.Auxiliary, "are": tagger.Auxiliary, "was": tagger.Auxiliary,
	"were": tagger.Auxiliary, "be": tagger.Auxiliary, "will": tagger.Auxiliary,
	"can": tagger.Auxiliary, "do": tagger.Auxiliary,
	"and": tagger.CoordConj, "but": tagger.CoordConj, "or": tagger.CoordConj,
	"if": tagger.SubordConj, "because": tagger.SubordConj,
	"not": tagger.Particle, "n't": tagger.Particle,
	"so": tagger.Adverb, "very": tagger.Adverb, "never": tagger.Adverb,
	"love": tagger.Verb, "run": tagger.Verb, "walking": tagger.Verb,
	"feeling": tagger.Verb, "go": tagger.Verb,
	"complete": tagger.Adjective, "beautiful": tagger.Adjective,
	"oh": tagger.Interjection, "hey": tagger.Interjection,
}

// phrasal-verb particles the mock flags with the prt dependency role.
var mockParticles = map[string]bool{"up": true, "out": true, "off": true}

// Tag implements tagger.Tagger.
func (m *MockTagger) Tag(text string) ([]tagger.Token, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	var tokens []tagger.Token
	for _, field := range strings.Fields(text) {
		word := field
		var trailing []string
		for len(word) > 0 {
			last := rune(word[len(word)-1])
			if !unicode.IsPunct(last) || strings.HasSuffix(strings.ToLower(word), "n't") {
				break
			}
			trailing = append([]string{string(last)}, trailing...)
			word = word[:len(word)-1]
		}

		if word != "" {
			tokens = append(tokens, mockToken(word))
		}
		for _, p := range trailing {
			tokens = append(tokens, tagger.Token{Text: p, POS: tagger.Punctuation, Lemma: p, IsPunct: true})
		}
	}
	return tokens, nil
}

func mockToken(word string) tagger.Token {
	lower := strings.ToLower(word)
	lemma := tagger.Lemma(word)

	pos, ok := mockLexicon[lower]
	if !ok {
		pos = tagger.Noun
	}

	dep := ""
	if mockParticles[lower] {
		dep = tagger.DepParticle
		pos = tagger.Particle
	}

	return tagger.Token{Text: word, POS: pos, Dep: dep, Lemma: lemma}
}
