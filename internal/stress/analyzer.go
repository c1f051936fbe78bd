package stress

import (
	"context"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verselab/prosody/internal/dict"
	"github.com/verselab/prosody/internal/g2p"
	"github.com/verselab/prosody/internal/tagger"
)

// phonemeCacheSize bounds the combined dictionary-or-fallback phoneme
// cache.
const phonemeCacheSize = 1000

// Analyzer is the stress analysis pipeline. It is constructed once at
// process start and shared; each Analyze call is stateless apart from the
// internal lookup caches, which are safe for concurrent use.
type Analyzer struct {
	dict     *dict.Dictionary
	tagger   tagger.Tagger
	g2p      g2p.Provider // nil disables the fallback
	phonemes *lru.Cache[string, string]
}

// New creates an analyzer from its collaborators. The G2P provider may be
// nil, in which case out-of-dictionary words fall through to the single
// stressed syllable default.
func New(d *dict.Dictionary, t tagger.Tagger, provider g2p.Provider) (*Analyzer, error) {
	if d == nil {
		return nil, fmt.Errorf("dictionary is required")
	}
	if t == nil {
		return nil, fmt.Errorf("tagger is required")
	}

	cache, err := lru.New[string, string](phonemeCacheSize)
	if err != nil {
		return nil, err
	}

	return &Analyzer{dict: d, tagger: t, g2p: provider, phonemes: cache}, nil
}

// Phonemes resolves the space-separated phoneme string for a word from the
// dictionary or the G2P fallback, memoized per normalized word. An empty
// string means neither source produced phonemes.
func (a *Analyzer) Phonemes(word string) string {
	key := strings.ToLower(strings.TrimSpace(word))
	if cached, ok := a.phonemes.Get(key); ok {
		return cached
	}

	var result string
	if entry := a.dict.Lookup(key); entry != nil {
		result = strings.Join(entry.Phonemes, " ")
	} else if a.g2p != nil {
		predicted, err := a.g2p.Predict(context.Background(), word)
		if err == nil {
			result = strings.Join(g2p.FilterSymbols(predicted), " ")
		}
	}

	a.phonemes.Add(key, result)
	return result
}

// Analyze performs stress analysis on a single text unit (typically one
// lyric line).
func (a *Analyzer) Analyze(text string) (*Result, error) {
	start := time.Now()

	tokens, err := a.tagger.Tag(text)
	if err != nil {
		return nil, err
	}

	result := &Result{Text: text, Words: []WordAnalysis{}}

	for i, tok := range tokens {
		if tok.IsPunct || strings.TrimSpace(tok.Text) == "" {
			continue
		}

		word := tok.Text
		phonemes := a.Phonemes(word)
		digits := extractStressDigits(phonemes)

		var (
			syllables []string
			pattern   []int
			reasoning string
		)

		switch {
		case len(digits) == 1:
			// Monosyllabic: POS-driven rules with lookahead at the
			// immediately following token.
			var next *tagger.Token
			if i+1 < len(tokens) {
				next = &tokens[i+1]
			}
			level, reason := classifyMonosyllable(tok, next)
			pattern = []int{level}
			syllables = []string{word}
			reasoning = reason

		case len(digits) > 1:
			// Multisyllabic: the dictionary's own digits verbatim when
			// present, else G2P digits with approximate syllable slices.
			pattern = digits
			if entry := a.dict.Lookup(word); entry != nil {
				syllables = entry.Syllables
				reasoning = "cmu_dictionary_multisyllable"
			} else {
				syllables = approximateSyllables(word, len(digits))
				reasoning = "g2p_fallback_multisyllable"
			}

		default:
			// No stress-bearing phonemes from any source: a conservative
			// single stressed syllable keeps the word in the scansion.
			pattern = []int{1}
			syllables = []string{word}
			reasoning = "fallback_single_stressed"
		}

		confidence := 0.8
		if strings.HasPrefix(reasoning, "cmu_") {
			confidence = 0.95
		}

		analysis := WordAnalysis{
			Word:          word,
			PartOfSpeech:  tok.POS,
			Syllables:     syllables,
			StressPattern: pattern,
			Reasoning:     reasoning,
			CharPositions: AlignToCharacters(word, len(pattern)),
			Confidence:    confidence,
		}

		result.Words = append(result.Words, analysis)
		result.TotalSyllables += len(pattern)
	}

	if len(result.Words) > 2 {
		a.smoothLine(result.Words)
	}

	for _, w := range result.Words {
		for _, s := range w.StressPattern {
			if s > 0 {
				result.StressedSyllables++
			}
		}
	}

	result.ProcessingTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	return result, nil
}

// smoothLine runs the prosodic smoothing pass over the concatenated stress
// sequence of the line and maps any demotions back onto the per-word
// patterns.
func (a *Analyzer) smoothLine(words []WordAnalysis) {
	var sequence []int
	for _, w := range words {
		sequence = append(sequence, w.StressPattern...)
	}

	smoothed := SmoothStressClusters(sequence)

	pos := 0
	for wi := range words {
		for si := range words[wi].StressPattern {
			words[wi].StressPattern[si] = smoothed[pos]
			pos++
		}
	}
}

// AnalyzeLines applies Analyze per line and aggregates the results. Lines
// that are empty after trimming are skipped; numbering is 1-based over the
// non-skipped lines only.
func (a *Analyzer) AnalyzeLines(lines []string) ([]LineResult, error) {
	results := make([]LineResult, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		result, err := a.Analyze(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(results)+1, err)
		}
		results = append(results, LineResult{Line: len(results) + 1, Result: *result})
	}
	return results, nil
}
