package tagger

import (
	"errors"
	"strings"
	"unicode"
)

// ErrTaggerUnavailable indicates the POS tagging model could not be
// initialized. This is fatal to pipeline construction.
var ErrTaggerUnavailable = errors.New("part-of-speech tagger unavailable")

// Coarse part-of-speech tags, following the universal tag set.
const (
	Noun         = "NOUN"
	Verb         = "VERB"
	Adjective    = "ADJ"
	Adverb       = "ADV"
	Interjection = "INTJ"
	Determiner   = "DET"
	Pronoun      = "PRON"
	Adposition   = "ADP"
	Auxiliary    = "AUX"
	Particle     = "PART"
	CoordConj    = "CCONJ"
	SubordConj   = "SCONJ"
	Numeral      = "NUM"
	Punctuation  = "PUNCT"
	Symbol       = "SYM"
	Other        = "X"
)

// DepParticle is the dependency role marking a phrasal-verb particle
// ("give up", "turn down").
const DepParticle = "prt"

// Token is one unit of the tagged token stream.
type Token struct {
	// Text is the raw token text as it appeared in the input.
	Text string
	// POS is the coarse part-of-speech tag.
	POS string
	// Dep is the dependency role label; empty when unknown.
	Dep string
	// Lemma is the dictionary form of the token, lower-cased.
	Lemma string
	// IsPunct reports whether the token is punctuation.
	IsPunct bool
}

// Tagger produces an ordered token stream for a piece of text.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// beForms maps inflections and contractions of "be" to the lemma "be".
// The existential-"there" rule depends on this.
var beForms = map[string]string{
	"be": "be", "am": "be", "is": "be", "are": "be",
	"was": "be", "were": "be", "been": "be", "being": "be",
	"'s": "be", "'re": "be", "'m": "be", "ai": "be",
}

// Lemma returns the lemma for a token's text. Only forms of "be" need real
// lemmatization for stress analysis; everything else lower-cases.
func Lemma(text string) string {
	lower := strings.ToLower(text)
	if lemma, ok := beForms[lower]; ok {
		return lemma
	}
	return lower
}

// isPunctText reports whether every rune of the text is punctuation or a
// symbol.
func isPunctText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
