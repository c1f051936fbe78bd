package tagger

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// ProseTagger tags text with the prose statistical POS model. The model is
// embedded in the library, so construction normally succeeds; a failure is
// wrapped in ErrTaggerUnavailable with a remediation hint.
type ProseTagger struct{}

// NewProseTagger verifies the prose model loads and returns a tagger.
func NewProseTagger() (*ProseTagger, error) {
	// Probe the model once so a broken installation surfaces at
	// construction time instead of on the first analysis call.
	if _, err := prose.NewDocument("probe", prose.WithExtraction(false)); err != nil {
		return nil, fmt.Errorf("%w: %v (reinstall github.com/jdkato/prose/v2 and rebuild)",
			ErrTaggerUnavailable, err)
	}
	return &ProseTagger{}, nil
}

// Tag tokenizes and tags text, mapping prose's Penn Treebank tags onto the
// coarse universal tag set.
func (p *ProseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tagging failed: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		lemma := Lemma(tok.Text)
		tokens = append(tokens, Token{
			Text:    tok.Text,
			POS:     pennToUniversal(tok.Tag, lemma),
			Dep:     pennDep(tok.Tag),
			Lemma:   lemma,
			IsPunct: pennIsPunct(tok.Tag) || isPunctText(tok.Text),
		})
	}
	return tokens, nil
}

// pennToUniversal maps a Penn Treebank tag to the coarse universal set.
// Verb forms whose lemma is "be" are treated as auxiliaries, which is what
// the existential-"there" rule expects for "there is/are".
func pennToUniversal(tag, lemma string) string {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return Noun
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		if lemma == "be" {
			return Auxiliary
		}
		return Verb
	case "MD":
		return Auxiliary
	case "JJ", "JJR", "JJS":
		return Adjective
	case "RB", "RBR", "RBS", "WRB":
		return Adverb
	case "UH":
		return Interjection
	case "DT", "PDT", "WDT":
		return Determiner
	case "PRP", "PRP$", "WP", "WP$", "EX":
		return Pronoun
	case "IN":
		return Adposition
	case "CC":
		return CoordConj
	case "TO", "RP", "POS":
		return Particle
	case "CD":
		return Numeral
	case "SYM", "$", "#":
		return Symbol
	case ".", ",", ":", "(", ")", "``", "''", "-LRB-", "-RRB-":
		return Punctuation
	default:
		return Other
	}
}

// pennDep derives the dependency role where the Penn tag alone determines
// it. RP is exactly the phrasal-verb particle.
func pennDep(tag string) string {
	if tag == "RP" {
		return DepParticle
	}
	return ""
}

func pennIsPunct(tag string) bool {
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "-LRB-", "-RRB-":
		return true
	}
	return strings.Trim(tag, ".,:()`'") == ""
}
