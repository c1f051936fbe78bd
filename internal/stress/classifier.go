package stress

import (
	"strings"

	"github.com/verselab/prosody/internal/tagger"
)

// Vowel-bearing ARPAbet phonemes. Only these carry stress digits.
var arpabetVowels = map[string]bool{
	"AA": true, "AE": true, "AH": true, "AO": true, "AW": true,
	"AY": true, "EH": true, "ER": true, "EY": true, "IH": true,
	"IY": true, "OW": true, "OY": true, "UH": true, "UW": true,
}

// functionPOS are closed-class tags that classify monosyllables unstressed.
var functionPOS = map[string]bool{
	tagger.Determiner: true, tagger.Pronoun: true, tagger.Adposition: true,
	tagger.Auxiliary: true, tagger.Particle: true,
	tagger.CoordConj: true, tagger.SubordConj: true,
}

// contentPOS are open-class tags that classify monosyllables stressed.
var contentPOS = map[string]bool{
	tagger.Noun: true, tagger.Verb: true, tagger.Adjective: true,
	tagger.Adverb: true, tagger.Interjection: true,
}

// classifyMonosyllable decides the stress of a single-syllable token and
// returns the stress digit with a stable symbolic reasoning tag. The rule
// order is fixed: negation, existential/locative "there", phrasal-verb
// particle, then POS class.
func classifyMonosyllable(tok tagger.Token, next *tagger.Token) (int, string) {
	word := strings.ToLower(tok.Text)
	pos := strings.ToLower(tok.POS)

	if word == "not" || strings.HasSuffix(tok.Text, "n't") {
		return 1, "negation_stressed"
	}

	if word == "there" {
		if next != nil && next.Lemma == "be" &&
			(next.POS == tagger.Auxiliary || next.POS == tagger.Verb) {
			return 0, "existential_there_unstressed"
		}
		return 1, "locative_there_stressed"
	}

	if tok.Dep == tagger.DepParticle {
		return 1, "phrasal_verb_particle_stressed"
	}

	switch {
	case functionPOS[tok.POS]:
		return 0, "function_word_unstressed_" + pos
	case contentPOS[tok.POS]:
		return 1, "content_word_stressed_" + pos
	default:
		// Uncertain cases default to unstressed.
		return 0, "default_unstressed_" + pos
	}
}

// extractStressDigits pulls the per-syllable stress digits out of a
// space-separated phoneme string. Vowel phonemes without a digit count as
// unstressed; consonants contribute nothing.
func extractStressDigits(phonemes string) []int {
	var digits []int
	for _, phoneme := range strings.Fields(phonemes) {
		base := phoneme
		digit := 0
		if last := phoneme[len(phoneme)-1]; last >= '0' && last <= '9' {
			base = phoneme[:len(phoneme)-1]
			digit = int(last - '0')
		}
		if arpabetVowels[base] {
			digits = append(digits, digit)
		}
	}
	return digits
}
