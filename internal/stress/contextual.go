package stress

import (
	"regexp"
	"strings"
)

// contextualRules holds the disambiguation table for one contextual word:
// ordered unstressed patterns, ordered stressed patterns, and a default
// verdict. Unstressed patterns are tested first; they are the more
// specific ones, and the order encodes the tie-break policy.
type contextualRules struct {
	unstressed []*regexp.Regexp
	stressed   []*regexp.Regexp
	def        bool
}

// contextualWords is the closed set of grammatically ambiguous function
// words whose stress depends on context. All default to stressed: the
// locative/demonstrative reading is the more common one in lyrics.
var contextualWords = map[string]contextualRules{
	"there": {
		unstressed: compileAll(
			// Expletive/dummy subject at sentence start or after punctuation.
			`^there\s+(?:is|are|was|were|will|would|could|should|might|may)\b`,
			`[\.!?]\s+there\s+(?:is|are|was|were|will|would|could|should|might|may)\b`,
			// "there" + be verb + indefinite article.
			`\bthere\s+(?:is|are|was|were)\s+(?:a|an|some|many|few|several|no)\b`,
		),
		stressed: compileAll(
			// Locative/demonstrative.
			`\b(?:over|right|up|down|out)\s+there\b`,
			`\bthere\s+(?:it|he|she|they|are|is|was|were)\b`,
			`\bthere's\s+(?:the|a|an|my|your|his|her|our|their)\b`,
			// Interjection: "there, there".
			`\bthere\s*,\s*there\b`,
			// Emphatic.
			`\bthere\s+you\s+go\b`,
		),
		def: true,
	},
	"here": {
		unstressed: compileAll(
			`\bhere\s+and\s+there\b`,
		),
		stressed: compileAll(
			`\b(?:over|right|up|down|out)\s+here\b`,
			`\bhere\s+(?:it|he|she|they|are|is|was|were)\b`,
			`\bcome\s+here\b`,
			`\bhere\s+you\s+go\b`,
		),
		def: true,
	},
	"where": {
		stressed: compileAll(
			`\bwhere\s+(?:is|are|was|were|do|does|did|will|would|can|could)\b`,
			`\bwhere\s+you\b`,
		),
		def: true,
	},
	"when": {
		stressed: compileAll(
			`\bwhen\s+(?:is|are|was|were|do|does|did|will|would|can|could)\b`,
			`\bwhen\s+you\b`,
		),
		def: true,
	},
	"what": {
		stressed: compileAll(
			`\bwhat\s+(?:is|are|was|were|do|does|did|will|would|can|could)\b`,
			`\bwhat\s+(?:a|an|the)\b`,
		),
		def: true,
	},
	"how": {
		stressed: compileAll(
			`\bhow\s+(?:is|are|was|were|do|does|did|will|would|can|could)\b`,
			`\bhow\s+(?:much|many|long|far|often)\b`,
		),
		def: true,
	},
	"why": {
		stressed: compileAll(
			`\bwhy\s+(?:is|are|was|were|do|does|did|will|would|can|could)\b`,
			`\bwhy\s+not\b`,
		),
		def: true,
	},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// AnalyzeContextualStress decides whether a contextual word is stressed in
// its surrounding text. The position parameter is the character offset of
// the word within the context; it is part of the caller contract but the
// current rule tables match on the whole context. The second return value
// is false when the word is not in the contextual set.
func AnalyzeContextualStress(word, context string, position int) (stressed, ok bool) {
	rules, ok := contextualWords[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return false, false
	}

	lower := strings.ToLower(context)

	// Unstressed patterns first: negative evidence wins over the default
	// locative reading.
	for _, re := range rules.unstressed {
		if re.MatchString(lower) {
			return false, true
		}
	}
	for _, re := range rules.stressed {
		if re.MatchString(lower) {
			return true, true
		}
	}

	return rules.def, true
}
