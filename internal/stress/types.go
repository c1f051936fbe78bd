package stress

// WordAnalysis is the stress analysis of a single word.
type WordAnalysis struct {
	Word          string   `json:"word"`
	PartOfSpeech  string   `json:"pos"`
	Syllables     []string `json:"syllables"`
	StressPattern []int    `json:"stress_pattern"` // 0=unstressed, 1=primary, 2=secondary
	Reasoning     string   `json:"reasoning"`      // symbolic tag naming the rule that fired
	CharPositions []int    `json:"char_positions"` // character indices for stress mark placement
	Confidence    float64  `json:"confidence"`
}

// Result is the complete stress analysis of one text unit.
type Result struct {
	Text              string         `json:"text"`
	Words             []WordAnalysis `json:"words"`
	TotalSyllables    int            `json:"total_syllables"`
	StressedSyllables int            `json:"stressed_syllables"`
	ProcessingTimeMs  float64        `json:"processing_time_ms"`
}

// LineResult is one line of a batch analysis. Line numbers are 1-based
// over non-skipped lines only; blank lines do not consume a number.
type LineResult struct {
	Line int `json:"line"`
	Result
}
