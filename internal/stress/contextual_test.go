package stress

import "testing"

func TestAnalyzeContextualStress(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		context  string
		stressed bool
		ok       bool
	}{
		{
			name:     "existential there at sentence start",
			word:     "there",
			context:  "There is a house",
			stressed: false,
			ok:       true,
		},
		{
			name:     "existential there after punctuation",
			word:     "there",
			context:  "We sang. There was a light",
			stressed: false,
			ok:       true,
		},
		{
			name:     "locative there",
			word:     "there",
			context:  "I love it over there",
			stressed: true,
			ok:       true,
		},
		{
			name:     "interjection there there",
			word:     "there",
			context:  "there, there, it will be fine",
			stressed: true,
			ok:       true,
		},
		{
			name:     "there default is stressed",
			word:     "there",
			context:  "somewhere out yonder",
			stressed: true,
			ok:       true,
		},
		{
			name:     "here and there is unstressed",
			word:     "here",
			context:  "we wandered here and there",
			stressed: false,
			ok:       true,
		},
		{
			name:     "come here is stressed",
			word:     "here",
			context:  "come here my love",
			stressed: true,
			ok:       true,
		},
		{
			name:     "interrogative what",
			word:     "what",
			context:  "what a day it has been",
			stressed: true,
			ok:       true,
		},
		{
			name:     "why not",
			word:     "why",
			context:  "why not tonight",
			stressed: true,
			ok:       true,
		},
		{
			name:     "why default stressed",
			word:     "why",
			context:  "tell me the reason why",
			stressed: true,
			ok:       true,
		},
		{
			name:    "non-contextual word",
			word:    "banana",
			context: "a banana on the table",
			ok:      false,
		},
		{
			name:     "word normalization",
			word:     " THERE ",
			context:  "There is a house",
			stressed: false,
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stressed, ok := AnalyzeContextualStress(tt.word, tt.context, 0)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && stressed != tt.stressed {
				t.Errorf("stressed = %v, want %v", stressed, tt.stressed)
			}
		})
	}
}

func TestUnstressedPatternsWinOverStressed(t *testing.T) {
	// "there are" matches both a stressed pattern ("there + are") and the
	// indefinite-article unstressed pattern; negative evidence must win.
	stressed, ok := AnalyzeContextualStress("there", "I know there are some ghosts", 7)
	if !ok {
		t.Fatal("expected a contextual verdict")
	}
	if stressed {
		t.Error("unstressed patterns must be evaluated before stressed ones")
	}
}
