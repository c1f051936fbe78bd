package stress

import (
	"reflect"
	"testing"
)

func TestAlignToCharacters(t *testing.T) {
	tests := []struct {
		word      string
		syllables int
		want      []int
	}{
		// Exact vowel match.
		{"banana", 3, []int{1, 3, 5}},
		// Silent final 'e' dropped.
		{"house", 2, []int{1, 2}},
		{"love", 1, []int{1}},
		{"complete", 2, []int{1, 5}},
		// More vowels than syllables: proportional resampling.
		{"beautiful", 3, []int{1, 2, 5}},
		// Fewer vowels than syllables: last position repeated.
		{"rhythm", 2, []int{2, 2}},
		// Case-insensitive.
		{"BANANA", 3, []int{1, 3, 5}},
		// No vowel letters means no anchors.
		{"tsk", 1, []int{}},
		{"hmm", 2, []int{}},
		// Degenerate syllable counts.
		{"banana", 0, []int{}},
		{"banana", -1, []int{}},
	}

	for _, tt := range tests {
		got := AlignToCharacters(tt.word, tt.syllables)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AlignToCharacters(%q, %d) = %v, want %v", tt.word, tt.syllables, got, tt.want)
		}
	}
}

func TestAlignToCharactersLengthContract(t *testing.T) {
	// For any word with at least one vowel letter, the alignment has
	// exactly one index per syllable.
	words := []string{"a", "over", "street", "walking", "feeling", "extraordinary"}
	for _, word := range words {
		for n := 1; n <= 5; n++ {
			got := AlignToCharacters(word, n)
			if len(got) != n {
				t.Errorf("AlignToCharacters(%q, %d) has %d positions", word, n, len(got))
			}
		}
	}
}
