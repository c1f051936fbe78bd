package dict

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/verselab/prosody/internal/testutil"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing dictionary file")
	}
	if !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
}

func TestLoadSkipsCommentsVariantsAndMalformed(t *testing.T) {
	path := testutil.WriteDictionary(t, `;;; a comment line
HELLO  HH AH0 L OW1
HELLO(1)  HH EH0 L OW1
BROKEN
WORLD  W ER1 L D
`)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	stats := d.Stats()
	if stats.TotalWords != 2 {
		t.Errorf("TotalWords = %d, want 2", stats.TotalWords)
	}

	// The variant pronunciation must not replace the primary one.
	entry := d.Lookup("hello")
	if entry == nil {
		t.Fatal("Lookup(hello) returned nil")
	}
	if !reflect.DeepEqual(entry.Phonemes, []string{"HH", "AH0", "L", "OW1"}) {
		t.Errorf("unexpected phonemes: %v", entry.Phonemes)
	}
}

func TestLookupNormalization(t *testing.T) {
	d := loadSample(t)

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"lowercase", "banana", true},
		{"uppercase", "BANANA", true},
		{"mixed case", "BaNaNa", true},
		{"surrounding whitespace", "  banana  ", true},
		{"unknown word", "xylocarp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := d.Lookup(tt.query)
			if (entry != nil) != tt.found {
				t.Errorf("Lookup(%q) found=%v, want %v", tt.query, entry != nil, tt.found)
			}
		})
	}
}

func TestLookupMemoized(t *testing.T) {
	d := loadSample(t)

	first := d.Lookup("banana")
	second := d.Lookup("banana")
	if first != second {
		t.Error("repeated lookups should return the identical entry")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated lookups should return identical contents")
	}
}

func TestEntryDerivation(t *testing.T) {
	d := loadSample(t)

	tests := []struct {
		word      string
		syllables []string
		stress    []int
	}{
		// Equal-width slicing: 6 characters, 3 vowel phonemes.
		{"banana", []string{"ba", "na", "na"}, []int{0, 1, 0}},
		{"over", []string{"ov", "er"}, []int{1, 0}},
		// One vowel phoneme keeps the word whole.
		{"house", []string{"house"}, []int{1}},
		// Zero vowel phonemes fall back to a single whole-word syllable.
		{"tsk", []string{"tsk"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			entry := d.Lookup(tt.word)
			if entry == nil {
				t.Fatalf("Lookup(%q) returned nil", tt.word)
			}
			if !reflect.DeepEqual(entry.Syllables, tt.syllables) {
				t.Errorf("Syllables = %v, want %v", entry.Syllables, tt.syllables)
			}
			if len(entry.StressPattern) != len(tt.stress) {
				t.Fatalf("StressPattern = %v, want %v", entry.StressPattern, tt.stress)
			}
			for i := range tt.stress {
				if entry.StressPattern[i] != tt.stress[i] {
					t.Errorf("StressPattern = %v, want %v", entry.StressPattern, tt.stress)
					break
				}
			}
		})
	}
}

func TestStatsRoundTrip(t *testing.T) {
	path := testutil.WriteDictionary(t, testutil.SampleDictionary)

	first, err := Load(path)
	if err != nil {
		t.Fatalf("first Load() failed: %v", err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}

	if first.Stats() != second.Stats() {
		t.Errorf("reloading the same file changed stats: %+v vs %+v",
			first.Stats(), second.Stats())
	}
	if first.Stats().TotalWords == 0 {
		t.Error("expected a non-empty dictionary")
	}
	if first.Stats().WordsWithStress >= first.Stats().TotalWords {
		t.Errorf("expected some words without stress, got %+v", first.Stats())
	}
}

func loadSample(t *testing.T) *Dictionary {
	t.Helper()

	d, err := Load(testutil.WriteDictionary(t, testutil.SampleDictionary))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return d
}
