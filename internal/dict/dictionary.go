package dict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrLoad indicates the dictionary file could not be loaded. The dictionary
// is required, so callers should treat this as fatal at startup.
var ErrLoad = errors.New("cannot load pronunciation dictionary")

// lookupCacheSize bounds the lookup memoization cache.
const lookupCacheSize = 10000

// commentPrefix marks comment lines in the CMU dictionary format.
const commentPrefix = ";;;"

// Entry holds the pronunciation of a single dictionary word. Entries are
// immutable after load.
type Entry struct {
	// Word is the normalized (lower-cased, trimmed) lookup key.
	Word string
	// Phonemes is the ordered ARPAbet phoneme sequence. Vowel phonemes
	// carry a trailing stress digit (0, 1 or 2).
	Phonemes []string
	// Syllables approximates the orthographic syllables of the word, one
	// per vowel-bearing phoneme. This is a display aid, not a linguistic
	// segmentation.
	Syllables []string
	// StressPattern holds one stress digit per syllable.
	StressPattern []int
}

// Stats reports aggregate counts computed at load time.
type Stats struct {
	TotalWords      int `json:"total_words"`
	WordsWithStress int `json:"words_with_stress"`
}

// Dictionary is a loaded pronouncing dictionary. It is safe for concurrent
// use: the entry table is read-only after Load and the memoization cache is
// internally synchronized.
type Dictionary struct {
	entries map[string]*Entry
	cache   *lru.Cache[string, *Entry]
	stats   Stats
}

// Load reads and parses a CMU-format dictionary file. Each line is
// "WORD PHONEME1 PHONEME2 ...". Comment lines and lines without at least
// one phoneme are skipped, as are parenthesized variant pronunciations
// (e.g. "WORD(1)") so only the primary pronunciation is retained.
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer file.Close()

	d := &Dictionary{entries: make(map[string]*Entry)}

	skipped := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(decodeLatin1(scanner.Bytes()))
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			skipped++
			continue
		}

		word := parts[0]
		if strings.Contains(word, "(") {
			// Variant pronunciation like WORD(1); keep the primary only.
			continue
		}

		phonemes := parts[1:]
		key := strings.ToLower(word)
		d.entries[key] = &Entry{
			Word:          key,
			Phonemes:      phonemes,
			Syllables:     sliceSyllables(key, phonemes),
			StressPattern: extractStressPattern(phonemes),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d malformed dictionary lines in %s\n", skipped, path)
	}

	d.stats.TotalWords = len(d.entries)
	for _, e := range d.entries {
		for _, s := range e.StressPattern {
			if s > 0 {
				d.stats.WordsWithStress++
				break
			}
		}
	}

	cache, err := lru.New[string, *Entry](lookupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	d.cache = cache

	return d, nil
}

// Lookup returns the entry for a word, or nil if the word is not in the
// dictionary. Lookup is case- and whitespace-insensitive and memoized.
func (d *Dictionary) Lookup(word string) *Entry {
	key := strings.ToLower(strings.TrimSpace(word))
	if entry, ok := d.cache.Get(key); ok {
		return entry
	}
	entry := d.entries[key]
	d.cache.Add(key, entry)
	return entry
}

// Has reports whether a word exists in the dictionary.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.entries[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Stats returns the load-time aggregate counts.
func (d *Dictionary) Stats() Stats {
	return d.stats
}

// extractStressPattern collects the trailing stress digits of the phoneme
// sequence. Phonemes without a trailing digit are consonants and contribute
// nothing.
func extractStressPattern(phonemes []string) []int {
	pattern := make([]int, 0, len(phonemes))
	for _, p := range phonemes {
		if d, ok := trailingDigit(p); ok {
			pattern = append(pattern, d)
		}
	}
	return pattern
}

// sliceSyllables approximates orthographic syllables by cutting the word
// into N equal-width spans, N being the vowel-bearing phoneme count. Words
// with at most one vowel phoneme stay whole. Downstream character alignment
// depends on the vowel count being consistent, not on the slice text being
// linguistically accurate, so this crude policy is kept as-is.
func sliceSyllables(word string, phonemes []string) []string {
	vowelCount := 0
	for _, p := range phonemes {
		if _, ok := trailingDigit(p); ok {
			vowelCount++
		}
	}

	if vowelCount <= 1 {
		return []string{word}
	}

	length := len(word)
	width := float64(length) / float64(vowelCount)

	syllables := make([]string, 0, vowelCount)
	for i := 0; i < vowelCount; i++ {
		start := int(float64(i) * width)
		end := length
		if i < vowelCount-1 {
			end = int(float64(i+1) * width)
		}
		syllables = append(syllables, word[start:end])
	}
	return syllables
}

// trailingDigit returns the stress digit at the end of a phoneme symbol.
func trailingDigit(phoneme string) (int, bool) {
	if phoneme == "" {
		return 0, false
	}
	last := phoneme[len(phoneme)-1]
	if last < '0' || last > '9' {
		return 0, false
	}
	return int(last - '0'), true
}

// decodeLatin1 converts a latin-1 encoded line to a UTF-8 string. The CMU
// corpus contains a handful of non-ASCII bytes in comments.
func decodeLatin1(b []byte) string {
	for _, c := range b {
		if c >= 0x80 {
			runes := make([]rune, len(b))
			for i, c := range b {
				runes[i] = rune(c)
			}
			return string(runes)
		}
	}
	return string(b)
}
