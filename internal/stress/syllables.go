package stress

import "strings"

// approximateSyllables splits a word into n orthographic syllables when no
// dictionary segmentation exists. Boundaries favor the midpoint between
// adjacent vowel positions; when the word has fewer vowel letters than
// syllables, it falls back to dividing the word length evenly. This is a
// display approximation, kept bug-for-bug stable for downstream alignment.
func approximateSyllables(word string, n int) []string {
	if n <= 1 {
		return []string{word}
	}

	var vowelPos []int
	for i, r := range strings.ToLower(word) {
		if strings.ContainsRune(vowelLetters, r) {
			vowelPos = append(vowelPos, i)
		}
	}

	if len(vowelPos) >= n {
		var syllables []string
		consumed := 0
		for i := 0; i < n; i++ {
			switch {
			case i == 0:
				split := min(vowelPos[1], (vowelPos[0]+vowelPos[1])/2+1)
				syllables = append(syllables, word[:split])
				consumed = split
			case i == n-1:
				syllables = append(syllables, word[consumed:])
			default:
				nextVowel := min(i+1, len(vowelPos)-1)
				split := min(vowelPos[nextVowel], (vowelPos[i]+vowelPos[nextVowel])/2+1)
				if split < consumed {
					split = consumed
				}
				syllables = append(syllables, word[consumed:split])
				consumed = split
			}
		}

		nonEmpty := syllables[:0]
		for _, s := range syllables {
			if s != "" {
				nonEmpty = append(nonEmpty, s)
			}
		}
		return nonEmpty
	}

	// Fewer vowels than syllables: divide the word length evenly.
	width := float64(len(word)) / float64(n)
	syllables := make([]string, 0, n)
	for i := 0; i < n; i++ {
		start := int(float64(i) * width)
		end := len(word)
		if i < n-1 {
			end = int(float64(i+1) * width)
		}
		syllables = append(syllables, word[start:end])
	}
	return syllables
}
