package stress

import "strings"

// orthographic vowel letters, y included.
const vowelLetters = "aeiouy"

// AlignToCharacters maps a syllable count onto character indices in the
// word's spelling, one index per syllable, where a stress glyph should
// anchor. A word with no vowel letters yields an empty alignment; callers
// skip stress-mark rendering for those.
func AlignToCharacters(word string, syllableCount int) []int {
	var positions []int
	for i, r := range strings.ToLower(word) {
		if strings.ContainsRune(vowelLetters, r) {
			positions = append(positions, i)
		}
	}

	if len(positions) == 0 || syllableCount <= 0 {
		return []int{}
	}

	if len(positions) == syllableCount {
		return positions
	}

	if len(positions) > syllableCount {
		// Too many vowels: likely a silent final 'e' or a diphthong.
		if strings.HasSuffix(strings.ToLower(word), "e") && len(positions) > 1 {
			positions = positions[:len(positions)-1]
		}

		// Still too many: resample proportionally across the vowel list.
		if len(positions) > syllableCount {
			step := float64(len(positions)) / float64(syllableCount)
			resampled := make([]int, syllableCount)
			for i := 0; i < syllableCount; i++ {
				resampled[i] = positions[int(float64(i)*step)]
			}
			return resampled
		}
	} else {
		// Too few vowels: extend by repeating the last position.
		for len(positions) < syllableCount {
			positions = append(positions, positions[len(positions)-1])
		}
	}

	return positions[:syllableCount]
}
