// Package stress is the lyric stress-analysis engine. It combines the
// pronouncing dictionary, a POS tagger and a grapheme-to-phoneme fallback
// to decide, for every word of a lyric line, how many syllables it has,
// which carry primary or secondary stress, and where stress marks anchor in
// the original spelling. A whole-line smoothing pass breaks up unnatural
// runs of three or more stressed syllables.
package stress
