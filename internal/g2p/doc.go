// Package g2p provides grapheme-to-phoneme prediction for words missing
// from the pronouncing dictionary. Providers return ARPAbet-style symbols,
// vowels suffixed with a stress digit (0, 1 or 2). Two implementations are
// available: a local one shelling out to espeak-ng and a remote one asking
// an OpenAI chat model, plus a combinator that falls back from one to the
// other. An optional SQLite cache persists predictions across runs.
package g2p
