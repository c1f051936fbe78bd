// Package dict loads and serves a CMU-format pronouncing dictionary for
// stress pattern lookup. The dictionary is read once at startup from a flat
// text file and is read-only afterwards, so it can be shared freely across
// concurrent analysis calls. Lookups are memoized in a bounded LRU cache
// since the same words repeat heavily across a song's lyrics.
package dict
