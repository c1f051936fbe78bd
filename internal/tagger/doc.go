// Package tagger defines the tokenizer/part-of-speech contract the stress
// pipeline consumes and provides a default implementation backed by the
// prose NLP library. Tokens expose a coarse universal POS tag, a dependency
// role (at minimum flagging phrasal-verb particles), a lemma and a
// punctuation flag.
package tagger
