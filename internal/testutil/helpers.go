package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDictionary writes a CMU-format dictionary file into a temporary
// directory and returns its path.
func WriteDictionary(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cmudict-test")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test dictionary: %v", err)
	}
	return path
}

// SampleDictionary is a small CMU-format corpus covering the words used in
// pipeline tests. The parenthesized WALKING(1) line exercises variant
// skipping.
const SampleDictionary = `;;; test corpus
A  AH0
AN  AE1 N
THE  DH AH0
OF  AH0 V
I  AY1
IT  IH1 T
IS  IH1 Z
SO  S OW1
NOT  N AA1 T
LOVE  L AH1 V
RUN  R AH1 N
OVER  OW1 V ER0
THERE  DH EH1 R
HOUSE  HH AW1 S
DOWN  D AW1 N
STREET  S T R IY1 T
WALKING  W AO1 K IH0 NG
WALKING(1)  W AO1 K IH2 NG
FEELING  F IY1 L IH0 NG
COMPLETE  K AH0 M P L IY1 T
BANANA  B AH0 N AE1 N AH0
TSK  T S K
`

// WriteLinesFile writes arbitrary text into a temporary file and returns
// its path. Used by batch tests.
func WriteLinesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write lines file: %v", err)
	}
	return path
}
