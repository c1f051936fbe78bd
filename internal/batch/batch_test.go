package batch

import (
	"reflect"
	"testing"

	"github.com/verselab/prosody/internal/testutil"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "trailing newline dropped",
			content: "Walking down the street\nFeeling so complete\n",
			want:    []string{"Walking down the street", "Feeling so complete"},
		},
		{
			name:    "no trailing newline",
			content: "Walking down the street\nFeeling so complete",
			want:    []string{"Walking down the street", "Feeling so complete"},
		},
		{
			name:    "interior blank lines preserved",
			content: "verse one\n\nverse two\n",
			want:    []string{"verse one", "", "verse two"},
		},
		{
			name:    "windows line endings",
			content: "one\r\ntwo\r\n",
			want:    []string{"one", "two"},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(testutil.WriteLinesFile(t, tt.content))
			if err != nil {
				t.Fatalf("ReadLines() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines("/nonexistent/lyrics.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
