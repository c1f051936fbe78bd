package cli

import "testing"

func TestNewFlagsDefaults(t *testing.T) {
	flags := NewFlags()

	if flags.G2PProvider != "espeak" {
		t.Errorf("G2PProvider = %q, want espeak", flags.G2PProvider)
	}
	if flags.ESpeakVoice != "en-us" {
		t.Errorf("ESpeakVoice = %q, want en-us", flags.ESpeakVoice)
	}
	if flags.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want gpt-4o-mini", flags.OpenAIModel)
	}
	if flags.JSONOutput || flags.ShowStats || flags.ListModels {
		t.Error("boolean flags should default to false")
	}
	if flags.Position != 0 {
		t.Errorf("Position = %d, want 0", flags.Position)
	}
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "prosody [text]" {
		t.Errorf("Use = %q", cmd.Use)
	}

	for _, name := range []string{
		"dict", "batch", "json", "stats", "list-models",
		"word", "context", "position",
		"g2p", "g2p-cache", "espeak-voice", "openai-model",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("persistent flag --config not registered")
	}
}

func TestRootCommandParsesFlags(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	err := cmd.ParseFlags([]string{
		"--batch", "lyrics.txt",
		"--json",
		"--g2p", "none",
		"--word", "there",
		"--context", "There is a house",
		"--position", "0",
	})
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	if flags.BatchFile != "lyrics.txt" {
		t.Errorf("BatchFile = %q", flags.BatchFile)
	}
	if !flags.JSONOutput {
		t.Error("JSONOutput not set")
	}
	if flags.G2PProvider != "none" {
		t.Errorf("G2PProvider = %q", flags.G2PProvider)
	}
	if flags.Word != "there" || flags.Context != "There is a house" {
		t.Errorf("contextual flags = %q / %q", flags.Word, flags.Context)
	}
}
