package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verselab/prosody/internal/batch"
	"github.com/verselab/prosody/internal/cli"
	"github.com/verselab/prosody/internal/dict"
	"github.com/verselab/prosody/internal/g2p"
	"github.com/verselab/prosody/internal/models"
	"github.com/verselab/prosody/internal/stress"
	"github.com/verselab/prosody/internal/tagger"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Handle the contextual stress check, which needs no dictionary or
	// tagger at all.
	if flags.Word != "" {
		return runContextualCheck(flags)
	}

	dictPath := flags.DictPath
	if !cmd.Flags().Changed("dict") {
		if configured := viper.GetString("dictionary.path"); configured != "" {
			dictPath = configured
		}
	}

	dictionary, err := dict.Load(dictPath)
	if err != nil {
		return err
	}

	// Handle --stats flag
	if flags.ShowStats {
		stats := dictionary.Stats()
		fmt.Printf("Dictionary: %s\n", dictPath)
		fmt.Printf("  Total words:       %d\n", stats.TotalWords)
		fmt.Printf("  Words with stress: %d\n", stats.WordsWithStress)
		return nil
	}

	analyzer, err := buildAnalyzer(dictionary, flags)
	if err != nil {
		return err
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		lines, err := batch.ReadLines(flags.BatchFile)
		if err != nil {
			return err
		}
		results, err := analyzer.AnalyzeLines(lines)
		if err != nil {
			return err
		}
		if flags.JSONOutput {
			return printJSON(results)
		}
		for _, r := range results {
			fmt.Printf("Line %d: %s\n", r.Line, r.Text)
			printWords(&r.Result)
		}
		return nil
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	result, err := analyzer.Analyze(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if flags.JSONOutput {
		return printJSON(result)
	}
	fmt.Println(result.Text)
	printWords(result)
	return nil
}

// buildAnalyzer wires the dictionary, tagger and configured G2P provider
// into the analysis pipeline.
func buildAnalyzer(dictionary *dict.Dictionary, flags *cli.Flags) (*stress.Analyzer, error) {
	posTagger, err := tagger.NewProseTagger()
	if err != nil {
		return nil, err
	}

	var provider g2p.Provider
	if flags.G2PProvider != "none" && flags.G2PProvider != "" {
		cfg := &g2p.Config{
			Provider:    flags.G2PProvider,
			ESpeakVoice: flags.ESpeakVoice,
			OpenAIKey:   cli.GetOpenAIKey(),
			OpenAIModel: flags.OpenAIModel,
			CachePath:   flags.G2PCachePath,
		}
		provider, err = g2p.NewProvider(cfg)
		if err != nil {
			// A missing G2P backend degrades the pipeline instead of
			// blocking it; unknown words become single stressed syllables.
			fmt.Fprintf(os.Stderr, "G2P provider unavailable, continuing without fallback: %v\n", err)
			provider = nil
		}
	}

	return stress.New(dictionary, posTagger, provider)
}

func runContextualCheck(flags *cli.Flags) error {
	if flags.Context == "" {
		return fmt.Errorf("--context is required with --word")
	}

	stressed, ok := stress.AnalyzeContextualStress(flags.Word, flags.Context, flags.Position)
	if flags.JSONOutput {
		return printJSON(map[string]any{
			"word":       flags.Word,
			"contextual": ok,
			"stressed":   ok && stressed,
		})
	}

	if !ok {
		fmt.Printf("%q is not a contextual word\n", flags.Word)
		return nil
	}
	if stressed {
		fmt.Printf("%q is stressed in %q\n", flags.Word, flags.Context)
	} else {
		fmt.Printf("%q is unstressed in %q\n", flags.Word, flags.Context)
	}
	return nil
}

func printWords(result *stress.Result) {
	for _, w := range result.Words {
		fmt.Printf("  %-14s %-6s %-20s %-8s %s\n",
			w.Word, w.PartOfSpeech,
			strings.Join(w.Syllables, "·"),
			formatPattern(w.StressPattern),
			w.Reasoning)
	}
	fmt.Printf("  %d syllables, %d stressed (%.1f ms)\n\n",
		result.TotalSyllables, result.StressedSyllables, result.ProcessingTimeMs)
}

func formatPattern(pattern []int) string {
	var b strings.Builder
	for _, d := range pattern {
		fmt.Fprintf(&b, "%d", d)
	}
	return b.String()
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
