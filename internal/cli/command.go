package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verselab/prosody/internal"
)

// CreateRootCommand creates and configures the root cobra command.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prosody [text]",
		Short: "Lyric stress annotation engine",
		Long: `prosody annotates lyric text with syllable stress so an editor can
visualize and enforce rhythmic patterns.

For every word it determines the syllable count, which syllables carry
primary or secondary stress, and where the stress marks anchor in the
spelling, combining a CMU pronouncing dictionary, a statistical POS
tagger and a grapheme-to-phoneme fallback.

Examples:
  prosody "Walking down the street"       # Analyze one line
  prosody --batch lyrics.txt              # Analyze a file line by line
  prosody --word there --context "There is a house"
                                          # Contextual stress check
  prosody --stats                         # Dictionary statistics`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default dictionary location follows the XDG data directory.
	home, _ := os.UserHomeDir()
	defaultDict := filepath.Join(home, ".local", "share", "prosody", "cmudict-0.7b")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.prosody.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.DictPath, "dict", "d", defaultDict, "Pronouncing dictionary file (CMU format)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Analyze lines from file (one lyric line per line)")
	cmd.Flags().BoolVar(&flags.JSONOutput, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&flags.ShowStats, "stats", false, "Print dictionary statistics and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Contextual stress check flags
	cmd.Flags().StringVar(&flags.Word, "word", "", "Contextual word to check (there, here, where, when, what, how, why)")
	cmd.Flags().StringVar(&flags.Context, "context", "", "Surrounding text for --word")
	cmd.Flags().IntVar(&flags.Position, "position", 0, "Character position of --word within --context")

	// G2P flags
	cmd.Flags().StringVar(&flags.G2PProvider, "g2p", flags.G2PProvider, "G2P fallback provider: espeak, openai or none")
	cmd.Flags().StringVar(&flags.G2PCachePath, "g2p-cache", "", "SQLite file persisting G2P predictions across runs")
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "espeak-ng voice for the espeak provider")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai provider")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dictionary.path", cmd.Flags().Lookup("dict"))
	viper.BindPFlag("output.json", cmd.Flags().Lookup("json"))
	viper.BindPFlag("g2p.provider", cmd.Flags().Lookup("g2p"))
	viper.BindPFlag("g2p.cache", cmd.Flags().Lookup("g2p-cache"))
	viper.BindPFlag("g2p.espeak_voice", cmd.Flags().Lookup("espeak-voice"))
	viper.BindPFlag("g2p.openai_model", cmd.Flags().Lookup("openai-model"))
}

// InitConfig initializes viper configuration.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".prosody" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".prosody")
	}

	// Environment variables
	viper.SetEnvPrefix("PROSODY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config.
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("g2p.openai_key")
}
