package cli

// Flags holds all command-line flag values.
type Flags struct {
	// General flags
	CfgFile    string
	DictPath   string
	BatchFile  string
	JSONOutput bool
	ShowStats  bool
	ListModels bool

	// Contextual stress check flags
	Word     string
	Context  string
	Position int

	// G2P flags
	G2PProvider  string
	G2PCachePath string
	ESpeakVoice  string
	OpenAIModel  string
}

// NewFlags creates a new Flags instance with default values.
func NewFlags() *Flags {
	return &Flags{
		G2PProvider: "espeak",
		ESpeakVoice: "en-us",
		OpenAIModel: "gpt-4o-mini",
	}
}
