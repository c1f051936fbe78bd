package g2p

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// ESpeakProvider predicts phonemes by running espeak-ng with IPA output
// and mapping the IPA symbols onto ARPAbet.
type ESpeakProvider struct {
	voice string
}

// NewESpeakProvider creates a new espeak-ng backed provider.
func NewESpeakProvider(config *Config) (*ESpeakProvider, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	voice := config.ESpeakVoice
	if voice == "" {
		voice = "en-us"
	}
	return &ESpeakProvider{voice: voice}, nil
}

// Predict runs espeak-ng for a single word and converts its IPA
// transcription to ARPAbet symbols with stress digits.
func (p *ESpeakProvider) Predict(ctx context.Context, word string) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("word cannot be empty")
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", "-q", "--ipa", "-v", p.voice, word)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("espeak-ng failed: %w", err)
	}

	return FilterSymbols(ipaToARPAbet(strings.TrimSpace(string(output)))), nil
}

// Name returns the provider name.
func (p *ESpeakProvider) Name() string {
	return "espeak"
}

// IsAvailable checks if espeak-ng can be executed.
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}

// checkESpeakInstalled verifies that espeak-ng is available on the system.
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// ipaSymbol maps one IPA symbol (longest first) to its ARPAbet equivalent.
type ipaSymbol struct {
	ipa     string
	arpabet string
	vowel   bool
}

// ipaTable is ordered longest-match-first so diphthongs and affricates win
// over their single-character prefixes.
var ipaTable = []ipaSymbol{
	{"aɪə", "AY", true},
	{"aʊə", "AW", true},
	{"aɪ", "AY", true},
	{"aʊ", "AW", true},
	{"eɪ", "EY", true},
	{"oʊ", "OW", true},
	{"əʊ", "OW", true},
	{"ɔɪ", "OY", true},
	{"ɜː", "ER", true},
	{"ɑː", "AA", true},
	{"ɔː", "AO", true},
	{"iː", "IY", true},
	{"uː", "UW", true},
	{"tʃ", "CH", false},
	{"dʒ", "JH", false},
	{"ɝ", "ER", true},
	{"ɚ", "ER", true},
	{"ɜ", "ER", true},
	{"i", "IY", true},
	{"ɪ", "IH", true},
	{"u", "UW", true},
	{"ʊ", "UH", true},
	{"ɛ", "EH", true},
	{"e", "EH", true},
	{"æ", "AE", true},
	{"a", "AE", true},
	{"ʌ", "AH", true},
	{"ə", "AH", true},
	{"ɐ", "AH", true},
	{"ɑ", "AA", true},
	{"ɒ", "AA", true},
	{"ɔ", "AO", true},
	{"ʃ", "SH", false},
	{"ʒ", "ZH", false},
	{"θ", "TH", false},
	{"ð", "DH", false},
	{"ŋ", "NG", false},
	{"j", "Y", false},
	{"ɹ", "R", false},
	{"r", "R", false},
	{"ɾ", "D", false},
	{"ɫ", "L", false},
	{"l", "L", false},
	{"w", "W", false},
	{"h", "HH", false},
	{"ɡ", "G", false},
	{"g", "G", false},
	{"p", "P", false},
	{"b", "B", false},
	{"t", "T", false},
	{"d", "D", false},
	{"k", "K", false},
	{"f", "F", false},
	{"v", "V", false},
	{"s", "S", false},
	{"z", "Z", false},
	{"m", "M", false},
	{"n", "N", false},
	{"x", "K", false},
	{"ʔ", "T", false},
}

// ipaToARPAbet converts an IPA transcription into ARPAbet symbols. IPA
// stress marks precede the syllable onset, so a pending stress digit is
// carried forward until the next vowel; vowels without a preceding mark
// get digit 0.
func ipaToARPAbet(ipa string) []string {
	var symbols []string
	pending := -1

	rest := ipa
	for len(rest) > 0 {
		switch {
		case strings.HasPrefix(rest, "ˈ"):
			pending = 1
			rest = rest[len("ˈ"):]
			continue
		case strings.HasPrefix(rest, "ˌ"):
			pending = 2
			rest = rest[len("ˌ"):]
			continue
		}

		matched := false
		for _, sym := range ipaTable {
			if strings.HasPrefix(rest, sym.ipa) {
				if sym.vowel {
					digit := 0
					if pending >= 0 {
						digit = pending
						pending = -1
					}
					symbols = append(symbols, fmt.Sprintf("%s%d", sym.arpabet, digit))
				} else {
					symbols = append(symbols, sym.arpabet)
				}
				rest = rest[len(sym.ipa):]
				matched = true
				break
			}
		}
		if !matched {
			// Length marks, syllabic diacritics, spaces and anything
			// unmapped are dropped one rune at a time.
			_, size := utf8.DecodeRuneInString(rest)
			rest = rest[size:]
		}
	}

	return symbols
}
