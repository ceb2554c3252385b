package messaging

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/charmbracelet/log"
)

// Locale selects the language of prompts and fallback text
type Locale string

const (
	// LocaleEnglish is the default locale
	LocaleEnglish Locale = "en"

	// LocaleVietnamese selects Vietnamese prompts and fallbacks
	LocaleVietnamese Locale = "vi"
)

// ParseLocale converts a flag or env value into a Locale, empty means English
func ParseLocale(raw string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LocaleEnglish:
		return LocaleEnglish, nil
	case LocaleVietnamese:
		return LocaleVietnamese, nil
	default:
		return "", fmt.Errorf("unknown locale %q", raw)
	}
}

const (
	// PenaltyTemperature keeps the referee unpredictable
	PenaltyTemperature float32 = 1.1
)

// Config holds configuration for the messaging service
type Config struct {
	// Generator writes penalties and commentary, nil means offline
	Generator Generator

	// Locale defaults to English
	Locale Locale

	// Logger defaults to log.Default()
	Logger *log.Logger

	// Seed for picking canned lines, zero seeds from the current time
	Seed int64
}

// GenerateInput contains parameters for generating text
type GenerateInput struct {
	Prompt string

	// Temperature is optional, nil leaves the model default
	Temperature *float32
}

// GenerateOutput contains the generated text
type GenerateOutput struct {
	Text string
}

// GetPenaltyMessageInput contains parameters for getting a penalty
type GetPenaltyMessageInput struct {
	LoserName string
}

// GetPenaltyMessageOutput contains the penalty
type GetPenaltyMessageOutput struct {
	Message string

	// Offline is set when the message did not come from the generator
	Offline bool
}

// GetWinnerMessageInput contains parameters for getting winner commentary
type GetWinnerMessageInput struct {
	WinnerName string
}

// GetWinnerMessageOutput contains the commentary, possibly empty
type GetWinnerMessageOutput struct {
	Message string
	Offline bool
}

// GetVerdictInput contains parameters for getting the full verdict
type GetVerdictInput struct {
	LoserName  string
	WinnerName string
}

// GetVerdictOutput contains the penalty and the commentary
type GetVerdictOutput struct {
	Penalty    string
	Commentary string
	Offline    bool
}

// GetStatusMessageInput is the input for GetStatusMessage
type GetStatusMessageInput struct {
	Phase       models.RacePhase
	PlayerCount int
}

// GetStatusMessageOutput is the output for GetStatusMessage
type GetStatusMessageOutput struct {
	Message string
}

// GetDrunkMessageInput is the input for GetDrunkMessage
type GetDrunkMessageInput struct {
	PlayerName string
	LossCount  int
}

// GetDrunkMessageOutput is the output for GetDrunkMessage
type GetDrunkMessageOutput struct {
	Message string
}
