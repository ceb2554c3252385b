package settlement

import "github.com/KirkDiggler/beerrace/internal/models"

// Prize split defaults
const (
	DefaultSecondShare        = 0.30
	DefaultThirdShare         = 0.20
	DefaultRoundingUnit int64 = 5000
)

// Config holds configuration for the settlement calculator
type Config struct {
	// SecondShare is the fraction of the pot paid to rank 2 before rounding
	SecondShare float64

	// ThirdShare is the fraction of the pot paid to rank 3 before rounding
	ThirdShare float64

	// RoundingUnit is the multiple the second and third prizes are rounded to
	RoundingUnit int64
}

// SettleInput contains a completed race
type SettleInput struct {
	// Players is the ranked roster
	Players []*models.Player

	// BetAmount is what every player paid in
	BetAmount int64
}

// SettleOutput contains the settled race
type SettleOutput struct {
	// Players is the roster with PrizeMoney filled in
	Players []*models.Player

	// Pot is the prize breakdown
	Pot *models.Pot

	// LoserID is the player holding the highest rank
	LoserID string

	// WinnerID is the player holding rank 1, empty if nobody does
	WinnerID string
}
