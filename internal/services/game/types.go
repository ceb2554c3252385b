package game

import (
	"time"

	"github.com/KirkDiggler/beerrace/internal/common/clock"
	"github.com/KirkDiggler/beerrace/internal/common/uuid"
	"github.com/KirkDiggler/beerrace/internal/models"
	ledgerRepo "github.com/KirkDiggler/beerrace/internal/repositories/stats_ledger"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	"github.com/KirkDiggler/beerrace/internal/services/race"
	"github.com/KirkDiggler/beerrace/internal/services/settlement"
	"github.com/charmbracelet/log"
)

// Defaults for the table
const (
	DefaultMaxPlayers     = 12
	DefaultVerdictTimeout = 15 * time.Second

	// FallbackPenalty is used when no verdict could be produced at all
	FallbackPenalty = "Drink 100%"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per table
	MaxPlayers int

	// BetAmount is the starting bet, defaults to models.DefaultBet
	BetAmount int64

	// VerdictTimeout bounds how long penalty generation may take
	VerdictTimeout time.Duration

	// DefaultRoster seats the default players on a new table
	DefaultRoster bool

	// Repository dependencies
	LedgerRepo ledgerRepo.Repository

	// Service dependencies
	Engine        race.Service
	Settlement    settlement.Service
	Messaging     messaging.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Notifier is optional
	Notifier Notifier

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// AddPlayerInput contains parameters for seating a player
type AddPlayerInput struct {
	// Name is the display name, blank picks P<n>
	Name string

	// PlayerID is optional, a new ID is generated when empty
	PlayerID string
}

// AddPlayerOutput contains the seated player
type AddPlayerOutput struct {
	Player *models.Player
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	PlayerID string
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	Removed *models.Player
}

// RenamePlayerInput contains parameters for renaming a player
type RenamePlayerInput struct {
	PlayerID string
	Name     string
}

// RenamePlayerOutput contains the renamed player
type RenamePlayerOutput struct {
	Player *models.Player
}

// AttachPortraitInput contains parameters for attaching a portrait
type AttachPortraitInput struct {
	PlayerID string

	// URL is stored as is
	URL string
}

// AttachPortraitOutput contains the updated player
type AttachPortraitOutput struct {
	Player *models.Player
}

// SetBetInput contains the new bet
type SetBetInput struct {
	Amount int64
}

// SetBetOutput contains the bet now in effect
type SetBetOutput struct {
	BetAmount int64
}

// StartRaceInput contains parameters for starting a race
type StartRaceInput struct {
}

// StartRaceOutput contains the race that just started
type StartRaceOutput struct {
	Race *models.Race
}

// TickInput contains the time since the previous tick
type TickInput struct {
	Elapsed time.Duration
}

// TickOutput contains the race after the tick
type TickOutput struct {
	Race *models.Race

	// NewlyFinished are players who emptied their glass this tick, in rank order
	NewlyFinished []string

	// Finished indicates the race completed on this tick
	Finished bool
}

// ResetRaceInput contains parameters for resetting the table
type ResetRaceInput struct {
}

// ResetRaceOutput contains the idle table
type ResetRaceOutput struct {
	Race *models.Race
}

// GetRaceInput contains parameters for reading the table
type GetRaceInput struct {
}

// GetRaceOutput contains a table snapshot
type GetRaceOutput struct {
	Race *models.Race

	// VerdictPending indicates the penalty is still being written
	VerdictPending bool
}

// GetLeaderboardInput contains parameters for reading the standings
type GetLeaderboardInput struct {
}

// GetLeaderboardOutput contains the standings, best first
type GetLeaderboardOutput struct {
	Entries []*models.PlayerStats
}
