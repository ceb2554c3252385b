package race

import (
	"time"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/speed"
)

// DefaultPaceConstant converts rate and seconds into beer level
const DefaultPaceConstant = 8.0

// MinPlayers is the smallest field that can race
const MinPlayers = 2

// Config holds configuration for the race engine
type Config struct {
	// Roller draws speed factors and per tick jitter
	Roller speed.Roller

	// PaceConstant scales how much beer a unit of rate drinks per second
	PaceConstant float64
}

// StartInput contains the roster for a new race
type StartInput struct {
	Players []*models.Player
}

// StartOutput contains the roster ready to race
type StartOutput struct {
	Players []*models.Player
}

// AdvanceInput contains the state before a tick
type AdvanceInput struct {
	// Players is the roster snapshot, it is not modified
	Players []*models.Player

	// Elapsed is the wall clock time since the previous tick
	Elapsed time.Duration
}

// AdvanceOutput contains the state after a tick
type AdvanceOutput struct {
	// Players is the new roster snapshot
	Players []*models.Player

	// NewlyFinished are the IDs of players who emptied their glass this tick, in rank order
	NewlyFinished []string

	// Completed indicates every glass is empty
	Completed bool
}

// AmbientInput contains the roster to refill
type AmbientInput struct {
	Players []*models.Player
}

// AmbientOutput contains the refilled roster
type AmbientOutput struct {
	Players []*models.Player
}
