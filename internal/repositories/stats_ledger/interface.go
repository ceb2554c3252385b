package stats_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/beerrace/internal/repositories/stats_ledger Repository

import (
	"context"

	"github.com/KirkDiggler/beerrace/internal/models"
)

// Repository defines the interface for the session statistics ledger
type Repository interface {
	// RecordRace adds the outcome of one completed race to the ledger
	RecordRace(ctx context.Context, input *RecordRaceInput) error

	// GetPlayerStats retrieves a player's cumulative stats, zero if the player never raced
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// GetLeaderboard retrieves every player the ledger has seen
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
