package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/beerrace/internal/services/game Service
//go:generate mockgen -package=notifiermocks -destination=notifiermocks/mock_notifier.go github.com/KirkDiggler/beerrace/internal/services/game Notifier

import (
	"context"

	"github.com/KirkDiggler/beerrace/internal/models"
)

// Service defines the operations on one table
type Service interface {
	// AddPlayer seats a new player, idle only
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player from the table, idle only
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// RenamePlayer changes a player's display name, idle only
	RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error)

	// AttachPortrait stores an image reference for a player, idle only
	AttachPortrait(ctx context.Context, input *AttachPortraitInput) (*AttachPortraitOutput, error)

	// SetBet changes the bet every player pays in, idle only
	SetBet(ctx context.Context, input *SetBetInput) (*SetBetOutput, error)

	// StartRace fills the glasses and starts the race
	StartRace(ctx context.Context, input *StartRaceInput) (*StartRaceOutput, error)

	// Tick advances a running race by the elapsed time
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// ResetRace clears a finished race and returns the table to idle
	ResetRace(ctx context.Context, input *ResetRaceInput) (*ResetRaceOutput, error)

	// GetRace returns a snapshot of the table
	GetRace(ctx context.Context, input *GetRaceInput) (*GetRaceOutput, error)

	// GetLeaderboard returns the session standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// Close cancels pending verdict work and waits for it to stop
	Close()
}

// Notifier is told about race events, calls happen outside the table lock
type Notifier interface {
	// RaceFinished is called once the pot is settled
	RaceFinished(race *models.Race)

	// VerdictReady is called when the penalty text has been applied
	VerdictReady(race *models.Race)
}
