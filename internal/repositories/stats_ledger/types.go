package stats_ledger

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/beerrace/internal/models"
)

// ErrRaceAlreadyRecorded is returned when the same race is recorded twice
var ErrRaceAlreadyRecorded = errors.New("race already recorded")

// RaceResult is one player's outcome in a completed race
type RaceResult struct {
	PlayerID   string
	PlayerName string
	PrizeMoney int64
}

// RecordRaceInput contains parameters for recording a completed race
type RecordRaceInput struct {
	// RaceID identifies the race, a race can only be recorded once
	RaceID string

	// BetAmount is what each player paid in
	BetAmount int64

	// Results holds every player in the race
	Results []*RaceResult

	// LoserID is the player who finished last
	LoserID string
}

// GetPlayerStatsInput contains parameters for retrieving a player's stats
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetLeaderboardInput contains parameters for retrieving the leaderboard
type GetLeaderboardInput struct {
}

// GetLeaderboardOutput contains the ledger entries, best first
type GetLeaderboardOutput struct {
	Entries []*models.PlayerStats
}

func validateRecordRace(input *RecordRaceInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.RaceID == "" {
		return errors.New("race ID cannot be empty")
	}

	if len(input.Results) == 0 {
		return errors.New("results cannot be empty")
	}

	if input.LoserID == "" {
		return errors.New("loser ID cannot be empty")
	}

	for _, res := range input.Results {
		if res == nil || res.PlayerID == "" {
			return errors.New("result player ID cannot be empty")
		}
		if res.PlayerID == input.LoserID {
			return nil
		}
	}

	return errors.New("loser is not part of the race")
}

// SortLeaderboard orders by winnings, then fewest beers, then name
func SortLeaderboard(entries []*models.PlayerStats) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.NetWinnings != b.NetWinnings {
			return a.NetWinnings > b.NetWinnings
		}
		if a.LossCount != b.LossCount {
			return a.LossCount < b.LossCount
		}
		if a.PlayerName != b.PlayerName {
			return a.PlayerName < b.PlayerName
		}
		return a.PlayerID < b.PlayerID
	})
}
