package stats_ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/beerrace/internal/models"
)

// memoryRepository implements the Repository interface in process memory
type memoryRepository struct {
	mu       sync.RWMutex
	stats    map[string]*models.PlayerStats
	recorded map[string]struct{}
}

// NewMemory creates a ledger that lives as long as the process
func NewMemory() *memoryRepository {
	return &memoryRepository{
		stats:    make(map[string]*models.PlayerStats),
		recorded: make(map[string]struct{}),
	}
}

// RecordRace adds prize minus bet for every player and one loss for the loser
func (r *memoryRepository) RecordRace(ctx context.Context, input *RecordRaceInput) error {
	if err := validateRecordRace(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recorded[input.RaceID]; ok {
		return ErrRaceAlreadyRecorded
	}
	r.recorded[input.RaceID] = struct{}{}

	for _, res := range input.Results {
		entry := r.entry(res.PlayerID)
		entry.PlayerName = res.PlayerName
		entry.NetWinnings += res.PrizeMoney - input.BetAmount
	}

	r.entry(input.LoserID).LossCount++

	return nil
}

// GetPlayerStats retrieves a player's stats
func (r *memoryRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.stats[input.PlayerID]
	if !ok {
		return &models.PlayerStats{PlayerID: input.PlayerID}, nil
	}

	out := *entry
	return &out, nil
}

// GetLeaderboard retrieves all entries
func (r *memoryRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*models.PlayerStats, 0, len(r.stats))
	for _, entry := range r.stats {
		out := *entry
		entries = append(entries, &out)
	}
	SortLeaderboard(entries)

	return &GetLeaderboardOutput{Entries: entries}, nil
}

// entry lazily creates a zero entry, callers hold the write lock
func (r *memoryRepository) entry(playerID string) *models.PlayerStats {
	entry, ok := r.stats[playerID]
	if !ok {
		entry = &models.PlayerStats{PlayerID: playerID}
		r.stats[playerID] = entry
	}
	return entry
}
