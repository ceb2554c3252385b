package stats_ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis, every key is scoped to one ledger session
	statsKeyPrefix = "stats:"

	netSuffix    = ":net"
	lossesSuffix = ":losses"
	namesSuffix  = ":names"
	racesSuffix  = ":races"
)

// Config holds configuration for the Redis stats ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// SessionID scopes the keys; use a fresh ID per process so stats never outlive it
	SessionID string

	// TTL expires the session keys, zero keeps them until the server evicts them
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewRedis creates a new Redis-backed stats ledger
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		sessionID: cfg.SessionID,
		ttl:       cfg.TTL,
	}, nil
}

func (r *redisRepository) key(suffix string) string {
	return statsKeyPrefix + r.sessionID + suffix
}

// RecordRace adds prize minus bet for every player and one loss for the loser
func (r *redisRepository) RecordRace(ctx context.Context, input *RecordRaceInput) error {
	if err := validateRecordRace(input); err != nil {
		return err
	}

	racesKey := r.key(racesSuffix)

	// The race set guards against recording the same race twice
	added, err := r.client.SAdd(ctx, racesKey, input.RaceID).Result()
	if err != nil {
		return fmt.Errorf("failed to mark race recorded: %w", err)
	}
	if added == 0 {
		return ErrRaceAlreadyRecorded
	}

	netKey := r.key(netSuffix)
	lossesKey := r.key(lossesSuffix)
	namesKey := r.key(namesSuffix)

	pipe := r.client.TxPipeline()
	for _, res := range input.Results {
		pipe.HIncrBy(ctx, netKey, res.PlayerID, res.PrizeMoney-input.BetAmount)
		pipe.HSet(ctx, namesKey, res.PlayerID, res.PlayerName)
	}
	pipe.HIncrBy(ctx, lossesKey, input.LoserID, 1)

	if r.ttl > 0 {
		for _, key := range []string{netKey, lossesKey, namesKey, racesKey} {
			pipe.Expire(ctx, key, r.ttl)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		// Let a retry record the race
		r.client.SRem(ctx, racesKey, input.RaceID)
		return fmt.Errorf("failed to record race: %w", err)
	}

	return nil
}

// GetPlayerStats retrieves a player's stats
func (r *redisRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	netCmd := pipe.HGet(ctx, r.key(netSuffix), input.PlayerID)
	lossCmd := pipe.HGet(ctx, r.key(lossesSuffix), input.PlayerID)
	nameCmd := pipe.HGet(ctx, r.key(namesSuffix), input.PlayerID)

	// Missing fields come back as redis.Nil and mean zero
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	stats := &models.PlayerStats{PlayerID: input.PlayerID}

	net, err := netCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to parse net winnings: %w", err)
	}
	stats.NetWinnings = net

	losses, err := lossCmd.Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to parse loss count: %w", err)
	}
	stats.LossCount = losses

	name, err := nameCmd.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get player name: %w", err)
	}
	stats.PlayerName = name

	return stats, nil
}

// GetLeaderboard retrieves all entries
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	pipe := r.client.Pipeline()
	netCmd := pipe.HGetAll(ctx, r.key(netSuffix))
	lossCmd := pipe.HGetAll(ctx, r.key(lossesSuffix))
	nameCmd := pipe.HGetAll(ctx, r.key(namesSuffix))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	byID := make(map[string]*models.PlayerStats)
	entry := func(playerID string) *models.PlayerStats {
		e, ok := byID[playerID]
		if !ok {
			e = &models.PlayerStats{PlayerID: playerID}
			byID[playerID] = e
		}
		return e
	}

	for playerID, raw := range netCmd.Val() {
		net, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse net winnings for %s: %w", playerID, err)
		}
		entry(playerID).NetWinnings = net
	}

	for playerID, raw := range lossCmd.Val() {
		losses, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse loss count for %s: %w", playerID, err)
		}
		entry(playerID).LossCount = losses
	}

	for playerID, name := range nameCmd.Val() {
		entry(playerID).PlayerName = name
	}

	entries := make([]*models.PlayerStats, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	SortLeaderboard(entries)

	return &GetLeaderboardOutput{Entries: entries}, nil
}
