package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
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

// service implements the Service interface.
// Commands, ticks and verdict results are serialised by mu.
type service struct {
	maxPlayers     int
	verdictTimeout time.Duration

	ledgerRepo    ledgerRepo.Repository
	engine        race.Service
	settlement    settlement.Service
	messaging     messaging.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
	notifier      Notifier
	logger        *log.Logger

	mu             sync.Mutex
	race           *models.Race
	verdictPending bool
	cancelVerdict  context.CancelFunc
	verdicts       sync.WaitGroup
}

// New creates a new game service for one table
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}

	if cfg.Settlement == nil {
		return nil, ErrNilSettlement
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	verdictTimeout := cfg.VerdictTimeout
	if verdictTimeout <= 0 {
		verdictTimeout = DefaultVerdictTimeout
	}

	bet := cfg.BetAmount
	if bet == 0 {
		bet = models.DefaultBet
	}
	if !models.IsValidBet(bet) {
		return nil, ErrInvalidBet
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &service{
		maxPlayers:     maxPlayers,
		verdictTimeout: verdictTimeout,
		ledgerRepo:     cfg.LedgerRepo,
		engine:         cfg.Engine,
		settlement:     cfg.Settlement,
		messaging:      cfg.Messaging,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		notifier:       cfg.Notifier,
		logger:         logger,
		race: &models.Race{
			Phase:     models.RacePhaseIdle,
			BetAmount: bet,
			Players:   []*models.Player{},
		},
	}

	if cfg.DefaultRoster {
		for _, name := range models.DefaultPlayerNames {
			if _, err := s.seat(name, ""); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// seat appends a player, callers hold mu or own s exclusively
func (s *service) seat(name, playerID string) (*models.Player, error) {
	if len(s.race.Players) >= s.maxPlayers {
		return nil, ErrRosterFull
	}

	if playerID == "" {
		playerID = s.uuidGenerator.NewUUID()
	} else if s.race.Player(playerID) != nil {
		return nil, ErrAlreadySeated
	}

	seatNumber := len(s.race.Players)
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("P%d", seatNumber+1)
	}

	ambient := s.engine.Ambient(&race.AmbientInput{Players: []*models.Player{{
		ID:          playerID,
		Name:        name,
		AvatarColor: models.AvatarColorForSeat(seatNumber),
	}}})
	player := ambient.Players[0]

	s.race.Players = append(s.race.Players, player)
	return player, nil
}

func (s *service) requireIdle() error {
	if !s.race.Phase.IsIdle() {
		return ErrInvalidPhase
	}
	return nil
}

func (s *service) findPlayer(playerID string) (*models.Player, error) {
	p := s.race.Player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// AddPlayer seats a new player
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return nil, err
	}

	player, err := s.seat(input.Name, input.PlayerID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("player seated", "player", player.ID, "name", player.Name)

	return &AddPlayerOutput{Player: player.Clone()}, nil
}

// RemovePlayer removes a player from the table
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return nil, err
	}

	for i, p := range s.race.Players {
		if p.ID == input.PlayerID {
			s.race.Players = append(s.race.Players[:i:i], s.race.Players[i+1:]...)
			return &RemovePlayerOutput{Removed: p.Clone()}, nil
		}
	}

	return nil, ErrPlayerNotFound
}

// RenamePlayer changes a player's display name
func (s *service) RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return nil, err
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}
	player.Name = name

	return &RenamePlayerOutput{Player: player.Clone()}, nil
}

// AttachPortrait stores an image reference for a player
func (s *service) AttachPortrait(ctx context.Context, input *AttachPortraitInput) (*AttachPortraitOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return nil, err
	}

	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}
	player.PortraitURL = input.URL

	return &AttachPortraitOutput{Player: player.Clone()}, nil
}

// SetBet changes the bet every player pays in
func (s *service) SetBet(ctx context.Context, input *SetBetInput) (*SetBetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !models.IsValidBet(input.Amount) {
		return nil, ErrInvalidBet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return nil, err
	}
	s.race.BetAmount = input.Amount

	return &SetBetOutput{BetAmount: s.race.BetAmount}, nil
}

// StartRace fills the glasses, draws racing speeds and starts a new generation
func (s *service) StartRace(ctx context.Context, input *StartRaceInput) (*StartRaceOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireIdle(); err != nil {
		return nil, err
	}

	if len(s.race.Players) < race.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	started, err := s.engine.Start(&race.StartInput{Players: s.race.Players})
	if err != nil {
		return nil, fmt.Errorf("failed to start race: %w", err)
	}

	s.race.Generation++
	s.race.ID = s.uuidGenerator.NewUUID()
	s.race.Players = started.Players
	s.race.Phase = models.RacePhaseRacing
	s.race.Pot = nil
	s.race.LoserID = ""
	s.race.WinnerID = ""
	s.race.Verdict = nil
	s.race.StartedAt = s.clock.Now()
	s.race.FinishedAt = time.Time{}

	s.logger.Info("race started",
		"race", s.race.ID,
		"generation", s.race.Generation,
		"players", len(s.race.Players),
		"bet", s.race.BetAmount)

	return &StartRaceOutput{Race: s.race.Clone()}, nil
}

// Tick advances a running race, settling it when the last glass empties
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	out, err := s.tick(ctx, input)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if !out.Finished {
		return out, nil
	}

	if s.notifier != nil {
		s.notifier.RaceFinished(out.Race.Clone())
	}

	// the verdict starts after RaceFinished so VerdictReady never overtakes it
	s.mu.Lock()
	if s.race.Generation == out.Race.Generation && s.race.Phase.IsFinished() && s.verdictPending && s.cancelVerdict == nil {
		s.launchVerdict()
	}
	s.mu.Unlock()

	return out, nil
}

func (s *service) tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if !s.race.Phase.IsRacing() {
		return nil, ErrInvalidPhase
	}

	advanced, err := s.engine.Advance(&race.AdvanceInput{
		Players: s.race.Players,
		Elapsed: input.Elapsed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to advance race: %w", err)
	}
	s.race.Players = advanced.Players

	if !advanced.Completed {
		return &TickOutput{
			Race:          s.race.Clone(),
			NewlyFinished: advanced.NewlyFinished,
		}, nil
	}

	if err := s.finish(ctx); err != nil {
		return nil, err
	}

	return &TickOutput{
		Race:          s.race.Clone(),
		NewlyFinished: advanced.NewlyFinished,
		Finished:      true,
	}, nil
}

// finish settles the pot and records the ledger. On error the table stays
// Racing with every glass empty, so the next Tick tries again.
func (s *service) finish(ctx context.Context) error {
	settled, err := s.settlement.Settle(&settlement.SettleInput{
		Players:   s.race.Players,
		BetAmount: s.race.BetAmount,
	})
	if err != nil {
		s.logger.Error("settlement failed", "race", s.race.ID, "err", err)
		return fmt.Errorf("failed to settle race: %w", err)
	}

	results := make([]*ledgerRepo.RaceResult, 0, len(settled.Players))
	for _, p := range settled.Players {
		results = append(results, &ledgerRepo.RaceResult{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			PrizeMoney: p.PrizeMoney,
		})
	}

	err = s.ledgerRepo.RecordRace(ctx, &ledgerRepo.RecordRaceInput{
		RaceID:    s.race.ID,
		BetAmount: s.race.BetAmount,
		Results:   results,
		LoserID:   settled.LoserID,
	})
	switch {
	case errors.Is(err, ledgerRepo.ErrRaceAlreadyRecorded):
		// an earlier attempt landed but its reply was lost
		s.logger.Warn("race already recorded", "race", s.race.ID)
	case err != nil:
		s.logger.Error("failed to record race", "race", s.race.ID, "err", err)
		return fmt.Errorf("failed to record race: %w", err)
	}

	s.race.Players = settled.Players
	s.race.Pot = settled.Pot
	s.race.LoserID = settled.LoserID
	s.race.WinnerID = settled.WinnerID
	s.race.Phase = models.RacePhaseFinished
	s.race.FinishedAt = s.clock.Now()

	s.logger.Info("race finished",
		"race", s.race.ID,
		"generation", s.race.Generation,
		"loser", settled.LoserID,
		"winner", settled.WinnerID,
		"pot", settled.Pot.Total)

	s.verdictPending = true
	return nil
}

// launchVerdict asks for the penalty in the background, callers hold mu
func (s *service) launchVerdict() {
	generation := s.race.Generation

	var loserName, winnerName string
	if p := s.race.Player(s.race.LoserID); p != nil {
		loserName = p.Name
	}
	if p := s.race.Player(s.race.WinnerID); p != nil {
		winnerName = p.Name
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.verdictTimeout)
	s.cancelVerdict = cancel
	s.verdictPending = true

	s.verdicts.Add(1)
	go func() {
		defer s.verdicts.Done()
		defer cancel()

		out, err := s.messaging.GetVerdict(ctx, &messaging.GetVerdictInput{
			LoserName:  loserName,
			WinnerName: winnerName,
		})
		s.applyVerdict(generation, out, err)
	}()
}

// applyVerdict stores the verdict unless the table has moved on
func (s *service) applyVerdict(generation int64, out *messaging.GetVerdictOutput, err error) {
	s.mu.Lock()

	if s.race.Generation != generation || !s.race.Phase.IsFinished() {
		s.mu.Unlock()
		s.logger.Debug("discarding stale verdict", "generation", generation)
		return
	}

	s.verdictPending = false
	s.cancelVerdict = nil

	verdict := &models.Verdict{Generation: generation, Offline: true}
	if err != nil || out == nil {
		s.logger.Error("verdict failed, using fallback", "race", s.race.ID, "err", err)
		verdict.Penalty = FallbackPenalty
	} else {
		verdict.Penalty = out.Penalty
		verdict.Commentary = out.Commentary
		verdict.Offline = out.Offline
	}

	s.race.Verdict = verdict
	snapshot := s.race.Clone()
	s.mu.Unlock()

	s.logger.Debug("verdict applied", "race", snapshot.ID, "offline", verdict.Offline)

	if s.notifier != nil {
		s.notifier.VerdictReady(snapshot)
	}
}

// ResetRace clears a finished race and refills the glasses. A race whose
// glasses are all empty but which never settled is abandoned unrecorded.
func (s *service) ResetRace(ctx context.Context, input *ResetRaceInput) (*ResetRaceOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.race.Phase.IsFinished():
	case s.race.Phase.IsRacing() && allEmpty(s.race.Players):
		s.logger.Warn("abandoning unsettled race", "race", s.race.ID, "generation", s.race.Generation)
	default:
		return nil, ErrInvalidPhase
	}

	if s.cancelVerdict != nil {
		s.cancelVerdict()
		s.cancelVerdict = nil
	}
	s.verdictPending = false

	ambient := s.engine.Ambient(&race.AmbientInput{Players: s.race.Players})

	s.race.Generation++
	s.race.Players = ambient.Players
	s.race.Phase = models.RacePhaseIdle
	s.race.Pot = nil
	s.race.LoserID = ""
	s.race.WinnerID = ""
	s.race.Verdict = nil

	s.logger.Debug("table reset", "generation", s.race.Generation)

	return &ResetRaceOutput{Race: s.race.Clone()}, nil
}

func allEmpty(players []*models.Player) bool {
	for _, p := range players {
		if p.BeerLevel > 0 {
			return false
		}
	}
	return true
}

// GetRace returns a snapshot of the table
func (s *service) GetRace(ctx context.Context, input *GetRaceInput) (*GetRaceOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetRaceOutput{
		Race:           s.race.Clone(),
		VerdictPending: s.verdictPending,
	}, nil
}

// GetLeaderboard returns the ledger joined with the current roster names
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	s.mu.Lock()
	roster := models.ClonePlayers(s.race.Players)
	s.mu.Unlock()

	board, err := s.ledgerRepo.GetLeaderboard(ctx, &ledgerRepo.GetLeaderboardInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	byID := make(map[string]*models.PlayerStats, len(board.Entries))
	entries := make([]*models.PlayerStats, 0, len(board.Entries)+len(roster))
	for _, e := range board.Entries {
		byID[e.PlayerID] = e
		entries = append(entries, e)
	}

	for _, p := range roster {
		if e, ok := byID[p.ID]; ok {
			e.PlayerName = p.Name
			continue
		}
		entries = append(entries, &models.PlayerStats{PlayerID: p.ID, PlayerName: p.Name})
	}

	ledgerRepo.SortLeaderboard(entries)

	return &GetLeaderboardOutput{Entries: entries}, nil
}

// Close cancels a pending verdict and waits for background work
func (s *service) Close() {
	s.mu.Lock()
	if s.cancelVerdict != nil {
		s.cancelVerdict()
		s.cancelVerdict = nil
	}
	s.mu.Unlock()

	s.verdicts.Wait()
}
