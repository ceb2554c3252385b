package messaging

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	generator Generator
	book      *phrasebook
	logger    *log.Logger

	// Random number generator for selecting canned lines
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	locale := cfg.Locale
	if locale == "" {
		locale = LocaleEnglish
	}
	book, ok := phrasebooks[locale]
	if !ok {
		return nil, errors.New("unsupported locale: " + string(locale))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		generator: cfg.Generator,
		book:      book,
		logger:    logger,
		rand:      rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(lines []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lines[s.rand.Intn(len(lines))]
}

// GetPenaltyMessage returns the penalty for the player who finished last
func (s *service) GetPenaltyMessage(ctx context.Context, input *GetPenaltyMessageInput) (*GetPenaltyMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if s.generator == nil {
		return &GetPenaltyMessageOutput{
			Message: s.pick(s.book.offlinePenalties) + s.book.offlineSuffix,
			Offline: true,
		}, nil
	}

	temperature := PenaltyTemperature
	out, err := s.generator.Generate(ctx, &GenerateInput{
		Prompt:      s.book.penaltyPrompt(input.LoserName),
		Temperature: &temperature,
	})
	if err != nil {
		s.logger.Warn("penalty generation failed", "loser", input.LoserName, "err", err)
		return &GetPenaltyMessageOutput{Message: s.book.networkPenalty, Offline: true}, nil
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		text = s.book.defaultPenalty
	}

	return &GetPenaltyMessageOutput{Message: text}, nil
}

// GetWinnerMessage returns a one-line compliment for the winner
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if s.generator == nil {
		return &GetWinnerMessageOutput{Offline: true}, nil
	}

	out, err := s.generator.Generate(ctx, &GenerateInput{
		Prompt: s.book.commentaryPrompt(input.WinnerName),
	})
	if err != nil {
		s.logger.Warn("commentary generation failed", "winner", input.WinnerName, "err", err)
		return &GetWinnerMessageOutput{Offline: true}, nil
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		text = s.book.defaultCommentary
	}

	return &GetWinnerMessageOutput{Message: text}, nil
}

// GetVerdict asks for the penalty and the winner commentary at the same time
func (s *service) GetVerdict(ctx context.Context, input *GetVerdictInput) (*GetVerdictOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		penalty    *GetPenaltyMessageOutput
		commentary *GetWinnerMessageOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		penalty, err = s.GetPenaltyMessage(gctx, &GetPenaltyMessageInput{LoserName: input.LoserName})
		return err
	})
	g.Go(func() error {
		var err error
		commentary, err = s.GetWinnerMessage(gctx, &GetWinnerMessageInput{WinnerName: input.WinnerName})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetVerdictOutput{
		Penalty:    penalty.Message,
		Commentary: commentary.Message,
		Offline:    penalty.Offline,
	}, nil
}

// GetStatusMessage returns a flavour line for the current phase
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var lines []string
	switch {
	case input.Phase.IsRacing():
		lines = s.book.racingStatus
	case input.Phase.IsFinished():
		lines = s.book.finishedStatus
	default:
		lines = s.book.idleStatus
	}

	return &GetStatusMessageOutput{Message: s.pick(lines)}, nil
}

// GetDrunkMessage returns a comment on how many beers a player has lost
func (s *service) GetDrunkMessage(ctx context.Context, input *GetDrunkMessageInput) (*GetDrunkMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetDrunkMessageOutput{Message: s.book.drunk(input.PlayerName, input.LossCount)}, nil
}
