package race

import (
	"math"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/speed"
)

// service implements the Service interface
type service struct {
	roller speed.Roller
	pace   float64
}

// New creates a new race engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	pace := cfg.PaceConstant
	if pace <= 0 {
		pace = DefaultPaceConstant
	}

	return &service{
		roller: cfg.Roller,
		pace:   pace,
	}, nil
}

// Start fills every glass and draws a racing speed for each player
func (s *service) Start(input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Players) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	players := models.ClonePlayers(input.Players)
	for _, p := range players {
		p.BeerLevel = models.FullBeer
		p.Rank = 0
		p.PrizeMoney = 0
		p.SpeedFactor = s.roller.RaceFactor()
	}

	return &StartOutput{Players: players}, nil
}

// Advance drinks from every glass that still has beer in it.
// Players reaching empty on the same tick are ranked in roster order.
func (s *service) Advance(input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Elapsed < 0 {
		return nil, ErrNegativeElapsed
	}

	players := models.ClonePlayers(input.Players)

	nextRank := 1
	for _, p := range players {
		if p.Finished() {
			nextRank++
		}
	}

	seconds := input.Elapsed.Seconds()
	var newlyFinished []string

	if seconds > 0 {
		for _, p := range players {
			if p.Finished() {
				continue
			}

			if p.SpeedFactor <= 0 {
				return nil, ErrInvalidSpeedFactor
			}

			rate := s.roller.Jitter() * p.SpeedFactor
			level := math.Max(0, p.BeerLevel-rate*seconds*s.pace)
			p.BeerLevel = level

			if level == 0 {
				p.Rank = nextRank
				nextRank++
				newlyFinished = append(newlyFinished, p.ID)
			}
		}
	}

	return &AdvanceOutput{
		Players:       players,
		NewlyFinished: newlyFinished,
		Completed:     allFinished(players),
	}, nil
}

// Ambient refills the glasses for the idle table
func (s *service) Ambient(input *AmbientInput) *AmbientOutput {
	if input == nil {
		return &AmbientOutput{}
	}

	players := models.ClonePlayers(input.Players)
	for _, p := range players {
		p.BeerLevel = models.FullBeer
		p.Rank = 0
		p.PrizeMoney = 0
		p.SpeedFactor = s.roller.AmbientFactor()
	}

	return &AmbientOutput{Players: players}
}

func allFinished(players []*models.Player) bool {
	if len(players) == 0 {
		return false
	}
	for _, p := range players {
		if !p.Finished() {
			return false
		}
	}
	return true
}
