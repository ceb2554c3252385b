package settlement

import (
	"math"

	"github.com/KirkDiggler/beerrace/internal/models"
)

// calculator implements the Service interface
type calculator struct {
	secondShare float64
	thirdShare  float64
	unit        int64
}

// New creates a settlement calculator, a nil config uses the default split
func New(cfg *Config) *calculator {
	c := &calculator{
		secondShare: DefaultSecondShare,
		thirdShare:  DefaultThirdShare,
		unit:        DefaultRoundingUnit,
	}

	if cfg != nil {
		if cfg.SecondShare > 0 {
			c.secondShare = cfg.SecondShare
		}
		if cfg.ThirdShare > 0 {
			c.thirdShare = cfg.ThirdShare
		}
		if cfg.RoundingUnit > 0 {
			c.unit = cfg.RoundingUnit
		}
	}

	return c
}

// Settle computes the pot, pays ranks 1 to 3 and finds the loser.
// First place takes whatever rounding leaves so the prizes always add up to the pot.
func (c *calculator) Settle(input *SettleInput) (*SettleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}

	if input.BetAmount <= 0 {
		return nil, ErrInvalidBet
	}

	held := make(map[int]bool, len(input.Players))
	for _, p := range input.Players {
		if p.Rank <= 0 {
			return nil, ErrUnrankedPlayer
		}
		held[p.Rank] = true
	}

	total := int64(len(input.Players)) * input.BetAmount

	pot := &models.Pot{Total: total}
	if held[2] {
		pot.Second = c.roundToUnit(float64(total) * c.secondShare)
	}
	if held[3] {
		pot.Third = c.roundToUnit(float64(total) * c.thirdShare)
	}
	pot.First = total - pot.Second - pot.Third

	players := models.ClonePlayers(input.Players)
	out := &SettleOutput{
		Players: players,
		Pot:     pot,
	}

	paid := make(map[int]bool, 3)
	maxRank := 0
	for _, p := range players {
		p.PrizeMoney = 0
		if !paid[p.Rank] {
			p.PrizeMoney = pot.PrizeForRank(p.Rank)
			paid[p.Rank] = true
		}

		if p.Rank == 1 && out.WinnerID == "" {
			out.WinnerID = p.ID
		}

		// strict comparison keeps the earliest seat when ranks collide, as does paid above
		if p.Rank > maxRank {
			maxRank = p.Rank
			out.LoserID = p.ID
		}
	}

	return out, nil
}

// roundToUnit rounds half away from zero to the nearest multiple of the unit
func (c *calculator) roundToUnit(amount float64) int64 {
	unit := float64(c.unit)
	return int64(math.Round(amount/unit)) * c.unit
}
