package models

import (
	"fmt"
	"strconv"
)

// BetOptions are the only amounts a table can bet
var BetOptions = []int64{10000, 20000, 30000, 50000, 100000, 200000, 500000}

// DefaultBet is the bet of a new table
const DefaultBet int64 = 20000

// IsValidBet reports whether amount is one of BetOptions
func IsValidBet(amount int64) bool {
	for _, opt := range BetOptions {
		if opt == amount {
			return true
		}
	}
	return false
}

// Pot is how the wagered money is split
type Pot struct {
	// Total is the sum of every bet
	Total int64

	// First is the prize for rank 1, it absorbs rounding
	First int64

	// Second is the prize for rank 2
	Second int64

	// Third is the prize for rank 3
	Third int64
}

// Sum adds up the three prizes
func (p *Pot) Sum() int64 {
	return p.First + p.Second + p.Third
}

// PrizeForRank returns the prize paid for a rank
func (p *Pot) PrizeForRank(rank int) int64 {
	switch rank {
	case 1:
		return p.First
	case 2:
		return p.Second
	case 3:
		return p.Third
	default:
		return 0
	}
}

// FormatAmount renders an amount in thousands, 20000 becomes "20k"
func FormatAmount(amount int64) string {
	if amount%1000 == 0 {
		return fmt.Sprintf("%dk", amount/1000)
	}
	return strconv.FormatFloat(float64(amount)/1000, 'f', -1, 64) + "k"
}
