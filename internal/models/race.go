package models

import (
	"time"
)

// RacePhase represents where a table is in the race cycle
type RacePhase string

const (
	// RacePhaseIdle indicates the roster and bet can be edited
	RacePhaseIdle RacePhase = "idle"

	// RacePhaseRacing indicates beers are being emptied
	RacePhaseRacing RacePhase = "racing"

	// RacePhaseFinished indicates every glass is empty and the pot is settled
	RacePhaseFinished RacePhase = "finished"
)

// IsIdle reports whether the phase is idle
func (p RacePhase) IsIdle() bool { return p == RacePhaseIdle }

// IsRacing reports whether the phase is racing
func (p RacePhase) IsRacing() bool { return p == RacePhaseRacing }

// IsFinished reports whether the phase is finished
func (p RacePhase) IsFinished() bool { return p == RacePhaseFinished }

// Race is the state of one table
type Race struct {
	// ID is the unique identifier for the current race, empty before the first start
	ID string

	// Generation increases on every start and reset, it tags async work
	Generation int64

	// Phase is the current phase of the table
	Phase RacePhase

	// BetAmount is what every player puts in the pot
	BetAmount int64

	// Players is the roster in seat order, which is also the tie-break order
	Players []*Player

	// Pot is the prize split of the last completed race
	Pot *Pot

	// LoserID is the player who finished last in the completed race
	LoserID string

	// WinnerID is the player who finished first in the completed race
	WinnerID string

	// StartedAt is when the race started
	StartedAt time.Time

	// FinishedAt is when the last glass was emptied
	FinishedAt time.Time

	// Verdict is the penalty and commentary, nil until the text arrives
	Verdict *Verdict
}

// Player returns the player with the given id
func (r *Race) Player(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerByRank returns the player holding the given rank
func (r *Race) PlayerByRank(rank int) *Player {
	for _, p := range r.Players {
		if p.Rank == rank {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand out of the service
func (r *Race) Clone() *Race {
	if r == nil {
		return nil
	}
	c := *r
	c.Players = ClonePlayers(r.Players)
	if r.Pot != nil {
		pot := *r.Pot
		c.Pot = &pot
	}
	if r.Verdict != nil {
		v := *r.Verdict
		c.Verdict = &v
	}
	return &c
}

// Verdict carries the generated texts for a finished race
type Verdict struct {
	// Generation is the race generation the texts were produced for
	Generation int64

	// Penalty is what the loser has to drink
	Penalty string

	// Commentary is praise for the winner, may be empty
	Commentary string

	// Offline indicates the texts came from the local fallback
	Offline bool
}
