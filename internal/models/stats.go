package models

// PlayerStats is a player's standing across the races of a session
type PlayerStats struct {
	// PlayerID is the ID of the player
	PlayerID string

	// PlayerName is the name the player last raced under
	PlayerName string

	// NetWinnings is the sum of prize minus bet over every completed race
	NetWinnings int64

	// LossCount is how many races the player finished last, one beer each
	LossCount int
}
