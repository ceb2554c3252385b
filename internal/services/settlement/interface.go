package settlement

// Service defines the settlement of a completed race
type Service interface {
	// Settle splits the pot among the top three and picks the loser
	Settle(input *SettleInput) (*SettleOutput, error)
}
