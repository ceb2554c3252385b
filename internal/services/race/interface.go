package race

// Service defines the race engine operations
type Service interface {
	// Start prepares a roster for a new race
	Start(input *StartInput) (*StartOutput, error)

	// Advance moves every glass forward by the elapsed time and assigns finish ranks
	Advance(input *AdvanceInput) (*AdvanceOutput, error)

	// Ambient refills the glasses and gives players a cosmetic idle speed
	Ambient(input *AmbientInput) *AmbientOutput
}
