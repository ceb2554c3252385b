package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/beerrace/internal/services/messaging Service,Generator

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPenaltyMessage returns the penalty for the player who finished last
	GetPenaltyMessage(ctx context.Context, input *GetPenaltyMessageInput) (*GetPenaltyMessageOutput, error)

	// GetWinnerMessage returns a one-line compliment for the winner
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)

	// GetVerdict asks for the penalty and the winner commentary at the same time
	GetVerdict(ctx context.Context, input *GetVerdictInput) (*GetVerdictOutput, error)

	// GetStatusMessage returns a flavour line for the current phase
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetDrunkMessage returns a comment on how many beers a player has lost
	GetDrunkMessage(ctx context.Context, input *GetDrunkMessageInput) (*GetDrunkMessageOutput, error)
}

// Generator produces free text from a prompt
type Generator interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
