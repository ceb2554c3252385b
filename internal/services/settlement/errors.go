package settlement

// SettlementError is a custom error type for settlement errors
type SettlementError string

// Error implements the error interface
func (e SettlementError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput       SettlementError = "input cannot be nil"
	ErrNoPlayers      SettlementError = "cannot settle a race without players"
	ErrInvalidBet     SettlementError = "bet amount must be positive"
	ErrUnrankedPlayer SettlementError = "cannot settle while a player has no rank"
)
