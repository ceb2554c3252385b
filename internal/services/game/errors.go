package game

// GameError is a custom error type for table errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotEnoughPlayers GameError = "at least two players are needed to race"
	ErrInvalidPhase     GameError = "not allowed in the current phase"
	ErrPlayerNotFound   GameError = "player not found"
	ErrInvalidBet       GameError = "bet is not one of the allowed amounts"
	ErrEmptyName        GameError = "player name cannot be empty"
	ErrRosterFull       GameError = "table is at maximum capacity"
	ErrAlreadySeated    GameError = "player is already at the table"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilEngine        GameError = "race engine cannot be nil"
	ErrNilSettlement    GameError = "settlement service cannot be nil"
	ErrNilLedgerRepo    GameError = "stats ledger repository cannot be nil"
	ErrNilMessaging     GameError = "messaging service cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
