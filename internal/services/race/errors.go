package race

// EngineError is a custom error type for race engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotEnoughPlayers   EngineError = "at least 2 players are required to start a race"
	ErrNegativeElapsed    EngineError = "elapsed time cannot be negative"
	ErrInvalidSpeedFactor EngineError = "speed factor must be positive while drinking"
	ErrNilConfig          EngineError = "config cannot be nil"
	ErrNilRoller          EngineError = "speed roller cannot be nil"
	ErrNilInput           EngineError = "input cannot be nil"
)
