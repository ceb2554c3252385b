package models

// FullBeer is the level of an untouched beer
const FullBeer = 100.0

// Player represents a racer seated at the table
type Player struct {
	// ID is the unique identifier for the player, stable for the session
	ID string

	// Name is the display name of the player
	Name string

	// BeerLevel is what is left in the glass, 100 is full and 0 is empty
	BeerLevel float64

	// Rank is the finishing position in the current race, zero while still drinking
	Rank int

	// SpeedFactor scales how fast the player drinks
	SpeedFactor float64

	// PrizeMoney is what the player took from the pot in the last completed race
	PrizeMoney int64

	// AvatarColor is the hex colour used when no portrait is attached
	AvatarColor string

	// PortraitURL is an opaque reference to an uploaded image
	PortraitURL string
}

// Finished reports whether the player has emptied the glass
func (p *Player) Finished() bool {
	return p.BeerLevel <= 0
}

// Clone returns a copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// ClonePlayers copies every player in order
func ClonePlayers(players []*Player) []*Player {
	out := make([]*Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}

// AvatarColors is the palette handed out to players by seat
var AvatarColors = []string{
	"#ef4444", "#f97316", "#f59e0b", "#84cc16", "#10b981", "#06b6d4", "#6366f1", "#a855f7", "#db2777",
}

// AvatarColorForSeat returns the palette colour for a zero based seat index
func AvatarColorForSeat(seat int) string {
	if seat < 0 {
		seat = -seat
	}
	return AvatarColors[seat%len(AvatarColors)]
}

// DefaultPlayerNames seeds a fresh table
var DefaultPlayerNames = []string{"Cheo", "Ụ", "Đức", "Tin", "Thi", "Thầy Tài"}
