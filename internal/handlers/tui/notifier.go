package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/beerrace/internal/models"
)

// raceFinishedMsg is sent when the pot has been settled
type raceFinishedMsg struct {
	race *models.Race
}

// verdictReadyMsg is sent when the penalty text has arrived
type verdictReadyMsg struct {
	race *models.Race
}

// Notifier forwards game events into the bubbletea program
type Notifier struct {
	events chan tea.Msg
}

// NewNotifier creates a notifier to hand to the game service
func NewNotifier() *Notifier {
	return &Notifier{events: make(chan tea.Msg, 16)}
}

// RaceFinished implements game.Notifier
func (n *Notifier) RaceFinished(race *models.Race) {
	n.send(raceFinishedMsg{race: race})
}

// VerdictReady implements game.Notifier
func (n *Notifier) VerdictReady(race *models.Race) {
	n.send(verdictReadyMsg{race: race})
}

// send never blocks the verdict goroutine, game.Close waits on it
func (n *Notifier) send(msg tea.Msg) {
	select {
	case n.events <- msg:
	default:
	}
}

// listen waits for the next game event
func (n *Notifier) listen() tea.Cmd {
	return func() tea.Msg {
		return <-n.events
	}
}
