package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
)

// DefaultFrameInterval is roughly one frame at 60Hz
const DefaultFrameInterval = 16 * time.Millisecond

// settleRetryInterval spaces out ticks while a finished race fails to record
const settleRetryInterval = 500 * time.Millisecond

const barWidth = 30

// Config holds the dependencies of the table view
type Config struct {
	// Game is the table being shown
	Game game.Service

	// Messaging writes the status line and stats comments
	Messaging messaging.Service

	// Notifier must be the one handed to the game service
	Notifier *Notifier

	// FrameInterval defaults to DefaultFrameInterval
	FrameInterval time.Duration

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// frameMsg carries the wall time of a rendered frame
type frameMsg time.Time

// statsLine is one leaderboard row with its comment
type statsLine struct {
	stats   *models.PlayerStats
	comment string
}

// Model is the bubbletea model for a shared screen table
type Model struct {
	game      game.Service
	messaging messaging.Service
	notifier  *Notifier
	logger    *log.Logger
	interval  time.Duration

	race           *models.Race
	verdictPending bool
	status         string
	notice         string

	// lastFrame is zero until the first frame of a race
	lastFrame time.Time
	stuck     bool

	showStats bool
	stats     []*statsLine

	spinner spinner.Model
	bars    map[string]progress.Model

	width    int
	quitting bool
}

// New creates the table view and reads the initial table state
func New(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Game == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	m := &Model{
		game:      cfg.Game,
		messaging: cfg.Messaging,
		notifier:  cfg.Notifier,
		logger:    logger.WithPrefix("tui"),
		interval:  interval,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		bars:      make(map[string]progress.Model),
	}

	if err := m.refresh(context.Background()); err != nil {
		return nil, err
	}

	return m, nil
}

// Init starts listening for game events
func (m *Model) Init() tea.Cmd {
	return m.notifier.listen()
}

// Update handles key presses, frames and game events
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		return m, m.handleKey(ctx, msg.String())

	case frameMsg:
		return m, m.handleFrame(ctx, time.Time(msg))

	case raceFinishedMsg, verdictReadyMsg:
		m.report(m.refresh(ctx))
		return m, tea.Batch(m.notifier.listen(), m.spin())

	case spinner.TickMsg:
		if !m.verdictPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(ctx context.Context, key string) tea.Cmd {
	m.notice = ""

	switch key {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return tea.Quit

	case "a":
		_, err := m.game.AddPlayer(ctx, &game.AddPlayerInput{})
		m.report(err)

	case "d":
		if n := len(m.race.Players); n > 0 {
			_, err := m.game.RemovePlayer(ctx, &game.RemovePlayerInput{PlayerID: m.race.Players[n-1].ID})
			m.report(err)
		}

	case "b":
		_, err := m.game.SetBet(ctx, &game.SetBetInput{Amount: nextBet(m.race.BetAmount)})
		m.report(err)

	case "enter", " ":
		if _, err := m.game.StartRace(ctx, &game.StartRaceInput{}); err != nil {
			m.report(err)
			return nil
		}
		m.lastFrame = time.Time{}
		m.showStats = false
		m.report(m.refresh(ctx))
		return m.nextFrame()

	case "r":
		_, err := m.game.ResetRace(ctx, &game.ResetRaceInput{})
		m.report(err)
		if err == nil {
			m.stuck = false
		}

	case "s":
		m.showStats = !m.showStats
		if m.showStats {
			m.report(m.loadStats(ctx))
		}
		return nil

	default:
		return nil
	}

	m.report(m.refresh(ctx))
	return nil
}

// handleFrame ticks the race by the wall time since the previous frame
func (m *Model) handleFrame(ctx context.Context, now time.Time) tea.Cmd {
	if !m.race.Phase.IsRacing() {
		return nil
	}

	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return m.nextFrame()
	}

	elapsed := now.Sub(m.lastFrame)
	m.lastFrame = now
	if elapsed <= 0 {
		return m.nextFrame()
	}

	out, err := m.game.Tick(ctx, &game.TickInput{Elapsed: elapsed})
	var gameErr game.GameError
	if errors.As(err, &gameErr) {
		m.report(err)
		return nil
	}
	if err != nil {
		// the next tick settles again, r abandons the race
		m.logger.Error("tick failed, retrying", "error", err)
		m.stuck = true
		m.notice = "The race could not be settled, retrying. Press r to give up."
		return tea.Tick(settleRetryInterval, func(t time.Time) tea.Msg {
			return frameMsg(t)
		})
	}
	m.stuck = false

	if !out.Finished {
		m.race = out.Race
		return m.nextFrame()
	}

	m.report(m.refresh(ctx))
	return m.spin()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// spin animates the pending verdict indicator
func (m *Model) spin() tea.Cmd {
	if !m.verdictPending {
		return nil
	}
	return m.spinner.Tick
}

// refresh reloads the table, the status line changes only with the phase
func (m *Model) refresh(ctx context.Context) error {
	out, err := m.game.GetRace(ctx, &game.GetRaceInput{})
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}

	phaseChanged := m.race == nil || m.race.Phase != out.Race.Phase ||
		(out.Race.Phase.IsIdle() && len(m.race.Players) != len(out.Race.Players))

	m.race = out.Race
	m.verdictPending = out.VerdictPending

	if phaseChanged {
		status, err := m.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
			Phase:       m.race.Phase,
			PlayerCount: len(m.race.Players),
		})
		if err != nil {
			return fmt.Errorf("failed to get status line: %w", err)
		}
		m.status = status.Message
	}

	return nil
}

func (m *Model) loadStats(ctx context.Context) error {
	out, err := m.game.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
	if err != nil {
		return fmt.Errorf("failed to read leaderboard: %w", err)
	}

	m.stats = m.stats[:0]
	for _, entry := range out.Entries {
		comment, err := m.messaging.GetDrunkMessage(ctx, &messaging.GetDrunkMessageInput{
			PlayerName: entry.PlayerName,
			LossCount:  entry.LossCount,
		})
		if err != nil {
			return fmt.Errorf("failed to get drunk comment: %w", err)
		}
		m.stats = append(m.stats, &statsLine{stats: entry, comment: comment.Message})
	}

	return nil
}

// report shows game errors as they are and anything else as a generic notice
func (m *Model) report(err error) {
	if err == nil {
		return
	}

	var gameErr game.GameError
	if errors.As(err, &gameErr) {
		msg := gameErr.Error()
		m.notice = strings.ToUpper(msg[:1]) + msg[1:]
		return
	}

	m.logger.Error("table operation failed", "error", err)
	m.notice = "Something went wrong, see the log."
}

// nextBet cycles through models.BetOptions
func nextBet(current int64) int64 {
	for i, opt := range models.BetOptions {
		if opt == current {
			return models.BetOptions[(i+1)%len(models.BetOptions)]
		}
	}
	return models.BetOptions[0]
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	header := TitleStyle.Render("🍺 Beer Race") + "  " + InfoStyle.Render(fmt.Sprintf("Bet %s · Pot %s",
		models.FormatAmount(m.race.BetAmount),
		models.FormatAmount(int64(len(m.race.Players))*m.race.BetAmount)))
	if m.race.ID != "" {
		header += "  " + HelpStyle.Render(fmt.Sprintf("race %d", m.race.Generation))
	}
	sections = append(sections, header)

	if m.status != "" {
		sections = append(sections, StatusStyle.Render(m.status))
	}

	if m.showStats {
		sections = append(sections, m.renderStats())
	} else {
		sections = append(sections, m.renderPlayers())
		if m.race.Phase.IsFinished() {
			sections = append(sections, m.renderVerdict())
		}
	}

	if m.notice != "" {
		sections = append(sections, ErrorStyle.Render(m.notice))
	}

	sections = append(sections, HelpStyle.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderPlayers() string {
	if len(m.race.Players) == 0 {
		return HelpStyle.Render("Nobody at the table yet, press a to add a player.")
	}

	nameWidth := 0
	for _, p := range m.race.Players {
		nameWidth = max(nameWidth, lipgloss.Width(p.Name))
	}

	lines := make([]string, 0, len(m.race.Players))
	for i, p := range m.race.Players {
		name := nameStyle(p.AvatarColor).Width(nameWidth).Render(p.Name)
		line := fmt.Sprintf("%2d %s  ", i+1, name)

		switch {
		case m.race.Phase.IsFinished():
			line += fmt.Sprintf("#%d", p.Rank)
			if p.PrizeMoney > 0 {
				line += InfoStyle.Render(" +" + models.FormatAmount(p.PrizeMoney))
			}
			if p.ID == m.race.LoserID {
				line += " 🍻"
			}
		default:
			line += m.bar(p.AvatarColor).ViewAs(p.BeerLevel / models.FullBeer)
			if p.Rank > 0 {
				line += fmt.Sprintf(" ✅ #%d", p.Rank)
			}
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// bar returns a progress bar filled in the player's colour
func (m *Model) bar(color string) progress.Model {
	if b, ok := m.bars[color]; ok {
		return b
	}
	b := progress.New(progress.WithSolidFill(color), progress.WithWidth(barWidth))
	m.bars[color] = b
	return b
}

func (m *Model) renderVerdict() string {
	loserName := "?"
	if loser := m.race.Player(m.race.LoserID); loser != nil {
		loserName = loser.Name
	}

	var b strings.Builder
	b.WriteString("🍻 " + loserName + " drinks\n")

	switch {
	case m.race.Verdict != nil:
		b.WriteString(m.race.Verdict.Penalty)
		if winner := m.race.Player(m.race.WinnerID); winner != nil && m.race.Verdict.Commentary != "" {
			b.WriteString("\n" + CommentaryStyle.Render("🥇 "+winner.Name+": "+m.race.Verdict.Commentary))
		}
	case m.verdictPending:
		b.WriteString(m.spinner.View() + " The referee is deciding...")
	default:
		b.WriteString("No verdict")
	}

	return PenaltyStyle.Render(b.String())
}

func (m *Model) renderStats() string {
	if len(m.stats) == 0 {
		return HelpStyle.Render("No races yet.")
	}

	lines := make([]string, 0, len(m.stats))
	for i, line := range m.stats {
		net := models.FormatAmount(line.stats.NetWinnings)
		if line.stats.NetWinnings > 0 {
			net = "+" + net
		}
		row := fmt.Sprintf("%d. %s %s, %d 🍺", i+1, line.stats.PlayerName, net, line.stats.LossCount)
		if line.comment != "" {
			row += "  " + CommentaryStyle.Render(line.comment)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func (m *Model) help() string {
	switch {
	case m.race.Phase.IsIdle():
		return "a add · d remove · b bet · enter start · s stats · q quit"
	case m.race.Phase.IsFinished():
		return "r another round · s stats · q quit"
	case m.stuck:
		return "r give up · q quit"
	default:
		return "q quit"
	}
}
