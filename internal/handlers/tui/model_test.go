package tui

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	gameMocks "github.com/KirkDiggler/beerrace/internal/services/game/mocks"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	msgMocks "github.com/KirkDiggler/beerrace/internal/services/messaging/mocks"
)

type ModelTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGame      *gameMocks.MockService
	mockMessaging *msgMocks.MockService
	notifier      *Notifier
	idle          *models.Race
}

func (s *ModelTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = msgMocks.NewMockService(s.mockCtrl)
	s.notifier = NewNotifier()

	s.mockMessaging.EXPECT().
		GetStatusMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *messaging.GetStatusMessageInput) (*messaging.GetStatusMessageOutput, error) {
			return &messaging.GetStatusMessageOutput{Message: "status " + string(input.Phase)}, nil
		}).
		AnyTimes()

	s.idle = &models.Race{
		Phase:     models.RacePhaseIdle,
		BetAmount: 20000,
		Players: []*models.Player{
			{ID: "p1", Name: "Cheo", BeerLevel: 100, AvatarColor: "#ef4444"},
			{ID: "p2", Name: "Tin", BeerLevel: 100, AvatarColor: "#f97316"},
		},
	}
}

func (s *ModelTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestModelTestSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) newModel(race *models.Race, pending bool) *Model {
	s.mockGame.EXPECT().
		GetRace(gomock.Any(), gomock.Any()).
		Return(&game.GetRaceOutput{Race: race, VerdictPending: pending}, nil)

	m, err := New(&Config{
		Game:      s.mockGame,
		Messaging: s.mockMessaging,
		Notifier:  s.notifier,
		Logger:    log.New(io.Discard),
	})
	s.Require().NoError(err)
	return m
}

func (s *ModelTestSuite) expectRace(race *models.Race, pending bool) {
	s.mockGame.EXPECT().
		GetRace(gomock.Any(), gomock.Any()).
		Return(&game.GetRaceOutput{Race: race, VerdictPending: pending}, nil)
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (s *ModelTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Messaging: s.mockMessaging, Notifier: s.notifier})
	s.Error(err)

	_, err = New(&Config{Game: s.mockGame, Notifier: s.notifier})
	s.Error(err)

	_, err = New(&Config{Game: s.mockGame, Messaging: s.mockMessaging})
	s.Error(err)
}

func (s *ModelTestSuite) TestNewReadsTable() {
	m := s.newModel(s.idle, false)

	s.Equal("status idle", m.status)
	s.Equal(DefaultFrameInterval, m.interval)

	view := m.View()
	s.Contains(view, "Cheo")
	s.Contains(view, "Tin")
	s.Contains(view, "Pot 40k")
	s.Contains(view, "enter start")
}

func (s *ModelTestSuite) TestAddPlayer() {
	m := s.newModel(s.idle, false)

	added := s.idle.Clone()
	added.Players = append(added.Players, &models.Player{ID: "p3", Name: "P3", BeerLevel: 100})

	s.mockGame.EXPECT().AddPlayer(gomock.Any(), &game.AddPlayerInput{}).Return(&game.AddPlayerOutput{}, nil)
	s.expectRace(added, false)

	_, cmd := m.Update(key("a"))

	s.Nil(cmd)
	s.Len(m.race.Players, 3)
	s.Contains(m.View(), "P3")
}

func (s *ModelTestSuite) TestRemoveLastPlayer() {
	m := s.newModel(s.idle, false)

	removed := s.idle.Clone()
	removed.Players = removed.Players[:1]

	s.mockGame.EXPECT().RemovePlayer(gomock.Any(), &game.RemovePlayerInput{PlayerID: "p2"}).Return(&game.RemovePlayerOutput{}, nil)
	s.expectRace(removed, false)

	m.Update(key("d"))

	s.Len(m.race.Players, 1)
}

func (s *ModelTestSuite) TestCycleBet() {
	m := s.newModel(s.idle, false)

	s.mockGame.EXPECT().SetBet(gomock.Any(), &game.SetBetInput{Amount: 30000}).Return(&game.SetBetOutput{BetAmount: 30000}, nil)
	s.expectRace(s.idle, false)

	m.Update(key("b"))
}

func (s *ModelTestSuite) TestNextBetWraps() {
	last := models.BetOptions[len(models.BetOptions)-1]
	s.Equal(models.BetOptions[0], nextBet(last))
	s.Equal(models.BetOptions[0], nextBet(12345))
}

func (s *ModelTestSuite) TestStartNeedsTwoPlayers() {
	m := s.newModel(s.idle, false)

	s.mockGame.EXPECT().StartRace(gomock.Any(), gomock.Any()).Return(nil, game.ErrNotEnoughPlayers)

	_, cmd := m.Update(key("enter"))

	s.Nil(cmd)
	s.Equal("At least two players are needed to race", m.notice)
	s.Contains(m.View(), "At least two players are needed to race")
}

func (s *ModelTestSuite) TestUnexpectedErrorIsGeneric() {
	m := s.newModel(s.idle, false)

	s.mockGame.EXPECT().AddPlayer(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	s.expectRace(s.idle, false)

	m.Update(key("a"))

	s.Equal("Something went wrong, see the log.", m.notice)
}

func (s *ModelTestSuite) TestStartSchedulesFrames() {
	m := s.newModel(s.idle, false)

	racing := s.idle.Clone()
	racing.ID = "race-1"
	racing.Phase = models.RacePhaseRacing

	s.mockGame.EXPECT().StartRace(gomock.Any(), gomock.Any()).Return(&game.StartRaceOutput{Race: racing}, nil)
	s.expectRace(racing, false)

	_, cmd := m.Update(key("enter"))

	s.NotNil(cmd)
	s.True(m.lastFrame.IsZero())
	s.Equal("status racing", m.status)
}

func (s *ModelTestSuite) TestFramesTickByWallTime() {
	racing := s.idle.Clone()
	racing.ID = "race-1"
	racing.Phase = models.RacePhaseRacing
	m := s.newModel(racing, false)

	t0 := time.Date(2026, 4, 19, 20, 0, 0, 0, time.UTC)

	// first frame only anchors the clock
	_, cmd := m.Update(frameMsg(t0))
	s.NotNil(cmd)

	ticked := racing.Clone()
	ticked.Players[0].BeerLevel = 90

	s.mockGame.EXPECT().
		Tick(gomock.Any(), &game.TickInput{Elapsed: 20 * time.Millisecond}).
		Return(&game.TickOutput{Race: ticked}, nil)

	_, cmd = m.Update(frameMsg(t0.Add(20 * time.Millisecond)))
	s.NotNil(cmd)
	s.Equal(90.0, m.race.Players[0].BeerLevel)

	// a repeated timestamp does not tick
	_, cmd = m.Update(frameMsg(t0.Add(20 * time.Millisecond)))
	s.NotNil(cmd)
}

func (s *ModelTestSuite) TestFinishShowsPendingVerdict() {
	racing := s.idle.Clone()
	racing.ID = "race-1"
	racing.Phase = models.RacePhaseRacing
	m := s.newModel(racing, false)

	t0 := time.Date(2026, 4, 19, 20, 0, 0, 0, time.UTC)
	m.Update(frameMsg(t0))

	finished := racing.Clone()
	finished.Phase = models.RacePhaseFinished
	finished.LoserID = "p2"
	finished.WinnerID = "p1"
	finished.Players[0].Rank = 1
	finished.Players[0].PrizeMoney = 30000
	finished.Players[1].Rank = 2
	finished.Players[1].PrizeMoney = 10000

	s.mockGame.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(&game.TickOutput{Race: finished, Finished: true}, nil)
	s.expectRace(finished, true)

	_, cmd := m.Update(frameMsg(t0.Add(time.Second)))

	s.NotNil(cmd)
	s.True(m.verdictPending)
	view := m.View()
	s.Contains(view, "Tin drinks")
	s.Contains(view, "The referee is deciding...")
	s.Contains(view, "+30k")
	s.Contains(view, "r another round")

	// frames after the finish are ignored
	_, cmd = m.Update(frameMsg(t0.Add(2 * time.Second)))
	s.Nil(cmd)

	withVerdict := finished.Clone()
	withVerdict.Verdict = &models.Verdict{Penalty: "Drink 30% (offline)", Commentary: "Sword saint"}
	s.expectRace(withVerdict, false)

	_, cmd = m.Update(verdictReadyMsg{race: withVerdict})

	s.NotNil(cmd)
	s.False(m.verdictPending)
	view = m.View()
	s.Contains(view, "Drink 30% (offline)")
	s.Contains(view, "Sword saint")
	s.NotContains(view, "deciding")

	_, cmd = m.Update(spinner.TickMsg{})
	s.Nil(cmd)
}

func (s *ModelTestSuite) TestTickErrorKeepsRetrying() {
	racing := s.idle.Clone()
	racing.Phase = models.RacePhaseRacing
	m := s.newModel(racing, false)

	t0 := time.Date(2026, 4, 19, 20, 0, 0, 0, time.UTC)
	m.Update(frameMsg(t0))

	s.mockGame.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to record race: ledger down"))

	_, cmd := m.Update(frameMsg(t0.Add(time.Second)))

	s.NotNil(cmd)
	s.Contains(m.notice, "could not be settled")
	s.Equal("r give up · q quit", m.help())

	// the retry settles the race
	finished := s.idle.Clone()
	finished.Phase = models.RacePhaseFinished
	s.mockGame.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(&game.TickOutput{Race: finished, Finished: true}, nil)
	s.expectRace(finished, false)

	m.Update(frameMsg(t0.Add(time.Second + settleRetryInterval)))

	s.True(m.race.Phase.IsFinished())
	s.Equal("r another round · s stats · q quit", m.help())
}

func (s *ModelTestSuite) TestGiveUpOnStuckRace() {
	racing := s.idle.Clone()
	racing.Phase = models.RacePhaseRacing
	m := s.newModel(racing, false)

	t0 := time.Date(2026, 4, 19, 20, 0, 0, 0, time.UTC)
	m.Update(frameMsg(t0))

	s.mockGame.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to record race: ledger down"))
	m.Update(frameMsg(t0.Add(time.Second)))

	s.mockGame.EXPECT().ResetRace(gomock.Any(), gomock.Any()).Return(&game.ResetRaceOutput{Race: s.idle}, nil)
	s.expectRace(s.idle, false)

	m.Update(key("r"))

	s.True(m.race.Phase.IsIdle())

	// a late retry frame finds the table idle and stops
	_, cmd := m.Update(frameMsg(t0.Add(time.Second + settleRetryInterval)))
	s.Nil(cmd)
}

func (s *ModelTestSuite) TestTickGameErrorStopsFrames() {
	racing := s.idle.Clone()
	racing.Phase = models.RacePhaseRacing
	m := s.newModel(racing, false)

	t0 := time.Date(2026, 4, 19, 20, 0, 0, 0, time.UTC)
	m.Update(frameMsg(t0))

	s.mockGame.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(nil, game.ErrInvalidPhase)

	_, cmd := m.Update(frameMsg(t0.Add(time.Second)))

	s.Nil(cmd)
	s.Equal("Not allowed in the current phase", m.notice)
}

func (s *ModelTestSuite) TestReset() {
	finished := s.idle.Clone()
	finished.Phase = models.RacePhaseFinished
	m := s.newModel(finished, false)

	s.mockGame.EXPECT().ResetRace(gomock.Any(), gomock.Any()).Return(&game.ResetRaceOutput{Race: s.idle}, nil)
	s.expectRace(s.idle, false)

	m.Update(key("r"))

	s.True(m.race.Phase.IsIdle())
	s.Equal("status idle", m.status)
}

func (s *ModelTestSuite) TestStatsToggle() {
	m := s.newModel(s.idle, false)

	s.mockGame.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).Return(&game.GetLeaderboardOutput{
		Entries: []*models.PlayerStats{
			{PlayerID: "p1", PlayerName: "Cheo", NetWinnings: 10000},
			{PlayerID: "p2", PlayerName: "Tin", NetWinnings: -10000, LossCount: 1},
		},
	}, nil)
	s.mockMessaging.EXPECT().
		GetDrunkMessage(gomock.Any(), &messaging.GetDrunkMessageInput{PlayerName: "Cheo", LossCount: 0}).
		Return(&messaging.GetDrunkMessageOutput{Message: "sober"}, nil)
	s.mockMessaging.EXPECT().
		GetDrunkMessage(gomock.Any(), &messaging.GetDrunkMessageInput{PlayerName: "Tin", LossCount: 1}).
		Return(&messaging.GetDrunkMessageOutput{Message: "warming up"}, nil)

	m.Update(key("s"))

	s.True(m.showStats)
	view := m.View()
	s.Contains(view, "1. Cheo +10k, 0 🍺")
	s.Contains(view, "2. Tin -10k, 1 🍺")
	s.Contains(view, "warming up")

	m.Update(key("s"))
	s.False(m.showStats)
}

func (s *ModelTestSuite) TestQuit() {
	m := s.newModel(s.idle, false)

	_, cmd := m.Update(key("q"))

	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
	s.Empty(m.View())
}

func (s *ModelTestSuite) TestNotifierForwardsEvents() {
	race := s.idle.Clone()

	s.notifier.RaceFinished(race)
	s.notifier.VerdictReady(race)

	s.IsType(raceFinishedMsg{}, s.notifier.listen()())
	s.IsType(verdictReadyMsg{}, s.notifier.listen()())
}

func (s *ModelTestSuite) TestNotifierNeverBlocks() {
	for i := 0; i < 100; i++ {
		s.notifier.VerdictReady(s.idle)
	}
	s.Len(s.notifier.events, cap(s.notifier.events))
}
