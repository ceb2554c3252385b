package game

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/KirkDiggler/beerrace/internal/common/clock"
	"github.com/KirkDiggler/beerrace/internal/common/uuid"
	"github.com/KirkDiggler/beerrace/internal/models"
	ledgerRepo "github.com/KirkDiggler/beerrace/internal/repositories/stats_ledger"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	"github.com/KirkDiggler/beerrace/internal/services/race"
	"github.com/KirkDiggler/beerrace/internal/services/settlement"
	"github.com/KirkDiggler/beerrace/internal/speed"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/suite"
)

// TableTestSuite plays whole sessions against the real engine and ledger
type TableTestSuite struct {
	suite.Suite
	ledger ledgerRepo.Repository
	svc    *service
	ctx    context.Context
}

func (s *TableTestSuite) SetupTest() {
	s.ctx = context.Background()
	logger := log.New(io.Discard)

	engine, err := race.New(&race.Config{Roller: speed.New(&speed.Config{Seed: 20250419})})
	s.Require().NoError(err)

	msg, err := messaging.NewService(&messaging.Config{Logger: logger, Seed: 1})
	s.Require().NoError(err)

	s.ledger = ledgerRepo.NewMemory()
	s.svc, err = New(&Config{
		DefaultRoster: true,
		Engine:        engine,
		Settlement:    settlement.New(nil),
		LedgerRepo:    s.ledger,
		Messaging:     msg,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	s.Require().NoError(err)
}

func (s *TableTestSuite) TearDownTest() {
	s.svc.Close()
}

func TestTableTestSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

// runRace ticks at a ragged frame rate until the race completes
func (s *TableTestSuite) runRace() *models.Race {
	_, err := s.svc.StartRace(s.ctx, &StartRaceInput{})
	s.Require().NoError(err)

	frames := []time.Duration{16 * time.Millisecond, 17 * time.Millisecond, 33 * time.Millisecond, 0, 250 * time.Millisecond}
	for i := 0; i < 100000; i++ {
		out, err := s.svc.Tick(s.ctx, &TickInput{Elapsed: frames[i%len(frames)]})
		s.Require().NoError(err)
		if out.Finished {
			return out.Race
		}
	}

	s.FailNow("race never finished")
	return nil
}

func (s *TableTestSuite) TestSessionIsZeroSum() {
	const races = 5

	for i := 0; i < races; i++ {
		finished := s.runRace()

		ranks := map[int]bool{}
		var prizes int64
		for _, p := range finished.Players {
			s.Zero(p.BeerLevel)
			ranks[p.Rank] = true
			prizes += p.PrizeMoney
		}
		s.Len(ranks, len(finished.Players))
		for rank := 1; rank <= len(finished.Players); rank++ {
			s.True(ranks[rank], "rank %d missing", rank)
		}
		s.Equal(finished.Pot.Total, prizes)
		s.Equal(int64(len(finished.Players))*finished.BetAmount, finished.Pot.Total)
		s.Equal(len(finished.Players), finished.Player(finished.LoserID).Rank)

		s.svc.verdicts.Wait()
		table, err := s.svc.GetRace(s.ctx, &GetRaceInput{})
		s.Require().NoError(err)
		s.Require().NotNil(table.Race.Verdict)
		s.True(table.Race.Verdict.Offline)
		s.Contains(table.Race.Verdict.Penalty, "(offline)")

		_, err = s.svc.ResetRace(s.ctx, &ResetRaceInput{})
		s.Require().NoError(err)
	}

	board, err := s.svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Len(board.Entries, len(models.DefaultPlayerNames))

	var net int64
	var losses int
	for _, e := range board.Entries {
		net += e.NetWinnings
		losses += e.LossCount
	}
	s.Zero(net)
	s.Equal(races, losses)
}

func (s *TableTestSuite) TestSixPlayerPot() {
	finished := s.runRace()

	s.Equal(&models.Pot{Total: 120000, First: 60000, Second: 35000, Third: 25000}, finished.Pot)
}
