package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/KirkDiggler/beerrace/internal/services/game/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TableRegistryTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	created  map[string]*mocks.MockService
	registry *tableRegistry
}

func (s *TableRegistryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.created = make(map[string]*mocks.MockService)

	s.registry = newTableRegistry(
		func(channelID string, notifier game.Notifier) (game.Service, error) {
			if channelID == "broken" {
				return nil, errors.New("no ledger")
			}
			s.NotNil(notifier)
			svc := mocks.NewMockService(s.mockCtrl)
			s.created[channelID] = svc
			return svc, nil
		},
		func(channelID string) game.Notifier {
			return &channelNotifier{channelID: channelID}
		},
	)
}

func (s *TableRegistryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTableRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(TableRegistryTestSuite))
}

func (s *TableRegistryTestSuite) TestGetCreatesOncePerChannel() {
	first, err := s.registry.get("c1")
	s.Require().NoError(err)

	again, err := s.registry.get("c1")
	s.Require().NoError(err)
	s.Same(first, again)

	other, err := s.registry.get("c2")
	s.Require().NoError(err)
	s.NotSame(first, other)
	s.Len(s.created, 2)
}

func (s *TableRegistryTestSuite) TestGetFactoryError() {
	_, err := s.registry.get("broken")
	s.Error(err)

	_, ok := s.registry.lookup("broken")
	s.False(ok)
}

func (s *TableRegistryTestSuite) TestLookup() {
	_, ok := s.registry.lookup("c1")
	s.False(ok)

	_, err := s.registry.get("c1")
	s.Require().NoError(err)

	t, ok := s.registry.lookup("c1")
	s.True(ok)
	s.Equal("c1", t.channelID)
}

func (s *TableRegistryTestSuite) TestBoardMessageID() {
	t, err := s.registry.get("c1")
	s.Require().NoError(err)

	s.Empty(t.boardMessageID())
	t.setBoardMessageID("m1")
	s.Equal("m1", t.boardMessageID())
}

func (s *TableRegistryTestSuite) TestCloseAll() {
	_, err := s.registry.get("c1")
	s.Require().NoError(err)
	_, err = s.registry.get("c2")
	s.Require().NoError(err)

	s.created["c1"].EXPECT().Close()
	s.created["c2"].EXPECT().Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.registry.closeAll(ctx)
}
