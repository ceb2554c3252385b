package messaging_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	"github.com/KirkDiggler/beerrace/internal/services/messaging/mocks"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGenerator *mocks.MockGenerator
	service       messaging.Service
	ctx           context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGenerator = mocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()

	var err error
	s.service, err = messaging.NewService(&messaging.Config{
		Generator: s.mockGenerator,
		Logger:    log.New(io.Discard),
		Seed:      42,
	})
	s.Require().NoError(err)
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) offlineService(locale messaging.Locale) messaging.Service {
	svc, err := messaging.NewService(&messaging.Config{
		Locale: locale,
		Logger: log.New(io.Discard),
		Seed:   7,
	})
	s.Require().NoError(err)
	return svc
}

func (s *MessagingServiceTestSuite) TestNewServiceValidation() {
	_, err := messaging.NewService(nil)
	s.Error(err)

	_, err = messaging.NewService(&messaging.Config{Locale: "fr"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestParseLocale() {
	locale, err := messaging.ParseLocale("")
	s.NoError(err)
	s.Equal(messaging.LocaleEnglish, locale)

	locale, err = messaging.ParseLocale(" VI ")
	s.NoError(err)
	s.Equal(messaging.LocaleVietnamese, locale)

	_, err = messaging.ParseLocale("klingon")
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestPenaltyFromGenerator() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.GenerateInput) (*messaging.GenerateOutput, error) {
			s.Contains(input.Prompt, `"Tin"`)
			s.Require().NotNil(input.Temperature)
			s.InDelta(1.1, *input.Temperature, 0.0001)
			return &messaging.GenerateOutput{Text: "  Drink 50% - for dawdling!\n"}, nil
		})

	out, err := s.service.GetPenaltyMessage(s.ctx, &messaging.GetPenaltyMessageInput{LoserName: "Tin"})
	s.Require().NoError(err)
	s.Equal("Drink 50% - for dawdling!", out.Message)
	s.False(out.Offline)
}

func (s *MessagingServiceTestSuite) TestPenaltyGeneratorFailure() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	out, err := s.service.GetPenaltyMessage(s.ctx, &messaging.GetPenaltyMessageInput{LoserName: "Tin"})
	s.Require().NoError(err)
	s.Equal("Drink 50% - the network died, drink anyway!", out.Message)
	s.True(out.Offline)
}

func (s *MessagingServiceTestSuite) TestPenaltyEmptyResponse() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(&messaging.GenerateOutput{Text: "   "}, nil)

	out, err := s.service.GetPenaltyMessage(s.ctx, &messaging.GetPenaltyMessageInput{LoserName: "Tin"})
	s.Require().NoError(err)
	s.Equal("Drink 100% - because the referee said so!", out.Message)
}

func (s *MessagingServiceTestSuite) TestPenaltyOffline() {
	svc := s.offlineService(messaging.LocaleEnglish)

	tiers := map[string]bool{
		"Drink 100% (offline)": true,
		"Drink 50% (offline)":  true,
		"Drink 30% (offline)":  true,
	}
	for i := 0; i < 20; i++ {
		out, err := svc.GetPenaltyMessage(s.ctx, &messaging.GetPenaltyMessageInput{LoserName: "Tin"})
		s.Require().NoError(err)
		s.True(out.Offline)
		s.True(tiers[out.Message], "unexpected penalty %q", out.Message)
	}
}

func (s *MessagingServiceTestSuite) TestPenaltyOfflineVietnamese() {
	svc := s.offlineService(messaging.LocaleVietnamese)

	out, err := svc.GetPenaltyMessage(s.ctx, &messaging.GetPenaltyMessageInput{LoserName: "Tin"})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(out.Message, "Uống "))
	s.True(strings.HasSuffix(out.Message, " (offline)"))
}

func (s *MessagingServiceTestSuite) TestWinnerCommentary() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.GenerateInput) (*messaging.GenerateOutput, error) {
			s.Contains(input.Prompt, `"Cheo"`)
			s.Nil(input.Temperature)
			return &messaging.GenerateOutput{Text: "Sword of a thousand sips"}, nil
		})

	out, err := s.service.GetWinnerMessage(s.ctx, &messaging.GetWinnerMessageInput{WinnerName: "Cheo"})
	s.Require().NoError(err)
	s.Equal("Sword of a thousand sips", out.Message)
}

func (s *MessagingServiceTestSuite) TestWinnerCommentaryFallbacks() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.New("quota exceeded"))

	out, err := s.service.GetWinnerMessage(s.ctx, &messaging.GetWinnerMessageInput{WinnerName: "Cheo"})
	s.Require().NoError(err)
	s.Empty(out.Message)

	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(&messaging.GenerateOutput{}, nil)

	out, err = s.service.GetWinnerMessage(s.ctx, &messaging.GetWinnerMessageInput{WinnerName: "Cheo"})
	s.Require().NoError(err)
	s.Equal("A true master of the martial world!", out.Message)

	out, err = s.offlineService(messaging.LocaleEnglish).GetWinnerMessage(s.ctx, &messaging.GetWinnerMessageInput{WinnerName: "Cheo"})
	s.Require().NoError(err)
	s.Empty(out.Message)
	s.True(out.Offline)
}

func (s *MessagingServiceTestSuite) TestVerdict() {
	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.GenerateInput) (*messaging.GenerateOutput, error) {
			if strings.Contains(input.Prompt, `"Tin"`) {
				return &messaging.GenerateOutput{Text: "Drink 30% - pace yourself"}, nil
			}
			return &messaging.GenerateOutput{Text: "Hero of the tavern"}, nil
		}).
		Times(2)

	out, err := s.service.GetVerdict(s.ctx, &messaging.GetVerdictInput{LoserName: "Tin", WinnerName: "Cheo"})
	s.Require().NoError(err)
	s.Equal("Drink 30% - pace yourself", out.Penalty)
	s.Equal("Hero of the tavern", out.Commentary)
	s.False(out.Offline)
}

func (s *MessagingServiceTestSuite) TestVerdictCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *messaging.GenerateInput) (*messaging.GenerateOutput, error) {
			return nil, ctx.Err()
		}).
		Times(2)

	out, err := s.service.GetVerdict(ctx, &messaging.GetVerdictInput{LoserName: "Tin", WinnerName: "Cheo"})
	s.Require().NoError(err)
	s.Equal("Drink 50% - the network died, drink anyway!", out.Penalty)
	s.Empty(out.Commentary)
	s.True(out.Offline)
}

func (s *MessagingServiceTestSuite) TestStatusMessage() {
	out, err := s.service.GetStatusMessage(s.ctx, &messaging.GetStatusMessageInput{Phase: models.RacePhaseRacing})
	s.Require().NoError(err)
	s.Contains(out.Message, "Chugging...")

	out, err = s.service.GetStatusMessage(s.ctx, &messaging.GetStatusMessageInput{Phase: models.RacePhaseIdle, PlayerCount: 6})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
}

func (s *MessagingServiceTestSuite) TestDrunkMessage() {
	tests := []struct {
		count int
		want  string
	}{
		{0, "Tin hasn't touched a drop"},
		{2, "Tin has only had 2, barely a sip!"},
		{4, "Tin is starting to feel it, look at that red face!"},
		{7, "Tin is 7 deep and seeing double!"},
		{9, "Tin has downed 9, call a tow truck!"},
	}

	for _, tt := range tests {
		out, err := s.service.GetDrunkMessage(s.ctx, &messaging.GetDrunkMessageInput{PlayerName: "Tin", LossCount: tt.count})
		s.Require().NoError(err)
		s.Equal(tt.want, out.Message)
	}
}
