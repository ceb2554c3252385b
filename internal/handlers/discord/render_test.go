package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	finished *models.Race
}

func (s *RenderTestSuite) SetupTest() {
	s.finished = &models.Race{
		ID:         "race-1",
		Generation: 3,
		Phase:      models.RacePhaseFinished,
		BetAmount:  20000,
		Players: []*models.Player{
			{ID: "p1", Name: "Cheo", Rank: 1, PrizeMoney: 30000},
			{ID: "p2", Name: "Tin", Rank: 2, PrizeMoney: 10000, PortraitURL: "https://cdn.example/tin.png"},
		},
		Pot:      &models.Pot{Total: 40000, First: 30000, Second: 10000},
		LoserID:  "p2",
		WinnerID: "p1",
	}
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) TestBeerBar() {
	s.Equal(strings.Repeat("🟨", 10)+" 100%", renderBeerBar(100))
	s.Equal(strings.Repeat("⬛", 10)+" 0%", renderBeerBar(0))
	s.Equal(strings.Repeat("🟨", 5)+strings.Repeat("⬛", 5)+" 50%", renderBeerBar(50))
	s.Equal(strings.Repeat("🟨", 1)+strings.Repeat("⬛", 9)+" 1%", renderBeerBar(0.3))
	s.Equal(strings.Repeat("⬛", 10)+" 0%", renderBeerBar(-4))
}

func (s *RenderTestSuite) TestIdleBoard() {
	race := &models.Race{
		Phase:     models.RacePhaseIdle,
		BetAmount: 50000,
		Players:   []*models.Player{{ID: "p1", Name: "Cheo", BeerLevel: 100}},
	}

	embed := renderBoardEmbed(race, false, "Glasses are full.")

	s.Equal("Glasses are full.", embed.Description)
	s.Equal(colorIdle, embed.Color)
	s.Equal("50k", embed.Fields[0].Value)
	s.Equal("50k", embed.Fields[1].Value)
	s.Contains(embed.Fields[2].Value, "`1` **Cheo**")
	s.Len(embed.Fields, 3)
	s.Nil(embed.Footer)

	rows := renderBoardButtons(race)
	s.Require().Len(rows, 1)
	buttons := rows[0].(discordgo.ActionsRow).Components
	s.Require().Len(buttons, 2)
	s.True(buttons[1].(discordgo.Button).Disabled)
}

func (s *RenderTestSuite) TestRacingBoard() {
	race := &models.Race{
		ID:        "race-1",
		Phase:     models.RacePhaseRacing,
		BetAmount: 20000,
		Players: []*models.Player{
			{ID: "p1", Name: "Cheo", Rank: 1},
			{ID: "p2", Name: "Tin", BeerLevel: 40},
		},
	}

	embed := renderBoardEmbed(race, false, "Chugging...")

	s.Equal(colorRacing, embed.Color)
	s.Contains(embed.Fields[2].Value, "**Cheo** ✅ #1")
	s.Contains(embed.Fields[2].Value, "40%")
	s.Empty(renderBoardButtons(race))
}

func (s *RenderTestSuite) TestFinishedBoard() {
	embed := renderBoardEmbed(s.finished, true, "Race over!")

	s.Equal(colorFinished, embed.Color)
	s.Contains(embed.Fields[2].Value, "**Cheo** 🥇 #1 +30k")
	s.Contains(embed.Fields[2].Value, "**Tin** 🥈 #2 +10k")
	s.Require().Len(embed.Fields, 4)
	s.Equal("🍻 Tin drinks", embed.Fields[3].Name)
	s.Equal("The referee is deciding...", embed.Fields[3].Value)
	s.Equal("Race 3", embed.Footer.Text)

	s.finished.Verdict = &models.Verdict{Penalty: "Drink 30%", Commentary: "Hero"}
	embed = renderBoardEmbed(s.finished, false, "Race over!")
	s.Equal("Drink 30%\n_Hero_", embed.Fields[3].Value)

	rows := renderBoardButtons(s.finished)
	s.Require().Len(rows, 1)
	s.Equal(ButtonReset, rows[0].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func (s *RenderTestSuite) TestPenaltyEmbed() {
	s.finished.Verdict = &models.Verdict{Penalty: "Drink 50% - for dawdling!", Commentary: "Sword saint"}

	embed := renderPenaltyEmbed(s.finished)

	s.Equal("🍻 Tin finished last", embed.Title)
	s.Equal("Drink 50% - for dawdling!", embed.Description)
	s.Equal("https://cdn.example/tin.png", embed.Thumbnail.URL)
	s.Require().Len(embed.Fields, 1)
	s.Equal("🥇 Cheo", embed.Fields[0].Name)
}

func (s *RenderTestSuite) TestStatsEmbed() {
	s.Equal("No races yet.", renderStatsEmbed(nil).Description)

	embed := renderStatsEmbed([]*StatsLine{
		{Stats: &models.PlayerStats{PlayerName: "Cheo", NetWinnings: 10000}, Comment: "Cheo hasn't touched a drop"},
		{Stats: &models.PlayerStats{PlayerName: "Tin", NetWinnings: -10000, LossCount: 1}},
	})

	s.Equal("1. **Cheo** +10k, 0 🍺\n   _Cheo hasn't touched a drop_\n2. **Tin** -10k, 1 🍺", embed.Description)
}

func (s *RenderTestSuite) TestUserMessage() {
	s.Equal("At least two players are needed to race", userMessage(game.ErrNotEnoughPlayers))
	s.Equal("Player not found", userMessage(fmt.Errorf("remove: %w", game.ErrPlayerNotFound)))
	s.Equal("Something went wrong, please try again.", userMessage(errors.New("redis: connection refused")))
}

func (s *RenderTestSuite) TestAttachmentURL() {
	resolved := &discordgo.ApplicationCommandInteractionDataResolved{
		Attachments: map[string]*discordgo.MessageAttachment{
			"123": {ID: "123", URL: "https://cdn.example/a.png"},
		},
	}

	url, ok := attachmentURL(&discordgo.ApplicationCommandInteractionDataOption{Name: optImage, Value: "123"}, resolved)
	s.True(ok)
	s.Equal("https://cdn.example/a.png", url)

	_, ok = attachmentURL(&discordgo.ApplicationCommandInteractionDataOption{Name: optImage, Value: "999"}, resolved)
	s.False(ok)

	_, ok = attachmentURL(nil, resolved)
	s.False(ok)
}

func (s *RenderTestSuite) TestInteractionUser() {
	id, name := interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{Nick: "Chèo", User: &discordgo.User{ID: "u1", Username: "cheo"}},
	}})
	s.Equal("u1", id)
	s.Equal("Chèo", name)

	id, name = interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "u2", Username: "tin"},
	}})
	s.Equal("u2", id)
	s.Equal("tin", name)
}

func (s *RenderTestSuite) TestBeerCommandDefinition() {
	cmd := NewBeerCommand(nil).GetCommand()

	s.Equal("beer", cmd.Name)
	names := make([]string, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{subJoin, subAdd, subRemove, subRename, subBet, subPortrait, subStart, subReset, subStats, subStatus}, names)
	s.Len(cmd.Options[4].Options[0].Choices, len(models.BetOptions))
}
