package discord

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	colorIdle     = 0xf59e0b
	colorRacing   = 0x06b6d4
	colorFinished = 0x10b981
	colorPenalty  = 0xef4444
	colorError    = 0xff0000
)

// Button IDs
const (
	ButtonJoin  = "beer_join"
	ButtonStart = "beer_start"
	ButtonReset = "beer_reset"
)

const barWidth = 10

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// renderBeerBar draws the glass as a bar, full glass means nothing drunk yet
func renderBeerBar(level float64) string {
	level = math.Max(0, math.Min(models.FullBeer, level))
	filled := int(math.Ceil(level / models.FullBeer * barWidth))
	return strings.Repeat("🟨", filled) + strings.Repeat("⬛", barWidth-filled) +
		fmt.Sprintf(" %d%%", int(math.Ceil(level)))
}

// renderPlayerLine renders one seat on the board
func renderPlayerLine(seat int, p *models.Player, phase models.RacePhase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "`%d` **%s**", seat, p.Name)

	switch {
	case phase.IsFinished():
		if medal, ok := medals[p.Rank]; ok {
			b.WriteString(" " + medal)
		}
		fmt.Fprintf(&b, " #%d", p.Rank)
		if p.PrizeMoney > 0 {
			b.WriteString(" +" + models.FormatAmount(p.PrizeMoney))
		}
	case p.Rank > 0:
		fmt.Fprintf(&b, " ✅ #%d", p.Rank)
	default:
		b.WriteString(" " + renderBeerBar(p.BeerLevel))
	}

	return b.String()
}

// renderBoardEmbed renders the table state
func renderBoardEmbed(race *models.Race, verdictPending bool, status string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🍺 Beer Race",
		Description: status,
	}

	switch {
	case race.Phase.IsRacing():
		embed.Color = colorRacing
	case race.Phase.IsFinished():
		embed.Color = colorFinished
	default:
		embed.Color = colorIdle
	}

	var lines []string
	for i, p := range race.Players {
		lines = append(lines, renderPlayerLine(i+1, p, race.Phase))
	}
	players := strings.Join(lines, "\n")
	if players == "" {
		players = "Nobody at the table yet. Use `/beer join` or `/beer add`."
	}

	total := int64(len(race.Players)) * race.BetAmount
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Bet", Value: models.FormatAmount(race.BetAmount), Inline: true},
		{Name: "Pot", Value: models.FormatAmount(total), Inline: true},
		{Name: "Players", Value: players},
	}

	if race.Phase.IsFinished() {
		embed.Fields = append(embed.Fields, renderVerdictField(race, verdictPending))
	}

	if race.ID != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Race " + strconv.FormatInt(race.Generation, 10)}
	}

	return embed
}

func renderVerdictField(race *models.Race, verdictPending bool) *discordgo.MessageEmbedField {
	loserName := "?"
	if loser := race.Player(race.LoserID); loser != nil {
		loserName = loser.Name
	}

	field := &discordgo.MessageEmbedField{Name: "🍻 " + loserName + " drinks"}
	switch {
	case race.Verdict != nil:
		field.Value = race.Verdict.Penalty
		if race.Verdict.Commentary != "" {
			field.Value += "\n_" + race.Verdict.Commentary + "_"
		}
	case verdictPending:
		field.Value = "The referee is deciding..."
	default:
		field.Value = "No verdict"
	}
	return field
}

// renderBoardButtons returns the buttons valid in the current phase
func renderBoardButtons(race *models.Race) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	switch {
	case race.Phase.IsIdle():
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Join",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonJoin,
				Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
			},
			discordgo.Button{
				Label:    "Start",
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonStart,
				Disabled: len(race.Players) < 2,
				Emoji:    &discordgo.ComponentEmoji{Name: "🍺"},
			},
		)
	case race.Phase.IsFinished():
		buttons = append(buttons, discordgo.Button{
			Label:    "Another round",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonReset,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
		})
	}

	if len(buttons) == 0 {
		return []discordgo.MessageComponent{}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// renderPenaltyEmbed announces the verdict in the channel
func renderPenaltyEmbed(race *models.Race) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🍻 Penalty",
		Color: colorPenalty,
	}

	if loser := race.Player(race.LoserID); loser != nil {
		embed.Title = "🍻 " + loser.Name + " finished last"
		if loser.PortraitURL != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: loser.PortraitURL}
		}
	}

	if race.Verdict != nil {
		embed.Description = race.Verdict.Penalty
		if winner := race.Player(race.WinnerID); winner != nil && race.Verdict.Commentary != "" {
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "🥇 " + winner.Name, Value: race.Verdict.Commentary},
			}
		}
	}

	return embed
}

// StatsLine pairs a ledger entry with its drunk comment
type StatsLine struct {
	Stats   *models.PlayerStats
	Comment string
}

// renderStatsEmbed renders the session standings
func renderStatsEmbed(lines []*StatsLine) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📊 Session stats",
		Color: colorFinished,
	}

	if len(lines) == 0 {
		embed.Description = "No races yet."
		return embed
	}

	var b strings.Builder
	for i, line := range lines {
		net := models.FormatAmount(line.Stats.NetWinnings)
		if line.Stats.NetWinnings > 0 {
			net = "+" + net
		}
		fmt.Fprintf(&b, "%d. **%s** %s, %d 🍺", i+1, line.Stats.PlayerName, net, line.Stats.LossCount)
		if line.Comment != "" {
			b.WriteString("\n   _" + line.Comment + "_")
		}
		b.WriteString("\n")
	}
	embed.Description = strings.TrimRight(b.String(), "\n")

	return embed
}

// renderErrorEmbed renders an error for the user
func renderErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}
