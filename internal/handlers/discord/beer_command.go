package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Subcommand and option names
const (
	subJoin     = "join"
	subAdd      = "add"
	subRemove   = "remove"
	subRename   = "rename"
	subBet      = "bet"
	subPortrait = "portrait"
	subStart    = "start"
	subReset    = "reset"
	subStats    = "stats"
	subStatus   = "status"

	optName   = "name"
	optSeat   = "seat"
	optAmount = "amount"
	optImage  = "image"
)

var errUnknownSeat = errors.New("unknown seat")

// BeerCommand handles the /beer command
type BeerCommand struct {
	BaseCommand
	bot *Bot
}

// NewBeerCommand creates a new beer command handler
func NewBeerCommand(bot *Bot) *BeerCommand {
	minSeat := 1.0

	seatOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        optSeat,
		Description: "Seat number shown on the board",
		Required:    true,
		MinValue:    &minSeat,
	}

	betChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.BetOptions))
	for _, amount := range models.BetOptions {
		betChoices = append(betChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  models.FormatAmount(amount),
			Value: amount,
		})
	}

	return &BeerCommand{
		BaseCommand: BaseCommand{
			Name:        "beer",
			Description: "Beer drinking race",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subJoin,
					Description: "Take a seat at the table",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subAdd,
					Description: "Seat someone without a Discord account",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optName,
							Description: "Display name, leave empty for P<n>",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRemove,
					Description: "Remove a player from the table",
					Options:     []*discordgo.ApplicationCommandOption{seatOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRename,
					Description: "Rename a player",
					Options: []*discordgo.ApplicationCommandOption{
						seatOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optName,
							Description: "New display name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subBet,
					Description: "Set what every player pays in",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optAmount,
							Description: "Bet per player",
							Required:    true,
							Choices:     betChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subPortrait,
					Description: "Attach a portrait to a player",
					Options: []*discordgo.ApplicationCommandOption{
						seatOption,
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        optImage,
							Description: "Portrait image",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStart,
					Description: "Start the race",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subReset,
					Description: "Clear the finished race for another round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStats,
					Description: "Show winnings and beers for this session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStatus,
					Description: "Post the race board again",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the beer command
func (c *BeerCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	t, err := c.bot.tables.get(i.ChannelID)
	if err != nil {
		c.bot.logger.Error("failed to open table", "channel", i.ChannelID, "err", err)
		return RespondWithError(s, i, userMessage(err))
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case subJoin:
		userID, username := interactionUser(i)
		if err := c.bot.join(ctx, t, userID, username); err != nil {
			return RespondWithError(s, i, userMessage(err))
		}
		return RespondWithEphemeralMessage(s, i, "You're at the table. Bottoms up when the race starts! 🍺")
	case subAdd:
		return c.handleAdd(ctx, s, i, t, opts)
	case subRemove:
		return c.handleRemove(ctx, s, i, t, opts)
	case subRename:
		return c.handleRename(ctx, s, i, t, opts)
	case subBet:
		return c.handleBet(ctx, s, i, t, opts)
	case subPortrait:
		return c.handlePortrait(ctx, s, i, t, opts, data.Resolved)
	case subStart:
		if err := c.bot.startRace(ctx, t); err != nil {
			return RespondWithError(s, i, userMessage(err))
		}
		return RespondWithEphemeralMessage(s, i, "And they're off! 🍺")
	case subReset:
		if err := c.bot.resetRace(ctx, t); err != nil {
			return RespondWithError(s, i, userMessage(err))
		}
		return RespondWithEphemeralMessage(s, i, "Glasses refilled.")
	case subStats:
		return c.handleStats(ctx, s, i, t)
	case subStatus:
		// forget the old board so a fresh one lands at the bottom of the channel
		t.setBoardMessageID("")
		c.bot.refreshBoard(ctx, t)
		return RespondWithEphemeralMessage(s, i, "Board posted.")
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// playerAtSeat resolves a 1-based seat number to a player
func playerAtSeat(ctx context.Context, t *table, seat int64) (*models.Player, error) {
	out, err := t.service.GetRace(ctx, &game.GetRaceInput{})
	if err != nil {
		return nil, err
	}

	if seat < 1 || seat > int64(len(out.Race.Players)) {
		return nil, errUnknownSeat
	}

	return out.Race.Players[seat-1], nil
}

func (c *BeerCommand) seatError(err error) string {
	if errors.Is(err, errUnknownSeat) {
		return "There is nobody in that seat."
	}
	return userMessage(err)
}

func (c *BeerCommand) handleAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t *table, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	var name string
	if opt, ok := opts[optName]; ok {
		name = opt.StringValue()
	}

	out, err := t.service.AddPlayer(ctx, &game.AddPlayerInput{Name: name})
	if err != nil {
		return RespondWithError(s, i, userMessage(err))
	}

	c.bot.refreshBoard(ctx, t)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s takes a seat.", out.Player.Name))
}

func (c *BeerCommand) handleRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t *table, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	player, err := playerAtSeat(ctx, t, opts[optSeat].IntValue())
	if err != nil {
		return RespondWithError(s, i, c.seatError(err))
	}

	if _, err := t.service.RemovePlayer(ctx, &game.RemovePlayerInput{PlayerID: player.ID}); err != nil {
		return RespondWithError(s, i, userMessage(err))
	}

	c.bot.refreshBoard(ctx, t)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s left the table.", player.Name))
}

func (c *BeerCommand) handleRename(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t *table, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	player, err := playerAtSeat(ctx, t, opts[optSeat].IntValue())
	if err != nil {
		return RespondWithError(s, i, c.seatError(err))
	}

	out, err := t.service.RenamePlayer(ctx, &game.RenamePlayerInput{
		PlayerID: player.ID,
		Name:     opts[optName].StringValue(),
	})
	if err != nil {
		return RespondWithError(s, i, userMessage(err))
	}

	c.bot.refreshBoard(ctx, t)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s is now %s.", player.Name, out.Player.Name))
}

func (c *BeerCommand) handleBet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t *table, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	out, err := t.service.SetBet(ctx, &game.SetBetInput{Amount: opts[optAmount].IntValue()})
	if err != nil {
		return RespondWithError(s, i, userMessage(err))
	}

	c.bot.refreshBoard(ctx, t)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Bet set to %s.", models.FormatAmount(out.BetAmount)))
}

func (c *BeerCommand) handlePortrait(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t *table, opts map[string]*discordgo.ApplicationCommandInteractionDataOption, resolved *discordgo.ApplicationCommandInteractionDataResolved) error {
	player, err := playerAtSeat(ctx, t, opts[optSeat].IntValue())
	if err != nil {
		return RespondWithError(s, i, c.seatError(err))
	}

	url, ok := attachmentURL(opts[optImage], resolved)
	if !ok {
		return RespondWithError(s, i, "Could not read the attached image.")
	}

	if _, err := t.service.AttachPortrait(ctx, &game.AttachPortraitInput{PlayerID: player.ID, URL: url}); err != nil {
		return RespondWithError(s, i, userMessage(err))
	}

	c.bot.refreshBoard(ctx, t)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Portrait attached to %s.", player.Name))
}

// attachmentURL finds the uploaded file an attachment option points at
func attachmentURL(opt *discordgo.ApplicationCommandInteractionDataOption, resolved *discordgo.ApplicationCommandInteractionDataResolved) (string, bool) {
	if opt == nil || resolved == nil {
		return "", false
	}

	id, ok := opt.Value.(string)
	if !ok {
		return "", false
	}

	attachment, ok := resolved.Attachments[id]
	if !ok || attachment.URL == "" {
		return "", false
	}

	return attachment.URL, true
}

func (c *BeerCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t *table) error {
	lines, err := c.bot.stats(ctx, t)
	if err != nil {
		c.bot.logger.Error("failed to load stats", "channel", i.ChannelID, "err", err)
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithEmbed(s, i, renderStatsEmbed(lines))
}
