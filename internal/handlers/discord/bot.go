package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/beerrace/internal/models"
	"github.com/KirkDiggler/beerrace/internal/scheduler"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// DefaultEditInterval limits how often the race board is edited while racing
const DefaultEditInterval = time.Second

// A failing tick is retried every tickRetryInterval until tickRetryWindow passes
const (
	tickRetryInterval = 500 * time.Millisecond
	tickRetryWindow   = 10 * time.Second
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	tables     *tableRegistry
	messaging  messaging.Service
	loop       *scheduler.Loop
	logger     *log.Logger
	config     *Config

	editInterval time.Duration

	// ctx bounds every race loop, it ends on Stop
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// NewTable builds the game service for a channel
	NewTable TableFactory

	// Messaging writes status lines and stats comments
	Messaging messaging.Service

	// Loop drives race ticks, defaults to a real clock loop
	Loop *scheduler.Loop

	// EditInterval defaults to DefaultEditInterval
	EditInterval time.Duration

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.NewTable == nil {
		return nil, errors.New("table factory cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	loop := cfg.Loop
	if loop == nil {
		loop = scheduler.New(&scheduler.Config{Logger: logger})
	}

	editInterval := cfg.EditInterval
	if editInterval <= 0 {
		editInterval = DefaultEditInterval
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		messaging:    cfg.Messaging,
		loop:         loop,
		logger:       logger,
		config:       cfg,
		editInterval: editInterval,
		ctx:          ctx,
		cancel:       cancel,
	}
	bot.tables = newTableRegistry(cfg.NewTable, bot.notifierFor)

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewBeerCommand(b)); err != nil {
		return fmt.Errorf("failed to register beer command: %w", err)
	}

	b.logger.Info("bot is now running, press CTRL-C to exit")
	return nil
}

// Stop ends every race, removes the commands and closes the connection
func (b *Bot) Stop(ctx context.Context) error {
	b.cancel()
	b.tables.closeAll(ctx)

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "err", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		b.logger.Info("registering command", "command", cmd.GetName(), "guild", b.config.GuildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", i.ApplicationCommandData().Name, "err", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons on the race board
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction", "err", err)
		}
	}
}

// handleComponentInteraction handles button clicks on the race board
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	t, err := b.tables.get(i.ChannelID)
	if err != nil {
		return RespondWithError(s, i, userMessage(err))
	}

	switch customID := i.MessageComponentData().CustomID; customID {
	case ButtonJoin:
		userID, username := interactionUser(i)
		if err := b.join(ctx, t, userID, username); err != nil {
			return RespondWithError(s, i, userMessage(err))
		}
	case ButtonStart:
		if err := b.startRace(ctx, t); err != nil {
			return RespondWithError(s, i, userMessage(err))
		}
	case ButtonReset:
		if err := b.resetRace(ctx, t); err != nil {
			return RespondWithError(s, i, userMessage(err))
		}
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	// The board was already edited, just acknowledge the click
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// join seats the Discord user at the table
func (b *Bot) join(ctx context.Context, t *table, userID, username string) error {
	if _, err := t.service.AddPlayer(ctx, &game.AddPlayerInput{
		Name:     username,
		PlayerID: userID,
	}); err != nil {
		return err
	}

	b.refreshBoard(ctx, t)
	return nil
}

// startRace starts the race and its tick loop
func (b *Bot) startRace(ctx context.Context, t *table) error {
	if _, err := t.service.StartRace(ctx, &game.StartRaceInput{}); err != nil {
		return err
	}

	b.refreshBoard(ctx, t)
	return b.runRace(t)
}

// resetRace returns a finished table to idle
func (b *Bot) resetRace(ctx context.Context, t *table) error {
	if _, err := t.service.ResetRace(ctx, &game.ResetRaceInput{}); err != nil {
		return err
	}

	b.refreshBoard(ctx, t)
	return nil
}

// raceTick drives one table. A failed tick, usually the ledger refusing to
// record the result, is retried until tickRetryWindow runs out.
func (b *Bot) raceTick(t *table) scheduler.TickFunc {
	var (
		sinceEdit  time.Duration
		retrying   bool
		failedFor  time.Duration
		sinceRetry time.Duration
	)

	return func(ctx context.Context, elapsed time.Duration) (bool, error) {
		if retrying {
			failedFor += elapsed
			sinceRetry += elapsed
			if sinceRetry < tickRetryInterval {
				return false, nil
			}
			sinceRetry = 0
		}

		out, err := t.service.Tick(ctx, &game.TickInput{Elapsed: elapsed})
		if errors.Is(err, game.ErrInvalidPhase) {
			// reset while the loop was retrying
			return true, nil
		}
		if err != nil {
			if failedFor >= tickRetryWindow {
				return false, err
			}
			if !retrying {
				b.logger.Warn("tick failed, retrying", "channel", t.channelID, "err", err)
			}
			retrying = true
			return false, nil
		}
		retrying, failedFor, sinceRetry = false, 0, 0

		// the finished board is drawn by the notifier
		sinceEdit += elapsed
		if !out.Finished && sinceEdit >= b.editInterval {
			sinceEdit = 0
			b.refreshBoard(ctx, t)
		}

		return out.Finished, nil
	}
}

// runRace ticks the table until the last glass is empty
func (b *Bot) runRace(t *table) error {
	run := b.loop.Start(b.ctx, b.raceTick(t))

	if err := t.setRun(run); err != nil {
		run.Stop()
		return err
	}

	go func() {
		err := run.Wait()
		t.clearRun(run)

		if err != nil && !errors.Is(err, context.Canceled) {
			b.logger.Error("race loop failed", "channel", t.channelID, "err", err)
			if _, sendErr := b.session.ChannelMessageSendEmbed(t.channelID, renderErrorEmbed("The race could not be settled, use `/beer reset` to start over.")); sendErr != nil {
				b.logger.Warn("failed to report race failure", "channel", t.channelID, "err", sendErr)
			}
		}
	}()

	return nil
}

// refreshBoard edits the channel's race board, posting a new one when needed
func (b *Bot) refreshBoard(ctx context.Context, t *table) {
	embed, components, err := b.board(ctx, t)
	if err != nil {
		b.logger.Error("failed to render board", "channel", t.channelID, "err", err)
		return
	}

	if messageID := t.boardMessageID(); messageID != "" {
		embeds := []*discordgo.MessageEmbed{embed}
		_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    t.channelID,
			ID:         messageID,
			Embeds:     &embeds,
			Components: &components,
		})
		if err == nil {
			return
		}
		b.logger.Warn("failed to edit board, posting a new one", "channel", t.channelID, "err", err)
	}

	msg, err := b.session.ChannelMessageSendComplex(t.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		b.logger.Error("failed to post board", "channel", t.channelID, "err", err)
		return
	}
	t.setBoardMessageID(msg.ID)
}

// board renders the current table state
func (b *Bot) board(ctx context.Context, t *table) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	out, err := t.service.GetRace(ctx, &game.GetRaceInput{})
	if err != nil {
		return nil, nil, err
	}

	status, err := b.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Phase:       out.Race.Phase,
		PlayerCount: len(out.Race.Players),
	})
	if err != nil {
		return nil, nil, err
	}

	return renderBoardEmbed(out.Race, out.VerdictPending, status.Message), renderBoardButtons(out.Race), nil
}

// stats builds the session standings with a comment per player
func (b *Bot) stats(ctx context.Context, t *table) ([]*StatsLine, error) {
	out, err := t.service.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}

	lines := make([]*StatsLine, 0, len(out.Entries))
	for _, entry := range out.Entries {
		drunk, err := b.messaging.GetDrunkMessage(ctx, &messaging.GetDrunkMessageInput{
			PlayerName: entry.PlayerName,
			LossCount:  entry.LossCount,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, &StatsLine{Stats: entry, Comment: drunk.Message})
	}

	return lines, nil
}

func (b *Bot) notifierFor(channelID string) game.Notifier {
	return &channelNotifier{bot: b, channelID: channelID}
}

// channelNotifier posts race events to a channel
type channelNotifier struct {
	bot       *Bot
	channelID string
}

// RaceFinished draws the podium
func (n *channelNotifier) RaceFinished(race *models.Race) {
	t, ok := n.bot.tables.lookup(n.channelID)
	if !ok {
		return
	}
	n.bot.refreshBoard(context.Background(), t)
}

// VerdictReady updates the board and announces the penalty
func (n *channelNotifier) VerdictReady(race *models.Race) {
	t, ok := n.bot.tables.lookup(n.channelID)
	if !ok {
		return
	}
	n.bot.refreshBoard(context.Background(), t)

	if _, err := n.bot.session.ChannelMessageSendEmbed(n.channelID, renderPenaltyEmbed(race)); err != nil {
		n.bot.logger.Error("failed to post penalty", "channel", n.channelID, "err", err)
	}
}

// userMessage turns an error into something safe to show in the channel
func userMessage(err error) string {
	var gameErr game.GameError
	if errors.As(err, &gameErr) {
		msg := gameErr.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
	return "Something went wrong, please try again."
}
