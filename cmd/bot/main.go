package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/beerrace/internal/common/clock"
	"github.com/KirkDiggler/beerrace/internal/common/uuid"
	"github.com/KirkDiggler/beerrace/internal/handlers/discord"
	ledgerRepo "github.com/KirkDiggler/beerrace/internal/repositories/stats_ledger"
	"github.com/KirkDiggler/beerrace/internal/scheduler"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	"github.com/KirkDiggler/beerrace/internal/services/race"
	"github.com/KirkDiggler/beerrace/internal/services/settlement"
	"github.com/KirkDiggler/beerrace/internal/speed"
)

type CLI struct {
	DiscordToken  string `env:"DISCORD_TOKEN" required:"" help:"Discord bot token"`
	ApplicationID string `env:"APPLICATION_ID" help:"Discord application ID, defaults to the bot user"`
	GuildID       string `env:"GUILD_ID" help:"Register commands in one guild only (development)"`

	RedisAddr     string        `env:"REDIS_ADDR" help:"Redis address for session stats, in memory when empty"`
	RedisPassword string        `env:"REDIS_PASSWORD" help:"Redis password"`
	StatsTTL      time.Duration `env:"STATS_TTL" default:"24h" help:"How long session stats live in Redis"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" help:"Gemini API key, canned penalties when empty"`
	GeminiModel  string `env:"GEMINI_MODEL" default:"${gemini_model}" help:"Gemini model"`
	Locale       string `env:"LOCALE" default:"en" enum:"en,vi" help:"Penalty language (en, vi)"`

	DefaultRoster bool          `env:"DEFAULT_ROSTER" help:"Seat the default players at every new table"`
	EditInterval  time.Duration `env:"EDIT_INTERVAL" default:"1s" help:"Minimum time between board edits while racing"`
	LogLevel      string        `env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("beerrace-bot"),
		kong.Description("Discord beer drinking race"),
		kong.UsageOnError(),
		kong.Vars{"gemini_model": messaging.DefaultGeminiModel},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", cli.LogLevel, "err", err)
	}
	logger.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	msgSvc, err := newMessaging(ctx, &cli, logger)
	if err != nil {
		logger.Fatal("failed to create messaging service", "err", err)
	}

	newLedger, err := ledgerFactory(ctx, &cli, logger)
	if err != nil {
		logger.Fatal("failed to create stats ledger", "err", err)
	}

	uuidGen := uuid.New()
	factory := func(channelID string, notifier game.Notifier) (game.Service, error) {
		ledger, err := newLedger(channelID)
		if err != nil {
			return nil, err
		}

		engine, err := race.New(&race.Config{Roller: speed.New(&speed.Config{})})
		if err != nil {
			return nil, err
		}

		svc, err := game.New(&game.Config{
			DefaultRoster: cli.DefaultRoster,
			LedgerRepo:    ledger,
			Engine:        engine,
			Settlement:    settlement.New(nil),
			Messaging:     msgSvc,
			Clock:         &clock.DefaultClock{},
			UUIDGenerator: uuidGen,
			Notifier:      notifier,
			Logger:        logger.WithPrefix("table").With("channel", channelID),
		})
		if err != nil {
			return nil, err
		}
		return svc, nil
	}

	bot, err := discord.New(&discord.Config{
		Token:         cli.DiscordToken,
		ApplicationID: cli.ApplicationID,
		GuildID:       cli.GuildID,
		NewTable:      factory,
		Messaging:     msgSvc,
		Loop:          scheduler.New(&scheduler.Config{Clock: quartz.NewReal(), Logger: logger}),
		EditInterval:  cli.EditInterval,
		Logger:        logger.WithPrefix("discord"),
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", "err", err)
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", "err", err)
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := bot.Stop(shutdownCtx); err != nil {
		logger.Error("error stopping bot", "err", err)
		kctx.Exit(1)
	}

	logger.Info("bot has been shut down")
}

// newMessaging uses Gemini when a key is configured and canned lines otherwise
func newMessaging(ctx context.Context, cli *CLI, logger *log.Logger) (messaging.Service, error) {
	locale, err := messaging.ParseLocale(cli.Locale)
	if err != nil {
		return nil, err
	}

	cfg := &messaging.Config{
		Locale: locale,
		Logger: logger.WithPrefix("messaging"),
	}

	if cli.GeminiAPIKey != "" {
		generator, err := messaging.NewGemini(ctx, &messaging.GeminiConfig{
			APIKey: cli.GeminiAPIKey,
			Model:  cli.GeminiModel,
		})
		if err != nil {
			return nil, err
		}
		cfg.Generator = generator
		logger.Info("penalties written by Gemini", "model", cli.GeminiModel)
	} else {
		logger.Info("no Gemini key, using offline penalties")
	}

	return messaging.NewService(cfg)
}

// ledgerFactory returns a per channel ledger constructor, Redis backed when an address is set
func ledgerFactory(ctx context.Context, cli *CLI, logger *log.Logger) (func(channelID string) (ledgerRepo.Repository, error), error) {
	if cli.RedisAddr == "" {
		logger.Info("session stats kept in memory")
		return func(string) (ledgerRepo.Repository, error) {
			return ledgerRepo.NewMemory(), nil
		}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cli.RedisAddr,
		Password: cli.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	// stats belong to this process, a restart starts a new session
	session := uuid.New().NewUUID()
	logger.Info("session stats kept in Redis", "addr", cli.RedisAddr, "session", session)

	return func(channelID string) (ledgerRepo.Repository, error) {
		ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
			RedisClient: redisClient,
			SessionID:   session + ":" + channelID,
			TTL:         cli.StatsTTL,
		})
		if err != nil {
			return nil, err
		}
		return ledger, nil
	}, nil
}
