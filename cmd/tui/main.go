package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/beerrace/internal/common/clock"
	"github.com/KirkDiggler/beerrace/internal/common/uuid"
	"github.com/KirkDiggler/beerrace/internal/handlers/tui"
	ledgerRepo "github.com/KirkDiggler/beerrace/internal/repositories/stats_ledger"
	"github.com/KirkDiggler/beerrace/internal/services/game"
	"github.com/KirkDiggler/beerrace/internal/services/messaging"
	"github.com/KirkDiggler/beerrace/internal/services/race"
	"github.com/KirkDiggler/beerrace/internal/services/settlement"
	"github.com/KirkDiggler/beerrace/internal/speed"
)

var CLI struct {
	Player   []string          `short:"p" help:"Seat a player, repeat for more (default roster when none)"`
	Portrait map[string]string `help:"Portrait per player name, e.g. --portrait Cheo=cheo.png"`
	Bet      int64             `short:"b" default:"20000" help:"Bet per player"`
	Seed     int64             `help:"Speed seed for reproducible races, zero picks one"`

	Locale       string `default:"en" enum:"en,vi" help:"Penalty language (en, vi)"`
	GeminiAPIKey string `env:"GEMINI_API_KEY" help:"Gemini API key, canned penalties when empty"`
	GeminiModel  string `default:"${gemini_model}" help:"Gemini model"`

	LogFile  string `default:"beerrace.log" help:"Log file, the terminal belongs to the table"`
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("beerrace"),
		kong.Description("Beer drinking race on a shared screen"),
		kong.UsageOnError(),
		kong.Vars{"gemini_model": messaging.DefaultGeminiModel},
	)

	logFile, err := os.OpenFile(CLI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Printf("Failed to open log file: %v\n", err)
		kctx.Exit(1)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.NewWithOptions(logFile, log.Options{ReportTimestamp: true})
	level, err := log.ParseLevel(CLI.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	ctx := context.Background()

	locale, err := messaging.ParseLocale(CLI.Locale)
	kctx.FatalIfErrorf(err)

	msgCfg := &messaging.Config{Locale: locale, Seed: CLI.Seed, Logger: logger.WithPrefix("messaging")}
	if CLI.GeminiAPIKey != "" {
		generator, err := messaging.NewGemini(ctx, &messaging.GeminiConfig{APIKey: CLI.GeminiAPIKey, Model: CLI.GeminiModel})
		kctx.FatalIfErrorf(err)
		msgCfg.Generator = generator
	}
	msgSvc, err := messaging.NewService(msgCfg)
	kctx.FatalIfErrorf(err)

	engine, err := race.New(&race.Config{Roller: speed.New(&speed.Config{Seed: CLI.Seed})})
	kctx.FatalIfErrorf(err)

	notifier := tui.NewNotifier()
	table, err := game.New(&game.Config{
		BetAmount:     CLI.Bet,
		DefaultRoster: len(CLI.Player) == 0,
		LedgerRepo:    ledgerRepo.NewMemory(),
		Engine:        engine,
		Settlement:    settlement.New(nil),
		Messaging:     msgSvc,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Notifier:      notifier,
		Logger:        logger.WithPrefix("table"),
	})
	kctx.FatalIfErrorf(err)
	defer table.Close()

	for _, name := range CLI.Player {
		out, err := table.AddPlayer(ctx, &game.AddPlayerInput{Name: name})
		kctx.FatalIfErrorf(err)

		if url, ok := CLI.Portrait[name]; ok {
			_, err := table.AttachPortrait(ctx, &game.AttachPortraitInput{PlayerID: out.Player.ID, URL: url})
			kctx.FatalIfErrorf(err)
		}
	}

	model, err := tui.New(&tui.Config{
		Game:      table,
		Messaging: msgSvc,
		Notifier:  notifier,
		Logger:    logger,
	})
	kctx.FatalIfErrorf(err)

	logger.Info("starting table", "players", len(CLI.Player), "bet", CLI.Bet, "locale", locale)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("table view failed", "err", err)
		kctx.Exit(1)
	}
}
