package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/beerrace/internal/scheduler"
	"github.com/KirkDiggler/beerrace/internal/services/game"
)

// TableFactory builds the game service for a channel
type TableFactory func(channelID string, notifier game.Notifier) (game.Service, error)

// table is one channel's game plus its Discord bookkeeping
type table struct {
	channelID string
	service   game.Service

	mu        sync.Mutex
	messageID string
	run       *scheduler.Run
}

func (t *table) boardMessageID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.messageID
}

func (t *table) setBoardMessageID(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageID = id
}

// setRun records the running tick loop, it fails if one is already running
func (t *table) setRun(run *scheduler.Run) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.run != nil {
		return errors.New("race loop already running")
	}
	t.run = run
	return nil
}

func (t *table) clearRun(run *scheduler.Run) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.run == run {
		t.run = nil
	}
}

func (t *table) stop() {
	t.mu.Lock()
	run := t.run
	t.mu.Unlock()

	if run != nil {
		run.Stop()
	}
	t.service.Close()
}

// tableRegistry creates tables lazily, one per channel
type tableRegistry struct {
	newTable    TableFactory
	notifierFor func(channelID string) game.Notifier

	mu        sync.Mutex
	byChannel map[string]*table
}

func newTableRegistry(factory TableFactory, notifierFor func(channelID string) game.Notifier) *tableRegistry {
	return &tableRegistry{
		newTable:    factory,
		notifierFor: notifierFor,
		byChannel:   make(map[string]*table),
	}
}

// get returns the channel's table, creating it on first use
func (r *tableRegistry) get(channelID string) (*table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.byChannel[channelID]; ok {
		return t, nil
	}

	svc, err := r.newTable(channelID, r.notifierFor(channelID))
	if err != nil {
		return nil, fmt.Errorf("failed to create table for channel %s: %w", channelID, err)
	}

	t := &table{channelID: channelID, service: svc}
	r.byChannel[channelID] = t
	return t, nil
}

// lookup returns the channel's table without creating it
func (r *tableRegistry) lookup(channelID string) (*table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byChannel[channelID]
	return t, ok
}

// closeAll stops every race loop and pending verdict
func (r *tableRegistry) closeAll(ctx context.Context) {
	r.mu.Lock()
	tables := make([]*table, 0, len(r.byChannel))
	for _, t := range r.byChannel {
		tables = append(tables, t)
	}
	r.mu.Unlock()

	var wg sync.WaitGroup
	for _, t := range tables {
		wg.Add(1)
		go func(t *table) {
			defer wg.Done()
			t.stop()
		}(t)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
