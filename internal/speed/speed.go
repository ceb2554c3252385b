package speed

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/beerrace/internal/speed Roller

// Roller draws the random numbers that pace a race
type Roller interface {
	// AmbientFactor is the cosmetic speed used while the table is idle
	AmbientFactor() float64

	// RaceFactor is the speed a player keeps for a whole race
	RaceFactor() float64

	// Jitter is the per tick multiplier applied on top of the speed factor
	Jitter() float64
}

// Default ranges, each half-open [min, max)
const (
	DefaultAmbientMin = 0.2
	DefaultAmbientMax = 1.0
	DefaultRaceMin    = 0.5
	DefaultRaceMax    = 2.0
	DefaultJitterMin  = 0.5
	DefaultJitterMax  = 1.7
)

// Config for the speed model
type Config struct {
	// Optional seed for testing
	Seed int64

	AmbientMin float64
	AmbientMax float64
	RaceMin    float64
	RaceMax    float64
	JitterMin  float64
	JitterMax  float64
}

// Model is the math/rand backed Roller
type Model struct {
	mu     sync.Mutex
	random *rand.Rand
	cfg    Config
}

// New creates a new speed model, unset ranges fall back to the defaults
func New(cfg *Config) *Model {
	var c Config
	if cfg != nil {
		c = *cfg
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c.AmbientMin, c.AmbientMax = rangeOrDefault(c.AmbientMin, c.AmbientMax, DefaultAmbientMin, DefaultAmbientMax)
	c.RaceMin, c.RaceMax = rangeOrDefault(c.RaceMin, c.RaceMax, DefaultRaceMin, DefaultRaceMax)
	c.JitterMin, c.JitterMax = rangeOrDefault(c.JitterMin, c.JitterMax, DefaultJitterMin, DefaultJitterMax)

	return &Model{
		random: rand.New(rand.NewSource(seed)),
		cfg:    c,
	}
}

// AmbientFactor returns a value in [AmbientMin, AmbientMax)
func (m *Model) AmbientFactor() float64 {
	return m.between(m.cfg.AmbientMin, m.cfg.AmbientMax)
}

// RaceFactor returns a value in [RaceMin, RaceMax)
func (m *Model) RaceFactor() float64 {
	return m.between(m.cfg.RaceMin, m.cfg.RaceMax)
}

// Jitter returns a value in [JitterMin, JitterMax)
func (m *Model) Jitter() float64 {
	return m.between(m.cfg.JitterMin, m.cfg.JitterMax)
}

func (m *Model) between(lo, hi float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lo + m.random.Float64()*(hi-lo)
}

// rangeOrDefault keeps a configured range only if it is positive and non-empty
func rangeOrDefault(lo, hi, defLo, defHi float64) (float64, float64) {
	if lo <= 0 || hi <= lo {
		return defLo, defHi
	}
	return lo, hi
}
