package game

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/inbetween/internal/randutil"
	"github.com/lox/inbetween/internal/roomid"
)

// Registry is the process-wide owner of all rooms, keyed by their
// human-shareable codes. No Room exists outside it, and create/delete are
// atomic with respect to lookup.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	cfg    Config
	logger *log.Logger
	clock  quartz.Clock
	gen    *roomid.Generator
	seed   func() int64
}

// NewRegistry constructs an empty registry.
func NewRegistry(cfg Config, logger *log.Logger, clock quartz.Clock) *Registry {
	return &Registry{
		rooms:  make(map[string]*Room),
		cfg:    cfg,
		logger: logger.WithPrefix("registry"),
		clock:  clock,
		gen:    roomid.NewGenerator(nil),
	}
}

// SetSeedFunc overrides the per-room RNG seeding, for deterministic tests.
func (reg *Registry) SetSeedFunc(fn func() int64) {
	reg.seed = fn
}

// Create makes a new room under a freshly generated code that doesn't
// collide with any live room. The sink factory is invoked with the chosen
// code so the gateway can bind its broadcast scope before the room emits
// anything.
func (reg *Registry) Create(sinkFor func(code string) Sink) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var code string
	for {
		code = reg.gen.NewCode()
		if _, exists := reg.rooms[code]; !exists {
			break
		}
	}

	rng := randutil.NewFromTime()
	if reg.seed != nil {
		rng = randutil.New(reg.seed())
	}
	room := newRoom(code, reg.cfg, reg.logger, reg.clock, sinkFor(code), rng)
	reg.rooms[code] = room
	reg.logger.Info("room created", "room", code, "total", len(reg.rooms))
	return room
}

// Get looks up a room by code.
func (reg *Registry) Get(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// Delete closes and removes a room. Closing invalidates any delayed turn
// work still in flight for it.
func (reg *Registry) Delete(code string) {
	reg.mu.Lock()
	room, ok := reg.rooms[code]
	if ok {
		delete(reg.rooms, code)
	}
	reg.mu.Unlock()

	if ok {
		room.Close()
		reg.logger.Info("room deleted", "room", code)
	}
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
