package engine

import (
	"io"
	"log"

	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// World is the complete owned state of one simulation
// Every system receives the same *World, nothing lives in package variables
type World struct {
	Config    Config
	State     GameState
	Clock     TickClock
	Scheduler Scheduler

	Threats     *Store[*component.Threat]
	Projectiles *Store[*component.Projectile]
	// Trails share their owner threat's id
	Trails *Store[*component.Trail]

	Events    *event.EventQueue
	Templates *content.Pool
	Rand      *vmath.FastRand
	Log       *log.Logger

	ids EntityAllocator
}

// NewWorld builds an empty world, nil logger discards
func NewWorld(cfg Config, templates *content.Pool, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	w := &World{
		Config:    cfg,
		State:     NewGameState(),
		Events:    event.NewEventQueue(),
		Templates: templates,
		Rand:      vmath.NewFastRand(cfg.Seed),
		Log:       logger,
	}
	w.Threats = NewStore[*component.Threat](&w.ids)
	w.Projectiles = NewStore[*component.Projectile](&w.ids)
	w.Trails = NewStore[*component.Trail](&w.ids)
	return w
}

// Reset returns the world to the pre-start state, keeping config and templates
func (w *World) Reset() {
	w.State.Reset()
	w.Clock.Reset()
	w.Scheduler.Clear()
	w.Threats.Clear()
	w.Projectiles.Clear()
	w.Trails.Clear()
	w.Events.Reset()
	w.ids.Reset()
	w.Rand = vmath.NewFastRand(w.Config.Seed)
}

// Now returns the current simulation tick
func (w *World) Now() uint64 {
	return w.Clock.Now()
}

// Emit stamps and queues a visual sink event
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Tick: w.Clock.Now(), Payload: payload})
}

// After schedules fn delay ticks from now
func (w *World) After(delay uint64, label string, fn func()) {
	w.Scheduler.At(w.Clock.Now()+delay, label, fn)
}

// LiveThreats counts threats not marked destroyed, impacting ones included
func (w *World) LiveThreats() int {
	return w.Threats.Count()
}

// DestroyThreat marks a threat and its trail, returns false if already gone
func (w *World) DestroyThreat(e core.Entity) bool {
	t, ok := w.Threats.Get(e)
	if !ok {
		return false
	}
	t.Destroyed = true
	w.Threats.MarkDestroyed(e)
	w.Trails.MarkDestroyed(e)
	return true
}

// InFlight counts unresolved projectiles aimed at e
func (w *World) InFlight(e core.Entity) int {
	n := 0
	for _, p := range w.Projectiles.All() {
		if p.Target == e && !p.Resolved {
			n++
		}
	}
	return n
}

// Compact frees everything destroyed this tick
func (w *World) Compact() {
	w.Threats.Compact()
	w.Projectiles.Compact()
	w.Trails.Compact()
}
