package system

import (
	"math"

	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// Volume identifies which hit sphere resolved an aim
type Volume uint8

const (
	VolumeVisual Volume = iota
	VolumeAssist
)

func (v Volume) String() string {
	if v == VolumeAssist {
		return "assist"
	}
	return "visual"
}

// AimInput is one pointer activation: normalized screen coordinate plus the camera ray through it
type AimInput struct {
	X, Y float64
	Ray  vmath.Ray
}

// TargetingSystem resolves buffered aim input against live threats
type TargetingSystem struct {
	world       *engine.World
	projectiles *ProjectileSystem
	pending     []AimInput
}

func NewTargetingSystem(world *engine.World, projectiles *ProjectileSystem) *TargetingSystem {
	return &TargetingSystem{
		world:       world,
		projectiles: projectiles,
		pending:     make([]AimInput, 0, parameter.AimQueueSize),
	}
}

func (s *TargetingSystem) Name() string { return "targeting" }

// Queue buffers input until the next tick, returns false when the buffer is full
func (s *TargetingSystem) Queue(in AimInput) bool {
	if len(s.pending) >= parameter.AimQueueSize {
		s.world.Log.Printf("targeting: aim buffer full, dropping input at (%.3f, %.3f)", in.X, in.Y)
		return false
	}
	s.pending = append(s.pending, in)
	return true
}

// Reset drops buffered input
func (s *TargetingSystem) Reset() {
	s.pending = s.pending[:0]
}

func (s *TargetingSystem) Update() {
	for _, in := range s.pending {
		s.handle(in)
	}
	s.pending = s.pending[:0]
}

func (s *TargetingSystem) handle(in AimInput) {
	w := s.world
	t, vol, ok := s.Resolve(in.Ray)
	if !ok {
		w.Log.Printf("targeting: miss at (%.3f, %.3f)", in.X, in.Y)
		w.Emit(event.EventAimMiss, &event.AimMissPayload{X: in.X, Y: in.Y})
		return
	}

	// Already resolving toward destruction
	if t.HitCount+w.InFlight(t.ID) >= t.MaxHits {
		w.Log.Printf("targeting: %d already saturated (%d hits, %d in flight)", t.ID, t.HitCount, w.InFlight(t.ID))
		return
	}

	w.Log.Printf("targeting: hit %d %q via %s volume", t.ID, t.Name, vol)
	s.projectiles.Fire(t, vol)
}

// Resolve returns the threat whose visual or assist sphere the ray enters first
// Ties between volumes favor the visual sphere
func (s *TargetingSystem) Resolve(ray vmath.Ray) (*component.Threat, Volume, bool) {
	var (
		best    *component.Threat
		bestVol Volume
		bestT   = math.Inf(1)
	)
	assist := s.world.Config.AssistMultiplier

	for _, t := range s.world.Threats.All() {
		if !t.Targetable() {
			continue
		}
		if hit, ok := vmath.RaySphere(ray, t.Position, t.Radius); ok && hit < bestT {
			best, bestVol, bestT = t, VolumeVisual, hit
		}
		if hit, ok := vmath.RaySphere(ray, t.Position, t.Radius*assist); ok && hit < bestT {
			best, bestVol, bestT = t, VolumeAssist, hit
		}
	}
	return best, bestVol, best != nil
}
