package system

import (
	"math"

	"github.com/lixenwraith/orbit-defense/component"
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/engine"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/physics"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// Lineage describes the boss split tree
// Hits[g] and Points[g] apply to generation g, Counts[g] children replace a destroyed generation g fragment
type Lineage struct {
	Hits   []int
	Counts []int
	Points []int
}

// NewLineage reads the lineage tables from a validated config
func NewLineage(cfg *engine.Config) Lineage {
	return Lineage{Hits: cfg.BossHits, Counts: cfg.BossSplitCounts, Points: cfg.BossPoints}
}

// Terminal returns the last generation, which does not split
func (l Lineage) Terminal() int {
	return len(l.Hits) - 1
}

// SubtreeSize counts a generation g fragment plus every descendant it can produce
func (l Lineage) SubtreeSize(g int) int {
	size, level := 1, 1
	for i := g; i < len(l.Counts); i++ {
		level *= l.Counts[i]
		size += level
	}
	return size
}

// Total is the number of fragments in a complete encounter
func (l Lineage) Total() int {
	return l.SubtreeSize(0)
}

// Radius returns the visual radius of generation g
func (l Lineage) Radius(g int) float64 {
	return parameter.BossRadius * math.Pow(parameter.BossSizeScale, float64(g))
}

// BossSystem runs the boss encounter: root spawn, deferred splits and part accounting
type BossSystem struct {
	world   *engine.World
	spawner *Spawner
	lineage Lineage
}

func NewBossSystem(world *engine.World, spawner *Spawner) *BossSystem {
	return &BossSystem{
		world:   world,
		spawner: spawner,
		lineage: NewLineage(&world.Config),
	}
}

func (s *BossSystem) Name() string { return "boss" }

// Lineage returns the active split tree
func (s *BossSystem) Lineage() Lineage {
	return s.lineage
}

// SpawnRoot activates the encounter with a single generation 0 fragment
func (s *BossSystem) SpawnRoot() core.Entity {
	w := s.world
	w.State.BossActive = true
	w.State.BossPartsDestroyed = 0
	w.State.BossPartsTotal = s.lineage.Total()

	pos := vmath.V3FromPolarXZ(w.Rand.Angle(), parameter.BossSpawnDistance, 0)
	root := s.fragment(0)
	root.Position = pos
	root.Velocity = vmath.V3Scale(vmath.V3Normalize(vmath.V3Sub(vmath.Vec3{}, pos)), parameter.BossSpeed)

	e := s.spawner.Spawn(root)
	w.Log.Printf("boss: root %d spawned, %d parts in lineage", e, w.State.BossPartsTotal)
	return e
}

func (s *BossSystem) fragment(g int) *component.Threat {
	return &component.Threat{
		Name: "Boss",
		Template: content.Template{
			ID:        "boss",
			Name:      "Boss",
			SizeClass: content.SizeLarge,
			Hazardous: true,
		},
		Radius:  s.lineage.Radius(g),
		Hazard:  component.Hazardous,
		MaxHits: s.lineage.Hits[g],
		Points:  s.lineage.Points[g],
		Variant: component.Boss{Generation: g},
		Kinetic: core.Kinetic{
			Spin: vmath.Vec3{X: parameter.RotationIncrementX, Y: parameter.RotationIncrementY},
		},
	}
}

// OnDestroyed counts a shot-down fragment and schedules its split
// Score and destroyed count are already recorded by the caller
func (s *BossSystem) OnDestroyed(t *component.Threat) {
	w := s.world
	g := t.Generation()

	if w.State.RecordBossParts(1) {
		s.declareVictory()
		return
	}
	if g >= s.lineage.Terminal() {
		return
	}

	parent := t.ID
	pos, vel := t.Position, t.Velocity
	w.After(w.Config.BossSplitDelayTicks, labelBossSplit, func() {
		s.split(parent, g, pos, vel)
	})
}

// Recall turns a fragment at the outer boundary back toward the defended body
// Boss parts leave the encounter only by being shot down, or by impact which ends the session
func (s *BossSystem) Recall(t *component.Threat) {
	out := vmath.V3Normalize(t.Position)
	t.Position = vmath.V3Scale(out, s.world.Config.MaxDistance)
	if radial := vmath.V3Dot(t.Velocity, out); radial > 0 {
		physics.ApplyImpulse(&t.Kinetic, vmath.V3Scale(out, -2*radial))
	}
}

func (s *BossSystem) split(parent core.Entity, g int, pos, vel vmath.Vec3) {
	w := s.world
	if w.State.Terminal() {
		return
	}

	childGen := g + 1
	n := s.lineage.Counts[g]
	radius := s.lineage.Radius(childGen)
	phase := w.Rand.Angle()

	children := make([]core.Entity, 0, n)
	for i := 0; i < n; i++ {
		dir := childOffset(i, n, phase)
		c := s.fragment(childGen)
		c.Position = vmath.V3Add(pos, vmath.V3Scale(dir, parameter.BossSplitOffset*radius))
		c.Velocity = vmath.V3Scale(vel, parameter.BossSplitSpeedup)
		physics.ApplyImpulse(&c.Kinetic, vmath.V3Scale(dir, parameter.BossSplitOutward))
		children = append(children, s.spawner.Spawn(c))
	}

	w.Log.Printf("boss: %d split into %d generation %d fragments", parent, n, childGen)
	w.Emit(event.EventBossSplit, &event.BossSplitPayload{
		Parent:     parent,
		Children:   children,
		Generation: childGen,
	})
}

func (s *BossSystem) declareVictory() {
	w := s.world
	w.Log.Printf("boss: encounter resolved, score %d", w.State.Score)
	w.Emit(event.EventVictory, &event.OutcomePayload{
		Score:          w.State.Score,
		Wave:           w.State.Wave,
		DestroyedCount: w.State.DestroyedCount,
	})
}
