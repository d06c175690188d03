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

// Scheduler labels
const (
	labelSpawn         = "spawn"
	labelAdvance       = "advance"
	labelWatchdog      = "watchdog"
	labelBossSplit     = "boss_split"
	labelImpactRemoval = "impact_removal"
)

// RadiusFor returns the visual radius of a size class
func RadiusFor(size content.SizeClass) float64 {
	switch size {
	case content.SizeSmall:
		return parameter.RadiusSmall
	case content.SizeLarge:
		return parameter.RadiusLarge
	default:
		return parameter.RadiusMedium
	}
}

// PointsFor returns the full point value of a standard threat
func PointsFor(tpl content.Template) int {
	if !tpl.Hazardous {
		return parameter.PointsBenign
	}
	switch tpl.SizeClass {
	case content.SizeSmall:
		return parameter.PointsHazardSmall
	case content.SizeLarge:
		return parameter.PointsHazardLarge
	default:
		return parameter.PointsHazardMedium
	}
}

// Spawner inserts threats with their trail and announces them
type Spawner struct {
	world *engine.World
}

func NewSpawner(world *engine.World) *Spawner {
	return &Spawner{world: world}
}

// Spawn inserts t, assigning its id
func (sp *Spawner) Spawn(t *component.Threat) core.Entity {
	e := sp.world.Threats.Insert(t)
	t.ID = e
	sp.world.Trails.InsertAt(e, &component.Trail{Handle: uint64(e)})

	sp.world.Emit(event.EventThreatSpawned, &event.ThreatSpawnedPayload{
		Entity:     e,
		Name:       t.Name,
		SizeClass:  string(t.Template.SizeClass),
		Hazardous:  t.Hazard == component.Hazardous,
		Generation: t.Generation(),
		Position:   t.Position,
	})
	return e
}

// StandardThreat builds a randomized wave threat scaled for wave
func (sp *Spawner) StandardThreat(wave int) *component.Threat {
	w := sp.world
	rng := w.Rand
	cfg := &w.Config

	tpl := w.Templates.Pick(rng.Float64() < cfg.HazardShare(wave))
	t := &component.Threat{
		Name:     tpl.Name,
		Template: tpl,
		Radius:   RadiusFor(tpl.SizeClass),
		MaxHits:  1,
		Points:   PointsFor(tpl),
		Variant:  component.Standard{},
	}
	t.Spin = vmath.Vec3{X: parameter.RotationIncrementX, Y: parameter.RotationIncrementY}

	angle := rng.Angle()
	center := vmath.Vec3{}

	if tpl.Hazardous {
		t.Hazard = component.Hazardous
		dist := rng.Range(parameter.SpawnDistanceMin, parameter.SpawnDistanceMax)
		height := rng.Range(-parameter.SpawnHeightSpread, parameter.SpawnHeightSpread)
		t.Position = vmath.V3FromPolarXZ(angle, dist, height)
		speed := rng.Range(parameter.HazardSpeedMin, parameter.HazardSpeedMax) * cfg.SpeedMultiplier(wave)
		t.Velocity = vmath.V3Scale(vmath.V3Normalize(vmath.V3Sub(center, t.Position)), speed)
		return t
	}

	t.Hazard = component.Benign
	radius := rng.Range(parameter.OrbitRadiusMin, parameter.OrbitRadiusMax)
	t.Position = vmath.V3FromPolarXZ(angle, radius, 0)
	t.Orbit.TargetRadius = radius
	if wave < cfg.OrbitingBenignFromWave {
		t.Orbit.Stationary = true
	} else {
		t.Velocity = physics.OrbitalInsert(t.Position, center, parameter.OrbitInsertSpeed, rng.Intn(2) == 0)
	}
	return t
}

// childOffset returns the unit XZ direction of child i out of n
func childOffset(i, n int, phase float64) vmath.Vec3 {
	a := phase + 2*math.Pi*float64(i)/float64(n)
	return vmath.Vec3{X: math.Cos(a), Z: math.Sin(a)}
}
