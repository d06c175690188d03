package engine

import (
	"fmt"

	"github.com/lixenwraith/orbit-defense/parameter"
)

// Config holds the tunables of a simulation, defaults come from parameter
type Config struct {
	Seed uint64 `yaml:"seed"`

	// Physics
	DefendedRadius     float64 `yaml:"defended_radius"`
	CollisionRadius    float64 `yaml:"collision_radius"`
	MaxDistance        float64 `yaml:"max_distance"`
	GravityStrength    float64 `yaml:"gravity_strength"`
	StabilizeTolerance float64 `yaml:"stabilize_tolerance"`
	StabilizeStrength  float64 `yaml:"stabilize_strength"`
	MaxSpeed           float64 `yaml:"max_speed"`

	// Combat
	DamagePerImpact      int     `yaml:"damage_per_impact"`
	AssistMultiplier     float64 `yaml:"assist_multiplier"`
	ProjectileStep       float64 `yaml:"projectile_step"`
	ImpactAnimationTicks uint64  `yaml:"impact_animation_ticks"`

	// Waves
	SpawnBase              int     `yaml:"spawn_base"`
	SpawnStepWaves         int     `yaml:"spawn_step_waves"`
	SpawnStepSize          int     `yaml:"spawn_step_size"`
	SpawnCap               int     `yaml:"spawn_cap"`
	BossWave               int     `yaml:"boss_wave"`
	OrbitingBenignFromWave int     `yaml:"orbiting_benign_from_wave"`
	WaveDelayTicks         uint64  `yaml:"wave_delay_ticks"`
	WatchdogIntervalTicks  uint64  `yaml:"watchdog_interval_ticks"`
	SpawnStaggerTicks      uint64  `yaml:"spawn_stagger_ticks"`
	SpeedScalePerWave      float64 `yaml:"speed_scale_per_wave"`

	// Boss
	BossHits            []int  `yaml:"boss_hits"`
	BossSplitCounts     []int  `yaml:"boss_split_counts"`
	BossPoints          []int  `yaml:"boss_points"`
	BossSplitDelayTicks uint64 `yaml:"boss_split_delay_ticks"`
}

// DefaultConfig seeds every tunable from parameter
func DefaultConfig() Config {
	return Config{
		Seed: 1,

		DefendedRadius:     parameter.DefendedRadius,
		CollisionRadius:    parameter.CollisionRadius,
		MaxDistance:        parameter.MaxDistance,
		GravityStrength:    parameter.GravityStrength,
		StabilizeTolerance: parameter.StabilizeTolerance,
		StabilizeStrength:  parameter.StabilizeStrength,
		MaxSpeed:           parameter.MaxSpeed,

		DamagePerImpact:      parameter.DamagePerImpact,
		AssistMultiplier:     parameter.AssistMultiplier,
		ProjectileStep:       parameter.ProjectileStep,
		ImpactAnimationTicks: parameter.ImpactAnimationTicks,

		SpawnBase:              parameter.SpawnBase,
		SpawnStepWaves:         parameter.SpawnStepWaves,
		SpawnStepSize:          parameter.SpawnStepSize,
		SpawnCap:               parameter.SpawnCap,
		BossWave:               parameter.BossWave,
		OrbitingBenignFromWave: parameter.OrbitingBenignFromWave,
		WaveDelayTicks:         parameter.WaveDelayTicks,
		WatchdogIntervalTicks:  parameter.WatchdogIntervalTicks,
		SpawnStaggerTicks:      parameter.SpawnStaggerTicks,
		SpeedScalePerWave:      parameter.SpeedScalePerWave,

		BossHits:            append([]int(nil), parameter.BossHits[:]...),
		BossSplitCounts:     append([]int(nil), parameter.BossSplitCounts[:]...),
		BossPoints:          append([]int(nil), parameter.BossPoints[:]...),
		BossSplitDelayTicks: parameter.BossSplitDelayTicks,
	}
}

// Validate clamps out-of-range values in place and reports each adjustment
func (c *Config) Validate() []string {
	var fixes []string
	def := DefaultConfig()

	fixFloat := func(name string, v *float64, ok bool, fallback float64) {
		if !ok {
			fixes = append(fixes, fmt.Sprintf("%s %.4g out of range, using %.4g", name, *v, fallback))
			*v = fallback
		}
	}
	fixInt := func(name string, v *int, ok bool, fallback int) {
		if !ok {
			fixes = append(fixes, fmt.Sprintf("%s %d out of range, using %d", name, *v, fallback))
			*v = fallback
		}
	}

	fixFloat("defended_radius", &c.DefendedRadius, c.DefendedRadius > 0, def.DefendedRadius)
	fixFloat("collision_radius", &c.CollisionRadius, c.CollisionRadius >= c.DefendedRadius, c.DefendedRadius+0.5)
	fixFloat("max_distance", &c.MaxDistance, c.MaxDistance > c.CollisionRadius, def.MaxDistance)
	fixFloat("gravity_strength", &c.GravityStrength, c.GravityStrength >= 0, def.GravityStrength)
	fixFloat("stabilize_tolerance", &c.StabilizeTolerance, c.StabilizeTolerance >= 0, def.StabilizeTolerance)
	fixFloat("stabilize_strength", &c.StabilizeStrength, c.StabilizeStrength >= 0, def.StabilizeStrength)
	fixFloat("max_speed", &c.MaxSpeed, c.MaxSpeed > 0, def.MaxSpeed)
	// Assist volume never shrinks below the visual sphere
	fixFloat("assist_multiplier", &c.AssistMultiplier, c.AssistMultiplier >= 1, 1)
	fixFloat("projectile_step", &c.ProjectileStep, c.ProjectileStep > 0 && c.ProjectileStep <= 1, def.ProjectileStep)
	fixFloat("speed_scale_per_wave", &c.SpeedScalePerWave, c.SpeedScalePerWave >= 0, def.SpeedScalePerWave)

	fixInt("damage_per_impact", &c.DamagePerImpact, c.DamagePerImpact >= 0, def.DamagePerImpact)
	fixInt("spawn_base", &c.SpawnBase, c.SpawnBase >= 1, def.SpawnBase)
	fixInt("spawn_step_waves", &c.SpawnStepWaves, c.SpawnStepWaves >= 1, def.SpawnStepWaves)
	fixInt("spawn_step_size", &c.SpawnStepSize, c.SpawnStepSize >= 0, def.SpawnStepSize)
	fixInt("spawn_cap", &c.SpawnCap, c.SpawnCap >= c.SpawnBase, c.SpawnBase)
	fixInt("boss_wave", &c.BossWave, c.BossWave >= 1, def.BossWave)
	fixInt("orbiting_benign_from_wave", &c.OrbitingBenignFromWave, c.OrbitingBenignFromWave >= 1, def.OrbitingBenignFromWave)

	if c.WatchdogIntervalTicks <= c.WaveDelayTicks {
		fixes = append(fixes, fmt.Sprintf("watchdog_interval_ticks %d not above wave_delay_ticks, using %d",
			c.WatchdogIntervalTicks, c.WaveDelayTicks*2+1))
		c.WatchdogIntervalTicks = c.WaveDelayTicks*2 + 1
	}

	if !validLineage(c.BossHits, c.BossSplitCounts, c.BossPoints) {
		fixes = append(fixes, "boss lineage tables inconsistent, using defaults")
		c.BossHits = def.BossHits
		c.BossSplitCounts = def.BossSplitCounts
		c.BossPoints = def.BossPoints
	}

	return fixes
}

// validLineage requires one split count per non-terminal generation,
// positive non-increasing hit budgets and one point value per generation
func validLineage(hits, counts, points []int) bool {
	if len(hits) == 0 || len(counts) != len(hits)-1 || len(points) != len(hits) {
		return false
	}
	for i, h := range hits {
		if h < 1 {
			return false
		}
		if i > 0 && h > hits[i-1] {
			return false
		}
	}
	for _, n := range counts {
		if n < 1 {
			return false
		}
	}
	return true
}

// SpawnCount returns threats spawned in an ordinary wave, non-decreasing in w
func (c *Config) SpawnCount(wave int) int {
	if wave < 1 {
		wave = 1
	}
	n := c.SpawnBase + ((wave-1)/c.SpawnStepWaves)*c.SpawnStepSize
	if n > c.SpawnCap {
		n = c.SpawnCap
	}
	return n
}

// SpeedMultiplier scales hazardous initial speed by wave
func (c *Config) SpeedMultiplier(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	m := 1 + c.SpeedScalePerWave*float64(wave-1)
	if m > parameter.SpeedScaleMax {
		m = parameter.SpeedScaleMax
	}
	return m
}

// HazardShare is the probability a spawned threat is hazardous
func (c *Config) HazardShare(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	s := parameter.HazardShareBase + parameter.HazardSharePerWave*float64(wave-1)
	if s > parameter.HazardShareMax {
		s = parameter.HazardShareMax
	}
	return s
}
