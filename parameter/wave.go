package parameter

// Spawn Count Step Function
const (
	// SpawnBase is the number of threats in wave 1
	SpawnBase = 3

	// SpawnStepWaves is the number of waves between count increments
	SpawnStepWaves = 1

	// SpawnStepSize is the count increment per step
	SpawnStepSize = 2

	// SpawnCap is the maximum ordinary threats per wave
	SpawnCap = 12
)

// Wave Progression
const (
	// BossWave is the reserved wave where only the root boss spawns
	BossWave = 5

	// OrbitingBenignFromWave is the first wave where benign threats orbit instead of idling
	OrbitingBenignFromWave = 2

	// HazardShareBase is the probability of a hazardous spawn on wave 1
	HazardShareBase = 0.5

	// HazardSharePerWave is the hazardous probability increment per wave
	HazardSharePerWave = 0.1

	// HazardShareMax caps the hazardous probability
	HazardShareMax = 0.9
)

// Wave Timing (ticks)
const (
	// WaveDelayTicks is the pause between a cleared wave and the next
	WaveDelayTicks = 120

	// WatchdogIntervalTicks is the stall check period, longer than WaveDelayTicks
	WatchdogIntervalTicks = 300

	// SpawnStaggerTicks separates consecutive spawns within a wave
	SpawnStaggerTicks = 20
)

// Spawn Placement
const (
	// SpawnDistanceMin is the minimum spawn distance for hazardous threats
	SpawnDistanceMin = 70.0

	// SpawnDistanceMax is the maximum spawn distance for hazardous threats
	SpawnDistanceMax = 110.0

	// SpawnHeightSpread is the vertical spread around the orbital plane
	SpawnHeightSpread = 6.0

	// OrbitRadiusMin is the smallest benign target orbit radius
	OrbitRadiusMin = 18.0

	// OrbitRadiusMax is the largest benign target orbit radius
	OrbitRadiusMax = 40.0
)

// Hazard Speed (world units per tick)
const (
	HazardSpeedMin = 0.08
	HazardSpeedMax = 0.16

	// SpeedScalePerWave is the hazardous speed increase per wave
	SpeedScalePerWave = 0.15

	// SpeedScaleMax caps the wave speed multiplier
	SpeedScaleMax = 2.0

	// OrbitInsertSpeed is the tangential speed given to orbiting benign threats
	OrbitInsertSpeed = 0.05
)
