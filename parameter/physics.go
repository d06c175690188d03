package parameter

// Defended Body
const (
	// DefendedRadius is the visual radius of the defended body at the origin
	DefendedRadius = 5.0

	// CollisionRadius is the distance from the origin at which a threat impacts
	CollisionRadius = 5.5

	// MaxDistance is the distance beyond which a threat leaves play silently
	MaxDistance = 220.0
)

// Forces (world units per tick, per tick)
const (
	// GravityStrength is the constant pull applied to hazardous threats, independent of mass and distance
	GravityStrength = 0.0006

	// StabilizeTolerance is the half-width of the orbital band inside which no correction applies
	StabilizeTolerance = 1.0

	// StabilizeStrength is the radial correction applied to orbiting benign threats outside the band
	StabilizeStrength = 0.004

	// MaxSpeed clamps threat speed after force accumulation (world units per tick)
	MaxSpeed = 1.5
)

// Rotation
const (
	// RotationIncrementX is the cosmetic per-tick rotation about X (radians)
	RotationIncrementX = 0.01

	// RotationIncrementY is the cosmetic per-tick rotation about Y (radians)
	RotationIncrementY = 0.006
)
