package parameter

// Defended Body Health
const (
	// MaxHealth is the defended body's starting and maximum health
	MaxHealth = 100

	// DamagePerImpact is the health lost for each hazardous impact
	DamagePerImpact = 10
)

// Targeting
const (
	// AssistMultiplier scales the visual radius into the invisible assist volume, must be >= 1
	AssistMultiplier = 2.5

	// LaunchOffset is the distance outside the defended body's surface where projectiles start
	LaunchOffset = 0.75
)

// Projectile
const (
	// ProjectileStep is the travel progress gained per tick (20 ticks to target)
	ProjectileStep = 0.05

	// ProjectileRadius is the render radius of a projectile
	ProjectileRadius = 0.3
)

// Score
const (
	// PointsBenign is awarded for destroying a benign threat
	PointsBenign = 75

	// PointsHazardSmall is awarded for destroying a small hazardous threat
	PointsHazardSmall = 100

	// PointsHazardMedium is awarded for destroying a medium hazardous threat
	PointsHazardMedium = 150

	// PointsHazardLarge is awarded for destroying a large hazardous threat
	PointsHazardLarge = 200

	// PartialHitScore is awarded for a non-lethal hit
	PartialHitScore = 10
)

// Threat Size (visual radius by size class)
const (
	RadiusSmall  = 0.8
	RadiusMedium = 1.4
	RadiusLarge  = 2.2
)

// Impact
const (
	// ImpactAnimationTicks is how long an impacting threat stays frozen before removal
	ImpactAnimationTicks = 45
)
