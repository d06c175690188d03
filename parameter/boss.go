package parameter

// Boss Lineage
var (
	// BossHits is the hit budget per generation (root, split 1, split 2), non-increasing
	BossHits = [3]int{3, 2, 1}

	// BossSplitCounts is the number of children per parent for generation 0 and 1
	BossSplitCounts = [2]int{3, 2}

	// BossPoints is the score per destroyed fragment by generation
	BossPoints = [3]int{1000, 400, 150}
)

// Boss Geometry & Motion
const (
	// BossRadius is the root boss visual radius
	BossRadius = 4.0

	// BossSizeScale shrinks each generation relative to its parent
	BossSizeScale = 0.6

	// BossSpawnDistance is the root boss spawn distance
	BossSpawnDistance = 120.0

	// BossSpeed is the root boss initial inbound speed (world units per tick)
	BossSpeed = 0.06

	// BossSplitSpeedup scales the parent's velocity into each child
	BossSplitSpeedup = 1.1

	// BossSplitOutward is the outward speed added along each child's offset direction
	BossSplitOutward = 0.04

	// BossSplitOffset is the child placement distance from the parent, in child radii
	BossSplitOffset = 1.5
)

// Boss Timing
const (
	// BossSplitDelayTicks is the delay between a lethal hit and the children appearing
	BossSplitDelayTicks = 30
)
