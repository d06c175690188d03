package event

import (
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// RemovalReason explains an unscored removal
type RemovalReason uint8

const (
	RemovalOutOfPlay RemovalReason = iota
	RemovalPassThrough
	RemovalImpact
)

func (r RemovalReason) String() string {
	switch r {
	case RemovalPassThrough:
		return "pass_through"
	case RemovalImpact:
		return "impact"
	default:
		return "out_of_play"
	}
}

// ThreatSpawnedPayload describes a new threat, Generation is -1 for standard threats
type ThreatSpawnedPayload struct {
	Entity     core.Entity `msgpack:"entity"`
	Name       string      `msgpack:"name"`
	SizeClass  string      `msgpack:"size_class"`
	Hazardous  bool        `msgpack:"hazardous"`
	Generation int         `msgpack:"generation"`
	Position   vmath.Vec3  `msgpack:"position"`
}

// ExplosionPayload carries what an effect renderer needs for a blast
type ExplosionPayload struct {
	Entity     core.Entity `msgpack:"entity"`
	SizeClass  string      `msgpack:"size_class"`
	Radius     float64     `msgpack:"radius"`
	Generation int         `msgpack:"generation"`
	Position   vmath.Vec3  `msgpack:"position"`
}

// ThreatDestroyedPayload reports a scored destruction
type ThreatDestroyedPayload struct {
	Entity     core.Entity `msgpack:"entity"`
	Points     int         `msgpack:"points"`
	Generation int         `msgpack:"generation"`
}

// ThreatRemovedPayload reports an unscored removal
type ThreatRemovedPayload struct {
	Entity core.Entity   `msgpack:"entity"`
	Reason RemovalReason `msgpack:"reason"`
}

// ImpactPayload reports damage to the defended body
type ImpactPayload struct {
	Entity   core.Entity `msgpack:"entity"`
	Damage   int         `msgpack:"damage"`
	Health   int         `msgpack:"health"`
	Position vmath.Vec3  `msgpack:"position"`
}

// ProjectileFiredPayload reports a new projectile and the volume that resolved the aim
type ProjectileFiredPayload struct {
	Projectile core.Entity `msgpack:"projectile"`
	Target     core.Entity `msgpack:"target"`
	Volume     string      `msgpack:"volume"`
	Start      vmath.Vec3  `msgpack:"start"`
	TargetPos  vmath.Vec3  `msgpack:"target_pos"`
}

// AimMissPayload carries the normalized screen coordinate of a miss
type AimMissPayload struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// PartialHitPayload reports hit progress on a surviving threat
type PartialHitPayload struct {
	Entity   core.Entity `msgpack:"entity"`
	HitCount int         `msgpack:"hit_count"`
	MaxHits  int         `msgpack:"max_hits"`
	Points   int         `msgpack:"points"`
}

// BossSplitPayload lists the children replacing a parent fragment
type BossSplitPayload struct {
	Parent     core.Entity   `msgpack:"parent"`
	Children   []core.Entity `msgpack:"children"`
	Generation int           `msgpack:"generation"`
}

// WavePayload identifies a wave
type WavePayload struct {
	Wave  int `msgpack:"wave"`
	Count int `msgpack:"count"`
}

// OutcomePayload summarizes a finished session
type OutcomePayload struct {
	Score          int `msgpack:"score"`
	Wave           int `msgpack:"wave"`
	DestroyedCount int `msgpack:"destroyed_count"`
}
