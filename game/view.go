package game

import (
	"github.com/lixenwraith/orbit-defense/core"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// EntityKind distinguishes renderable entities
type EntityKind uint8

const (
	KindThreat EntityKind = iota
	KindProjectile
)

func (k EntityKind) String() string {
	if k == KindProjectile {
		return "projectile"
	}
	return "threat"
}

// EntityView is the read-only per-frame state of one entity for the visual sink
// Generation is -1 for standard threats and projectiles
type EntityView struct {
	ID         core.Entity `msgpack:"id"`
	Kind       EntityKind  `msgpack:"kind"`
	Name       string      `msgpack:"name,omitempty"`
	Position   vmath.Vec3  `msgpack:"position"`
	Rotation   vmath.Vec3  `msgpack:"rotation"`
	Radius     float64     `msgpack:"radius"`
	SizeClass  string      `msgpack:"size_class,omitempty"`
	Hazardous  bool        `msgpack:"hazardous"`
	Destroyed  bool        `msgpack:"destroyed"`
	Impacting  bool        `msgpack:"impacting"`
	Generation int         `msgpack:"generation"`
	HitCount   int         `msgpack:"hit_count"`
	MaxHits    int         `msgpack:"max_hits"`

	// Projectile travel
	Progress float64     `msgpack:"progress,omitempty"`
	Target   core.Entity `msgpack:"target,omitempty"`

	// Trail
	TrailHandle uint64 `msgpack:"trail_handle,omitempty"`
	TrailAge    int    `msgpack:"trail_age,omitempty"`
}
