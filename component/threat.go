package component

import (
	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/core"
)

// Hazard classifies how a threat interacts with the defended body
type Hazard uint8

const (
	// Hazardous threats home in on the defended body and damage it on impact
	Hazardous Hazard = iota
	// Benign threats idle or orbit and never damage the defended body
	Benign
)

func (h Hazard) String() string {
	if h == Hazardous {
		return "hazardous"
	}
	return "benign"
}

// Variant is the sealed tagged union of threat kinds: Standard or Boss
type Variant interface {
	isVariant()
}

// Standard is an ordinary wave threat
type Standard struct{}

// Boss is a fragment of the boss lineage, Generation 0 is the root
type Boss struct {
	Generation int
}

func (Standard) isVariant() {}
func (Boss) isVariant()     {}

// Orbit holds benign motion parameters
type Orbit struct {
	Stationary   bool    // Idle target, no velocity applied
	TargetRadius float64 // Stabilization band center
}

// Threat is a destructible celestial body
type Threat struct {
	ID       core.Entity
	Name     string
	Template content.Template

	core.Kinetic
	Radius float64

	Hazard Hazard
	Orbit  Orbit

	Destroyed bool // Marked for removal at the next compaction
	Impacting bool // Mid impact animation: frozen, not targetable

	HitCount int
	MaxHits  int
	Points   int

	Variant Variant
}

// IsBoss reports whether the threat belongs to the boss lineage
func (t *Threat) IsBoss() bool {
	switch t.Variant.(type) {
	case Boss:
		return true
	default:
		return false
	}
}

// Generation returns the split depth, -1 for standard threats
func (t *Threat) Generation() int {
	switch v := t.Variant.(type) {
	case Boss:
		return v.Generation
	default:
		return -1
	}
}

// Targetable reports whether aim input may select this threat
func (t *Threat) Targetable() bool {
	return !t.Destroyed && !t.Impacting
}
