package engine

import (
	"github.com/lixenwraith/orbit-defense/parameter"
)

// Outcome is the terminal result of a session
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// GameState holds session-level progress, owned by the simulation goroutine
type GameState struct {
	Wave           int
	Score          int
	DestroyedCount int
	Health         int

	// Boss encounter
	BossActive         bool
	BossPartsDestroyed int
	BossPartsTotal     int

	// Lifecycle
	Started         bool
	Paused          bool
	CutscenePending bool
	Outcome         Outcome
}

// NewGameState returns the pre-start state
func NewGameState() GameState {
	return GameState{Health: parameter.MaxHealth}
}

// Reset restores the pre-start state
func (gs *GameState) Reset() {
	*gs = NewGameState()
}

// Terminal reports whether the session has ended
func (gs *GameState) Terminal() bool {
	return gs.Outcome != OutcomeNone
}

// Running reports whether ticks and input are processed
func (gs *GameState) Running() bool {
	return gs.Started && !gs.Paused && !gs.Terminal()
}

// ApplyDamage lowers health clamped to [0, MaxHealth]
// Returns true only on the call that sets defeat
func (gs *GameState) ApplyDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	gs.Health -= amount
	if gs.Health < 0 {
		gs.Health = 0
	}
	if gs.Health > parameter.MaxHealth {
		gs.Health = parameter.MaxHealth
	}
	if gs.Health == 0 && gs.Outcome == OutcomeNone {
		gs.Outcome = OutcomeDefeat
		return true
	}
	return false
}

// RecordKill adds a scored destruction
func (gs *GameState) RecordKill(points int) {
	gs.Score += points
	gs.DestroyedCount++
}

// RecordBossParts counts n resolved boss fragments
// Returns true only on the call that sets victory, defeat blocks victory
func (gs *GameState) RecordBossParts(n int) bool {
	if n <= 0 || !gs.BossActive {
		return false
	}
	gs.BossPartsDestroyed += n
	if gs.BossPartsDestroyed > gs.BossPartsTotal {
		gs.BossPartsDestroyed = gs.BossPartsTotal
	}
	if gs.BossPartsDestroyed == gs.BossPartsTotal && gs.Outcome == OutcomeNone {
		gs.Outcome = OutcomeVictory
		return true
	}
	return false
}
