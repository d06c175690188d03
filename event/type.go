package event

// EventType represents the type of visual sink event
type EventType int

const (
	// === Threat Lifecycle ===

	// EventThreatSpawned announces a new threat or boss fragment
	// Trigger: WaveSystem spawn, BossSystem split | Payload: *ThreatSpawnedPayload
	EventThreatSpawned EventType = iota

	// EventExplosion requests an explosion effect at a destroyed threat
	// Trigger: lethal projectile hit | Payload: *ExplosionPayload
	EventExplosion

	// EventThreatDestroyed reports a scored destruction
	// Trigger: lethal projectile hit | Payload: *ThreatDestroyedPayload
	EventThreatDestroyed

	// EventThreatRemoved reports an unscored removal
	// Trigger: out of play, benign pass-through, end of impact animation | Payload: *ThreatRemovedPayload
	EventThreatRemoved

	// EventImpact reports a hazardous threat striking the defended body
	// Trigger: LifecycleSystem collision check | Payload: *ImpactPayload
	EventImpact

	// === Targeting ===

	// EventProjectileFired reports a new projectile
	// Trigger: resolved aim input | Payload: *ProjectileFiredPayload
	EventProjectileFired

	// EventAimMiss reports aim input that hit nothing
	// Trigger: unresolved aim input | Payload: *AimMissPayload
	EventAimMiss

	// EventPartialHit reports a non-lethal hit
	// Trigger: projectile resolution | Payload: *PartialHitPayload
	EventPartialHit

	// === Boss ===

	// EventBossSplit reports children replacing a destroyed fragment
	// Trigger: deferred split | Payload: *BossSplitPayload
	EventBossSplit

	// === Progression ===

	// EventWaveStarted reports a new wave
	// Trigger: start, advance, cutscene acknowledgement | Payload: *WavePayload
	EventWaveStarted

	// EventCutsceneGate asks the host to show the boss cutscene and acknowledge it
	// Trigger: advance into the boss wave | Payload: *WavePayload
	EventCutsceneGate

	// EventVictory reports the boss encounter resolved
	// Trigger: last boss part counted | Payload: *OutcomePayload
	EventVictory

	// EventDefeat reports the defended body destroyed
	// Trigger: health reaching zero | Payload: *OutcomePayload
	EventDefeat
)

var typeNames = map[EventType]string{
	EventThreatSpawned:   "threat_spawned",
	EventExplosion:       "explosion",
	EventThreatDestroyed: "threat_destroyed",
	EventThreatRemoved:   "threat_removed",
	EventImpact:          "impact",
	EventProjectileFired: "projectile_fired",
	EventAimMiss:         "aim_miss",
	EventPartialHit:      "partial_hit",
	EventBossSplit:       "boss_split",
	EventWaveStarted:     "wave_started",
	EventCutsceneGate:    "cutscene_gate",
	EventVictory:         "victory",
	EventDefeat:          "defeat",
}

// String returns the wire name of the event type
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is one visual sink notification, stamped with the tick it was raised in
type GameEvent struct {
	Type    EventType `msgpack:"type"`
	Tick    uint64    `msgpack:"tick"`
	Payload any       `msgpack:"payload"`
}
