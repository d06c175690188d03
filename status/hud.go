package status

// HUD metric keys
const (
	KeyScore              = "hud.score"
	KeyWave               = "hud.wave"
	KeyDestroyed          = "hud.destroyed"
	KeyLiveThreats        = "hud.live_threats"
	KeyHealth             = "hud.health"
	KeyBossPartsDestroyed = "hud.boss_parts_destroyed"
	KeyBossPartsTotal     = "hud.boss_parts_total"
	KeyTick               = "hud.tick"
	KeyPaused             = "hud.paused"
	KeyStarted            = "hud.started"
	KeyBossActive         = "hud.boss_active"
	KeyCutscenePending    = "hud.cutscene_pending"
	KeyOutcome            = "hud.outcome"
	KeySession            = "hud.session"
	KeyHealthRatio        = "hud.health_ratio"
)

// HUD is the read-only state snapshot handed to the HUD sink
type HUD struct {
	Score              int    `msgpack:"score"`
	Wave               int    `msgpack:"wave"`
	DestroyedCount     int    `msgpack:"destroyed_count"`
	LiveThreats        int    `msgpack:"live_threats"`
	Health             int    `msgpack:"health"`
	BossActive         bool   `msgpack:"boss_active"`
	BossPartsDestroyed int    `msgpack:"boss_parts_destroyed"`
	BossPartsTotal     int    `msgpack:"boss_parts_total"`
	Tick               uint64 `msgpack:"tick"`
	Paused             bool   `msgpack:"paused"`
	Started            bool   `msgpack:"started"`
	CutscenePending    bool   `msgpack:"cutscene_pending"`
	Outcome            string `msgpack:"outcome"`
	Session            string `msgpack:"session"`
}

// Publish writes a snapshot into the registry
func (r *Registry) Publish(h HUD, maxHealth int) {
	r.Counters.Get(KeyScore).Store(int64(h.Score))
	r.Counters.Get(KeyWave).Store(int64(h.Wave))
	r.Counters.Get(KeyDestroyed).Store(int64(h.DestroyedCount))
	r.Counters.Get(KeyLiveThreats).Store(int64(h.LiveThreats))
	r.Counters.Get(KeyHealth).Store(int64(h.Health))
	r.Counters.Get(KeyBossPartsDestroyed).Store(int64(h.BossPartsDestroyed))
	r.Counters.Get(KeyBossPartsTotal).Store(int64(h.BossPartsTotal))
	r.Counters.Get(KeyTick).Store(int64(h.Tick))
	r.Flags.Get(KeyPaused).Store(h.Paused)
	r.Flags.Get(KeyStarted).Store(h.Started)
	r.Flags.Get(KeyBossActive).Store(h.BossActive)
	r.Flags.Get(KeyCutscenePending).Store(h.CutscenePending)
	r.Labels.Get(KeyOutcome).Store(h.Outcome)
	r.Labels.Get(KeySession).Store(h.Session)
	if maxHealth > 0 {
		r.Ratios.Get(KeyHealthRatio).Set(float64(h.Health) / float64(maxHealth))
	}
}

// Snapshot reads the last published HUD, fields may come from adjacent publishes
func (r *Registry) Snapshot() HUD {
	return HUD{
		Score:              int(r.Counters.Get(KeyScore).Load()),
		Wave:               int(r.Counters.Get(KeyWave).Load()),
		DestroyedCount:     int(r.Counters.Get(KeyDestroyed).Load()),
		LiveThreats:        int(r.Counters.Get(KeyLiveThreats).Load()),
		Health:             int(r.Counters.Get(KeyHealth).Load()),
		BossActive:         r.Flags.Get(KeyBossActive).Load(),
		BossPartsDestroyed: int(r.Counters.Get(KeyBossPartsDestroyed).Load()),
		BossPartsTotal:     int(r.Counters.Get(KeyBossPartsTotal).Load()),
		Tick:               uint64(r.Counters.Get(KeyTick).Load()),
		Paused:             r.Flags.Get(KeyPaused).Load(),
		Started:            r.Flags.Get(KeyStarted).Load(),
		CutscenePending:    r.Flags.Get(KeyCutscenePending).Load(),
		Outcome:            r.Labels.Get(KeyOutcome).Load(),
		Session:            r.Labels.Get(KeySession).Load(),
	}
}
