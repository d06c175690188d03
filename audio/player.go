package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/event"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// SoundPlayer turns visual sink events into sound effects on one shared mixer
type SoundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	rng         *vmath.FastRand
	volume      float64
	muted       bool
	initialized bool

	// sink receives finished streamers, nil routes to the speaker mixer
	sink func(beep.Streamer)
}

// NewSoundPlayer creates an uninitialized player, sounds are dropped until Init
func NewSoundPlayer(volume float64) *SoundPlayer {
	return &SoundPlayer{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		rng:    vmath.NewFastRand(0x5eed),
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer
func (p *SoundPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker
func (p *SoundPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// SetMuted drops all new sounds while true
func (p *SoundPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted returns current mute state
func (p *SoundPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// HandleEvents plays the cue for every audible event
func (p *SoundPlayer) HandleEvents(evs []event.GameEvent) {
	for _, ev := range evs {
		switch ev.Type {
		case event.EventExplosion:
			if pl, ok := ev.Payload.(*event.ExplosionPayload); ok {
				p.PlayExplosion(content.SizeClass(pl.SizeClass))
			}
		case event.EventImpact:
			p.PlayImpact()
		case event.EventProjectileFired:
			p.PlayLaunch()
		}
	}
}

func (p *SoundPlayer) PlayExplosion(size content.SizeClass) {
	p.play(func() beep.Streamer { return ExplosionSound(size, p.rate, p.rng, p.volume) })
}

func (p *SoundPlayer) PlayImpact() {
	p.play(func() beep.Streamer { return ImpactSound(p.rate, p.volume) })
}

func (p *SoundPlayer) PlayLaunch() {
	p.play(func() beep.Streamer { return LaunchSound(p.rate, p.volume) })
}

func (p *SoundPlayer) play(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	if p.sink != nil {
		p.sink(build())
		return
	}
	if !p.initialized {
		return
	}
	s := build()
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
