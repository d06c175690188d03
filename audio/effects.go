package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orbit-defense/content"
	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a wave of the given shape and length, noise ignores freq
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay shapes a stream with exponential falloff exp(-k·t/T)
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	k        float64
}

// NewDecay fades s from full level toward silence over duration
func NewDecay(s beep.Streamer, duration time.Duration, k float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration), k: k}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, i > 0
		}
		vol := math.Exp(-d.k * float64(d.position) / float64(d.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// envelope applies linear attack and release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear volume, 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// explosionShape returns duration and rumble pitch for a size class
func explosionShape(size content.SizeClass) (time.Duration, float64) {
	switch size {
	case content.SizeSmall:
		return parameter.ExplosionSmallDuration, parameter.ExplosionSmallRumble
	case content.SizeLarge:
		return parameter.ExplosionLargeDuration, parameter.ExplosionLargeRumble
	default:
		return parameter.ExplosionMediumDuration, parameter.ExplosionMediumRumble
	}
}

// ExplosionSound is a decaying noise burst over a low rumble, longer and deeper for larger bodies
func ExplosionSound(size content.SizeClass, rate beep.SampleRate, rng *vmath.FastRand, volume float64) beep.Streamer {
	dur, rumble := explosionShape(size)

	noise := NewDecay(NewOscillator(0, dur, WaveNoise, rate, rng), dur, parameter.ExplosionDecay, rate)
	low := NewDecay(NewOscillator(rumble, dur, WaveSine, rate, nil), dur, parameter.ExplosionDecay/2, rate)

	mixed := beep.Take(rate.N(dur), beep.Mix(newVolume(noise, 0.6), newVolume(low, 0.4)))
	return newVolume(mixed, volume)
}

// ImpactSound is a low square thud
func ImpactSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(parameter.ImpactSoundFreq, parameter.ImpactSoundDuration, WaveSquare, rate, nil)
	return newVolume(NewDecay(osc, parameter.ImpactSoundDuration, parameter.ImpactSoundDecay, rate), volume)
}

// LaunchSound is a short sine blip for a fired projectile
func LaunchSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(parameter.LaunchSoundFreq, parameter.LaunchSoundDuration, WaveSine, rate, nil)
	shaped := NewEnvelope(osc, parameter.LaunchSoundDuration, parameter.LaunchSoundAttack, parameter.LaunchSoundRelease, rate)
	return newVolume(shaped, volume*0.5)
}
