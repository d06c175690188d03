package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume scales every effect, linear in [0, 1]
	AudioMasterVolume = 0.6
)

// Explosion Sound (noise burst with exponential decay, duration and rumble pitch by size class)
const (
	ExplosionSmallDuration  = 250 * time.Millisecond
	ExplosionMediumDuration = 450 * time.Millisecond
	ExplosionLargeDuration  = 800 * time.Millisecond

	ExplosionSmallRumble  = 110.0
	ExplosionMediumRumble = 70.0
	ExplosionLargeRumble  = 45.0

	// ExplosionDecay is the exponential decay rate over the sound's duration
	ExplosionDecay = 5.0
)

// Impact Sound
const (
	ImpactSoundDuration = 300 * time.Millisecond
	ImpactSoundFreq     = 55.0
	ImpactSoundDecay    = 4.0
)

// Launch Sound
const (
	LaunchSoundDuration = 90 * time.Millisecond
	LaunchSoundFreq     = 880.0
	LaunchSoundAttack   = 5 * time.Millisecond
	LaunchSoundRelease  = 60 * time.Millisecond
)
