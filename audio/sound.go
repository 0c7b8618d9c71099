package audio

import (
	"time"

	"github.com/gogpu/g2d"
)

// PlayProperties control how one Play call plays a clip.
type PlayProperties struct {
	// Loops is the number of extra repetitions after the first pass;
	// negative loops forever.
	Loops int

	// Start is where the first pass begins.
	Start time.Duration

	// LoopStart is where every repetition begins.
	LoopStart time.Duration

	// Max limits total playback, loops included. Zero or negative means
	// no limit.
	Max time.Duration

	// Silence is appended after the last pass, before the track is freed.
	Silence time.Duration

	// FadeIn ramps the gain from FadeInStartGain to 1 over this duration.
	FadeIn          time.Duration
	FadeInStartGain float64
}

// DefaultPlayProperties plays the clip once from the beginning.
func DefaultPlayProperties() PlayProperties {
	return PlayProperties{}
}

// LiveControls are the per-sound parameters that can change while the
// sound plays.
type LiveControls struct {
	// Volume is a linear gain; 1 leaves samples unchanged.
	Volume float64

	// FrequencyRatio speeds playback up (>1) or down (<1), shifting pitch.
	FrequencyRatio float64

	// Position places the sound relative to the listener. Only X is used,
	// to pan between the left (negative) and right (positive) channel.
	Position g2d.Vector3f

	// StereoGains are linear gains of the left and right channels.
	StereoGains g2d.Vector2f
}

// DefaultLiveControls returns controls that play the clip unchanged.
func DefaultLiveControls() LiveControls {
	return LiveControls{
		Volume:         1,
		FrequencyRatio: 1,
		StereoGains:    g2d.Vec2(1, 1),
	}
}

// pan maps the position to beep's pan range [-1, 1].
func (c LiveControls) pan() float64 {
	p := c.Position
	if p.X == 0 {
		return 0
	}
	d := g2d.Length(g2d.Vec2(p.X, p.Z))
	return float64(p.X / max(d, 1))
}

// Sound is a handle to a clip together with its live controls and pause
// state. The same clip can back many sounds; a Sound occupies at most one
// track at a time.
//
// Sound is not safe for concurrent use; drive it from the goroutine that
// calls Device.Play and Device.Update.
type Sound struct {
	audio    *Audio
	controls LiveControls
	version  uint64
	paused   bool
	running  bool
}

// NewSound returns a sound playing a with default controls.
func NewSound(a *Audio) *Sound {
	return &Sound{audio: a, controls: DefaultLiveControls()}
}

// Audio returns the clip, or nil.
func (s *Sound) Audio() *Audio { return s.audio }

// SetAudio replaces the clip. A playing track keeps the old clip.
func (s *Sound) SetAudio(a *Audio) { s.audio = a }

// LiveControls returns the current controls.
func (s *Sound) LiveControls() LiveControls { return s.controls }

// SetLiveControls replaces the controls. The track picks them up on the
// next Device.Update.
func (s *Sound) SetLiveControls(c LiveControls) {
	s.controls = c
	s.version++
}

// Paused reports whether the sound is paused.
func (s *Sound) Paused() bool { return s.paused }

// SetPaused pauses or resumes the sound on the next Device.Update.
func (s *Sound) SetPaused(paused bool) { s.paused = paused }

// Running reports whether the sound occupies a track.
func (s *Sound) Running() bool { return s.running }

// Stop asks the device to free the sound's track on the next Update.
func (s *Sound) Stop() { s.running = false }
