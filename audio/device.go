package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/gogpu/g2d"
)

// Device mixes a fixed pool of tracks into one stream.
//
// Device implements beep.Streamer; the audio output pulls samples from its
// own goroutine while the application calls Play and Update, so all track
// state is guarded by a mutex.
type Device struct {
	mu      sync.Mutex
	format  beep.Format
	quality int

	mixer     beep.Mixer
	tracks    int
	used      []*track
	volume    float64
	pausedAll bool
	closed    bool
}

// NewDevice creates a device producing samples in format.
func NewDevice(format beep.Format, opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", format.SampleRate)
	}
	if o.tracks <= 0 {
		return nil, fmt.Errorf("audio: invalid track count %d", o.tracks)
	}
	if o.quality < 1 || o.quality > 64 {
		return nil, fmt.Errorf("audio: invalid resample quality %d", o.quality)
	}

	d := &Device{
		format:  format,
		quality: o.quality,
		tracks:  o.tracks,
		volume:  1,
	}
	g2d.Logger().Info("audio: device created",
		slog.Int("rate", int(format.SampleRate)),
		slog.Int("tracks", o.tracks))
	return d, nil
}

// Format returns the output sample format.
func (d *Device) Format() beep.Format { return d.format }

// Play starts s on a free track. It fails with ErrNoFreeTrack when all
// tracks are busy and with ErrNoAudio when s has no clip.
func (d *Device) Play(s *Sound, p PlayProperties) error {
	if s == nil || s.audio == nil {
		return ErrNoAudio
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	// Replaying a sound restarts it on a fresh track.
	for i, t := range d.used {
		if t.sound == s {
			t.release()
			d.used = append(d.used[:i], d.used[i+1:]...)
			break
		}
	}
	if len(d.used) >= d.tracks {
		return ErrNoFreeTrack
	}

	// A released track may still sit in the mixer until its next pull,
	// so every play gets a fresh one.
	t := newTrack(d, s, p)
	d.used = append(d.used, t)
	d.mixer.Add(t)
	s.running = true

	g2d.Logger().Debug("audio: play",
		slog.Int("free", d.tracks-len(d.used)),
		slog.Int("loops", p.Loops))
	return nil
}

// Update pushes changed live controls and pause states to their tracks
// and frees the tracks of sounds that finished or were stopped. It returns
// the number of free tracks.
func (d *Device) Update() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.used[:0]
	for _, t := range d.used {
		if t.sync() {
			kept = append(kept, t)
			continue
		}
		if err := t.Err(); err != nil {
			g2d.Logger().Warn("audio: track failed", slog.String("error", err.Error()))
		}
		t.release()
	}
	for i := len(kept); i < len(d.used); i++ {
		d.used[i] = nil
	}
	d.used = kept
	return d.tracks - len(d.used)
}

// FreeTracks returns the number of tracks available to Play.
func (d *Device) FreeTracks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tracks - len(d.used)
}

// UsedTracks returns the number of tracks assigned to sounds.
func (d *Device) UsedTracks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.used)
}

// Volume returns the master gain.
func (d *Device) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}

// SetVolume sets the master gain applied to the mix.
func (d *Device) SetVolume(v float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.volume = max(v, 0)
}

// PausedAll reports whether the whole mix is paused.
func (d *Device) PausedAll() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pausedAll
}

// SetPausedAll pauses or resumes every track at once. Per-sound pause
// states are kept.
func (d *Device) SetPausedAll(paused bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pausedAll = paused
}

// Stream fills samples with the mix. It never ends: with nothing playing
// it produces silence.
func (d *Device) Stream(samples [][2]float64) (n int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.pausedAll {
		clear(samples)
		return len(samples), true
	}
	d.mixer.Stream(samples)
	if d.volume != 1 {
		for i := range samples {
			samples[i][0] *= d.volume
			samples[i][1] *= d.volume
		}
	}
	return len(samples), true
}

// Err always returns nil; failing tracks are reported by Update.
func (d *Device) Err() error { return nil }

// Close stops every track. Sounds are marked as not running.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	for _, t := range d.used {
		t.release()
	}
	d.used = nil
	d.mixer.Clear()
	d.closed = true
	return nil
}

// track is one playing sound in the mixer. Its chain is:
//
//	clip -> loops -> max -> silence -> resampler -> fade -> gain -> stereo -> pan -> ctrl
type track struct {
	sound *Sound

	resampler *beep.Resampler
	gain      *effects.Gain
	stereo    *stereoGains
	pan       *effects.Pan
	ctrl      *beep.Ctrl

	baseRatio float64
	version   uint64
	paused    bool
	done      bool
	stopped   bool
}

func newTrack(d *Device, s *Sound, p PlayProperties) *track {
	a := s.audio
	rate := a.Format().SampleRate

	var src beep.Streamer = a.span(rate.N(p.Start))
	if p.Loops != 0 {
		src = beep.Seq(src, beep.Loop(p.Loops, a.span(rate.N(p.LoopStart))))
	}
	if p.Max > 0 {
		src = beep.Take(rate.N(p.Max), src)
	}
	if p.Silence > 0 {
		src = beep.Seq(src, beep.Silence(rate.N(p.Silence)))
	}

	t := &track{
		sound:     s,
		baseRatio: float64(rate) / float64(d.format.SampleRate),
	}
	t.resampler = beep.ResampleRatio(d.quality, t.baseRatio, src)
	src = t.resampler
	if p.FadeIn > 0 {
		src = &fadeIn{
			Streamer: src,
			length:   d.format.SampleRate.N(p.FadeIn),
			from:     min(max(p.FadeInStartGain, 0), 1),
		}
	}
	t.gain = &effects.Gain{Streamer: src}
	t.stereo = &stereoGains{Streamer: t.gain}
	t.pan = &effects.Pan{Streamer: t.stereo}
	t.ctrl = &beep.Ctrl{Streamer: t.pan}

	t.apply(s.controls)
	t.version = s.version
	t.paused = s.paused
	t.ctrl.Paused = s.paused
	return t
}

// apply pushes live controls into the chain.
func (t *track) apply(c LiveControls) {
	t.gain.Gain = c.Volume - 1
	ratio := c.FrequencyRatio
	if ratio <= 0 {
		ratio = 1
	}
	t.resampler.SetRatio(t.baseRatio * ratio)
	t.stereo.left = float64(c.StereoGains.X)
	t.stereo.right = float64(c.StereoGains.Y)
	t.pan.Pan = c.pan()
}

// sync mirrors the sound's controls and pause state into the track. It
// reports whether the track is still in use.
func (t *track) sync() bool {
	s := t.sound
	if !s.running || t.done {
		return false
	}
	if t.version != s.version {
		t.version = s.version
		t.apply(s.controls)
	}
	if t.paused != s.paused {
		t.paused = s.paused
		t.ctrl.Paused = s.paused
	}
	return true
}

// release detaches the sound. The mixer drops the track on its next pull.
func (t *track) release() {
	if t.sound != nil {
		t.sound.running = false
	}
	t.sound = nil
	t.stopped = true
}

// Stream implements beep.Streamer for the mixer.
func (t *track) Stream(samples [][2]float64) (int, bool) {
	if t.stopped || t.ctrl == nil {
		return 0, false
	}
	n, ok := t.ctrl.Stream(samples)
	if !ok || n < len(samples) {
		t.done = true
	}
	return n, ok
}

func (t *track) Err() error {
	if t.ctrl == nil {
		return nil
	}
	return t.ctrl.Err()
}

// stereoGains scales the left and right channel independently.
type stereoGains struct {
	beep.Streamer
	left, right float64
}

func (s *stereoGains) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= s.left
		samples[i][1] *= s.right
	}
	return n, ok
}

// fadeIn ramps the gain linearly from `from` to 1 over length samples.
type fadeIn struct {
	beep.Streamer
	length int
	pos    int
	from   float64
}

func (f *fadeIn) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := range samples[:n] {
		if f.pos >= f.length {
			break
		}
		g := f.from + (1-f.from)*float64(f.pos)/float64(f.length)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}
