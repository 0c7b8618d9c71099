// Package audio plays decoded sounds through a fixed pool of mixer tracks.
//
// A Device owns N tracks and mixes the playing ones into a single
// beep.Streamer, which the application hands to its audio output (for
// example github.com/faiface/beep/speaker). Sounds are started with Play
// and reclaimed by Update once they finish or are stopped. Per-sound
// volume, frequency ratio, stereo gains and position are LiveControls that
// are pushed to the track on the next Update after they change.
//
// Example:
//
//	clip, err := audio.LoadWAV("hit.wav")
//	dev, err := audio.NewDevice(clip.Format())
//	speaker.Play(dev)
//
//	s := audio.NewSound(clip)
//	if err := dev.Play(s, audio.DefaultPlayProperties()); err != nil {
//		// all tracks busy
//	}
//	// once per frame:
//	dev.Update()
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// Errors.
var (
	// ErrNoFreeTrack is returned by Play when every track is in use.
	ErrNoFreeTrack = errors.New("audio: no free track")

	// ErrNoAudio is returned by Play for a sound without audio data.
	ErrNoAudio = errors.New("audio: sound has no audio")

	// ErrClosed is returned by operations on a closed device.
	ErrClosed = errors.New("audio: device closed")
)

// Audio is a decoded clip held in memory. It is immutable and can be
// played by any number of sounds at once.
type Audio struct {
	buf *beep.Buffer
}

// NewAudio drains s into memory.
func NewAudio(format beep.Format, s beep.Streamer) (*Audio, error) {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode: %w", err)
	}
	return &Audio{buf: buf}, nil
}

// DecodeWAV decodes a WAV stream into memory.
func DecodeWAV(r io.Reader) (*Audio, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("audio: decode WAV: %w", err)
	}
	defer func() { _ = s.Close() }()
	return NewAudio(format, s)
}

// LoadWAV loads a WAV file into memory.
func LoadWAV(path string) (*Audio, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("audio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeWAV(f)
}

// Format returns the sample format of the clip.
func (a *Audio) Format() beep.Format {
	return a.buf.Format()
}

// Len returns the clip length in samples.
func (a *Audio) Len() int {
	return a.buf.Len()
}

// Duration returns the clip length.
func (a *Audio) Duration() time.Duration {
	return a.buf.Format().SampleRate.D(a.buf.Len())
}

// span returns a seeker over samples [from, Len).
func (a *Audio) span(from int) beep.StreamSeeker {
	from = min(max(from, 0), a.buf.Len())
	return a.buf.Streamer(from, a.buf.Len())
}
