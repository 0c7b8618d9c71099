package audio

// DefaultTracks is the number of tracks a Device allocates by default.
const DefaultTracks = 8

// DefaultResampleQuality is the beep resampling quality used by default.
const DefaultResampleQuality = 4

// Option configures a Device during creation.
//
// Example:
//
//	dev, err := audio.NewDevice(format, audio.WithTracks(16))
type Option func(*deviceOptions)

type deviceOptions struct {
	tracks  int
	quality int
}

func defaultOptions() deviceOptions {
	return deviceOptions{
		tracks:  DefaultTracks,
		quality: DefaultResampleQuality,
	}
}

// WithTracks sets the size of the track pool: the number of sounds that
// can play at the same time.
func WithTracks(n int) Option {
	return func(o *deviceOptions) {
		o.tracks = n
	}
}

// WithResampleQuality sets the quality passed to beep's resampler, used
// for sample-rate conversion and frequency ratios. Valid values are 1
// through 64; higher is slower.
func WithResampleQuality(q int) Option {
	return func(o *deviceOptions) {
		o.quality = q
	}
}
