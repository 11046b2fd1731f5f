package capture

import (
	"context"
	"time"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/audio"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// Default options
var (
	DefaultChunkDuration      = 500 * time.Millisecond
	DefaultMaxSilenceDuration = 3 * time.Second
	DefaultMaxTotalDuration   = 20 * time.Second
	DefaultSampleRate         = 16000
	DefaultSilenceLevel       = 100.0
)

// ErrNoAudio is returned when a capture terminates without having read a
// single chunk.
var ErrNoAudio = errors.New("capture: no audio recorded")

type Stream interface {
	Read() ([]int16, error)
	Start() error
	Stop() error
}

type Options struct {
	ChunkDuration      time.Duration `toml:"chunk_duration"`
	MaxSilenceDuration time.Duration `toml:"max_silence_duration"`
	MaxTotalDuration   time.Duration `toml:"max_total_duration"`
	SampleRate         int           `toml:"sample_rate"`
	SilenceLevel       float64       `toml:"silence_level"`
}

type Capturer struct {
	c *Control
	o Options
	s Stream
}

func New(s Stream, o Options) *Capturer {
	// Default options
	if o.ChunkDuration <= 0 {
		o.ChunkDuration = DefaultChunkDuration
	}
	if o.MaxSilenceDuration <= 0 {
		o.MaxSilenceDuration = DefaultMaxSilenceDuration
	}
	if o.MaxTotalDuration <= 0 {
		o.MaxTotalDuration = DefaultMaxTotalDuration
	}
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.SilenceLevel <= 0 {
		o.SilenceLevel = DefaultSilenceLevel
	}
	return &Capturer{
		c: NewControl(),
		o: o,
		s: s,
	}
}

func (c *Capturer) Control() *Control { return c.c }

func (c *Capturer) Options() Options { return c.o }

// Capture reads chunks from the stream until one of the stop conditions is
// met: an external stop signal, a silence run longer than the max silence
// duration, or the absolute max total duration. Conditions are checked at
// chunk boundaries only, first condition met wins. The stream is stopped on
// every exit path.
func (c *Capturer) Capture(ctx context.Context) (b *audio.Buffer, err error) {
	// Mark recording
	if !c.c.begin() {
		err = nexthire.NewResourceError(nil, "capture: a recording is already in progress")
		return
	}
	defer c.c.end()

	// Start stream
	if err = c.s.Start(); err != nil {
		err = nexthire.NewResourceError(err, "capture: starting stream failed")
		return
	}

	// Make sure to stop stream
	defer func() {
		if err := c.s.Stop(); err != nil {
			astilog.Error(errors.Wrap(err, "capture: stopping stream failed"))
		}
	}()

	// Read
	b = audio.NewBuffer()
	start := time.Now()
	var silence time.Duration
	for {
		// Check stop signal
		if ctx.Err() != nil || c.c.stopRequestedFlag() {
			astilog.Debug("capture: stop requested")
			break
		}

		// Read chunk
		var chunk []int16
		if chunk, err = c.s.Read(); err != nil {
			err = nexthire.NewResourceError(err, "capture: reading chunk failed")
			return nil, err
		}

		// Append chunk
		b.Append(chunk)

		// Check silence
		if audio.Level(chunk) < c.o.SilenceLevel {
			silence += c.o.ChunkDuration
			if silence > c.o.MaxSilenceDuration {
				astilog.Debug("capture: stopped on silence")
				break
			}
		} else {
			silence = 0
		}

		// Check max total duration
		if time.Since(start) > c.o.MaxTotalDuration {
			astilog.Debug("capture: stopped on max total duration")
			break
		}
	}

	// No audio
	if b.Empty() {
		return nil, ErrNoAudio
	}
	return
}
