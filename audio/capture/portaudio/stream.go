package portaudio

import (
	"time"

	"github.com/asticode/go-astilog"
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

// Stream reads mono int16 chunks from the default audio input device. One
// Read returns one chunk of ChunkDuration worth of samples.
type Stream struct {
	b []int16
	o StreamOptions
	s *portaudio.Stream
}

type StreamOptions struct {
	ChunkDuration time.Duration `toml:"chunk_duration"`
	SampleRate    int           `toml:"sample_rate"`
}

func NewDefaultStream(o StreamOptions) (s *Stream, err error) {
	// Create stream
	s = &Stream{
		b: make([]int16, int(float64(o.SampleRate)*o.ChunkDuration.Seconds())),
		o: o,
	}

	// Log
	astilog.Debugf("portaudio: opening default stream %p", s)

	// Open default stream
	if s.s, err = portaudio.OpenDefaultStream(1, 0, float64(s.o.SampleRate), len(s.b), s.b); err != nil {
		err = errors.Wrapf(err, "portaudio: opening default stream %p failed", s)
		return
	}
	return
}

func (s *Stream) SampleRate() int { return s.o.SampleRate }

func (s *Stream) Close() (err error) {
	// Log
	astilog.Debugf("portaudio: closing stream %p", s)

	// Close
	if err = s.s.Close(); err != nil {
		err = errors.Wrapf(err, "portaudio: closing stream %p failed", s)
		return
	}
	return
}

func (s *Stream) Start() (err error) {
	// Log
	astilog.Debugf("portaudio: starting stream %p", s)

	// Start
	if err = s.s.Start(); err != nil {
		err = errors.Wrapf(err, "portaudio: starting stream %p failed", s)
		return
	}
	return
}

func (s *Stream) Stop() (err error) {
	// Log
	astilog.Debugf("portaudio: stopping stream %p", s)

	// Stop
	if err = s.s.Stop(); err != nil {
		err = errors.Wrapf(err, "portaudio: stopping stream %p failed", s)
		return
	}
	return
}

func (s *Stream) Read() (chunk []int16, err error) {
	// Read
	if err = s.s.Read(); err != nil {
		err = errors.Wrapf(err, "portaudio: reading from stream %p failed", s)
		return
	}

	// Clone buffer
	chunk = make([]int16, len(s.b))
	copy(chunk, s.b)
	return
}
