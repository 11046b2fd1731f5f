package capture

import (
	"context"
	"testing"
	"time"

	nexthire "github.com/nexthire/go-nexthire"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	loudChunk   = []int16{1000, -1000, 1000, -1000}
	silentChunk = []int16{0, 0, 0, 0}
)

// mockedStream serves queued chunks and silence once the queue is drained.
type mockedStream struct {
	chunks  [][]int16
	errRead error
	onRead  func(n int)
	reads   int
	started bool
}

func (s *mockedStream) Start() error { s.started = true; return nil }

func (s *mockedStream) Stop() error { s.started = false; return nil }

func (s *mockedStream) Read() (chunk []int16, err error) {
	if s.errRead != nil {
		return nil, s.errRead
	}
	if len(s.chunks) > 0 {
		chunk = s.chunks[0]
		s.chunks = s.chunks[1:]
	} else {
		chunk = silentChunk
	}
	s.reads++
	if s.onRead != nil {
		s.onRead(s.reads)
	}
	return
}

func testOptions() Options {
	return Options{
		ChunkDuration:      500 * time.Millisecond,
		MaxSilenceDuration: time.Second,
		MaxTotalDuration:   time.Minute,
		SampleRate:         16000,
		SilenceLevel:       100,
	}
}

func TestCaptureStopsOnSilence(t *testing.T) {
	s := &mockedStream{chunks: [][]int16{loudChunk, loudChunk}}
	c := New(s, testOptions())
	b, err := c.Capture(context.Background())
	assert.NoError(t, err)
	// 2 loud chunks then 3 silent ones to exceed the max silence duration
	assert.Equal(t, 5, s.reads)
	assert.Equal(t, 5*len(loudChunk), b.Len())
	assert.False(t, s.started)
	assert.False(t, c.Control().Recording())
}

func TestCaptureSilenceResetsOnSpeech(t *testing.T) {
	// Speech in the middle of a silence run resets the silence counter
	s := &mockedStream{chunks: [][]int16{loudChunk, silentChunk, silentChunk, loudChunk}}
	c := New(s, testOptions())
	b, err := c.Capture(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, s.reads)
	assert.Equal(t, 7*len(loudChunk), b.Len())
}

func TestCaptureStopsOnRequest(t *testing.T) {
	s := &mockedStream{}
	c := New(s, testOptions())
	s.chunks = [][]int16{loudChunk, loudChunk, loudChunk, loudChunk}
	s.onRead = func(n int) {
		if n == 2 {
			assert.True(t, c.Control().RequestStop())
		}
	}
	b, err := c.Capture(context.Background())
	assert.NoError(t, err)
	// The stop is honored at the next chunk boundary
	assert.Equal(t, 2, s.reads)
	assert.Equal(t, 2*len(loudChunk), b.Len())
}

func TestCaptureStopsOnMaxTotalDuration(t *testing.T) {
	o := testOptions()
	o.MaxTotalDuration = 25 * time.Millisecond
	o.MaxSilenceDuration = time.Minute
	s := &mockedStream{}
	s.onRead = func(int) { time.Sleep(10 * time.Millisecond) }
	// Keep every chunk loud so only the total duration can stop the capture
	for i := 0; i < 100; i++ {
		s.chunks = append(s.chunks, loudChunk)
	}
	c := New(s, o)
	b, err := c.Capture(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.reads >= 3)
	assert.True(t, s.reads < 100)
	assert.Equal(t, s.reads*len(loudChunk), b.Len())
}

func TestCaptureNoAudio(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(&mockedStream{}, testOptions())
	b, err := c.Capture(ctx)
	assert.Equal(t, ErrNoAudio, errors.Cause(err))
	assert.Nil(t, b)
}

func TestCaptureReadError(t *testing.T) {
	c := New(&mockedStream{errRead: errors.New("device gone")}, testOptions())
	_, err := c.Capture(context.Background())
	assert.True(t, nexthire.IsResourceError(err))
}

func TestCaptureIsExclusive(t *testing.T) {
	s := &mockedStream{}
	c := New(s, testOptions())
	inFirstRead := make(chan struct{})
	release := make(chan struct{})
	s.onRead = func(n int) {
		if n == 1 {
			close(inFirstRead)
			<-release
		}
	}
	done := make(chan struct{})
	go func() {
		c.Capture(context.Background())
		close(done)
	}()
	<-inFirstRead

	// A second capture while one is in progress is refused
	_, err := c.Capture(context.Background())
	assert.True(t, nexthire.IsResourceError(err))

	assert.True(t, c.Control().RequestStop())
	close(release)
	<-done
	assert.False(t, c.Control().Recording())
}

func TestControlIdleStop(t *testing.T) {
	c := NewControl()
	assert.False(t, c.RequestStop())
	assert.False(t, c.Recording())
}

func TestCalibrate(t *testing.T) {
	s := &mockedStream{chunks: [][]int16{loudChunk, silentChunk}}
	o := testOptions()
	o.ChunkDuration = 10 * time.Millisecond
	c := New(s, o)
	cl, err := c.Calibrate(context.Background(), 25*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, o.SilenceLevel, cl.CurrentSilenceLevel)
	assert.Equal(t, 1000.0, cl.MaxLevel)
	assert.Equal(t, 300.0, cl.SuggestedSilenceLevel)
	assert.True(t, len(cl.Levels) > 0)
}
