package capture

import (
	"context"
	"math"
	"time"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/audio"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// DefaultCalibrationDuration is how long a calibration records for.
var DefaultCalibrationDuration = 5 * time.Second

// Calibration holds the per-chunk audio levels of a short reference
// recording. It helps picking a silence level suited to the actual
// microphone and room.
type Calibration struct {
	ChunkDuration         time.Duration
	CurrentSilenceLevel   float64
	Levels                []float64
	MaxLevel              float64
	SuggestedSilenceLevel float64
}

// Calibrate records for the provided duration and computes chunk levels.
// Like Capture, it owns the input device exclusively for the duration of
// the call.
func (c *Capturer) Calibrate(ctx context.Context, d time.Duration) (cl Calibration, err error) {
	// Default duration
	if d <= 0 {
		d = DefaultCalibrationDuration
	}

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
	cl = Calibration{
		ChunkDuration:       c.o.ChunkDuration,
		CurrentSilenceLevel: c.o.SilenceLevel,
	}
	start := time.Now()
	for time.Since(start) < d {
		// Check stop signal
		if ctx.Err() != nil || c.c.stopRequestedFlag() {
			break
		}

		// Read chunk
		var chunk []int16
		if chunk, err = c.s.Read(); err != nil {
			err = nexthire.NewResourceError(err, "capture: reading chunk failed")
			return Calibration{}, err
		}

		// Compute level
		l := audio.Level(chunk)
		cl.Levels = append(cl.Levels, l)
		cl.MaxLevel = math.Max(cl.MaxLevel, l)
	}

	// Get suggested silence level
	cl.SuggestedSilenceLevel = 0.3 * cl.MaxLevel
	return
}
