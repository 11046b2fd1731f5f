package audio

import (
	"math"
	"time"
)

// Buffer is an ordered sequence of fixed-duration mono PCM chunks. It's
// created empty when a recording starts, appended to by the capture loop and
// consumed once by the transcription step.
type Buffer struct {
	chunks [][]int16
	n      int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Append(chunk []int16) {
	b.chunks = append(b.chunks, chunk)
	b.n += len(chunk)
}

func (b *Buffer) Empty() bool { return b.n == 0 }

func (b *Buffer) Len() int { return b.n }

// Samples concatenates all chunks into one slice.
func (b *Buffer) Samples() (ss []int16) {
	ss = make([]int16, 0, b.n)
	for _, c := range b.chunks {
		ss = append(ss, c...)
	}
	return
}

func (b *Buffer) Duration(sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.n) / float64(sampleRate) * float64(time.Second))
}

// Level computes the mean absolute amplitude of a chunk. Silence detection
// compares it against a threshold expressed in the same amplitude units.
func Level(chunk []int16) float64 {
	if len(chunk) == 0 {
		return 0
	}
	var sum float64
	for _, s := range chunk {
		sum += math.Abs(float64(s))
	}
	return sum / float64(len(chunk))
}
