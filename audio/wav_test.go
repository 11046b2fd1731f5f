package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
)

func TestWriteWAVFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.wav")
	ss := []int16{0, 1000, -1000, 32767, -32768}
	assert.NoError(t, WriteWAVFile(p, ss, 16000))

	f, err := os.Open(p)
	assert.NoError(t, err)
	defer f.Close()

	d := wav.NewDecoder(f)
	b, err := d.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, 16000, b.Format.SampleRate)
	assert.Equal(t, 1, b.Format.NumChannels)
	assert.Equal(t, []int{0, 1000, -1000, 32767, -32768}, b.Data)
}
