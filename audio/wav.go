package audio

import (
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// Audio formats
const (
	audioFormatPCM = 1
	bitDepth       = 16
	numChannels    = 1
)

// WriteWAV encodes mono 16-bit PCM samples into a standard uncompressed wav
// container. The wav encoder needs a seekable destination to finalize its
// header.
func WriteWAV(ws io.WriteSeeker, ss []int16, sampleRate int) (err error) {
	// Create encoder
	e := wav.NewEncoder(ws, sampleRate, bitDepth, numChannels, audioFormatPCM)

	// Convert samples
	data := make([]int, len(ss))
	for i, s := range ss {
		data[i] = int(s)
	}

	// Write
	if err = e.Write(&goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}); err != nil {
		err = errors.Wrap(err, "audio: writing wav samples failed")
		return
	}

	// Close finalizes the header
	if err = e.Close(); err != nil {
		err = errors.Wrap(err, "audio: closing wav encoder failed")
		return
	}
	return
}

// WriteWAVFile stores samples as a wav file at path.
func WriteWAVFile(path string, ss []int16, sampleRate int) (err error) {
	// Create file
	var f *os.File
	if f, err = os.Create(path); err != nil {
		err = errors.Wrapf(err, "audio: creating %s failed", path)
		return
	}
	defer f.Close()

	// Write
	if err = WriteWAV(f, ss, sampleRate); err != nil {
		err = errors.Wrapf(err, "audio: writing wav to %s failed", path)
		return
	}
	return
}
