package stt

import (
	"context"
	"testing"

	"github.com/nexthire/go-nexthire/audio"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type mockedEngine struct {
	err      error
	language string
	text     string
}

func (e *mockedEngine) Transcribe(ctx context.Context, samples []int16, sampleRate int, language string) (string, error) {
	e.language = language
	return e.text, e.err
}

func TestTranscribe(t *testing.T) {
	e := &mockedEngine{text: " hello world "}
	tr := NewTranscriber(e, 16000)
	b := audio.NewBuffer()
	b.Append([]int16{1, 2, 3})

	r := tr.Transcribe(context.Background(), b, "en")
	assert.False(t, r.LowConfidence)
	assert.Equal(t, "hello world", r.Text)
	assert.Equal(t, "en", e.language)
}

func TestTranscribeLowConfidence(t *testing.T) {
	tr := NewTranscriber(&mockedEngine{}, 16000)

	// Nil and empty buffers
	assert.True(t, tr.Transcribe(context.Background(), nil, "en").LowConfidence)
	assert.True(t, tr.Transcribe(context.Background(), audio.NewBuffer(), "en").LowConfidence)

	// Engine failure degrades to low confidence instead of failing the turn
	b := audio.NewBuffer()
	b.Append([]int16{1})
	tr = NewTranscriber(&mockedEngine{err: errors.New("engine down")}, 16000)
	r := tr.Transcribe(context.Background(), b, "en")
	assert.True(t, r.LowConfidence)
	assert.Empty(t, r.Text)

	// Whitespace-only transcript
	tr = NewTranscriber(&mockedEngine{text: "   "}, 16000)
	assert.True(t, tr.Transcribe(context.Background(), b, "en").LowConfidence)
}
