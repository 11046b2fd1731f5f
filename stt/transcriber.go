package stt

import (
	"context"
	"strings"

	"github.com/nexthire/go-nexthire/audio"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// Engine converts PCM samples into text.
type Engine interface {
	Transcribe(ctx context.Context, samples []int16, sampleRate int, language string) (string, error)
}

// Result is a transcription outcome. LowConfidence covers the three cases
// the controller treats as "nothing understood": empty buffer, engine
// failure and an empty transcript. All three are valid conversational
// outcomes, not system errors.
type Result struct {
	LowConfidence bool
	Text          string
}

type Transcriber struct {
	e          Engine
	sampleRate int
}

func NewTranscriber(e Engine, sampleRate int) *Transcriber {
	return &Transcriber{
		e:          e,
		sampleRate: sampleRate,
	}
}

func (t *Transcriber) Transcribe(ctx context.Context, b *audio.Buffer, language string) (r Result) {
	// No audio
	if b == nil || b.Empty() {
		astilog.Debug("stt: no audio to transcribe")
		return Result{LowConfidence: true}
	}

	// Transcribe
	text, err := t.e.Transcribe(ctx, b.Samples(), t.sampleRate, language)
	if err != nil {
		astilog.Error(errors.Wrap(err, "stt: transcribing failed"))
		return Result{LowConfidence: true}
	}

	// Unintelligible audio
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{LowConfidence: true}
	}
	return Result{Text: text}
}
