package deepspeech

import (
	"context"
	"os"

	"github.com/asticode/go-astideepspeech"
	"github.com/asticode/go-astilog"
	astiaudio "github.com/asticode/go-astitools/audio"
	"github.com/pkg/errors"
)

// Deepspeech constants
const (
	deepSpeechBitDepth   = 16
	deepSpeechSampleRate = 16000
)

type DeepSpeech struct {
	m *astideepspeech.Model
	o Options
}

type Options struct {
	AlphabetPath         string  `toml:"alphabet_path"`
	BeamWidth            int     `toml:"beam_width"`
	LMPath               string  `toml:"lm_path"`
	LMWeight             float64 `toml:"lm_weight"`
	ModelPath            string  `toml:"model_path"`
	NCep                 int     `toml:"ncep"`
	NContext             int     `toml:"ncontext"`
	TriePath             string  `toml:"trie_path"`
	ValidWordCountWeight float64 `toml:"valid_word_count_weight"`
}

func New(o Options) (d *DeepSpeech) {
	// Create deepspeech
	d = &DeepSpeech{o: o}

	// Only do the following if the model path exists
	if _, err := os.Stat(d.o.ModelPath); err == nil {
		// Create model
		d.m = astideepspeech.New(o.ModelPath, o.NCep, o.NContext, o.AlphabetPath, o.BeamWidth)

		// Enable LM
		if o.LMPath != "" {
			d.m.EnableDecoderWithLM(o.AlphabetPath, o.LMPath, o.TriePath, o.LMWeight, o.ValidWordCountWeight)
		}
	}
	return
}

func (d *DeepSpeech) Close() {
	// Close the model
	if d.m != nil {
		astilog.Debug("deepspeech: closing model")
		if err := d.m.Close(); err != nil {
			astilog.Error(errors.Wrap(err, "deepspeech: closing model failed"))
		}
	}
}

// Transcribe runs speech to text on mono 16-bit samples, resampling to the
// model's expected sample rate when needed. DeepSpeech models are trained
// per language, so the language hint is resolved at model load time and
// ignored here.
func (d *DeepSpeech) Transcribe(ctx context.Context, samples []int16, sampleRate int, _ string) (t string, err error) {
	// No model
	if d.m == nil {
		return
	}

	// Check context
	if err = ctx.Err(); err != nil {
		return
	}

	// Create sample rate converter
	var ss []int16
	c := astiaudio.NewSampleRateConverter(float64(sampleRate), deepSpeechSampleRate, func(s int32) (err error) {
		// Convert bit depth
		if s, err = astiaudio.ConvertBitDepth(s, deepSpeechBitDepth, deepSpeechBitDepth); err != nil {
			err = errors.Wrap(err, "deepspeech: converting bit depth failed")
			return
		}

		// Append sample
		ss = append(ss, int16(s))
		return
	})

	// Loop through samples
	for _, s := range samples {
		// Add to sample rate converter
		if err = c.Add(int32(s)); err != nil {
			err = errors.Wrap(err, "deepspeech: adding sample to sample rate converter failed")
			return
		}
	}

	// Parse
	t = d.m.SpeechToText(ss, uint(len(ss)), deepSpeechSampleRate)
	return
}
