package main

import (
	"context"
	"flag"
	"os"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/audio/capture"
	"github.com/nexthire/go-nexthire/audio/capture/portaudio"
	"github.com/nexthire/go-nexthire/gen"
	"github.com/nexthire/go-nexthire/interview"
	"github.com/nexthire/go-nexthire/server"
	"github.com/nexthire/go-nexthire/stt"
	"github.com/nexthire/go-nexthire/stt/deepspeech"
	"github.com/nexthire/go-nexthire/tts"
	"github.com/nexthire/go-nexthire/tts/elevenlabs"
	"github.com/nexthire/go-nexthire/tts/local"

	"github.com/asticode/go-astilog"
	asticonfig "github.com/asticode/go-astitools/config"
	astiworker "github.com/asticode/go-astitools/worker"
	"github.com/pkg/errors"
)

// Flags
var config = flag.String("c", "", "the config path")

func main() {
	// Parse flags
	flag.Parse()
	astilog.FlagInit()

	// Create configuration
	c := newConfiguration()

	// Create worker
	w := astiworker.NewWorker()

	// Initialize portaudio
	if err := portaudio.Initialize(); err != nil {
		astilog.Fatal(errors.Wrap(err, "main: initializing portaudio failed"))
	}
	defer func() {
		if err := portaudio.Close(); err != nil {
			astilog.Error(errors.Wrap(err, "main: closing portaudio failed"))
		}
	}()
	astilog.Debug(portaudio.Info())

	// Create stream
	st, err := portaudio.NewDefaultStream(portaudio.StreamOptions{
		ChunkDuration: c.Capture.ChunkDuration,
		SampleRate:    c.Capture.SampleRate,
	})
	if err != nil {
		astilog.Fatal(errors.Wrap(err, "main: creating stream failed"))
	}
	defer func() {
		if err := st.Close(); err != nil {
			astilog.Error(errors.Wrap(err, "main: closing stream failed"))
		}
	}()

	// Create capturer
	cp := capture.New(st, c.Capture)

	// Create deepspeech
	ds := deepspeech.New(c.DeepSpeech)
	defer ds.Close()

	// Create transcriber
	t := stt.NewTranscriber(ds, cp.Options().SampleRate)

	// Create generator
	g, err := gen.NewGemini(context.Background(), c.Gemini)
	if err != nil {
		astilog.Fatal(errors.Wrap(err, "main: creating generator failed"))
	}

	// Create speaker
	sp, closeSpeaker, err := newSpeaker(c)
	if err != nil {
		astilog.Fatal(errors.Wrap(err, "main: creating speaker failed"))
	}
	defer closeSpeaker()

	// Create dispatcher
	d := nexthire.NewDispatcher()

	// Create controller
	ctrl := interview.NewController(cp, t, gen.NewInterviewer(g), sp, d, c.Interview)

	// Create server
	s := server.New(c.Server, w, d, ctrl, cp, g)
	defer s.Close()

	// Handle signals
	w.HandleSignals()

	// Serve
	s.Serve()

	// Wait
	w.Wait()
}

// newSpeaker picks the hosted provider when an API key is configured and
// falls back to local OS speech otherwise.
func newSpeaker(c *Configuration) (s tts.Speaker, closeSpeaker func(), err error) {
	if c.ElevenLabs.APIKey != "" {
		return elevenlabs.New(c.ElevenLabs), func() {}, nil
	}
	l := local.New(c.Local)
	if err = l.Init(); err != nil {
		err = errors.Wrap(err, "main: initializing local speaker failed")
		return
	}
	return l, func() {
		if err := l.Close(); err != nil {
			astilog.Error(errors.Wrap(err, "main: closing local speaker failed"))
		}
	}, nil
}

// Configuration represents a configuration
type Configuration struct {
	Capture    capture.Options             `toml:"capture"`
	DeepSpeech deepspeech.Options          `toml:"deepspeech"`
	ElevenLabs elevenlabs.Options          `toml:"elevenlabs"`
	Gemini     gen.GeminiOptions           `toml:"gemini"`
	Interview  interview.ControllerOptions `toml:"interview"`
	Local      local.Options               `toml:"local"`
	Server     server.Options              `toml:"server"`
}

// newConfiguration creates a new configuration. API keys are taken from the
// environment so that they never end up in a committed config file.
func newConfiguration() *Configuration {
	// Global config
	gc := &Configuration{
		Capture: capture.Options{
			ChunkDuration:      capture.DefaultChunkDuration,
			MaxSilenceDuration: capture.DefaultMaxSilenceDuration,
			MaxTotalDuration:   capture.DefaultMaxTotalDuration,
			SampleRate:         capture.DefaultSampleRate,
			SilenceLevel:       capture.DefaultSilenceLevel,
		},
		ElevenLabs: elevenlabs.Options{
			APIKey: os.Getenv("NEXTHIRE_ELEVENLABS_API_KEY"),
		},
		Gemini: gen.GeminiOptions{
			APIKey: os.Getenv("NEXTHIRE_GEMINI_API_KEY"),
		},
		Server: server.Options{
			Addr: "127.0.0.1:6969",
		},
	}

	// Flag config
	fc := &Configuration{}

	// Build configuration
	c, err := asticonfig.New(gc, *config, fc)
	if err != nil {
		astilog.Fatal(err)
	}
	return c.(*Configuration)
}
