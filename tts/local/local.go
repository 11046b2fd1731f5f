// Package local plays synthesized speech through the operating system's
// speech facilities. It's a development fallback for the hosted synthesis
// providers: it returns no audio bytes since playback happens on the server
// machine itself.
package local

import (
	"context"
	"strings"
)

type Speaker struct {
	o Options

	// Windows
	windows windowsVoice
}

type Options struct {
	BinaryDirPath string `toml:"binary_dir_path"`
	Voice         string `toml:"voice"`
}

func New(o Options) *Speaker {
	return &Speaker{o: o}
}

func (s *Speaker) Synthesize(ctx context.Context, text string) (b []byte, err error) {
	// Nothing to say
	if strings.TrimSpace(text) == "" {
		return
	}

	// Say
	if err = s.say(text); err != nil {
		return
	}
	return
}
