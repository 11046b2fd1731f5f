package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// Defaults
const (
	defaultBaseURL         = "https://api.elevenlabs.io"
	defaultSimilarityBoost = 0.8
	defaultStability       = 0.6
	defaultTimeout         = 30 * time.Second
)

// Speaker synthesizes speech through the ElevenLabs text-to-speech API and
// returns the compressed audio byte stream (audio/mpeg).
type Speaker struct {
	c *http.Client
	o Options
}

type Options struct {
	APIKey          string        `toml:"api_key"`
	BaseURL         string        `toml:"base_url"`
	SimilarityBoost float64       `toml:"similarity_boost"`
	Stability       float64       `toml:"stability"`
	Timeout         time.Duration `toml:"timeout"`
	VoiceID         string        `toml:"voice_id"`
}

func New(o Options) (s *Speaker) {
	// Create speaker
	s = &Speaker{o: o}

	// Default options
	if s.o.BaseURL == "" {
		s.o.BaseURL = defaultBaseURL
	}
	if s.o.SimilarityBoost <= 0 {
		s.o.SimilarityBoost = defaultSimilarityBoost
	}
	if s.o.Stability <= 0 {
		s.o.Stability = defaultStability
	}
	if s.o.Timeout <= 0 {
		s.o.Timeout = defaultTimeout
	}

	// Create client
	s.c = &http.Client{Timeout: s.o.Timeout}
	return
}

type synthesizeBody struct {
	Text          string        `json:"text"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	SimilarityBoost float64 `json:"similarity_boost"`
	Stability       float64 `json:"stability"`
}

func (s *Speaker) Synthesize(ctx context.Context, text string) (b []byte, err error) {
	// Nothing to say
	if strings.TrimSpace(text) == "" {
		return
	}

	// Marshal body
	var body []byte
	if body, err = json.Marshal(synthesizeBody{
		Text: text,
		VoiceSettings: voiceSettings{
			SimilarityBoost: s.o.SimilarityBoost,
			Stability:       s.o.Stability,
		},
	}); err != nil {
		err = errors.Wrap(err, "elevenlabs: marshaling body failed")
		return
	}

	// Create request
	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/text-to-speech/%s", s.o.BaseURL, s.o.VoiceID), bytes.NewReader(body)); err != nil {
		err = errors.Wrap(err, "elevenlabs: creating request failed")
		return
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.o.APIKey)

	// Send request
	astilog.Debugf("elevenlabs: synthesizing %d chars", len(text))
	var resp *http.Response
	if resp, err = s.c.Do(req); err != nil {
		err = errors.Wrap(err, "elevenlabs: sending request failed")
		return
	}
	defer resp.Body.Close()

	// Read body
	if b, err = ioutil.ReadAll(resp.Body); err != nil {
		err = errors.Wrap(err, "elevenlabs: reading body failed")
		return
	}

	// Check status
	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("elevenlabs: invalid status code %d: %s", resp.StatusCode, b)
		b = nil
		return
	}
	return
}
