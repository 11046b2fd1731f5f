package gen

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// Default model
const DefaultGeminiModel = "gemini-2.5-flash"

type Gemini struct {
	c *genai.Client
	o GeminiOptions
}

type GeminiOptions struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

func NewGemini(ctx context.Context, o GeminiOptions) (g *Gemini, err error) {
	// Create gemini
	g = &Gemini{o: o}

	// Default model
	if g.o.Model == "" {
		g.o.Model = DefaultGeminiModel
	}

	// Create client
	if g.c, err = genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.APIKey,
		Backend: genai.BackendGeminiAPI,
	}); err != nil {
		err = errors.Wrap(err, "gen: creating genai client failed")
		return
	}
	return
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (text string, err error) {
	// Generate content
	var resp *genai.GenerateContentResponse
	if resp, err = g.c.Models.GenerateContent(ctx, g.o.Model, genai.Text(prompt), nil); err != nil {
		err = errors.Wrap(err, "gen: generating content failed")
		return
	}

	// No candidates
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		err = errors.New("gen: no candidates in response")
		return
	}

	// Flatten parts
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}

	// Empty response
	text = strings.TrimSpace(sb.String())
	if text == "" {
		err = errors.New("gen: empty response")
		return
	}
	return
}
