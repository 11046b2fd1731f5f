package gen

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type mockedGenerator struct {
	err    error
	prompt string
	text   string
}

func (g *mockedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func TestGenerateJSON(t *testing.T) {
	type out struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	// Strict JSON
	var o out
	err := GenerateJSON(context.Background(), &mockedGenerator{text: `{"name": "go", "score": 9}`}, "p", &o)
	assert.NoError(t, err)
	assert.Equal(t, out{Name: "go", Score: 9}, o)

	// JSON wrapped in markdown
	o = out{}
	err = GenerateJSON(context.Background(), &mockedGenerator{text: "Here you go:\n```json\n{\"name\": \"go\", \"score\": 9}\n```"}, "p", &o)
	assert.NoError(t, err)
	assert.Equal(t, out{Name: "go", Score: 9}, o)

	// Repairable JSON
	o = out{}
	err = GenerateJSON(context.Background(), &mockedGenerator{text: `{"name": "go", "score": 9,}`}, "p", &o)
	assert.NoError(t, err)
	assert.Equal(t, out{Name: "go", Score: 9}, o)

	// No JSON value at all
	err = GenerateJSON(context.Background(), &mockedGenerator{text: "sorry, I can't do that"}, "p", &o)
	assert.Equal(t, ErrMalformedModelOutput, errors.Cause(err))

	// Generator failure
	err = GenerateJSON(context.Background(), &mockedGenerator{err: errors.New("boom")}, "p", &o)
	assert.Error(t, err)
	assert.NotEqual(t, ErrMalformedModelOutput, errors.Cause(err))
}
