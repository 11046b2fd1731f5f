package score

import (
	"context"
	"testing"

	"github.com/nexthire/go-nexthire/gen"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type mockedGenerator struct {
	prompt string
	text   string
}

func (g *mockedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, nil
}

func TestEvaluateResume(t *testing.T) {
	g := &mockedGenerator{text: "```json\n" + `{
		"domain": "Backend Engineering",
		"resume_score": 72,
		"summary": "Solid backend profile",
		"strengths": ["Go", "PostgreSQL"],
		"missing_skills": ["Kubernetes"],
		"recommendation": "Ship a k8s project"
	}` + "\n```"}
	ev, err := EvaluateResume(context.Background(), g, "my resume", "Backend Engineering")
	assert.NoError(t, err)
	assert.Equal(t, "Backend Engineering", ev.Domain)
	assert.Equal(t, 72.0, ev.ResumeScore)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, ev.Strengths)
	assert.Contains(t, g.prompt, "my resume")
	assert.Contains(t, g.prompt, "Backend Engineering")
}

func TestEvaluateResumeMalformed(t *testing.T) {
	g := &mockedGenerator{text: "I am unable to help with that"}
	_, err := EvaluateResume(context.Background(), g, "r", "d")
	assert.Equal(t, gen.ErrMalformedModelOutput, errors.Cause(err))
}

func TestTotal(t *testing.T) {
	r := Total(Evaluation{ResumeScore: 80}, 20, 30)
	// 80/100*35 + 20 + 30
	assert.Equal(t, 78.0, r.TotalScore)
	assert.Equal(t, 80.0, r.ResumeScore)
	assert.Equal(t, 20.0, r.MCQMarks)
	assert.Equal(t, 30.0, r.CodingMarks)

	r = Total(Evaluation{ResumeScore: 33.333}, 0, 0)
	assert.Equal(t, 11.67, r.TotalScore)
	assert.Equal(t, 33.33, r.ResumeScore)
}

func TestGenerateMCQs(t *testing.T) {
	g := &mockedGenerator{text: `[
		{"question": "What does a goroutine run on?", "options": ["OS thread", "Green thread multiplexed on OS threads", "Process", "Fiber"], "answer": 2, "difficulty": "medium"}
	]`}
	ms, err := GenerateMCQs(context.Background(), g, "Go", 0, "")
	assert.NoError(t, err)
	assert.Len(t, ms, 1)
	assert.Equal(t, 2, ms[0].Answer)
	assert.Len(t, ms[0].Options, 4)

	// Defaults end up in the prompt
	assert.Contains(t, g.prompt, "Generate 10 high-quality")
	assert.Contains(t, g.prompt, "medium")
	assert.Contains(t, g.prompt, `"Go"`)
}
