package gen

import (
	"context"
	"testing"

	nexthire "github.com/nexthire/go-nexthire"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestInterviewerRespondClarifies(t *testing.T) {
	// Short inputs never reach the generator
	g := &mockedGenerator{err: errors.New("should not be called")}
	i := NewInterviewer(g)
	for _, in := range []string{"", "  ", "a", " h i "} {
		text, err := i.Respond(context.Background(), nil, "", in)
		assert.NoError(t, err)
		assert.Equal(t, ClarificationText, text)
	}
	assert.Empty(t, g.prompt)
}

func TestInterviewerPrompt(t *testing.T) {
	g := &mockedGenerator{text: "What did you build?"}
	i := NewInterviewer(g)
	h := []nexthire.Turn{
		{Index: 1, Role: nexthire.InterviewerRole, Text: "Tell me about yourself"},
		{Index: 1, Role: nexthire.CandidateRole, Text: "I write Go services"},
	}
	text, err := i.Respond(context.Background(), h, "5 years of Go", "I write Go services")
	assert.NoError(t, err)
	assert.Equal(t, "What did you build?", text)
	assert.Contains(t, g.prompt, "1. interviewer: Tell me about yourself\n")
	assert.Contains(t, g.prompt, "1. candidate: I write Go services\n")
	assert.Contains(t, g.prompt, "5 years of Go")
	assert.Contains(t, g.prompt, ConclusionMarker)
}

func TestInterviewerFirstQuestion(t *testing.T) {
	g := &mockedGenerator{text: "Walk me through your resume"}
	i := NewInterviewer(g)
	text, err := i.FirstQuestion(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, "Walk me through your resume", text)
	assert.Contains(t, g.prompt, "No resume provided")
	assert.Contains(t, g.prompt, "The interview has not started yet")
}
