package gen

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	nexthire "github.com/nexthire/go-nexthire"

	"github.com/pkg/errors"
)

// Inputs shorter than this many non-whitespace characters are considered
// garbled transcriptions and answered with a clarification instead of a
// model call.
const minMeaningfulInputLength = 3

// ClarificationText is returned when the candidate's input is too short or
// was not understood.
const ClarificationText = "I couldn't quite hear that clearly. Could you please repeat your answer?"

// Interviewer builds interviewer prompts and obtains the next interviewer
// utterance from a generator.
type Interviewer struct {
	g Generator
}

func NewInterviewer(g Generator) *Interviewer {
	return &Interviewer{g: g}
}

// FirstQuestion asks the model for the opening question of the interview.
func (i *Interviewer) FirstQuestion(ctx context.Context, resumeContext string) (text string, err error) {
	// Generate
	if text, err = i.g.Generate(ctx, i.prompt(nil, resumeContext, "start_interview")); err != nil {
		err = errors.Wrap(err, "gen: generating first question failed")
		return
	}
	return
}

// Respond generates the interviewer's next utterance from the full turn
// history, the resume context and the candidate's latest input. Inputs below
// the minimum meaningful length yield a clarification without a model call.
func (i *Interviewer) Respond(ctx context.Context, history []nexthire.Turn, resumeContext, latestInput string) (text string, err error) {
	// Handle empty / unclear input
	if nonWhitespaceLength(latestInput) < minMeaningfulInputLength {
		return ClarificationText, nil
	}

	// Generate
	if text, err = i.g.Generate(ctx, i.prompt(history, resumeContext, latestInput)); err != nil {
		err = errors.Wrap(err, "gen: generating response failed")
		return
	}
	return
}

// prompt includes the resume context and the full turn history verbatim so
// the model can avoid repeating questions and can reference prior answers.
func (i *Interviewer) prompt(history []nexthire.Turn, resumeContext, latestInput string) string {
	// Resume
	resume := "No resume provided"
	if strings.TrimSpace(resumeContext) != "" {
		resume = resumeContext
	}

	// History
	var sb strings.Builder
	for _, t := range history {
		sb.WriteString(fmt.Sprintf("%d. %s: %s\n", t.Index, t.Role, t.Text))
	}
	h := sb.String()
	if h == "" {
		h = "The interview has not started yet. Ask your opening question."
	}

	return fmt.Sprintf(`You are an experienced technical interviewer conducting a structured interview.
Guidelines:
- Keep your tone confident and professional, like a hiring manager.
- Base your questions on the candidate's previous answers and resume.
- Encourage depth: ask for reasoning, examples, or results.
- Never repeat questions or ask unrelated ones.
- If resume info exists, use it to tailor questions about projects, tech skills, and achievements.
- If enough has been covered, conclude politely and end your message with the exact token %s.
- Never output the token %s for any other reason, and never quote or mention it in a question.

Resume (if provided):
%s

Interview so far:
%s

The candidate just said: "%s"

Now generate your next message as the interviewer:
- Either ask a follow-up question
- Or naturally conclude if appropriate`,
		ConclusionMarker, ConclusionMarker, resume, h, latestInput)
}

func nonWhitespaceLength(s string) (n int) {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return
}
