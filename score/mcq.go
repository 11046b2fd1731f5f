package score

import (
	"context"
	"fmt"

	"github.com/nexthire/go-nexthire/gen"

	"github.com/pkg/errors"
)

// MCQ is one generated multiple choice question. Answer is the 1-based
// number of the correct option.
type MCQ struct {
	Answer     int      `json:"answer"`
	Difficulty string   `json:"difficulty"`
	Options    []string `json:"options"`
	Question   string   `json:"question"`
}

// GenerateMCQs generates domain-specific multiple choice questions.
func GenerateMCQs(ctx context.Context, g gen.Generator, domain string, numQuestions int, difficulty string) (ms []MCQ, err error) {
	// Defaults
	if numQuestions <= 0 {
		numQuestions = 10
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	// Generate
	if err = gen.GenerateJSON(ctx, g, mcqPrompt(domain, numQuestions, difficulty), &ms); err != nil {
		err = errors.Wrap(err, "score: generating mcqs failed")
		return
	}
	return
}

func mcqPrompt(domain string, numQuestions int, difficulty string) string {
	return fmt.Sprintf(`You are an expert technical interviewer.

Generate %d high-quality multiple choice questions (MCQs) for the domain: "%s".

Each question should:
- Be relevant to the domain and test real applied knowledge.
- Have exactly 4 options.
- Include the correct answer as the 1-based number of the correct option.
- Match the given difficulty level: %s.
- Shuffle the answers, don't make all answers the same option.

OUTPUT STRICTLY a JSON array with this structure (no extra text, no markdown):
[
  {
    "question": "string",
    "options": ["option1", "option2", "option3", "option4"],
    "answer": 1,
    "difficulty": "%s"
  }
]`, numQuestions, domain, difficulty, difficulty)
}
