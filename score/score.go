package score

import (
	"context"
	"fmt"
	"math"

	"github.com/nexthire/go-nexthire/gen"

	"github.com/pkg/errors"
)

// Evaluation is the model's assessment of a resume against a target domain.
type Evaluation struct {
	Domain         string   `json:"domain"`
	MissingSkills  []string `json:"missing_skills"`
	Recommendation string   `json:"recommendation"`
	ResumeScore    float64  `json:"resume_score"`
	Strengths      []string `json:"strengths"`
	Summary        string   `json:"summary"`
}

// EvaluateResume scores a resume against a target job domain. The model is
// asked for strict JSON; malformed output surfaces as
// gen.ErrMalformedModelOutput.
func EvaluateResume(ctx context.Context, g gen.Generator, resume, targetDomain string) (ev Evaluation, err error) {
	// Generate
	if err = gen.GenerateJSON(ctx, g, evaluationPrompt(resume, targetDomain), &ev); err != nil {
		err = errors.Wrap(err, "score: evaluating resume failed")
		return
	}
	return
}

func evaluationPrompt(resume, targetDomain string) string {
	return fmt.Sprintf(`You are a highly experienced HR and technical recruiter specializing in candidate evaluation and job-fit analysis across multiple industries.

Your task is to critically assess the candidate's profile for their suitability to the given target domain.

INPUTS:
- Candidate Resume: %s
- Target Domain or Job Role: %s

EVALUATION RULES:
1. Analyze the candidate's education, experience, projects, certifications, and skills to estimate how well they align with the target domain.
2. Be objective and specific, do not compliment or speculate beyond resume facts.
3. Consider technical and domain relevance of skills and tools, depth of listed projects, demonstrated outcomes, and transferable skills.
4. Identify critical skill or experience gaps that are mandatory for excellence in this domain.
5. Assign a RESUME SCORE from 0-100 based strictly on alignment (100 = perfect match, 0 = unrelated profile).
6. Keep the explanation concise and formal.

OUTPUT STRICTLY in the following JSON structure only (no extra text, no markdown):

{
  "domain": "%s",
  "resume_score": <integer between 0 and 100>,
  "summary": "<2-3 line factual overview of fit>",
  "strengths": ["specific skills or experiences clearly relevant to the domain"],
  "missing_skills": ["critical skills, tools, or experiences not evident"],
  "recommendation": "<1-2 line action plan on how to close these gaps>"
}`, resume, targetDomain, targetDomain)
}

// Report blends the resume evaluation with externally supplied quiz and
// coding marks. The resume contributes up to 35 points.
type Report struct {
	Evaluation
	CodingMarks float64 `json:"coding_marks"`
	MCQMarks    float64 `json:"mcq_marks"`
	TotalScore  float64 `json:"total_score"`
}

func Total(ev Evaluation, mcqMarks, codingMarks float64) (r Report) {
	r = Report{
		CodingMarks: codingMarks,
		Evaluation:  ev,
		MCQMarks:    mcqMarks,
	}
	r.ResumeScore = round2(ev.ResumeScore)
	r.TotalScore = round2(ev.ResumeScore/100*35 + mcqMarks + codingMarks)
	return
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
