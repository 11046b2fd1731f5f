package gen

import "strings"

// ConclusionMarker is the reserved literal token the interviewer prompt
// instructs the model to output when it wants to conclude. It must never
// appear in a genuine follow-up question.
const ConclusionMarker = "INTERVIEW_END"

// IsConclusion reports whether text contains the exact, case-sensitive
// conclusion marker. It's deliberately a single deterministic check and not
// a classifier: a false positive ends the interview prematurely while a
// false negative only costs one extra turn.
func IsConclusion(text string) bool {
	return strings.Contains(text, ConclusionMarker)
}
