package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConclusion(t *testing.T) {
	assert.True(t, IsConclusion("Thanks for your time. INTERVIEW_END"))
	assert.True(t, IsConclusion("INTERVIEW_END"))
	assert.False(t, IsConclusion("Tell me about your last project"))
	assert.False(t, IsConclusion("interview_end"))
	assert.False(t, IsConclusion("INTERVIEW END"))
	// The check is a plain substring match, a quoted marker also concludes
	assert.True(t, IsConclusion(`What does "INTERVIEW_END" mean to you?`))
}
