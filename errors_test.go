package nexthire

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	u := NewUsageError("bad call %d", 1)
	assert.Equal(t, "bad call 1", u.Error())
	assert.True(t, IsUsageError(u))
	assert.False(t, IsTurnError(u))
	assert.False(t, IsResourceError(u))

	tr := NewTurnError(errors.New("model down"), "generating failed")
	assert.Equal(t, "generating failed: model down", tr.Error())
	assert.True(t, IsTurnError(tr))
	assert.False(t, IsUsageError(tr))

	r := NewResourceError(nil, "no device")
	assert.Equal(t, "no device", r.Error())
	assert.True(t, IsResourceError(r))
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	err := errors.Wrap(NewTurnError(errors.New("model down"), "generating failed"), "listening failed")
	assert.True(t, IsTurnError(err))
	assert.False(t, IsUsageError(err))
	err = errors.Wrap(errors.Wrap(NewUsageError("no session"), "a"), "b")
	assert.True(t, IsUsageError(err))
}
