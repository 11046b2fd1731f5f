package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, 0.0, Level(nil))
	assert.Equal(t, 0.0, Level([]int16{0, 0, 0}))
	assert.Equal(t, 100.0, Level([]int16{100, -100, 100, -100}))
	assert.Equal(t, 250.0, Level([]int16{500, 0}))
}

func TestBuffer(t *testing.T) {
	b := NewBuffer()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
	b.Append([]int16{1, 2})
	b.Append([]int16{3})
	assert.False(t, b.Empty())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int16{1, 2, 3}, b.Samples())
	assert.Equal(t, 3*time.Second, b.Duration(1))
	assert.Equal(t, time.Duration(0), b.Duration(0))
}
