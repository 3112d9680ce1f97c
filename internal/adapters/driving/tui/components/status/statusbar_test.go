package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarDefaults(t *testing.T) {
	bar := NewBar(nil, nil)
	require.NotNil(t, bar)

	assert.Equal(t, StateIdle, bar.State())
	assert.Equal(t, 80, bar.Width())
}

func TestBarViewStates(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetState(StatePending)
	assert.Contains(t, bar.View(), "Validating...")

	bar.SetState(StateValid)
	assert.Contains(t, bar.View(), "Valid")

	bar.SetState(StateValid)
	bar.SetCounts(0, 2)
	assert.Contains(t, bar.View(), "2 warnings")

	bar.SetState(StateInvalid)
	bar.SetCounts(3, 1)
	view := bar.View()
	assert.Contains(t, view, "3 errors")
	assert.Contains(t, view, "1 warnings")

	bar.SetState(StateFailed)
	bar.SetMessage("connection refused")
	assert.Contains(t, bar.View(), "connection refused")
}

func TestBarClear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateInvalid)
	bar.SetCounts(5, 5)
	bar.SetMessage("oops")

	bar.Clear()

	assert.Equal(t, StateIdle, bar.State())
	assert.Empty(t, bar.Message())
	assert.True(t, strings.Contains(bar.View(), "Ready"))
}
