package analysis

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_StartsIdle(t *testing.T) {
	c := New()
	snap := c.Get()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Result)
	assert.NoError(t, snap.Err)
}

func TestBegin_DiscardsPreviousResultImmediately(t *testing.T) {
	c := New()
	c.Resolve(types.NewATSResult("feedback"))
	require.Equal(t, StateReady, c.Get().State)

	// A new request must never expose the previous kind's result, even
	// before its own result arrives.
	c.Begin()
	snap := c.Get()
	assert.Equal(t, StatePending, snap.State)
	assert.Nil(t, snap.Result)
}

func TestResolve_OverwritesUnconditionally(t *testing.T) {
	c := New()
	c.Begin()
	c.Resolve(types.NewKeywordsResult([]string{"Go"}))
	c.Resolve(types.NewSkillsResult([]string{"SQL"}))

	snap := c.Get()
	require.Equal(t, StateReady, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, types.AnalysisSkills, snap.Result.Kind)
}

func TestFail_RetainsNoResult(t *testing.T) {
	c := New()
	c.Resolve(types.NewATSResult("feedback"))
	c.Begin()
	c.Fail(errors.New("service unavailable"))

	snap := c.Get()
	assert.Equal(t, StateFailed, snap.State)
	assert.Nil(t, snap.Result)
	assert.EqualError(t, snap.Err, "service unavailable")
}

func TestClear_ResetsToIdle(t *testing.T) {
	c := New()
	c.Resolve(types.NewATSResult("feedback"))
	c.Clear()

	snap := c.Get()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Result)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
}
