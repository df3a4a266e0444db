package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabledBooleanValues(t *testing.T) {
	m := NewManager("signups_paused=on,ranked_feed=off,events=true,tracing=false,a=1,b=0")

	assert.True(t, m.Enabled("signups_paused", 1))
	assert.True(t, m.Enabled("events", 1))
	assert.True(t, m.Enabled("a", 1))

	assert.False(t, m.Enabled("ranked_feed", 1))
	assert.False(t, m.Enabled("tracing", 1))
	assert.False(t, m.Enabled("b", 1))

	// Unknown flags default to disabled.
	assert.False(t, m.Enabled("does_not_exist", 1))
}

func TestEnabledPercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")

	assert.True(t, m.Enabled("always", 1))
	assert.False(t, m.Enabled("never", 1))

	// Rollout evaluation is deterministic per user.
	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Enabled("canary", 42))
	}

	// Anonymous users never join a partial rollout.
	assert.False(t, m.Enabled("canary", 0))
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,ranked_feed=on, canary = 20% ,signups_paused=off ")

	snap := m.Snapshot(123)
	assert.Len(t, snap, 3)
	assert.True(t, snap["ranked_feed"])
	assert.False(t, snap["signups_paused"])
}

func TestNilManagerIsDisabled(t *testing.T) {
	var m *Manager
	assert.False(t, m.Enabled("anything", 1))
}
