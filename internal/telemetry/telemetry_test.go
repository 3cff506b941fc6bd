package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithGlobalNoopProvider(t *testing.T) {
	m, err := New(func() int { return 3 })
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.NotPanics(t, func() {
		m.ShotFired("RIFLE")
		m.EnemyKilled(1)
		m.WaveStarted(2)
		m.PlayerDamaged(3)
		m.MatchEnded("victory", 10)
	})
}

func TestNilMetricsAreInert(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ShotFired("SNIPER")
		m.EnemyKilled(1)
		m.WaveStarted(1)
		m.PlayerDamaged(10)
		m.MatchEnded("game_over", 1)
	})
}
