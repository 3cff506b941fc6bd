package system

import (
	"testing"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestStateSystem_HealthIsClamped(t *testing.T) {
	h := newHarness(t)

	h.state.ApplyPlayerDamage(30)
	assert.Equal(t, 70, h.ecs.GameState.Health)

	h.state.HealPlayer(500)
	assert.Equal(t, 100, h.ecs.GameState.Health)

	h.state.ApplyPlayerDamage(250)
	assert.Equal(t, 0, h.ecs.GameState.Health)
	assert.Equal(t, component.PhaseGameOver, h.state.Phase())
}

func TestStateSystem_GameOverIsIdempotent(t *testing.T) {
	h := newHarness(t)
	var phaseEvents, deaths int
	h.events.Subscribe(event.MatchPhaseChanged, event.ListenerFunc(func(e event.Event) {
		if e.Data.(event.PhaseChangeData).To == component.PhaseGameOver {
			phaseEvents++
		}
	}))
	h.events.Subscribe(event.PlayerDied, event.ListenerFunc(func(event.Event) { deaths++ }))

	h.state.ApplyPlayerDamage(100)
	h.state.ApplyPlayerDamage(5)
	assert.False(t, h.state.TriggerGameOver())

	assert.Equal(t, 1, phaseEvents)
	assert.Equal(t, 1, deaths)
	assert.Equal(t, 0, h.ecs.GameState.Health)
}

func TestStateSystem_EndedMatchIgnoresChanges(t *testing.T) {
	h := newHarness(t)
	h.state.AddScore(100)
	assert.True(t, h.state.TriggerVictory())
	assert.False(t, h.state.TriggerVictory())
	assert.False(t, h.state.TriggerGameOver())

	h.state.HealPlayer(10)
	h.state.ApplyPlayerDamage(10)
	h.state.AddScore(100)

	assert.Equal(t, component.PhaseVictory, h.state.Phase())
	assert.Equal(t, 100, h.ecs.GameState.Health)
	assert.Equal(t, 100, h.ecs.GameState.Score)
}

func TestStateSystem_PauseResume(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.state.Resume())
	assert.True(t, h.state.Pause())
	assert.False(t, h.state.Pause())
	assert.Equal(t, component.PhasePaused, h.state.Phase())

	h.state.ApplyPlayerDamage(10)
	assert.Equal(t, 100, h.ecs.GameState.Health, "no damage while paused")

	assert.True(t, h.state.Resume())
	assert.Equal(t, component.PhasePlaying, h.state.Phase())
	assert.False(t, h.state.ReturnToMenu())
}
