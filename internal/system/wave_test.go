package system

import (
	"sort"
	"testing"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) liveIDs() []types.EntityID {
	ids := make([]types.EntityID, 0)
	for id := range h.ecs.Wave.Live {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (h *harness) killWave() {
	for _, id := range h.liveIDs() {
		target, ok := h.ecs.Damageable(id)
		require.True(h.t, ok)
		target.ReceiveDamage(10_000)
	}
	h.flush()
}

func TestWave_TableSpawn(t *testing.T) {
	h := newHarness(t)
	h.spawnPlayer(utils.Vec3{})
	var started []event.WaveData
	h.events.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		started = append(started, e.Data.(event.WaveData))
	}))

	h.waves.StartWave(1)

	ids := h.liveIDs()
	require.Len(t, ids, 5)
	assert.Equal(t, 5, h.ecs.Wave.Spawned)
	assert.Equal(t, 1, h.ecs.GameState.Wave)
	for i, id := range ids {
		pos, ok := h.phys.Position(id)
		require.True(t, ok)
		base := defs.SpawnPoints[i%len(defs.SpawnPoints)]
		assert.Equal(t, h.cfg.Waves.DropHeight, pos.Y)
		assert.InDelta(t, base.X, pos.X, h.cfg.Waves.SpawnJitter/2)
		assert.InDelta(t, base.Z, pos.Z, h.cfg.Waves.SpawnJitter/2)
		assert.Equal(t, 1, h.ecs.Enemies[id].Wave)
	}

	n := len(h.ecs.Pickups)
	assert.GreaterOrEqual(t, n, h.cfg.Waves.PickupsMin)
	assert.LessOrEqual(t, n, h.cfg.Waves.PickupsMax)
	assert.Equal(t, 1, h.fx.Count(fx.WaveStart))
	assert.Equal(t, []event.WaveData{{Wave: 1, Enemies: 5}}, started)
}

func TestWave_RingSpawn(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) { cfg.Waves.SpawnMode = string(defs.SpawnRing) })

	slack := h.cfg.Waves.SpawnJitter
	for _, p := range h.waves.SpawnPoints(12) {
		r := p.Horizontal().Len()
		assert.GreaterOrEqual(t, r, h.cfg.Waves.RingMinRadius-slack)
		assert.LessOrEqual(t, r, h.cfg.Waves.RingMaxRadius+slack)
	}
}

func TestWave_KillsScoreAndAdvance(t *testing.T) {
	h := newHarness(t)
	h.spawnPlayer(utils.Vec3{})
	h.waves.StartWave(1)

	h.killWave()
	assert.Equal(t, 500, h.ecs.GameState.Score)
	assert.Zero(t, h.waves.Live())
	assert.True(t, h.ecs.Wave.Advancing)
	assert.Len(t, h.killed, 5)

	h.step(2990*time.Millisecond, component.Input{})
	assert.Equal(t, 1, h.ecs.GameState.Wave)

	h.step(tick, component.Input{})
	assert.Equal(t, 2, h.ecs.GameState.Wave)
	assert.Equal(t, h.waves.curve.Count(2), h.waves.Live())
}

func TestWave_LinearCurveSpawnsSixOnWaveTwo(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) {
		cfg.Waves.BaseCount = 5
		cfg.Waves.CountExpr = "base + wave - 1"
	})
	h.spawnPlayer(utils.Vec3{})
	h.waves.StartWave(1)
	require.Equal(t, 5, h.waves.Live())

	h.killWave()
	h.step(3*time.Second, component.Input{})

	assert.Equal(t, 2, h.ecs.GameState.Wave)
	assert.Equal(t, 6, h.waves.Live())
	assert.Equal(t, 6, h.ecs.Wave.Spawned)
}

func TestWave_VictoryAfterLastWave(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) { cfg.Waves.MaxWaves = 1 })
	h.spawnPlayer(utils.Vec3{})
	h.waves.StartWave(1)

	h.killWave()
	h.step(3*time.Second, component.Input{})

	assert.Equal(t, component.PhaseVictory, h.state.Phase())
	assert.Equal(t, 1, h.ecs.GameState.Wave)
	assert.Equal(t, 500, h.ecs.GameState.Score)
}

func TestWave_AdvanceIsInertAfterGameOver(t *testing.T) {
	h := newHarness(t)
	h.spawnPlayer(utils.Vec3{})
	h.waves.StartWave(1)
	h.killWave()

	h.state.TriggerGameOver()
	assert.Zero(t, h.sched.Run(time.Minute))
	assert.Equal(t, 1, h.ecs.GameState.Wave)
	assert.Equal(t, component.PhaseGameOver, h.state.Phase())
}

func TestWave_DuplicateKillIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.waves.StartWave(1)
	id := h.liveIDs()[0]

	kill := event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Enemy: id, Wave: 1}}
	h.events.Dispatch(kill)
	h.events.Dispatch(kill)

	assert.Equal(t, 100, h.ecs.GameState.Score)
	assert.Equal(t, 4, h.waves.Live())
	assert.False(t, h.ecs.Wave.Advancing)
}

func TestWave_StrayKillIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.waves.StartWave(1)
	stray := h.enemies.Spawn(utils.V3(0, 0, 5), 1)

	h.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Enemy: stray, Wave: 1}})
	assert.Zero(t, h.ecs.GameState.Score)
	assert.Equal(t, 5, h.waves.Live())
}
