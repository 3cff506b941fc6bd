package system

import (
	"testing"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFire_NearestTargetTakesAllDamage(t *testing.T) {
	h := newHarness(t)
	shooter := h.spawnPlayer(utils.Vec3{})
	near := h.enemies.Spawn(utils.V3(0, 0, -5), 1)
	far := h.enemies.Spawn(utils.V3(0, 0, -8), 1)

	// Провайдер возвращает кандидатов в произвольном порядке; свой стрелок тоже попадается.
	h.phys.hits = []interfaces.RayHit{
		{Entity: far, Point: utils.V3(0, 1, -7.5), Distance: 7.5},
		{Entity: shooter, Point: utils.V3(0, 1, 0), Distance: 0},
		{Entity: near, Point: utils.V3(0, 1, -4.5), Distance: 4.5},
		{Entity: types.NoEntity, Point: utils.V3(0, 1, -20), Distance: 20},
	}

	hit, ok := h.combat.Fire(utils.V3(0, 1, 0), utils.V3(0, 0, -1), defs.Rifle.Stats(), shooter)
	require.True(t, ok)
	assert.Equal(t, near, hit.Entity)
	assert.True(t, hit.Damaged)

	assert.Equal(t, 75, h.ecs.Healths[near].Value)
	assert.Equal(t, 100, h.ecs.Healths[far].Value)
	assert.Equal(t, 1, h.fx.Count(fx.Hit))
	assert.Zero(t, h.fx.Count(fx.SurfaceImpact))
	assert.Len(t, h.ecs.Effects, 1)
	for _, e := range h.ecs.Effects {
		assert.Equal(t, component.EffectHitSpark, e.Kind)
		assert.Equal(t, h.ecs.GameTime+h.cfg.Sim.HitSparkDuration, e.ExpiresAt)
	}
}

func TestFire_WallStopsRay(t *testing.T) {
	h := newHarness(t)
	shooter := h.spawnPlayer(utils.Vec3{})
	behind := h.enemies.Spawn(utils.V3(0, 0, -10), 1)
	h.phys.hits = []interfaces.RayHit{
		{Entity: behind, Distance: 9.5},
		{Entity: types.NoEntity, Point: utils.V3(0, 1, -3), Distance: 3},
	}

	hit, ok := h.combat.Fire(utils.V3(0, 1, 0), utils.V3(0, 0, -1), defs.Sniper.Stats(), shooter)
	require.True(t, ok)
	assert.False(t, hit.Damaged)
	assert.Equal(t, types.NoEntity, hit.Entity)
	assert.Equal(t, 100, h.ecs.Healths[behind].Value)
	assert.Equal(t, 1, h.fx.Count(fx.SurfaceImpact))
	for _, e := range h.ecs.Effects {
		assert.Equal(t, component.EffectSurfaceSpark, e.Kind)
	}
}

func TestFire_FreshCorpseBlocksRay(t *testing.T) {
	h := newHarness(t)
	shooter := h.spawnPlayer(utils.Vec3{})
	corpse := h.enemies.Spawn(utils.V3(0, 0, -5), 1)
	behind := h.enemies.Spawn(utils.V3(0, 0, -8), 1)

	target, ok := h.ecs.Damageable(corpse)
	require.True(t, ok)
	target.ReceiveDamage(1000)
	require.False(t, target.Alive())

	h.phys.hits = []interfaces.RayHit{
		{Entity: behind, Point: utils.V3(0, 1, -7.5), Distance: 7.5},
		{Entity: corpse, Point: utils.V3(0, 1, -4.5), Distance: 4.5},
	}

	hit, ok := h.combat.Fire(utils.V3(0, 1, 0), utils.V3(0, 0, -1), defs.Rifle.Stats(), shooter)
	require.True(t, ok)
	assert.Equal(t, corpse, hit.Entity)
	assert.False(t, hit.Damaged)
	assert.Equal(t, 100, h.ecs.Healths[behind].Value)
	assert.Equal(t, 1, h.fx.Count(fx.SurfaceImpact))
	assert.Zero(t, h.fx.Count(fx.Hit))
}

func TestFire_MissProducesNothing(t *testing.T) {
	h := newHarness(t)
	shooter := h.spawnPlayer(utils.Vec3{})
	h.phys.hits = []interfaces.RayHit{{Entity: shooter, Distance: 0}}

	_, ok := h.combat.Fire(utils.V3(0, 1, 0), utils.V3(0, 1, 0), defs.Rifle.Stats(), shooter)
	assert.False(t, ok)
	assert.Empty(t, h.fx.Events)
	assert.Empty(t, h.ecs.Effects)
}

func TestApplySpread_StaysNearAim(t *testing.T) {
	rng := utils.NewPRNGService(1)
	aim := utils.V3(0, 0, -1)

	for i := 0; i < 100; i++ {
		dir := ApplySpread(aim, defs.Rifle.Stats().Spread, rng)
		assert.InDelta(t, 1, dir.Len(), 1e-9)
		assert.Greater(t, dir.Dot(aim), 0.99)
	}
	assert.Equal(t, aim, ApplySpread(aim, 0, rng))
}

func TestVisualEffects_Expire(t *testing.T) {
	h := newHarness(t)
	h.combat.SpawnEffect(component.EffectSurfaceSpark, utils.Vec3{}, h.cfg.Sim.SurfaceSparkDuration)
	h.combat.SpawnEffect(component.EffectHitSpark, utils.Vec3{}, h.cfg.Sim.HitSparkDuration)

	h.effects.Update(h.cfg.Sim.SurfaceSparkDuration - tick)
	assert.Len(t, h.ecs.Effects, 2)
	h.effects.Update(h.cfg.Sim.SurfaceSparkDuration)
	assert.Len(t, h.ecs.Effects, 1)
	h.effects.Update(h.cfg.Sim.HitSparkDuration)
	assert.Empty(t, h.ecs.Effects)
}
