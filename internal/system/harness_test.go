package system

import (
	"sort"
	"testing"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const tick = 10 * time.Millisecond

// stubPhysics — управляемый тестом мир без гравитации. Закреплённые тела не двигаются.
type stubPhysics struct {
	pos      map[types.EntityID]utils.Vec3
	vel      map[types.EntityID]utils.Vec3
	mass     map[types.EntityID]float64
	pinned   map[types.EntityID]bool
	impulses map[types.EntityID][]utils.Vec3
	hits     []interfaces.RayHit
	rays     int
}

var _ interfaces.PhysicsWorld = (*stubPhysics)(nil)

func newStubPhysics() *stubPhysics {
	p := &stubPhysics{}
	p.Reset()
	return p
}

func (p *stubPhysics) Reset() {
	p.pos = map[types.EntityID]utils.Vec3{}
	p.vel = map[types.EntityID]utils.Vec3{}
	p.mass = map[types.EntityID]float64{}
	p.pinned = map[types.EntityID]bool{}
	p.impulses = map[types.EntityID][]utils.Vec3{}
}

func (p *stubPhysics) AddBody(id types.EntityID, pos utils.Vec3, radius, height, mass float64) {
	p.pos[id] = pos
	p.vel[id] = utils.Vec3{}
	p.mass[id] = mass
}

func (p *stubPhysics) RemoveBody(id types.EntityID) {
	delete(p.pos, id)
	delete(p.vel, id)
}

func (p *stubPhysics) Position(id types.EntityID) (utils.Vec3, bool) {
	v, ok := p.pos[id]
	return v, ok
}

func (p *stubPhysics) Velocity(id types.EntityID) (utils.Vec3, bool) {
	v, ok := p.vel[id]
	return v, ok
}

func (p *stubPhysics) SetVelocity(id types.EntityID, v utils.Vec3) {
	if _, ok := p.pos[id]; ok {
		p.vel[id] = v
	}
}

func (p *stubPhysics) SetPosition(id types.EntityID, pos utils.Vec3) {
	if _, ok := p.pos[id]; ok {
		p.pos[id] = pos
	}
}

func (p *stubPhysics) ApplyImpulse(id types.EntityID, impulse utils.Vec3) {
	p.impulses[id] = append(p.impulses[id], impulse)
}

func (p *stubPhysics) Step(dt time.Duration) {
	for id, v := range p.vel {
		if p.pinned[id] {
			continue
		}
		p.pos[id] = p.pos[id].Add(v.Scale(dt.Seconds()))
	}
}

func (p *stubPhysics) Raycast(origin, dir utils.Vec3, maxDist float64) []interfaces.RayHit {
	p.rays++
	return append([]interfaces.RayHit(nil), p.hits...)
}

// harness собирает системы симуляции над stubPhysics.
type harness struct {
	t       *testing.T
	cfg     *config.Config
	ecs     *entity.ECS
	phys    *stubPhysics
	events  *event.Dispatcher
	fx      *fx.Recorder
	rng     *utils.PRNGService
	sched   *Scheduler
	state   *StateSystem
	combat  *CombatSystem
	enemies *EnemyAISystem
	player  *PlayerSystem
	pickups *PickupSystem
	waves   *WaveSystem
	effects *VisualEffectSystem
	killed  []event.EnemyKilledData
}

func newHarness(t *testing.T, mutate ...func(cfg *config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}

	h := &harness{
		t:      t,
		cfg:    cfg,
		ecs:    entity.NewECS(),
		phys:   newStubPhysics(),
		events: event.NewDispatcher(),
		fx:     &fx.Recorder{},
		rng:    utils.NewPRNGService(7),
		sched:  NewScheduler(),
	}
	log := zerolog.Nop()
	h.state = NewStateSystem(h.ecs, h.events, log, nil)
	h.combat = NewCombatSystem(h.ecs, h.phys, h.fx, log, cfg.Sim.HitSparkDuration, cfg.Sim.SurfaceSparkDuration)
	h.enemies = NewEnemyAISystem(h.ecs, h.phys, h.fx, h.rng, log, cfg.Enemy, cfg.Sim.EnemyFlashDuration)
	h.player = NewPlayerSystem(h.ecs, h.phys, h.combat, h.state, h.sched, h.fx, h.rng, log, nil, cfg.Player, cfg.Sim.MuzzleFlashDuration)
	h.pickups = NewPickupSystem(h.ecs, h.phys, h.state, h.events, h.fx, log, cfg.Player.PickupRadius, cfg.Waves.HealAmount, cfg.Player.Height)

	curve, err := NewWaveCurve(cfg.Waves.CountExpr, cfg.Waves.BaseCount)
	require.NoError(t, err)
	h.waves = NewWaveSystem(h.ecs, h.enemies, h.pickups, h.state, h.sched, h.events, curve, cfg.Waves, h.rng, h.fx, log, nil)
	h.effects = NewVisualEffectSystem(h.ecs)

	h.events.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		h.killed = append(h.killed, e.Data.(event.EnemyKilledData))
	}))

	h.state.Begin("match-1", cfg.Player.MaxHealth)
	return h
}

// spawnPlayer ставит игрока и делает его целью врагов и аптечек.
func (h *harness) spawnPlayer(pos utils.Vec3) types.EntityID {
	h.cfg.Player.SpawnPosition = pos
	h.player.cfg.SpawnPosition = pos
	id := h.player.Spawn(defs.Rifle)
	h.enemies.SetPlayer(id)
	h.pickups.SetPlayer(id)
	return id
}

// step проводит тики общей длительностью d в том же порядке, что и игра.
func (h *harness) step(d time.Duration, in component.Input) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		if h.state.Phase() != component.PhasePlaying {
			return
		}
		h.ecs.GameTime += tick
		now := h.ecs.GameTime
		h.sched.Run(now)
		h.player.Update(now, tick, in)
		h.enemies.Update(now, tick)
		h.pickups.Update()
		h.effects.Update(now)
		h.phys.Step(tick)
		h.flush()
	}
}

func (h *harness) flush() {
	for _, id := range h.ecs.DrainDestroyed() {
		e, ok := h.ecs.Enemies[id]
		if !ok {
			continue
		}
		h.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Enemy: id, Wave: e.Wave}})
		h.enemies.Remove(id)
	}
}

func (h *harness) enemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(h.ecs.Enemies))
	for id := range h.ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
