// internal/system/enemy_ai.go
package system

import (
	"math"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	bt "github.com/joeycumines/go-behaviortree"
	"github.com/rs/zerolog"
)

const (
	enemyRadius = 0.5
	enemyHeight = 2.0
)

// Accuracy — вероятность попадания врага с дистанции d.
// Не возрастает с расстоянием и всегда лежит в [AccuracyFloor, AccuracyCeiling].
func Accuracy(p defs.EnemyProfile, d float64) float64 {
	acc := p.AccuracyBase
	if p.AccuracyFalloff > 0 {
		acc -= math.Max(d, 0) / p.AccuracyFalloff
	}
	return utils.Clamp(acc, p.AccuracyFloor, p.AccuracyCeiling)
}

// FireInterval — пауза между выстрелами врага с дистанции d.
func FireInterval(p defs.EnemyProfile, d float64) time.Duration {
	interval := p.MinFireInterval
	if p.FireIntervalDivisor > 0 {
		byDistance := time.Duration(d / p.FireIntervalDivisor * float64(time.Second))
		if byDistance > interval {
			interval = byDistance
		}
	}
	return interval
}

// Band — дистанционная зона для расстояния d.
func Band(p defs.EnemyProfile, d float64) component.RangeBand {
	switch {
	case d > p.FarRange:
		return component.BandFar
	case d >= p.NearRange:
		return component.BandMid
	default:
		return component.BandNear
	}
}

// brain — наблюдения врага за текущий тик и его дерево поведения.
type brain struct {
	id     types.EntityID
	tree   bt.Node
	pos    utils.Vec3
	target utils.Vec3
	dist   float64
	now    time.Duration
	dt     time.Duration
}

// enemyTarget связывает врага с реестром получателей урона.
type enemyTarget struct {
	sys *EnemyAISystem
	id  types.EntityID
}

func (t enemyTarget) ReceiveDamage(amount int) { t.sys.ReceiveDamage(t.id, amount) }

func (t enemyTarget) Alive() bool {
	e, ok := t.sys.ecs.Enemies[t.id]
	return ok && !e.Dead
}

// EnemyAISystem ведёт всех врагов: фора, дистанционные зоны, анти-застревание, стрельба.
type EnemyAISystem struct {
	ecs      *entity.ECS
	physics  interfaces.PhysicsWorld
	fx       fx.Sink
	rng      *utils.PRNGService
	log      zerolog.Logger
	profile  defs.EnemyProfile
	flash    time.Duration
	playerID types.EntityID
	brains   map[types.EntityID]*brain
	order    []types.EntityID
}

func NewEnemyAISystem(ecs *entity.ECS, physics interfaces.PhysicsWorld, sink fx.Sink, rng *utils.PRNGService, log zerolog.Logger, profile defs.EnemyProfile, flash time.Duration) *EnemyAISystem {
	return &EnemyAISystem{
		ecs:     ecs,
		physics: physics,
		fx:      sink,
		rng:     rng,
		log:     log,
		profile: profile,
		flash:   flash,
		brains:  make(map[types.EntityID]*brain),
	}
}

// SetPlayer задаёт цель.
func (s *EnemyAISystem) SetPlayer(id types.EntityID) {
	s.playerID = id
}

// Profile — текущий профиль поведения.
func (s *EnemyAISystem) Profile() defs.EnemyProfile {
	return s.profile
}

// Spawn создаёт врага волны wave в позиции pos.
func (s *EnemyAISystem) Spawn(pos utils.Vec3, wave int) types.EntityID {
	now := s.ecs.GameTime
	id := s.ecs.NewEntity()
	p := s.profile

	s.physics.AddBody(id, pos, enemyRadius, enemyHeight, p.Mass)
	s.ecs.Bodies[id] = &component.Body{Radius: enemyRadius, Height: enemyHeight, Mass: p.Mass}
	s.ecs.Healths[id] = &component.Health{Value: p.MaxHealth, Max: p.MaxHealth}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyColor, Radius: enemyRadius, Height: enemyHeight}
	s.ecs.Enemies[id] = &component.Enemy{
		Wave:       wave,
		SpawnedAt:  now,
		ActiveAt:   now + p.GracePeriod,
		LastShot:   now + p.GracePeriod,
		LastSample: pos,
		ShoutAt:    now + s.rng.Duration(p.SpawnShoutDelayMin, p.SpawnShoutDelayMax),
	}
	s.ecs.RegisterDamageable(id, enemyTarget{sys: s, id: id})

	b := &brain{id: id, pos: pos}
	b.tree = s.buildTree(b)
	s.brains[id] = b
	s.order = append(s.order, id)
	return id
}

// buildTree: либо фора (только разворот к игроку), либо полный цикл поведения.
func (s *EnemyAISystem) buildTree(b *brain) bt.Node {
	return bt.New(
		bt.Selector,
		bt.New(bt.Sequence, s.leaf(func() bool { return s.inGrace(b) }), s.leaf(func() bool { return s.face(b) })),
		bt.New(bt.Sequence,
			s.leaf(func() bool { return s.face(b) }),
			s.leaf(func() bool { return s.locomote(b) }),
			s.leaf(func() bool { return s.fireControl(b) }),
		),
	)
}

func (s *EnemyAISystem) leaf(fn func() bool) bt.Node {
	return bt.New(func(children []bt.Node) (bt.Status, error) {
		if fn() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

// Update проводит один тик для всех живых врагов в порядке появления.
func (s *EnemyAISystem) Update(now, dt time.Duration) {
	target, ok := s.physics.Position(s.playerID)
	if !ok {
		return
	}
	for _, id := range s.order {
		e, ok := s.ecs.Enemies[id]
		if !ok || e.Dead {
			continue
		}
		b := s.brains[id]
		pos, ok := s.physics.Position(id)
		if !ok {
			continue
		}
		b.pos, b.target, b.now, b.dt = pos, target, now, dt
		b.dist = pos.DistanceTo(target)

		s.maybeShout(id, e, now)
		if _, err := b.tree.Tick(); err != nil {
			s.log.Warn().Err(err).Uint64("enemy", uint64(id)).Msg("enemy tree failed")
		}
	}
}

func (s *EnemyAISystem) maybeShout(id types.EntityID, e *component.Enemy, now time.Duration) {
	if e.Shouted || now < e.ShoutAt {
		return
	}
	e.Shouted = true
	s.fx.Emit(fx.Event{Kind: fx.EnemyVocalize, Source: id, Position: s.posOf(id), Phrase: s.rng.Choose(defs.SpawnPhrases)})
}

func (s *EnemyAISystem) inGrace(b *brain) bool {
	return b.now < s.ecs.Enemies[b.id].ActiveAt
}

// face разворачивает врага к игроку; в фору это единственное действие, тело не двигается.
func (s *EnemyAISystem) face(b *brain) bool {
	e := s.ecs.Enemies[b.id]
	d := b.target.Sub(b.pos)
	e.Yaw = math.Atan2(d.X, d.Z)
	if b.now < e.ActiveAt {
		if vel, ok := s.physics.Velocity(b.id); ok {
			s.physics.SetVelocity(b.id, utils.V3(0, vel.Y, 0))
		}
	}
	return true
}

// locomote выбирает движение по зоне, перевычисляемой каждый тик.
func (s *EnemyAISystem) locomote(b *brain) bool {
	e := s.ecs.Enemies[b.id]
	p := s.profile
	e.Band = Band(p, b.dist)

	chase := e.Band == component.BandMid || (e.Band == component.BandFar && p.FarBehavior == defs.FarChase)
	vel, _ := s.physics.Velocity(b.id)
	if !chase {
		e.Moving = false
		e.SampleTimer = 0
		e.StuckCounter = 0
		e.LastSample = b.pos
		s.physics.SetVelocity(b.id, utils.V3(0, vel.Y, 0))
		return true
	}

	e.Moving = true
	dir := b.target.Sub(b.pos).Horizontal().Normalize()
	if s.unstick(b, e, dir) {
		return true
	}
	s.physics.SetVelocity(b.id, utils.V3(dir.X*p.ChaseSpeed, vel.Y, dir.Z*p.ChaseSpeed))
	return true
}

// unstick раз в StuckSampleInterval сравнивает пройденный путь с порогом; после StuckSamples
// подряд неудачных замеров даёт один импульс прыжка и сбрасывает счётчик.
func (s *EnemyAISystem) unstick(b *brain, e *component.Enemy, dir utils.Vec3) bool {
	p := s.profile
	e.SampleTimer += b.dt
	if e.SampleTimer < p.StuckSampleInterval {
		return false
	}
	e.SampleTimer -= p.StuckSampleInterval

	moved := b.pos.HorizontalDistanceTo(e.LastSample)
	e.LastSample = b.pos
	if moved >= p.StuckThreshold {
		e.StuckCounter = 0
		return false
	}
	e.StuckCounter++
	if e.StuckCounter < p.StuckSamples {
		return false
	}

	e.StuckCounter = 0
	e.Jumps++
	impulse := utils.V3(dir.X*p.UnstuckForwardSpeed, p.UnstuckUpSpeed, dir.Z*p.UnstuckForwardSpeed).Scale(p.Mass)
	s.physics.ApplyImpulse(b.id, impulse)
	s.log.Debug().Uint64("enemy", uint64(b.id)).Msg("enemy stuck, jumping")
	return true
}

// fireControl: стрельба только в пределах EngageRange, не чаще FireInterval.
func (s *EnemyAISystem) fireControl(b *brain) bool {
	e := s.ecs.Enemies[b.id]
	p := s.profile
	if b.dist >= p.EngageRange {
		return true
	}
	if b.now-e.LastShot < FireInterval(p, b.dist) {
		return true
	}
	e.LastShot = b.now

	s.fx.Emit(fx.Event{Kind: fx.EnemyShoot, Source: b.id, Position: b.pos})
	if s.rng.Float64() < Accuracy(p, b.dist) {
		damage := p.Damage
		if p.DamageJitter > 0 {
			damage += s.rng.Intn(2*p.DamageJitter+1) - p.DamageJitter
		}
		if damage < 1 {
			damage = 1
		}
		if target, ok := s.ecs.Damageable(s.playerID); ok && target.Alive() {
			target.ReceiveDamage(damage)
		}
	}
	return true
}

// ReceiveDamage — попадание во врага: здоровье не уходит ниже нуля, отброс и возможный вскрик
// на каждое попадание; смерть отмечается один раз, удаление откладывается до конца тика.
func (s *EnemyAISystem) ReceiveDamage(id types.EntityID, amount int) {
	e, ok := s.ecs.Enemies[id]
	if !ok || e.Dead || amount <= 0 {
		return
	}
	h := s.ecs.Healths[id]
	h.Value = utils.ClampInt(h.Value-amount, 0, h.Max)
	e.FlashUntil = s.ecs.GameTime + s.flash

	s.physics.ApplyImpulse(id, s.profile.KnockbackImpulse)
	if s.rng.Chance(s.profile.VocalizeChance) {
		s.fx.Emit(fx.Event{Kind: fx.EnemyVocalize, Source: id, Position: s.posOf(id), Phrase: defs.PainPhrase})
	}

	if h.Value > 0 {
		return
	}
	e.Dead = true
	s.fx.Emit(fx.Event{Kind: fx.EnemyDeath, Source: id, Position: s.posOf(id), Phrase: s.rng.Choose(defs.DeathPhrases)})
	s.ecs.QueueDestroy(id)
	s.log.Debug().Uint64("enemy", uint64(id)).Int("wave", e.Wave).Msg("enemy died")
}

// Remove удаляет врага из мира и забывает его мозг. Вызывается при сбросе очереди удаления.
func (s *EnemyAISystem) Remove(id types.EntityID) {
	if _, ok := s.brains[id]; !ok {
		return
	}
	s.physics.RemoveBody(id)
	s.ecs.Remove(id)
	delete(s.brains, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Reset забывает всех врагов (новый матч).
func (s *EnemyAISystem) Reset() {
	s.brains = make(map[types.EntityID]*brain)
	s.order = nil
	s.playerID = types.NoEntity
}

func (s *EnemyAISystem) posOf(id types.EntityID) utils.Vec3 {
	pos, _ := s.physics.Position(id)
	return pos
}
