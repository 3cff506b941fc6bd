// internal/app/game.go
package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/physics"
	"go-wave-shooter/internal/system"
	"go-wave-shooter/internal/telemetry"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Game holds the simulation state and the systems that drive it.
type Game struct {
	Config             *config.Config
	Level              defs.Level
	ECS                *entity.ECS
	Physics            interfaces.PhysicsWorld
	Scheduler          *system.Scheduler
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	StateSystem        *system.StateSystem
	CombatSystem       *system.CombatSystem
	EnemySystem        *system.EnemyAISystem
	PlayerSystem       *system.PlayerSystem
	PickupSystem       *system.PickupSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem

	log     zerolog.Logger
	fx      fx.Sink
	metrics *telemetry.Metrics
	matches int
	// alive — копия числа живых врагов для чтения из чужих горутин (датчик метрик).
	alive atomic.Int64
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithFX задаёт получатель звуковых и визуальных событий.
func WithFX(sink fx.Sink) Option {
	return func(g *Game) { g.fx = sink }
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *Game) { g.metrics = m }
}

// WithPhysics подменяет встроенный мир внешним движком.
func WithPhysics(p interfaces.PhysicsWorld) Option {
	return func(g *Game) { g.Physics = p }
}

// WithRNG фиксирует генератор (тесты, повторяемые прогоны).
func WithRNG(rng *utils.PRNGService) Option {
	return func(g *Game) { g.Rng = rng }
}

// NewGame initializes a new game instance. Матч не начинается до StartMatch.
func NewGame(cfg *config.Config, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Game{
		Config:          cfg,
		ECS:             entity.NewECS(),
		Scheduler:       system.NewScheduler(),
		EventDispatcher: event.NewDispatcher(),
		log:             zerolog.Nop(),
		fx:              fx.Nop,
	}
	for _, opt := range opts {
		opt(g)
	}

	level := defs.DefaultLevel()
	if cfg.Physics.LevelFile != "" {
		loaded, err := defs.LoadLevel(cfg.Physics.LevelFile)
		if err != nil {
			return nil, fmt.Errorf("load level: %w", err)
		}
		level = loaded
	}
	g.Level = level
	if g.Physics == nil {
		g.Physics = physics.NewWorld(level, cfg.Physics.Gravity, cfg.Physics.LinearDamping)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(cfg.Seed)
	}

	curve, err := system.NewWaveCurve(cfg.Waves.CountExpr, cfg.Waves.BaseCount)
	if err != nil {
		return nil, fmt.Errorf("wave curve: %w", err)
	}
	if err := curve.Validate(cfg.Waves.MaxWaves); err != nil {
		return nil, fmt.Errorf("wave curve: %w", err)
	}

	sink := fx.Safe(g.fx, g.log)
	g.fx = sink
	ecs := g.ECS
	g.StateSystem = system.NewStateSystem(ecs, g.EventDispatcher, g.log, g.metrics)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Physics, sink, g.log, cfg.Sim.HitSparkDuration, cfg.Sim.SurfaceSparkDuration)
	g.EnemySystem = system.NewEnemyAISystem(ecs, g.Physics, sink, g.Rng, g.log, cfg.Enemy, cfg.Sim.EnemyFlashDuration)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.Physics, g.CombatSystem, g.StateSystem, g.Scheduler, sink, g.Rng, g.log, g.metrics, cfg.Player, cfg.Sim.MuzzleFlashDuration)
	g.PickupSystem = system.NewPickupSystem(ecs, g.Physics, g.StateSystem, g.EventDispatcher, sink, g.log, cfg.Player.PickupRadius, cfg.Waves.HealAmount, cfg.Player.Height)
	g.WaveSystem = system.NewWaveSystem(ecs, g.EnemySystem, g.PickupSystem, g.StateSystem, g.Scheduler, g.EventDispatcher, curve, cfg.Waves, g.Rng, sink, g.log, g.metrics)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.MatchPhaseChanged, listener)
	g.EventDispatcher.Subscribe(event.WaveCleared, listener)

	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.MatchPhaseChanged:
		data, ok := e.Data.(event.PhaseChangeData)
		if !ok {
			return
		}
		// Конец матча снимает все отложенные действия.
		if data.To.Ended() {
			l.game.Scheduler.Clear()
		}
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.log.Debug().Int("wave", data.Wave).Dur("cooldown", l.game.Config.Waves.Cooldown).Msg("next wave scheduled")
		}
	}
}

// Update progresses the simulation by one frame. Время идёт только в фазе Playing.
func (g *Game) Update(dt time.Duration, in component.Input) {
	if dt > g.Config.Sim.MaxDelta {
		dt = g.Config.Sim.MaxDelta
	}
	if dt <= 0 || g.StateSystem.Phase() != component.PhasePlaying {
		return
	}

	g.ECS.GameTime += dt
	now := g.ECS.GameTime

	g.Scheduler.Run(now)
	g.publishAlive()
	if g.StateSystem.Phase() != component.PhasePlaying {
		return
	}

	g.PlayerSystem.Update(now, dt, in)
	g.EnemySystem.Update(now, dt)
	g.PickupSystem.Update()
	g.VisualEffectSystem.Update(now)
	g.Physics.Step(dt)
	g.cleanupDestroyedEntities()
	g.publishAlive()
}

func (g *Game) publishAlive() {
	g.alive.Store(int64(g.WaveSystem.Live()))
}

// cleanupDestroyedEntities рассылает EnemyKilled и удаляет сущности, помеченные за тик.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range g.ECS.DrainDestroyed() {
		enemy, ok := g.ECS.Enemies[id]
		if !ok {
			g.ECS.Remove(id)
			continue
		}
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{Enemy: id, Wave: enemy.Wave},
		})
		g.EnemySystem.Remove(id)
	}
}

// startMatch сбрасывает мир и начинает первую волну с новым идентификатором матча.
func (g *Game) startMatch() {
	cfg := g.Config
	weapon, err := config.ParseWeapon(cfg.Player.StartingWeapon)
	if err != nil {
		g.log.Warn().Err(err).Msg("falling back to rifle")
		weapon = defs.Rifle
	}

	g.Scheduler.Clear()
	g.ECS.Reset()
	g.Physics.Reset()
	g.EnemySystem.Reset()
	g.PlayerSystem.Reset()
	g.matches++

	matchID := uuid.NewString()
	g.StateSystem.Begin(matchID, cfg.Player.MaxHealth)

	playerID := g.PlayerSystem.Spawn(weapon)
	g.EnemySystem.SetPlayer(playerID)
	g.PickupSystem.SetPlayer(playerID)

	g.log.Info().Str("match", matchID).Str("profile", g.EnemySystem.Profile().Name).Stringer("weapon", weapon).Msg("match started")
	g.WaveSystem.StartWave(1)
	g.publishAlive()
}

// Phase — текущая фаза матча.
func (g *Game) Phase() component.MatchPhase {
	return g.StateSystem.Phase()
}

// PlayerID — сущность игрока текущего матча.
func (g *Game) PlayerID() types.EntityID {
	return g.PlayerSystem.ID()
}

// EnemiesAlive — живые враги на конец последнего тика. Безопасно вызывать из любой горутины.
func (g *Game) EnemiesAlive() int {
	return int(g.alive.Load())
}

// Matches — сколько матчей начато с момента запуска.
func (g *Game) Matches() int {
	return g.matches
}

// GetGameTime возвращает время симуляции текущего матча.
func (g *Game) GetGameTime() time.Duration {
	return g.ECS.GameTime
}
