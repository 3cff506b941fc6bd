// internal/system/wave.go
package system

import (
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/telemetry"
	"go-wave-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// WaveSystem — режиссёр волн: спавн врагов и аптечек, счёт за убийства, переход к следующей волне.
type WaveSystem struct {
	ecs             *entity.ECS
	enemies         *EnemyAISystem
	pickups         *PickupSystem
	match           *StateSystem
	scheduler       *Scheduler
	eventDispatcher *event.Dispatcher
	curve           *WaveCurve
	cfg             config.WaveConfig
	rng             *utils.PRNGService
	fx              fx.Sink
	log             zerolog.Logger
	metrics         *telemetry.Metrics
}

func NewWaveSystem(
	ecs *entity.ECS,
	enemies *EnemyAISystem,
	pickups *PickupSystem,
	match *StateSystem,
	scheduler *Scheduler,
	eventDispatcher *event.Dispatcher,
	curve *WaveCurve,
	cfg config.WaveConfig,
	rng *utils.PRNGService,
	sink fx.Sink,
	log zerolog.Logger,
	metrics *telemetry.Metrics,
) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		enemies:         enemies,
		pickups:         pickups,
		match:           match,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		curve:           curve,
		cfg:             cfg,
		rng:             rng,
		fx:              sink,
		log:             log,
		metrics:         metrics,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	return ws
}

// StartWave спавнит волну n целиком и заменяет аптечки.
func (s *WaveSystem) StartWave(n int) {
	count := s.curve.Count(n)
	wave := component.NewWave(n)
	s.ecs.Wave = wave
	s.match.SetWave(n)

	for _, pos := range s.SpawnPoints(count) {
		id := s.enemies.Spawn(pos, n)
		wave.Live[id] = struct{}{}
	}
	wave.Spawned = count

	if s.pickups != nil {
		s.pickups.Replace(n, s.pickupPositions())
	}

	s.log.Info().Int("wave", n).Int("enemies", count).Msg("wave started")
	s.metrics.WaveStarted(n)
	s.fx.Emit(fx.Event{Kind: fx.WaveStart})
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: n, Enemies: count}})
}

// SpawnPoints раздаёт count точек: по таблице (i mod len) или по кольцу вокруг центра,
// со случайным смещением и высотой сброса.
func (s *WaveSystem) SpawnPoints(count int) []utils.Vec3 {
	points := make([]utils.Vec3, 0, count)
	for i := 0; i < count; i++ {
		var base utils.Vec3
		switch defs.SpawnMode(s.cfg.SpawnMode) {
		case defs.SpawnRing:
			angle := float64(i)/float64(count)*2*math.Pi + s.rng.Jitter(0.3)
			r := s.rng.Range(s.cfg.RingMinRadius, s.cfg.RingMaxRadius)
			base = utils.V3(math.Cos(angle)*r, 0, math.Sin(angle)*r)
		default:
			base = defs.SpawnPoints[i%len(defs.SpawnPoints)]
		}
		points = append(points, utils.V3(
			base.X+s.rng.Jitter(s.cfg.SpawnJitter),
			s.cfg.DropHeight,
			base.Z+s.rng.Jitter(s.cfg.SpawnJitter),
		))
	}
	return points
}

func (s *WaveSystem) pickupPositions() []utils.Vec3 {
	count := s.cfg.PickupsMin + s.rng.Intn(s.cfg.PickupsMax-s.cfg.PickupsMin+1)
	positions := make([]utils.Vec3, 0, count)
	for i := 0; i < count; i++ {
		positions = append(positions, utils.V3(
			s.rng.Jitter(s.cfg.PickupArea),
			s.cfg.PickupHeight,
			s.rng.Jitter(s.cfg.PickupArea),
		))
	}
	return positions
}

// Live — число живых врагов текущей волны.
func (s *WaveSystem) Live() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return len(s.ecs.Wave.Live)
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if _, live := wave.Live[data.Enemy]; !live {
		return
	}
	delete(wave.Live, data.Enemy)
	s.match.AddScore(s.cfg.KillReward)
	s.metrics.EnemyKilled(wave.Number)

	if len(wave.Live) == 0 && !wave.Advancing {
		s.scheduleAdvance(wave)
	}
}

// scheduleAdvance планирует следующую волну (или победу) через Cooldown.
// Задача не сработает, если к тому моменту матч закончился или начался новый.
func (s *WaveSystem) scheduleAdvance(wave *component.Wave) {
	wave.Advancing = true
	n := wave.Number
	s.log.Info().Int("wave", n).Msg("wave cleared")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: n, Enemies: wave.Spawned}})

	matchID := s.match.MatchID()
	s.scheduler.Schedule(s.ecs.GameTime+s.cfg.Cooldown, func() {
		next := n + 1
		if next > s.cfg.MaxWaves {
			s.match.TriggerVictory()
			return
		}
		s.StartWave(next)
	}, func() bool {
		return s.match.Phase() == component.PhasePlaying && s.match.MatchID() == matchID
	})
}
