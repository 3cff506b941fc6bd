package system

import (
	"sort"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// PickupSystem — аптечки: касание игрока лечит и удаляет аптечку ровно один раз.
type PickupSystem struct {
	ecs             *entity.ECS
	physics         interfaces.Physics
	match           interfaces.MatchContext
	eventDispatcher *event.Dispatcher
	fx              fx.Sink
	log             zerolog.Logger
	radius          float64
	heal            int
	playerHeight    float64
	playerID        types.EntityID
}

func NewPickupSystem(ecs *entity.ECS, physics interfaces.Physics, match interfaces.MatchContext, eventDispatcher *event.Dispatcher, sink fx.Sink, log zerolog.Logger, radius float64, heal int, playerHeight float64) *PickupSystem {
	return &PickupSystem{
		ecs:             ecs,
		physics:         physics,
		match:           match,
		eventDispatcher: eventDispatcher,
		fx:              sink,
		log:             log,
		radius:          radius,
		heal:            heal,
		playerHeight:    playerHeight,
	}
}

func (s *PickupSystem) SetPlayer(id types.EntityID) {
	s.playerID = id
}

// Spawn кладёт аптечку в точку pos.
func (s *PickupSystem) Spawn(pos utils.Vec3, wave int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Vec3: pos}
	s.ecs.Pickups[id] = &component.Pickup{Heal: s.heal, Wave: wave}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PickupColor, Radius: 0.4, Height: 0.4}
	return id
}

// Replace убирает все аптечки и раскладывает новые.
func (s *PickupSystem) Replace(wave int, positions []utils.Vec3) {
	for id := range s.ecs.Pickups {
		s.ecs.Remove(id)
	}
	for _, pos := range positions {
		s.Spawn(pos, wave)
	}
}

// Update проверяет касание игрока с каждой аптечкой.
func (s *PickupSystem) Update() {
	pos, ok := s.physics.Position(s.playerID)
	if !ok || len(s.ecs.Pickups) == 0 {
		return
	}
	center := pos.Add(utils.V3(0, s.playerHeight/2, 0))

	ids := make([]types.EntityID, 0, len(s.ecs.Pickups))
	for id := range s.ecs.Pickups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		pickup := s.ecs.Pickups[id]
		at, ok := s.ecs.Positions[id]
		if !ok || pickup.Consumed {
			continue
		}
		if center.DistanceTo(at.Vec3) > s.radius {
			continue
		}
		s.consume(id, pickup, at.Vec3)
	}
}

func (s *PickupSystem) consume(id types.EntityID, pickup *component.Pickup, at utils.Vec3) {
	pickup.Consumed = true
	s.match.HealPlayer(pickup.Heal)
	s.fx.Emit(fx.Event{Kind: fx.Heal, Source: id, Position: at})
	s.log.Debug().Uint64("pickup", uint64(id)).Int("heal", pickup.Heal).Msg("pickup consumed")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PickupConsumed, Data: event.PickupData{Pickup: id, Healed: pickup.Heal}})
	s.ecs.Remove(id)
}
