package app

import (
	"image/color"
	"sort"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// EnemyView — то, что клиенту нужно знать о враге для отрисовки.
type EnemyView struct {
	ID        types.EntityID
	Position  utils.Vec3
	Yaw       float64
	Health    int
	MaxHealth int
	Band      component.RangeBand
	Flashing  bool
	Grace     bool
	Radius    float64
	Height    float64
}

type PickupView struct {
	ID       types.EntityID
	Position utils.Vec3
	Radius   float64
	Color    color.RGBA
}

type EffectView struct {
	Kind     component.EffectKind
	Position utils.Vec3
}

// Snapshot — неизменяемый срез состояния за тик для HUD, меню и отрисовки сцены.
type Snapshot struct {
	Phase     component.MatchPhase
	MatchID   string
	GameTime  time.Duration
	Health    int
	MaxHealth int
	Score     int
	Wave      int
	MaxWaves  int

	WeaponName string
	Ammo       int
	MaxAmmo    int
	Reloading  bool
	Switching  bool
	Aiming     bool

	PlayerPosition utils.Vec3
	PlayerYaw      float64
	PlayerRadius   float64
	PlayerHeight   float64
	Camera         component.Camera

	EnemiesAlive int
	Enemies      []EnemyView
	Pickups      []PickupView
	Effects      []EffectView
}

// Snapshot копирует состояние; срезы упорядочены по ID сущности.
func (g *Game) Snapshot() Snapshot {
	gs := g.ECS.GameState
	now := g.ECS.GameTime
	snap := Snapshot{
		Phase:        gs.Phase,
		MatchID:      gs.MatchID,
		GameTime:     now,
		Health:       gs.Health,
		MaxHealth:    gs.MaxHealth,
		Score:        gs.Score,
		Wave:         gs.Wave,
		MaxWaves:     g.Config.Waves.MaxWaves,
		EnemiesAlive: g.WaveSystem.Live(),
	}

	playerID := g.PlayerSystem.ID()
	if p, ok := g.ECS.Players[playerID]; ok {
		stats := p.Stats()
		snap.WeaponName = stats.Name
		snap.Ammo = p.Ammo
		snap.MaxAmmo = stats.MagazineSize
		snap.Reloading = p.State == component.WeaponReloading
		snap.Switching = p.State == component.WeaponSwitching
		snap.Aiming = p.Aiming
		snap.PlayerYaw = p.Yaw
		snap.Camera = p.Camera
		snap.PlayerPosition, _ = g.Physics.Position(playerID)
	}
	if b, ok := g.ECS.Bodies[playerID]; ok {
		snap.PlayerRadius, snap.PlayerHeight = b.Radius, b.Height
	}

	for _, id := range sortedIDs(g.ECS.Enemies) {
		e := g.ECS.Enemies[id]
		pos, _ := g.Physics.Position(id)
		view := EnemyView{
			ID:       id,
			Position: pos,
			Yaw:      e.Yaw,
			Band:     e.Band,
			Flashing: now < e.FlashUntil,
			Grace:    now < e.ActiveAt,
		}
		if h, ok := g.ECS.Healths[id]; ok {
			view.Health, view.MaxHealth = h.Value, h.Max
		}
		if b, ok := g.ECS.Bodies[id]; ok {
			view.Radius, view.Height = b.Radius, b.Height
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range sortedIDs(g.ECS.Pickups) {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		view := PickupView{ID: id, Position: pos.Vec3}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Radius, view.Color = float64(r.Radius), r.Color
		}
		snap.Pickups = append(snap.Pickups, view)
	}

	for _, id := range sortedIDs(g.ECS.Effects) {
		e := g.ECS.Effects[id]
		snap.Effects = append(snap.Effects, EffectView{Kind: e.Kind, Position: e.Position})
	}
	return snap
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
