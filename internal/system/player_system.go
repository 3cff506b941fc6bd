// internal/system/player_system.go
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
	"go-wave-shooter/internal/telemetry"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// PlayerSystem — контроллер игрока: движение, камера и оружейный автомат состояний.
type PlayerSystem struct {
	ecs         *entity.ECS
	physics     interfaces.PhysicsWorld
	combat      *CombatSystem
	match       interfaces.MatchContext
	scheduler   *Scheduler
	fx          fx.Sink
	rng         *utils.PRNGService
	log         zerolog.Logger
	metrics     *telemetry.Metrics
	cfg         config.PlayerConfig
	muzzleFlash time.Duration

	id      types.EntityID
	prev    component.Input
	pending TaskID // отложенная перезарядка или смена оружия
}

func NewPlayerSystem(
	ecs *entity.ECS,
	physics interfaces.PhysicsWorld,
	combat *CombatSystem,
	match interfaces.MatchContext,
	scheduler *Scheduler,
	sink fx.Sink,
	rng *utils.PRNGService,
	log zerolog.Logger,
	metrics *telemetry.Metrics,
	cfg config.PlayerConfig,
	muzzleFlash time.Duration,
) *PlayerSystem {
	return &PlayerSystem{
		ecs:         ecs,
		physics:     physics,
		combat:      combat,
		match:       match,
		scheduler:   scheduler,
		fx:          sink,
		rng:         rng,
		log:         log,
		metrics:     metrics,
		cfg:         cfg,
		muzzleFlash: muzzleFlash,
	}
}

// Spawn создаёт игрока с полным магазином стартового оружия.
func (s *PlayerSystem) Spawn(weapon defs.WeaponKind) types.EntityID {
	id := s.ecs.NewEntity()
	c := s.cfg
	s.physics.AddBody(id, c.SpawnPosition, c.Radius, c.Height, 1)
	s.ecs.Bodies[id] = &component.Body{Radius: c.Radius, Height: c.Height, Mass: 1}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: float32(c.Radius), Height: float32(c.Height)}

	p := &component.Player{
		Weapon:       weapon,
		Ammo:         weapon.Stats().MagazineSize,
		State:        component.WeaponReady,
		FOV:          c.BaseFOV,
		CameraOffset: c.CameraOffset,
	}
	s.ecs.Players[id] = p
	s.ecs.RegisterDamageable(id, playerTarget{sys: s})
	s.id = id
	s.prev = component.Input{}
	s.pending = 0
	s.updateCamera(p, c.SpawnPosition, 0)
	return id
}

// playerTarget — получатель урона для игрока. Здоровье живёт в состоянии матча,
// поэтому урон уходит в MatchContext.ApplyPlayerDamage.
type playerTarget struct {
	sys *PlayerSystem
}

func (t playerTarget) ReceiveDamage(amount int) { t.sys.match.ApplyPlayerDamage(amount) }

func (t playerTarget) Alive() bool { return t.sys.ecs.GameState.Health > 0 }

// ID — сущность игрока текущего матча.
func (s *PlayerSystem) ID() types.EntityID {
	return s.id
}

// PendingActionAt — момент завершения текущей перезарядки или смены оружия.
func (s *PlayerSystem) PendingActionAt() (time.Duration, bool) {
	if s.pending == 0 {
		return 0, false
	}
	return s.scheduler.FireAt(s.pending)
}

// Update проводит один тик игрока.
func (s *PlayerSystem) Update(now, dt time.Duration, in component.Input) {
	p, ok := s.ecs.Players[s.id]
	if !ok {
		return
	}
	pos, ok := s.physics.Position(s.id)
	if !ok {
		return
	}
	sec := dt.Seconds()

	s.look(p, in)
	p.Aiming = in.Aim
	s.updateCamera(p, pos, sec)
	s.move(p, pos, in)
	s.updateWeapon(now, p, in)

	s.prev = in
}

func (s *PlayerSystem) look(p *component.Player, in component.Input) {
	c := s.cfg
	p.Yaw = utils.NormalizeAngle(p.Yaw - in.LookDX*c.LookSensitivity)
	p.Pitch = utils.Clamp(p.Pitch-in.LookDY*c.LookSensitivity+p.Recoil, -c.PitchLimit, c.PitchLimit)
	p.Recoil = 0
}

func axis(positive, negative bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

// move: планарное движение относительно взгляда, прыжок с земли, плоскость смерти.
func (s *PlayerSystem) move(p *component.Player, pos utils.Vec3, in component.Input) {
	c := s.cfg
	vel, _ := s.physics.Velocity(s.id)

	speed := c.WalkSpeed
	if in.Sprint {
		speed = c.RunSpeed
	}
	local := utils.V3(axis(in.Right, in.Left), 0, axis(in.Backward, in.Forward)).Normalize()
	world := local.RotateY(p.Yaw).Scale(speed)

	// "На земле" приближённо: вертикальная скорость почти нулевая. На вершине прыжка
	// это тоже верно, поэтому двойной прыжок возможен.
	vy := vel.Y
	if in.Jump && math.Abs(vel.Y) < c.GroundedEpsilon {
		vy = c.JumpSpeed
	}
	s.physics.SetVelocity(s.id, utils.V3(world.X, vy, world.Z))

	if pos.Y < c.DeathPlaneY && !p.Fell {
		p.Fell = true
		s.log.Info().Float64("y", pos.Y).Msg("player fell off the map")
		s.match.TriggerGameOver()
	}
}

func (s *PlayerSystem) updateWeapon(now time.Duration, p *component.Player, in component.Input) {
	stats := p.Stats()
	if p.State == component.WeaponCooldown && now-p.LastFired >= stats.FireInterval {
		p.State = component.WeaponReady
	}

	if in.Switch && !s.prev.Switch {
		s.beginSwitch(now, p)
	}
	if in.Reload && !s.prev.Reload {
		s.beginReload(now, p)
	}

	pressed := in.Fire && !s.prev.Fire
	stats = p.Stats()
	if !pressed && !(in.Fire && stats.Automatic) {
		return
	}
	if p.State == component.WeaponReloading || p.State == component.WeaponSwitching {
		return
	}
	if p.Ammo <= 0 {
		if pressed {
			s.fx.Emit(fx.Event{Kind: fx.DryFire, Source: s.id, Position: p.Camera.Position})
		}
		return
	}
	if p.HasFired && now-p.LastFired < stats.FireInterval {
		return
	}
	s.fire(now, p)
}

func (s *PlayerSystem) fire(now time.Duration, p *component.Player) {
	stats := p.Stats()
	spread := stats.Spread
	recoil := s.cfg.RecoilHip
	if p.Aiming {
		spread *= s.cfg.AimSpreadFactor
		recoil = s.cfg.RecoilAim
	}

	origin := p.Camera.Position
	dir := ApplySpread(p.Camera.Forward, spread, s.rng)

	p.Ammo--
	p.LastFired = now
	p.HasFired = true
	p.State = component.WeaponCooldown
	p.Recoil += recoil

	s.fx.Emit(fx.Event{Kind: fx.Shoot, Source: s.id, Position: origin})
	s.combat.SpawnEffect(component.EffectMuzzleFlash, origin.Add(dir.Scale(0.8)), s.muzzleFlash)
	s.metrics.ShotFired(stats.Name)

	hit, ok := s.combat.Fire(origin, dir, stats, s.id)
	if ok {
		s.log.Debug().Str("weapon", stats.Name).Uint64("target", uint64(hit.Entity)).Bool("damaged", hit.Damaged).Int("ammo", p.Ammo).Msg("shot")
	}
}

// actionGuard: отложенное действие выполняется, только если матч идёт, игрок тот же
// и с момента постановки не началось другое действие.
func (s *PlayerSystem) actionGuard(id types.EntityID, matchID string, token uint64) func() bool {
	return func() bool {
		p, ok := s.ecs.Players[id]
		return ok && p.ActionToken == token &&
			s.match.Phase() == component.PhasePlaying && s.match.MatchID() == matchID
	}
}

// beginReload разрешён из Ready и FiringCooldown при неполном магазине.
func (s *PlayerSystem) beginReload(now time.Duration, p *component.Player) {
	if p.State != component.WeaponReady && p.State != component.WeaponCooldown {
		return
	}
	stats := p.Stats()
	if p.Ammo >= stats.MagazineSize {
		return
	}

	p.State = component.WeaponReloading
	p.ActionToken++
	s.fx.Emit(fx.Event{Kind: fx.Reload, Source: s.id, Position: p.Camera.Position})

	id := s.id
	s.pending = s.scheduler.Schedule(now+stats.ReloadDuration, func() {
		p := s.ecs.Players[id]
		p.Ammo = p.Stats().MagazineSize
		p.State = component.WeaponReady
		s.pending = 0
	}, s.actionGuard(id, s.match.MatchID(), p.ActionToken))
}

// beginSwitch отклоняется во время перезарядки и уже идущей смены.
func (s *PlayerSystem) beginSwitch(now time.Duration, p *component.Player) {
	if p.State == component.WeaponReloading || p.State == component.WeaponSwitching {
		return
	}

	p.State = component.WeaponSwitching
	p.ActionToken++
	s.fx.Emit(fx.Event{Kind: fx.WeaponSwitch, Source: s.id, Position: p.Camera.Position})

	id := s.id
	s.pending = s.scheduler.Schedule(now+s.cfg.SwitchDuration, func() {
		p := s.ecs.Players[id]
		p.Weapon = p.Weapon.Other()
		p.Ammo = p.Stats().MagazineSize
		p.State = component.WeaponReady
		p.HasFired = false
		s.pending = 0
		s.log.Debug().Stringer("weapon", p.Weapon).Msg("weapon switched")
	}, s.actionGuard(id, s.match.MatchID(), p.ActionToken))
}

// updateCamera сглаживает FOV и смещение штанги камеры и вычисляет позу камеры.
func (s *PlayerSystem) updateCamera(p *component.Player, pos utils.Vec3, sec float64) {
	c := s.cfg
	targetFOV := c.BaseFOV
	targetOffset := c.CameraOffset
	if p.Aiming {
		targetFOV = p.Stats().ZoomFOV
		targetOffset = c.AimCameraOffset
	}
	p.FOV = utils.Lerp(p.FOV, targetFOV, utils.SmoothFactor(c.FOVLerpRate, sec))
	p.CameraOffset = p.CameraOffset.Lerp(targetOffset, utils.SmoothFactor(c.CameraLerpRate, sec))

	forward := utils.ForwardFromAngles(p.Yaw, p.Pitch)
	p.Camera.Forward = forward
	p.Camera.FOV = p.FOV

	if component.CameraMode(c.CameraMode) == component.CameraFirstPerson {
		p.Camera.Position = pos.Add(utils.V3(0, c.EyeHeight, 0))
		return
	}
	pivot := pos.Add(utils.V3(0, c.PivotHeight, 0))
	right := utils.V3(1, 0, 0).RotateY(p.Yaw)
	p.Camera.Position = pivot.
		Add(right.Scale(p.CameraOffset.X)).
		Add(utils.V3(0, p.CameraOffset.Y, 0)).
		Sub(forward.Scale(p.CameraOffset.Z))
}

// Reset забывает игрока прошлого матча.
func (s *PlayerSystem) Reset() {
	s.id = types.NoEntity
	s.prev = component.Input{}
	s.pending = 0
}
