package system

import (
	"testing"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hold    = component.Input{Fire: true}
	release = component.Input{}
)

func TestPlayer_RifleAutoFireRespectsInterval(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})

	h.step(time.Second, hold)

	p := h.ecs.Players[id]
	assert.Equal(t, 10, h.fx.Count(fx.Shoot))
	assert.Equal(t, 20, p.Ammo)
	assert.Empty(t, h.ecs.Effects, "muzzle flashes expire")
}

func TestPlayer_SniperFiresOncePerPress(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]
	p.Weapon = defs.Sniper
	p.Ammo = p.Stats().MagazineSize

	h.step(3*time.Second, hold)
	assert.Equal(t, 1, h.fx.Count(fx.Shoot))

	h.step(tick, release)
	h.step(tick, hold)
	assert.Equal(t, 2, h.fx.Count(fx.Shoot))
	assert.Equal(t, 3, p.Ammo)
}

func TestPlayer_ReloadCompletesOnScheduleAndBlocksFire(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]

	h.step(tick, hold)
	h.step(tick, release)
	require.Equal(t, 29, p.Ammo)

	h.step(tick, component.Input{Reload: true})
	require.Equal(t, component.WeaponReloading, p.State)
	at, ok := h.player.PendingActionAt()
	require.True(t, ok)
	assert.Equal(t, 30*time.Millisecond+2*time.Second, at)

	// Стрельба во время перезарядки игнорируется
	h.step(time.Second, hold)
	assert.Equal(t, 1, h.fx.Count(fx.Shoot))
	assert.Equal(t, 29, p.Ammo)

	h.step(990*time.Millisecond, release)
	assert.Equal(t, component.WeaponReloading, p.State)

	h.step(tick, release)
	assert.Equal(t, component.WeaponReady, p.State)
	assert.Equal(t, 30, p.Ammo)
	_, ok = h.player.PendingActionAt()
	assert.False(t, ok)
}

func TestPlayer_ReloadWithFullMagazineIsIgnored(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})

	h.step(tick, component.Input{Reload: true})
	assert.Equal(t, component.WeaponReady, h.ecs.Players[id].State)
	assert.Zero(t, h.fx.Count(fx.Reload))
	assert.Zero(t, h.sched.Pending())
}

func TestPlayer_SwitchDuringReloadIsRejected(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]
	p.Ammo = 3

	h.step(tick, component.Input{Reload: true})
	h.step(tick, component.Input{Switch: true})

	assert.Equal(t, component.WeaponReloading, p.State)
	assert.Equal(t, defs.Rifle, p.Weapon)
	assert.Zero(t, h.fx.Count(fx.WeaponSwitch))
	assert.Equal(t, 1, h.sched.Pending())
}

func TestPlayer_SwitchRefillsNewWeapon(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]
	p.Ammo = 7

	h.step(tick, component.Input{Switch: true})
	assert.Equal(t, component.WeaponSwitching, p.State)

	h.step(490*time.Millisecond, release)
	assert.Equal(t, defs.Rifle, p.Weapon)

	h.step(tick, release)
	assert.Equal(t, defs.Sniper, p.Weapon)
	assert.Equal(t, 5, p.Ammo)
	assert.Equal(t, component.WeaponReady, p.State)
}

func TestPlayer_DryFireOnlyOnPress(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	h.ecs.Players[id].Ammo = 0

	h.step(500*time.Millisecond, hold)
	assert.Equal(t, 1, h.fx.Count(fx.DryFire))
	assert.Zero(t, h.fx.Count(fx.Shoot))

	h.step(tick, release)
	h.step(tick, hold)
	assert.Equal(t, 2, h.fx.Count(fx.DryFire))
}

func TestPlayer_StaleReloadAfterMatchEnds(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]
	p.Ammo = 1

	h.step(tick, component.Input{Reload: true})
	require.True(t, h.state.TriggerGameOver())

	assert.Zero(t, h.sched.Run(10*time.Second))
	assert.Equal(t, 1, p.Ammo)
	assert.Equal(t, component.WeaponReloading, p.State)
}

func TestPlayer_StaleReloadFromPreviousMatch(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]
	p.Ammo = 1

	h.step(tick, component.Input{Reload: true})
	h.state.Begin("match-2", 100)

	assert.Zero(t, h.sched.Run(10*time.Second))
	assert.Equal(t, 1, p.Ammo)
}

func TestPlayer_MovementSpeeds(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})

	h.step(tick, component.Input{Forward: true})
	vel, _ := h.phys.Velocity(id)
	assert.InDelta(t, 0, vel.X, 1e-9)
	assert.InDelta(t, -12, vel.Z, 1e-9)

	h.step(tick, component.Input{Forward: true, Sprint: true})
	vel, _ = h.phys.Velocity(id)
	assert.InDelta(t, -20, vel.Z, 1e-9)

	h.step(tick, component.Input{Forward: true, Right: true})
	vel, _ = h.phys.Velocity(id)
	assert.InDelta(t, 12, vel.Horizontal().Len(), 1e-9, "diagonal is not faster")

	h.step(tick, release)
	vel, _ = h.phys.Velocity(id)
	assert.Zero(t, vel.Horizontal().Len())
}

func TestPlayer_JumpOnlyWhenGrounded(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})

	h.step(tick, component.Input{Jump: true})
	vel, _ := h.phys.Velocity(id)
	assert.Equal(t, h.cfg.Player.JumpSpeed, vel.Y)

	h.phys.vel[id] = utils.V3(0, 5, 0)
	h.step(tick, component.Input{Jump: true})
	vel, _ = h.phys.Velocity(id)
	assert.Equal(t, 5.0, vel.Y)
}

func TestPlayer_FallingOffEndsMatchOnce(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.V3(0, -40, 0))
	var deaths int
	h.events.Subscribe(event.PlayerDied, event.ListenerFunc(func(event.Event) { deaths++ }))

	h.player.Update(tick, tick, release)
	h.player.Update(2*tick, tick, release)

	assert.Equal(t, 1, deaths)
	assert.True(t, h.ecs.Players[id].Fell)
	assert.Equal(t, component.PhaseGameOver, h.state.Phase())
}

func TestPlayer_AimingZoomsSmoothly(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]

	h.step(tick, component.Input{Aim: true})
	assert.Less(t, p.FOV, h.cfg.Player.BaseFOV)
	assert.Greater(t, p.FOV, defs.Rifle.Stats().ZoomFOV)

	h.step(time.Second, component.Input{Aim: true})
	assert.InDelta(t, defs.Rifle.Stats().ZoomFOV, p.FOV, 0.01)
	assert.InDelta(t, h.cfg.Player.AimCameraOffset.Z, p.CameraOffset.Z, 0.01)

	h.step(time.Second, release)
	assert.InDelta(t, h.cfg.Player.BaseFOV, p.FOV, 0.01)
}

func TestPlayer_RecoilKicksPitch(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]

	h.step(tick, hold)
	h.step(tick, release)
	assert.InDelta(t, h.cfg.Player.RecoilHip, p.Pitch, 1e-9)
}

func TestPlayer_AimedRecoilIsSmaller(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})
	p := h.ecs.Players[id]
	require.Less(t, h.cfg.Player.RecoilAim, h.cfg.Player.RecoilHip)

	aim := component.Input{Aim: true}
	h.step(tick, component.Input{Aim: true, Fire: true})
	h.step(tick, aim)
	assert.Equal(t, 1, h.fx.Count(fx.Shoot))
	assert.InDelta(t, h.cfg.Player.RecoilAim, p.Pitch, 1e-9)
}

func TestPlayer_TakesDamageThroughMatchState(t *testing.T) {
	h := newHarness(t)
	id := h.spawnPlayer(utils.Vec3{})

	target, ok := h.ecs.Damageable(id)
	require.True(t, ok)
	assert.True(t, target.Alive())

	target.ReceiveDamage(30)
	assert.Equal(t, 70, h.ecs.GameState.Health)

	target.ReceiveDamage(500)
	assert.Zero(t, h.ecs.GameState.Health, "clamped at zero")
	assert.False(t, target.Alive())
	assert.Equal(t, component.PhaseGameOver, h.state.Phase())
}
