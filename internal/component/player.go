// internal/component/player.go
package component

import (
	"time"

	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/utils"
)

// WeaponState — состояние оружия игрока.
type WeaponState int

const (
	WeaponReady WeaponState = iota
	WeaponCooldown
	WeaponReloading
	WeaponSwitching
)

func (s WeaponState) String() string {
	switch s {
	case WeaponReady:
		return "ready"
	case WeaponCooldown:
		return "cooldown"
	case WeaponReloading:
		return "reloading"
	case WeaponSwitching:
		return "switching"
	}
	return "unknown"
}

// CameraMode — вид от первого или третьего лица.
type CameraMode string

const (
	CameraFirstPerson CameraMode = "first"
	CameraThirdPerson CameraMode = "third"
)

// Camera — поза камеры, вычисленная контроллером игрока за тик.
type Camera struct {
	Position utils.Vec3
	Forward  utils.Vec3
	FOV      float64
}

// Player хранит оружейное состояние и риг камеры игрока.
type Player struct {
	Weapon      defs.WeaponKind
	Ammo        int
	State       WeaponState
	LastFired   time.Duration
	HasFired    bool
	Aiming      bool
	ActionToken uint64 // смена токена гасит отложенные перезарядку/смену

	Yaw, Pitch   float64
	Recoil       float64 // накопленный импульс отдачи, применяется к pitch на следующем тике
	FOV          float64
	CameraOffset utils.Vec3
	Camera       Camera

	Fell bool
}

// Stats — параметры текущего оружия.
func (p *Player) Stats() *defs.WeaponStats {
	return p.Weapon.Stats()
}
