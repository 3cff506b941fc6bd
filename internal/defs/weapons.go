// internal/defs/weapons.go
package defs

import "time"

// WeaponKind — вариант оружия игрока. Набор закрыт: любой switch по нему обязан быть исчерпывающим.
type WeaponKind int

const (
	Rifle WeaponKind = iota
	Sniper
)

// WeaponStats — неизменяемые параметры оружия. Общие для всех игроков и выстрелов.
type WeaponStats struct {
	Name           string
	Damage         int
	FireInterval   time.Duration
	MagazineSize   int
	ReloadDuration time.Duration
	Spread         float64 // радиус случайного отклонения направления
	ZoomFOV        float64 // поле зрения при прицеливании, градусы
	Automatic      bool    // стреляет, пока зажат спуск
	Range          float64
}

var rifleStats = WeaponStats{
	Name:           "RIFLE",
	Damage:         25,
	FireInterval:   100 * time.Millisecond,
	MagazineSize:   30,
	ReloadDuration: 2000 * time.Millisecond,
	Spread:         0.05,
	ZoomFOV:        50,
	Automatic:      true,
	Range:          200,
}

var sniperStats = WeaponStats{
	Name:           "SNIPER",
	Damage:         100,
	FireInterval:   1000 * time.Millisecond,
	MagazineSize:   5,
	ReloadDuration: 3000 * time.Millisecond,
	Spread:         0.001,
	ZoomFOV:        20,
	Automatic:      false,
	Range:          400,
}

// Stats возвращает разделяемую таблицу параметров варианта.
func (k WeaponKind) Stats() *WeaponStats {
	switch k {
	case Rifle:
		return &rifleStats
	case Sniper:
		return &sniperStats
	}
	panic("defs: unknown weapon kind")
}

// Other — второе оружие в паре (переключение по клавише).
func (k WeaponKind) Other() WeaponKind {
	switch k {
	case Rifle:
		return Sniper
	case Sniper:
		return Rifle
	}
	panic("defs: unknown weapon kind")
}

func (k WeaponKind) String() string {
	return k.Stats().Name
}
