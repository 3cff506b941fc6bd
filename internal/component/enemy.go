package component

import (
	"time"

	"go-wave-shooter/internal/utils"
)

// RangeBand — дистанционная зона врага относительно игрока.
type RangeBand int

const (
	BandFar RangeBand = iota
	BandMid
	BandNear
)

func (b RangeBand) String() string {
	switch b {
	case BandFar:
		return "far"
	case BandMid:
		return "mid"
	case BandNear:
		return "near"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	Wave      int
	SpawnedAt time.Duration
	ActiveAt  time.Duration // конец форы
	Dead      bool

	Yaw    float64 // ориентация на игрока
	Band   RangeBand
	Moving bool

	LastShot time.Duration

	// Анти-застревание
	SampleTimer  time.Duration
	LastSample   utils.Vec3
	StuckCounter int
	Jumps        int

	ShoutAt time.Duration
	Shouted bool

	FlashUntil time.Duration // подсветка попадания
}
