package component

import "go-wave-shooter/internal/types"

// Wave — состояние текущей волны.
type Wave struct {
	Number    int
	Spawned   int
	Live      map[types.EntityID]struct{}
	Advancing bool // переход к следующей волне уже запланирован
}

// NewWave создаёт пустую волну с номером n.
func NewWave(n int) *Wave {
	return &Wave{Number: n, Live: make(map[types.EntityID]struct{})}
}
