// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в рамках матча.
// Ноль зарезервирован под "нет сущности" (статическая геометрия, пустой исключаемый стрелок).
type EntityID uint64

// NoEntity — пустой идентификатор.
const NoEntity EntityID = 0
