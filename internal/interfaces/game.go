package interfaces

// Damageable — всё, что может получить урон от выстрела.
// Регистрируется в ECS по EntityID; боевая система не знает конкретных типов.
type Damageable interface {
	ReceiveDamage(amount int)
	Alive() bool
}
