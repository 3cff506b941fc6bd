package component

// Pickup — аптечка. Consumed выставляется до удаления, повторное касание невозможно.
type Pickup struct {
	Heal     int
	Wave     int
	Consumed bool
}
