package component

// Health — компонент здоровья. Value никогда не опускается ниже нуля.
type Health struct {
	Value int
	Max   int
}

// Alive — true, пока здоровье положительно.
func (h *Health) Alive() bool {
	return h != nil && h.Value > 0
}
