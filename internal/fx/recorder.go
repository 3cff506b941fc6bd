package fx

// Recorder запоминает события. Используется тестами и отладочным просмотрщиком.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Count — сколько событий данного вида записано.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset очищает запись.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
