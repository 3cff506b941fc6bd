package fx

import "github.com/rs/zerolog"

type safeSink struct {
	inner Sink
	log   zerolog.Logger
}

// Safe оборачивает sink: паника внутри Emit логируется и не доходит до симуляции.
func Safe(inner Sink, log zerolog.Logger) Sink {
	if inner == nil {
		return Nop
	}
	return &safeSink{inner: inner, log: log}
}

func (s *safeSink) Emit(e Event) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn().Interface("panic", r).Str("kind", e.Kind.String()).Msg("fx sink failed")
		}
	}()
	s.inner.Emit(e)
}

// LogSink пишет события в лог на уровне debug; реплики — на info, их больше некому озвучить.
type LogSink struct {
	Log zerolog.Logger
}

func (s LogSink) Emit(e Event) {
	if e.Kind == EnemyVocalize || (e.Kind == EnemyDeath && e.Phrase != "") {
		s.Log.Info().Uint64("enemy", uint64(e.Source)).Str("phrase", e.Phrase).Msg("enemy says")
		return
	}
	s.Log.Debug().
		Str("kind", e.Kind.String()).
		Uint64("source", uint64(e.Source)).
		Float64("x", e.Position.X).Float64("y", e.Position.Y).Float64("z", e.Position.Z).
		Msg("fx")
}
