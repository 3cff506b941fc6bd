package audio

import (
	"fmt"
	"math"
	"time"

	"go-wave-shooter/internal/fx"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

var (
	shootTone = Tone{
		Wave: WaveSaw, StartHz: 120, EndHz: 0.01, SweepTime: 120 * time.Millisecond, Sweep: RampExponential,
		Gain: 0.2, GainEnd: 0.01, FadeTime: 120 * time.Millisecond, Fade: RampExponential,
		Length: 150 * time.Millisecond,
	}
	hitTone = Tone{
		Wave: WaveSquare, StartHz: 150, EndHz: 0.01, SweepTime: 100 * time.Millisecond, Sweep: RampExponential,
		Gain: 0.2, GainEnd: 0, FadeTime: 100 * time.Millisecond, Fade: RampLinear,
		Length: 100 * time.Millisecond,
	}
	reloadTone = Tone{
		Wave: WaveTriangle, StartHz: 400, EndHz: 600, SweepTime: 50 * time.Millisecond, Sweep: RampLinear,
		Gain: 0.2, GainEnd: 0, FadeTime: 100 * time.Millisecond, Fade: RampLinear,
		Length: 100 * time.Millisecond,
	}
	healTone = Tone{
		Wave: WaveSine, StartHz: 300, EndHz: 600, SweepTime: 200 * time.Millisecond, Sweep: RampLinear,
		Gain: 0.3, GainEnd: 0, FadeTime: 300 * time.Millisecond, Fade: RampLinear,
		Length: 300 * time.Millisecond,
	}
	waveTone = Tone{
		Wave: WaveSine, StartHz: 220, EndHz: 440, SweepTime: 400 * time.Millisecond, Sweep: RampExponential,
		Gain: 0.25, GainEnd: 0, FadeTime: 500 * time.Millisecond, Fade: RampLinear,
		Length: 500 * time.Millisecond,
	}
)

// Tones — звук для каждого вида события. Реплики врагов (EnemyVocalize) и попадания
// в геометрию здесь не озвучиваются.
var Tones = map[fx.Kind]Tone{
	fx.Shoot:        shootTone,
	fx.EnemyShoot:   shootTone,
	fx.Hit:          hitTone,
	fx.EnemyDeath:   hitTone,
	fx.Reload:       reloadTone,
	fx.DryFire:      reloadTone,
	fx.WeaponSwitch: reloadTone,
	fx.Heal:         healTone,
	fx.WaveStart:    waveTone,
}

// Sink — fx.Sink, синтезирующий звуки через beep.
type Sink struct {
	play   func(beep.Streamer)
	volume float64
	log    zerolog.Logger
}

var _ fx.Sink = (*Sink)(nil)

// NewSink создаёт sink поверх произвольного проигрывателя (тесты, запись в файл).
func NewSink(volume float64, play func(beep.Streamer), log zerolog.Logger) *Sink {
	return &Sink{play: play, volume: volume, log: log}
}

// NewSpeakerSink инициализирует системный вывод звука.
func NewSpeakerSink(volume float64, log zerolog.Logger) (*Sink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return NewSink(volume, func(s beep.Streamer) { speaker.Play(s) }, log), nil
}

// Close останавливает все звуки системного вывода.
func (s *Sink) Close() {
	speaker.Clear()
}

func (s *Sink) Emit(e fx.Event) {
	if s == nil || s.volume <= 0 {
		return
	}
	tone, ok := Tones[e.Kind]
	if !ok {
		return
	}
	s.play(withVolume(tone.Streamer(sampleRate), s.volume))
	s.log.Trace().Stringer("kind", e.Kind).Msg("sound")
}

// withVolume переводит линейную громкость в логарифмическую шкалу effects.Volume.
func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol >= 1 {
		return st
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}
