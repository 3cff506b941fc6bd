package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave — форма сигнала осциллятора.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Ramp — закон изменения параметра во времени.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

// Tone описывает короткий синтезированный звук: осциллятор со сдвигом частоты
// и огибающей громкости. Всё, что после FadeTime, звучит с GainEnd.
type Tone struct {
	Wave      Wave
	StartHz   float64
	EndHz     float64
	SweepTime time.Duration
	Sweep     Ramp
	Gain      float64
	GainEnd   float64
	FadeTime  time.Duration
	Fade      Ramp
	Length    time.Duration
}

// Streamer возвращает конечный поток тона с частотой дискретизации rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{tone: t, rate: rate, total: rate.N(t.Length)}
}

type toneStreamer struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := time.Duration(s.pos) * time.Second / time.Duration(s.rate)
		freq := ramp(s.tone.Sweep, s.tone.StartHz, s.tone.EndHz, t, s.tone.SweepTime)
		gain := ramp(s.tone.Fade, s.tone.Gain, s.tone.GainEnd, t, s.tone.FadeTime)

		val := gain * sample(s.tone.Wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// ramp интерполирует from -> to за span. Экспоненциальный закон требует положительных концов,
// иначе вырождается в линейный.
func ramp(kind Ramp, from, to float64, t, span time.Duration) float64 {
	if span <= 0 || t >= span {
		return to
	}
	frac := float64(t) / float64(span)
	if kind == RampExponential && from > 0 && to > 0 {
		return from * math.Pow(to/from, frac)
	}
	return from + (to-from)*frac
}
