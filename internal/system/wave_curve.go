package system

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// curveEnv — переменные, доступные выражению кривой волн.
type curveEnv struct {
	Wave int `expr:"wave"`
	Base int `expr:"base"`
}

// WaveCurve — число врагов в волне, заданное выражением, например "base + floor((wave - 1) / 1.5)".
type WaveCurve struct {
	source  string
	base    int
	program *vm.Program
	cache   []int // cache[n-1] = Count(n)
}

// NewWaveCurve компилирует выражение.
func NewWaveCurve(source string, base int) (*WaveCurve, error) {
	program, err := expr.Compile(source, expr.Env(curveEnv{}))
	if err != nil {
		return nil, fmt.Errorf("compiling wave curve %q: %w", source, err)
	}
	c := &WaveCurve{source: source, base: base, program: program}
	if _, err := c.raw(1); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *WaveCurve) raw(wave int) (int, error) {
	out, err := expr.Run(c.program, curveEnv{Wave: wave, Base: c.base})
	if err != nil {
		return 0, fmt.Errorf("evaluating wave curve for wave %d: %w", wave, err)
	}
	switch v := out.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("wave curve produced %v for wave %d", v, wave)
		}
		return int(math.Floor(v)), nil
	}
	return 0, fmt.Errorf("wave curve returned %T, want a number", out)
}

// Validate проверяет, что кривая не убывает и неотрицательна на 1..maxWaves.
func (c *WaveCurve) Validate(maxWaves int) error {
	prev := 0
	for n := 1; n <= maxWaves; n++ {
		v, err := c.raw(n)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("wave curve is negative at wave %d", n)
		}
		if n > 1 && v < prev {
			return fmt.Errorf("wave curve decreases at wave %d (%d < %d)", n, v, prev)
		}
		prev = v
	}
	return nil
}

// Count возвращает число врагов волны n (n >= 1). Результат никогда не меньше, чем у
// предыдущей волны; ошибки вычисления заменяются значением предыдущей волны или базой.
func (c *WaveCurve) Count(n int) int {
	if n < 1 {
		n = 1
	}
	for len(c.cache) < n {
		wave := len(c.cache) + 1
		floor := c.base
		if len(c.cache) > 0 {
			floor = c.cache[len(c.cache)-1]
		}
		v, err := c.raw(wave)
		if err != nil || v < floor && wave > 1 {
			v = floor
		}
		if v < 0 {
			v = 0
		}
		c.cache = append(c.cache, v)
	}
	return c.cache[n-1]
}

func (c *WaveCurve) String() string {
	return c.source
}
