// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
// Все случайные решения симуляции (разброс, точность врагов, джиттер спавна, реплики)
// идут через один экземпляр, поэтому матч с тем же сидом воспроизводим.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Jitter возвращает смещение в [-amount/2, amount/2).
func (s *PRNGService) Jitter(amount float64) float64 {
	return (s.rng.Float64() - 0.5) * amount
}

// Chance — true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return s.rng.Float64() < p
}

// Duration возвращает длительность в [min, max].
func (s *PRNGService) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.rng.Int63n(int64(max-min)+1))
}

// Choose выбирает случайную строку из списка (реплики врагов).
func (s *PRNGService) Choose(options []string) string {
	if len(options) == 0 {
		return "" // Возвращаем пустую строку, если список пуст
	}
	return options[s.rng.Intn(len(options))]
}
