// internal/system/scheduler.go
package system

import (
	"sort"
	"time"
)

// TaskID — идентификатор отложенной задачи.
type TaskID uint64

type task struct {
	id     TaskID
	fireAt time.Duration
	action func()
	guard  func() bool
}

// Scheduler хранит отложенные действия симуляции (перезарядка, смена оружия, следующая волна).
// Задачи выполняются в потоке симуляции; guard проверяется в момент срабатывания, и задача,
// чей контекст устарел (матч закончился, сущность удалена), отбрасывается без эффекта.
type Scheduler struct {
	tasks  []*task
	nextID TaskID
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Schedule ставит action на момент fireAt. guard может быть nil.
func (s *Scheduler) Schedule(fireAt time.Duration, action func(), guard func() bool) TaskID {
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, &task{id: id, fireAt: fireAt, action: action, guard: guard})
	return id
}

// Cancel снимает задачу; false, если она уже выполнена или не существует.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// FireAt возвращает время срабатывания ожидающей задачи.
func (s *Scheduler) FireAt(id TaskID) (time.Duration, bool) {
	for _, t := range s.tasks {
		if t.id == id {
			return t.fireAt, true
		}
	}
	return 0, false
}

// Pending — число ожидающих задач.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Clear снимает все задачи (конец матча).
func (s *Scheduler) Clear() {
	s.tasks = nil
}

// Run выполняет все задачи с fireAt <= now в порядке (fireAt, порядок постановки).
// Задачи, поставленные во время Run, ждут следующего вызова. Возвращает число выполненных.
func (s *Scheduler) Run(now time.Duration) int {
	var due, rest []*task
	for _, t := range s.tasks {
		if t.fireAt <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.tasks = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].fireAt != due[j].fireAt {
			return due[i].fireAt < due[j].fireAt
		}
		return due[i].id < due[j].id
	})

	ran := 0
	for _, t := range due {
		if t.guard != nil && !t.guard() {
			continue
		}
		t.action()
		ran++
	}
	return ran
}
