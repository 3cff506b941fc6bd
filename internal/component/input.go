package component

// Input — удерживаемые клавиши и смещение мыши за кадр.
// Клиент заполняет его из своего устройства ввода; симуляция сама выделяет фронты нажатий.
type Input struct {
	Forward, Backward, Left, Right bool
	Jump, Sprint                   bool
	Fire, Aim, Reload, Switch      bool
	LookDX, LookDY                 float64
}
