package domain

// EventType определяет вид доменного события
type EventType string

const (
	EventDepartmentAdded EventType = "DepartmentAdded"
	EventEmployeeHired   EventType = "EmployeeHired"
)

// Event описывает факт, который ещё не записан в хранилище.
// Событие ссылается на созданную сущность по идентификатору;
// владельцем сущности остаётся агрегат.
type Event struct {
	Type     EventType
	EntityID string
}
