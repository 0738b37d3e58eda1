package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Company — корень агрегата: все изменения отделов и сотрудников
// проходят через него. Агрегат не обращается к хранилищу; каждое
// изменение добавляет событие в буфер, который позже записывает
// репозиторий.
type Company struct {
	Departments []Department
	Employees   []Employee

	events []Event
}

// NewCompany создаёт пустой агрегат
func NewCompany() *Company {
	return &Company{}
}

// NormalizeDepartmentName приводит имя отдела к каноническому виду:
// обрезает пробелы и переводит в нижний регистр
func NormalizeDepartmentName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddDepartment добавляет отдел с нормализованным именем.
// Возвращает ErrDuplicateDepartment, если отдел с таким именем уже есть.
func (c *Company) AddDepartment(name string) (Department, error) {
	normalized := NormalizeDepartmentName(name)

	if _, ok := c.DepartmentByName(normalized); ok {
		return Department{}, ErrDuplicateDepartment
	}

	dept := Department{
		ID:   uuid.NewString(),
		Name: normalized,
	}

	c.Departments = append(c.Departments, dept)
	c.events = append(c.events, Event{Type: EventDepartmentAdded, EntityID: dept.ID})

	return dept, nil
}

// HireEmployee нанимает сотрудника в существующий отдел.
// Имя сотрудника обрезается, регистр сохраняется.
// Возвращает ErrDepartmentNotFound, если отдела нет.
func (c *Company) HireEmployee(name, departmentName string) (Employee, error) {
	dept, ok := c.DepartmentByName(NormalizeDepartmentName(departmentName))
	if !ok {
		return Employee{}, ErrDepartmentNotFound
	}

	emp := Employee{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		DepartmentID: dept.ID,
	}

	c.Employees = append(c.Employees, emp)
	c.events = append(c.events, Event{Type: EventEmployeeHired, EntityID: emp.ID})

	return emp, nil
}

// DepartmentByName ищет отдел по нормализованному имени
func (c *Company) DepartmentByName(normalized string) (Department, bool) {
	for _, dept := range c.Departments {
		if dept.Name == normalized {
			return dept, true
		}
	}
	return Department{}, false
}

// DepartmentByID ищет отдел по идентификатору
func (c *Company) DepartmentByID(id string) (Department, bool) {
	for _, dept := range c.Departments {
		if dept.ID == id {
			return dept, true
		}
	}
	return Department{}, false
}

// EmployeeByID ищет сотрудника по идентификатору
func (c *Company) EmployeeByID(id string) (Employee, bool) {
	for _, emp := range c.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// TotalEmployees возвращает общее число сотрудников
func (c *Company) TotalEmployees() int {
	return len(c.Employees)
}

// EmployeesByDepartment возвращает число сотрудников отдела
func (c *Company) EmployeesByDepartment(departmentID string) int {
	count := 0
	for _, emp := range c.Employees {
		if emp.DepartmentID == departmentID {
			count++
		}
	}
	return count
}

// EmployeesIn возвращает сотрудников отдела в порядке добавления
func (c *Company) EmployeesIn(departmentID string) []Employee {
	var result []Employee
	for _, emp := range c.Employees {
		if emp.DepartmentID == departmentID {
			result = append(result, emp)
		}
	}
	return result
}

// UncommittedEvents возвращает буфер незаписанных событий в порядке
// их появления. Вызывающий не должен изменять срез.
func (c *Company) UncommittedEvents() []Event {
	return c.events
}

// Commit очищает буфер событий. Вызывается только после успешной
// записи буфера репозиторием; при пустом буфере ничего не делает.
func (c *Company) Commit() {
	c.events = nil
}
