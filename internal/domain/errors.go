package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDuplicateDepartment = errors.New("department with this name already exists")
)
