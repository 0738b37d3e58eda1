package domain

// Department представляет отдел компании
type Department struct {
	ID   string `json:"id" gorm:"primaryKey;type:text"`
	Name string `json:"name" gorm:"type:text;not null;unique"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID           string `json:"id" gorm:"primaryKey;type:text"`
	Name         string `json:"name" gorm:"type:text;not null;unique"`
	DepartmentID string `json:"department_id" gorm:"type:text;not null;index"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}
