package dto

// AddDepartmentRequest - запрос на добавление отдела
type AddDepartmentRequest struct {
	Name string `validate:"required,min=1,max=200"`
}

// HireEmployeeRequest - запрос на найм сотрудника
type HireEmployeeRequest struct {
	Name       string `validate:"required,min=1,max=200"`
	Department string `validate:"required,min=1,max=200"`
}

// Report - итоговый отчёт о распределении сотрудников по отделам
type Report struct {
	Departments         int               `json:"departments"`
	Employees           int               `json:"employees"`
	CompanyDistribution map[string]string `json:"company_distribution"`
}
