package repository

import (
	"context"
	"fmt"

	"github.com/company-track/internal/domain"
	"gorm.io/gorm"
)

// CompanyRepository определяет интерфейс для загрузки и сохранения агрегата
type CompanyRepository interface {
	Load(ctx context.Context) (*domain.Company, error)
	Save(ctx context.Context, company *domain.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository создаёт новый экземпляр репозитория
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Load восстанавливает агрегат из хранилища: один запрос по отделам,
// затем по одному запросу на сотрудников каждого отдела. Буфер событий
// загруженного агрегата пуст.
func (r *companyRepository) Load(ctx context.Context) (*domain.Company, error) {
	var departments []domain.Department
	if err := r.db.WithContext(ctx).Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}

	company := domain.NewCompany()
	company.Departments = departments

	for _, dept := range departments {
		var employees []domain.Employee
		err := r.db.WithContext(ctx).
			Where("department_id = ?", dept.ID).
			Find(&employees).Error
		if err != nil {
			return nil, fmt.Errorf("load employees of department %q: %w", dept.Name, err)
		}
		company.Employees = append(company.Employees, employees...)
	}

	return company, nil
}

// Save записывает незаписанные события агрегата в порядке их появления,
// по одной вставке на событие, в рамках одной транзакции. Буфер событий
// не очищается — это обязанность вызывающего через Commit после
// успешного сохранения.
func (r *companyRepository) Save(ctx context.Context, company *domain.Company) error {
	events := company.UncommittedEvents()
	if len(events) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, event := range events {
			switch event.Type {
			case domain.EventDepartmentAdded:
				dept, ok := company.DepartmentByID(event.EntityID)
				if !ok {
					return fmt.Errorf("event references unknown department %q", event.EntityID)
				}
				if err := tx.Create(&dept).Error; err != nil {
					return fmt.Errorf("insert department %q: %w", dept.Name, err)
				}

			case domain.EventEmployeeHired:
				emp, ok := company.EmployeeByID(event.EntityID)
				if !ok {
					return fmt.Errorf("event references unknown employee %q", event.EntityID)
				}
				if err := tx.Create(&emp).Error; err != nil {
					return fmt.Errorf("insert employee %q: %w", emp.Name, err)
				}

			default:
				return fmt.Errorf("unknown event type %q", event.Type)
			}
		}
		return nil
	})
}
