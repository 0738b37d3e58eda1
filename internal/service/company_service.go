package service

import (
	"context"
	"fmt"

	"github.com/company-track/internal/domain"
	"github.com/company-track/internal/dto"
	"github.com/company-track/internal/repository"
	"github.com/go-playground/validator/v10"
)

// CompanyService определяет интерфейс бизнес-логики над агрегатом
type CompanyService interface {
	AddDepartment(ctx context.Context, req *dto.AddDepartmentRequest) (domain.Department, error)
	HireEmployee(ctx context.Context, req *dto.HireEmployeeRequest) (domain.Employee, error)
	Company() *domain.Company
	BuildReport() dto.Report
}

type companyService struct {
	company   *domain.Company
	repo      repository.CompanyRepository
	validator *validator.Validate
}

// NewCompanyService создаёт новый экземпляр сервиса
func NewCompanyService(company *domain.Company, repo repository.CompanyRepository) CompanyService {
	return &companyService{
		company:   company,
		repo:      repo,
		validator: validator.New(),
	}
}

// AddDepartment проверяет запрос, изменяет агрегат и сохраняет события.
// Commit вызывается только после успешного сохранения; при ошибке
// сохранения буфер остаётся, и следующая успешная запись доставит события.
func (s *companyService) AddDepartment(ctx context.Context, req *dto.AddDepartmentRequest) (domain.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Department{}, err
	}

	dept, err := s.company.AddDepartment(req.Name)
	if err != nil {
		return domain.Department{}, err
	}

	if err := s.repo.Save(ctx, s.company); err != nil {
		return domain.Department{}, fmt.Errorf("save department: %w", err)
	}
	s.company.Commit()

	return dept, nil
}

func (s *companyService) HireEmployee(ctx context.Context, req *dto.HireEmployeeRequest) (domain.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Employee{}, err
	}

	emp, err := s.company.HireEmployee(req.Name, req.Department)
	if err != nil {
		return domain.Employee{}, err
	}

	if err := s.repo.Save(ctx, s.company); err != nil {
		return domain.Employee{}, fmt.Errorf("save employee: %w", err)
	}
	s.company.Commit()

	return emp, nil
}

func (s *companyService) Company() *domain.Company {
	return s.company
}

// BuildReport собирает отчёт о распределении сотрудников по отделам.
// При нуле сотрудников деление не выполняется: каждый отдел получает
// строку "0.00% (0 employees)".
func (s *companyService) BuildReport() dto.Report {
	total := s.company.TotalEmployees()
	distribution := make(map[string]string, len(s.company.Departments))

	for _, dept := range s.company.Departments {
		count := s.company.EmployeesByDepartment(dept.ID)

		pct := 0.0
		if total > 0 {
			pct = float64(count) * 100 / float64(total)
		}

		distribution[dept.Name] = fmt.Sprintf("%.2f%% (%d employees)", pct, count)
	}

	return dto.Report{
		Departments:         len(s.company.Departments),
		Employees:           total,
		CompanyDistribution: distribution,
	}
}
