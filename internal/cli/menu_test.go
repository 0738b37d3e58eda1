package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/company-track/internal/cli"
	"github.com/company-track/internal/domain"
	"github.com/company-track/internal/service"
)

type memoryRepository struct {
	departments map[string]domain.Department
	employees   map[string]domain.Employee
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		departments: make(map[string]domain.Department),
		employees:   make(map[string]domain.Employee),
	}
}

func (m *memoryRepository) Load(ctx context.Context) (*domain.Company, error) {
	company := domain.NewCompany()
	for _, dept := range m.departments {
		company.Departments = append(company.Departments, dept)
	}
	for _, emp := range m.employees {
		company.Employees = append(company.Employees, emp)
	}
	return company, nil
}

func (m *memoryRepository) Save(ctx context.Context, company *domain.Company) error {
	for _, event := range company.UncommittedEvents() {
		switch event.Type {
		case domain.EventDepartmentAdded:
			dept, _ := company.DepartmentByID(event.EntityID)
			m.departments[dept.ID] = dept
		case domain.EventEmployeeHired:
			emp, _ := company.EmployeeByID(event.EntityID)
			m.employees[emp.ID] = emp
		}
	}
	return nil
}

func runSession(t *testing.T, input string) (*bytes.Buffer, *memoryRepository, error) {
	t.Helper()

	repo := newMemoryRepository()
	svc := service.NewCompanyService(domain.NewCompany(), repo)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	out := &bytes.Buffer{}
	menu := cli.NewMenu(svc, strings.NewReader(input), out, logger)
	menu.SetReportPath(filepath.Join(t.TempDir(), "report.json"))

	err := menu.Run(context.Background())
	return out, repo, err
}

func TestMenu_QuitImmediately(t *testing.T) {
	out, _, err := runSession(t, "5\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Do you want...") {
		t.Error("expected menu prompt in output")
	}
}

func TestMenu_QuitOnEOF(t *testing.T) {
	_, _, err := runSession(t, "")
	if err != nil {
		t.Fatalf("expected clean quit on EOF, got %v", err)
	}
}

func TestMenu_AddDepartment(t *testing.T) {
	out, repo, err := runSession(t, "1\n Engineering \n5\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), `Department "engineering" added`) {
		t.Errorf("expected confirmation in output, got:\n%s", out.String())
	}
	if len(repo.departments) != 1 {
		t.Errorf("expected 1 persisted department, got %d", len(repo.departments))
	}
}

func TestMenu_DuplicateDepartmentContinuesLoop(t *testing.T) {
	out, repo, err := runSession(t, "1\nEngineering\n1\nENGINEERING\n5\n")
	if err != nil {
		t.Fatalf("business error must not abort the loop: %v", err)
	}

	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("expected duplicate error message, got:\n%s", out.String())
	}
	if len(repo.departments) != 1 {
		t.Errorf("expected 1 persisted department, got %d", len(repo.departments))
	}
}

func TestMenu_HireEmployee(t *testing.T) {
	out, repo, err := runSession(t, "1\nEngineering\n2\nAlice\nEngineering\n5\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), `Employee "Alice" hired into "engineering"`) {
		t.Errorf("expected hire confirmation, got:\n%s", out.String())
	}
	if len(repo.employees) != 1 {
		t.Errorf("expected 1 persisted employee, got %d", len(repo.employees))
	}
}

func TestMenu_HireIntoUnknownDepartment(t *testing.T) {
	out, repo, err := runSession(t, "2\nBob\nMarketing\n5\n")
	if err != nil {
		t.Fatalf("business error must not abort the loop: %v", err)
	}

	if !strings.Contains(out.String(), "department not found") {
		t.Errorf("expected not-found message, got:\n%s", out.String())
	}
	if len(repo.employees) != 0 {
		t.Errorf("expected no persisted employees, got %d", len(repo.employees))
	}
}

func TestMenu_ViewList(t *testing.T) {
	input := "1\nEngineering\n2\nAlice\nEngineering\n2\nBob\nEngineering\n3\n5\n"
	out, _, err := runSession(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Department engineering", "1. Alice", "2. Bob"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in listing, got:\n%s", want, out.String())
		}
	}
}

func TestMenu_GenerateReport(t *testing.T) {
	repo := newMemoryRepository()
	svc := service.NewCompanyService(domain.NewCompany(), repo)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	reportPath := filepath.Join(t.TempDir(), "report.json")
	input := "1\nEngineering\n2\nAlice\nEngineering\n4\n5\n"

	out := &bytes.Buffer{}
	menu := cli.NewMenu(svc, strings.NewReader(input), out, logger)
	menu.SetReportPath(reportPath)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}

	var report struct {
		Departments         int               `json:"departments"`
		Employees           int               `json:"employees"`
		CompanyDistribution map[string]string `json:"company_distribution"`
	}
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid report json: %v", err)
	}

	if report.Departments != 1 || report.Employees != 1 {
		t.Errorf("expected 1 department and 1 employee, got %d and %d",
			report.Departments, report.Employees)
	}
	if got := report.CompanyDistribution["engineering"]; got != "100.00% (1 employees)" {
		t.Errorf("expected '100.00%% (1 employees)', got '%s'", got)
	}
}

func TestMenu_UnknownOption(t *testing.T) {
	out, _, err := runSession(t, "9\n5\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Unknown option") {
		t.Errorf("expected unknown-option message, got:\n%s", out.String())
	}
}

func TestMenu_EmptyDepartmentNameRejected(t *testing.T) {
	out, repo, err := runSession(t, "1\n\n5\n")
	if err != nil {
		t.Fatalf("validation error must not abort the loop: %v", err)
	}

	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("expected validation error message, got:\n%s", out.String())
	}
	if len(repo.departments) != 0 {
		t.Errorf("expected no persisted departments, got %d", len(repo.departments))
	}
}
