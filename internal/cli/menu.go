package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/company-track/internal/domain"
	"github.com/company-track/internal/dto"
	"github.com/company-track/internal/service"
	"github.com/go-playground/validator/v10"
)

// Menu - интерактивный цикл меню поверх сервиса
type Menu struct {
	svc        service.CompanyService
	in         *bufio.Reader
	out        io.Writer
	logger     *slog.Logger
	reportPath string
}

// NewMenu создаёт новый цикл меню
func NewMenu(svc service.CompanyService, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		svc:        svc,
		in:         bufio.NewReader(in),
		out:        out,
		logger:     logger,
		reportPath: "report.json",
	}
}

// SetReportPath переопределяет путь к файлу отчёта
func (m *Menu) SetReportPath(path string) {
	m.reportPath = path
}

// Run выполняет цикл меню до выбора Quit или конца ввода.
// Бизнес-ошибки выводятся пользователю, и цикл продолжается;
// ошибки хранилища и ввода-вывода завершают цикл.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read menu choice: %w", err)
		}

		switch choice {
		case "1":
			err = m.addDepartment(ctx)
		case "2":
			err = m.hireEmployee(ctx)
		case "3":
			m.viewList()
		case "4":
			err = m.generateReport()
		case "5", "q":
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown option, try again")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if m.isBusinessError(err) {
				fmt.Fprintf(m.out, "Error: %v\n", err)
				continue
			}
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Do you want...")
	fmt.Fprintln(m.out, "  1) Add department")
	fmt.Fprintln(m.out, "  2) Hire employee")
	fmt.Fprintln(m.out, "  3) View list")
	fmt.Fprintln(m.out, "  4) Generate report")
	fmt.Fprintln(m.out, "  5) Quit")
	fmt.Fprint(m.out, "> ")
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) addDepartment(ctx context.Context) error {
	fmt.Fprintln(m.out, "Enter the department's name")
	name, err := m.readLine()
	if err != nil {
		return err
	}

	dept, err := m.svc.AddDepartment(ctx, &dto.AddDepartmentRequest{Name: name})
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Department %q added\n", dept.Name)
	return nil
}

func (m *Menu) hireEmployee(ctx context.Context) error {
	fmt.Fprintln(m.out, "Enter the employee's name")
	name, err := m.readLine()
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Enter the department's name")
	department, err := m.readLine()
	if err != nil {
		return err
	}

	emp, err := m.svc.HireEmployee(ctx, &dto.HireEmployeeRequest{
		Name:       name,
		Department: department,
	})
	if err != nil {
		return err
	}

	dept, _ := m.svc.Company().DepartmentByID(emp.DepartmentID)
	fmt.Fprintf(m.out, "Employee %q hired into %q\n", emp.Name, dept.Name)
	return nil
}

func (m *Menu) viewList() {
	company := m.svc.Company()

	for _, dept := range company.Departments {
		fmt.Fprintf(m.out, "\nDepartment %s\n", dept.Name)

		for i, emp := range company.EmployeesIn(dept.ID) {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, emp.Name)
		}
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) generateReport() error {
	report := m.svc.BuildReport()

	file, err := os.Create(m.reportPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	m.logger.Info("report generated",
		slog.String("path", m.reportPath),
		slog.Int("departments", report.Departments),
		slog.Int("employees", report.Employees),
	)
	fmt.Fprintf(m.out, "Report written to %s\n", m.reportPath)
	return nil
}

// isBusinessError отличает локальные бизнес-ошибки от фатальных
func (m *Menu) isBusinessError(err error) bool {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrDuplicateDepartment),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.As(err, &validationErrs):
		return true
	default:
		return false
	}
}
