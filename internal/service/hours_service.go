package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
)

type HoursService struct {
	hoursRepo    *repository.HoursRepository
	employeeRepo *repository.EmployeeRepository
	orderRepo    *repository.OrderRepository
}

func NewHoursService(hoursRepo *repository.HoursRepository, employeeRepo *repository.EmployeeRepository, orderRepo *repository.OrderRepository) *HoursService {
	return &HoursService{hoursRepo: hoursRepo, employeeRepo: employeeRepo, orderRepo: orderRepo}
}

type RegisterHoursRequest struct {
	MedewerkerID string  `json:"medewerker_id" binding:"required"`
	OrderID      string  `json:"order_id" binding:"required"`
	Datum        string  `json:"datum"` // YYYY-MM-DD, defaults to today
	TypeWerk     string  `json:"type_werk"`
	Uren         float64 `json:"uren" binding:"required,gt=0"`
}

func (s *HoursService) Register(ctx context.Context, req RegisterHoursRequest) (*entity.HourEntry, error) {
	employee, err := s.employeeRepo.FindByID(ctx, req.MedewerkerID)
	if err != nil {
		return nil, fmt.Errorf("medewerker niet gevonden: %w", err)
	}
	if !employee.Actief {
		return nil, fmt.Errorf("medewerker %s is niet actief", employee.Naam)
	}
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order niet gevonden: %w", err)
	}

	typeWerk := req.TypeWerk
	if typeWerk == "" {
		typeWerk = "overig"
	}
	if !entity.GeldigTypeWerk(typeWerk) {
		return nil, fmt.Errorf("onbekend type werk: %s", typeWerk)
	}

	datum := time.Now()
	if req.Datum != "" {
		datum, err = time.Parse("2006-01-02", req.Datum)
		if err != nil {
			return nil, fmt.Errorf("ongeldige datum: %w", err)
		}
	}

	entry := &entity.HourEntry{
		ID:           uuid.New().String(),
		MedewerkerID: employee.ID,
		ProjectID:    order.ProjectID,
		OrderID:      order.ID,
		Datum:        datum,
		TypeWerk:     typeWerk,
		Uren:         req.Uren,
	}
	if err := s.hoursRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("uren registreren mislukt: %w", err)
	}
	return entry, nil
}

func (s *HoursService) List(ctx context.Context, filters repository.HourFilters) ([]entity.HourEntry, error) {
	return s.hoursRepo.FindAll(ctx, filters)
}

func (s *HoursService) Delete(ctx context.Context, id string) error {
	return s.hoursRepo.Delete(ctx, id)
}

// OrderSummary compares registered against budgeted hours for an order.
type OrderSummary struct {
	OrderID       string  `json:"order_id"`
	BegroteUren   float64 `json:"begrote_uren"`
	Geregistreerd float64 `json:"geregistreerd"`
}

func (s *HoursService) SummaryByOrder(ctx context.Context, orderID string) (*OrderSummary, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order niet gevonden: %w", err)
	}
	total, err := s.hoursRepo.SumByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("uren optellen mislukt: %w", err)
	}
	return &OrderSummary{
		OrderID:       order.ID,
		BegroteUren:   order.BegroteUren,
		Geregistreerd: total,
	}, nil
}

func (s *HoursService) SummaryByProject(ctx context.Context, projectID string) (map[string]float64, error) {
	return s.hoursRepo.SumByProject(ctx, projectID)
}

// --- employees ---

func (s *HoursService) ListEmployees(ctx context.Context, activeOnly bool) ([]entity.Employee, error) {
	return s.employeeRepo.FindAll(ctx, activeOnly)
}

func (s *HoursService) CreateEmployee(ctx context.Context, naam string) (*entity.Employee, error) {
	employee := &entity.Employee{
		ID:     uuid.New().String(),
		Naam:   naam,
		Actief: true,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("medewerker aanmaken mislukt: %w", err)
	}
	return employee, nil
}

// ToggleEmployee flips the actief flag.
func (s *HoursService) ToggleEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("medewerker niet gevonden: %w", err)
	}
	employee.Actief = !employee.Actief
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("medewerker bijwerken mislukt: %w", err)
	}
	return employee, nil
}
