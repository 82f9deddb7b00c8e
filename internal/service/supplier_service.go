package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
)

type SupplierService struct {
	supplierRepo *repository.SupplierRepository
}

func NewSupplierService(supplierRepo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

func (s *SupplierService) List(ctx context.Context) ([]entity.Supplier, error) {
	return s.supplierRepo.FindAll(ctx)
}

func (s *SupplierService) Create(ctx context.Context, naam string) (*entity.Supplier, error) {
	naam = strings.TrimSpace(naam)
	if naam == "" {
		return nil, fmt.Errorf("naam is verplicht")
	}
	if existing, err := s.supplierRepo.FindByNaam(ctx, naam); err == nil {
		return existing, nil
	}
	supplier := &entity.Supplier{
		ID:   uuid.New().String(),
		Naam: naam,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("leverancier aanmaken mislukt: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.supplierRepo.Delete(ctx, id)
}
