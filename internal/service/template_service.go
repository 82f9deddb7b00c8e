package service

import (
	"context"
	"fmt"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
)

type TemplateService struct {
	templateRepo *repository.TemplateRepository
	libraryRepo  *repository.LibraryRepository
}

func NewTemplateService(templateRepo *repository.TemplateRepository, libraryRepo *repository.LibraryRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo, libraryRepo: libraryRepo}
}

// TemplateWithPrice decorates a template with its current total price.
type TemplateWithPrice struct {
	entity.Template
	Prijs float64 `json:"prijs"`
}

func (s *TemplateService) List(ctx context.Context) ([]TemplateWithPrice, error) {
	templates, err := s.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("sjablonen laden mislukt: %w", err)
	}
	result := make([]TemplateWithPrice, 0, len(templates))
	for _, t := range templates {
		result = append(result, TemplateWithPrice{Template: t, Prijs: TemplatePrice(t.Items)})
	}
	return result, nil
}

func (s *TemplateService) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	return s.templateRepo.FindByID(ctx, id)
}

type TemplateItemRequest struct {
	BibliotheekID string  `json:"bibliotheek_id" binding:"required"`
	Aantal        float64 `json:"aantal" binding:"required,gt=0"`
}

type CreateTemplateRequest struct {
	Naam         string                `json:"naam" binding:"required"`
	Omschrijving string                `json:"omschrijving"`
	Items        []TemplateItemRequest `json:"items" binding:"required,min=1"`
}

func (s *TemplateService) Create(ctx context.Context, req CreateTemplateRequest) (*entity.Template, error) {
	template := &entity.Template{
		ID:           uuid.New().String(),
		Naam:         req.Naam,
		Omschrijving: req.Omschrijving,
	}
	for _, item := range req.Items {
		if _, err := s.libraryRepo.FindByID(ctx, item.BibliotheekID); err != nil {
			return nil, fmt.Errorf("bibliotheekitem niet gevonden: %w", err)
		}
		template.Items = append(template.Items, entity.TemplateItem{
			ID:            uuid.New().String(),
			TemplateID:    template.ID,
			BibliotheekID: item.BibliotheekID,
			Aantal:        item.Aantal,
		})
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("sjabloon aanmaken mislukt: %w", err)
	}
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("sjabloon verwijderen mislukt: %w", err)
	}
	return nil
}
