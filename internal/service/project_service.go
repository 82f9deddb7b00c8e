package service

import (
	"context"
	"fmt"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
	orderRepo   *repository.OrderRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository, orderRepo *repository.OrderRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, orderRepo: orderRepo}
}

type ProjectRequest struct {
	ProjectNummer string `json:"project_nummer"`
	Naam          string `json:"naam" binding:"required"`
	Klant         string `json:"klant"`
	Architect     string `json:"architect"`
	Telefoon      string `json:"telefoon"`
	Email         string `json:"email"`
	Adres         string `json:"adres"`
	Notities      string `json:"notities"`
	Kleur         string `json:"kleur"`
	Emoji         string `json:"emoji"`
}

func (s *ProjectService) List(ctx context.Context, search string) ([]entity.Project, error) {
	return s.projectRepo.FindAll(ctx, search)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, req ProjectRequest) (*entity.Project, error) {
	project := &entity.Project{
		ID:            uuid.New().String(),
		ProjectNummer: req.ProjectNummer,
		Naam:          req.Naam,
		Klant:         req.Klant,
		Architect:     req.Architect,
		Telefoon:      req.Telefoon,
		Email:         req.Email,
		Adres:         req.Adres,
		Notities:      req.Notities,
		Kleur:         req.Kleur,
		Emoji:         req.Emoji,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("project aanmaken mislukt: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req ProjectRequest) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project niet gevonden: %w", err)
	}

	project.ProjectNummer = req.ProjectNummer
	project.Naam = req.Naam
	project.Klant = req.Klant
	project.Architect = req.Architect
	project.Telefoon = req.Telefoon
	project.Email = req.Email
	project.Adres = req.Adres
	project.Notities = req.Notities
	project.Kleur = req.Kleur
	project.Emoji = req.Emoji

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("project bijwerken mislukt: %w", err)
	}
	return project, nil
}

// Delete removes a project and everything under it.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projectRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("project niet gevonden: %w", err)
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("project verwijderen mislukt: %w", err)
	}
	return nil
}

// Total sums the quote totals of every order in the project.
func (s *ProjectService) Total(ctx context.Context, id string) (float64, error) {
	orders, err := s.orderRepo.FindByProject(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("orders laden mislukt: %w", err)
	}
	var total float64
	for _, order := range orders {
		totals := CalculateOrderTotals(order.Items, order.OfferteKorting, order.OfferteKortingType)
		total += totals.Totaal
	}
	return total, nil
}
