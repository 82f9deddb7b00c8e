package service

import (
	"context"
	"fmt"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
)

type KanbanService struct {
	orderRepo   *repository.OrderRepository
	projectRepo *repository.ProjectRepository
}

func NewKanbanService(orderRepo *repository.OrderRepository, projectRepo *repository.ProjectRepository) *KanbanService {
	return &KanbanService{orderRepo: orderRepo, projectRepo: projectRepo}
}

// BoardOrder is an order on the board, joined with its project header.
type BoardOrder struct {
	entity.Order
	ProjectNummer string `json:"project_nummer"`
	ProjectNaam   string `json:"project_naam"`
	ProjectKleur  string `json:"project_kleur"`
	ProjectEmoji  string `json:"project_emoji"`
}

// BoardColumn is one kanban column with its member orders.
type BoardColumn struct {
	ID        string       `json:"id"`
	Statussen []string     `json:"statussen"`
	Orders    []BoardOrder `json:"orders"`
}

// Board returns every order grouped into its derived column. Column
// membership is computed from the status, never stored.
func (s *KanbanService) Board(ctx context.Context) ([]BoardColumn, error) {
	orders, err := s.orderRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("orders laden mislukt: %w", err)
	}
	projects, err := s.projectRepo.FindAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("projecten laden mislukt: %w", err)
	}

	projectByID := make(map[string]*entity.Project, len(projects))
	for i := range projects {
		projectByID[projects[i].ID] = &projects[i]
	}

	grouped := make(map[string][]BoardOrder, len(entity.KolomVolgorde))
	for _, order := range orders {
		bo := BoardOrder{Order: order}
		if p := projectByID[order.ProjectID]; p != nil {
			bo.ProjectNummer = p.ProjectNummer
			bo.ProjectNaam = p.Naam
			bo.ProjectKleur = p.Kleur
			bo.ProjectEmoji = p.Emoji
		}
		kolom := order.Kolom()
		grouped[kolom] = append(grouped[kolom], bo)
	}

	columns := make([]BoardColumn, 0, len(entity.KolomVolgorde))
	for _, kolom := range entity.KolomVolgorde {
		orders := grouped[kolom]
		if orders == nil {
			orders = []BoardOrder{}
		}
		columns = append(columns, BoardColumn{
			ID:        kolom,
			Statussen: entity.StatussenVoorKolom(kolom),
			Orders:    orders,
		})
	}
	return columns, nil
}
