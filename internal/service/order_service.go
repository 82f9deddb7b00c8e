package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
)

type OrderService struct {
	orderRepo    *repository.OrderRepository
	projectRepo  *repository.ProjectRepository
	libraryRepo  *repository.LibraryRepository
	templateRepo *repository.TemplateRepository
}

func NewOrderService(orderRepo *repository.OrderRepository, projectRepo *repository.ProjectRepository, libraryRepo *repository.LibraryRepository, templateRepo *repository.TemplateRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		projectRepo:  projectRepo,
		libraryRepo:  libraryRepo,
		templateRepo: templateRepo,
	}
}

type CreateOrderRequest struct {
	ProjectID  string `json:"project_id" binding:"required"`
	Naam       string `json:"naam" binding:"required"`
	IsMeerwerk bool   `json:"is_meerwerk"`
	Spoed      bool   `json:"spoed"`
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*entity.Order, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("project niet gevonden: %w", err)
	}

	order := &entity.Order{
		ID:                 uuid.New().String(),
		ProjectID:          req.ProjectID,
		Naam:               req.Naam,
		Status:             entity.StatusPrijsvraag,
		IsMeerwerk:         req.IsMeerwerk,
		Spoed:              req.Spoed,
		OfferteKortingType: KortingProcent,
		AddedFrom:          "offerte",
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("order aanmaken mislukt: %w", err)
	}
	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrderService) ListByProject(ctx context.Context, projectID string) ([]entity.Order, error) {
	return s.orderRepo.FindByProject(ctx, projectID)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// UpdateOrderRequest carries a partial field set; nil pointers are left
// untouched. Status changes and flag updates go through the same
// validation as the dedicated endpoints.
type UpdateOrderRequest struct {
	Naam                *string  `json:"naam"`
	Status              *string  `json:"status"`
	TekeningKlaar       *bool    `json:"tekening_klaar"`
	TekeningGoedgekeurd *bool    `json:"tekening_goedgekeurd"`
	MateriaalBesteld    *bool    `json:"materiaal_besteld"`
	MateriaalBinnen     *bool    `json:"materiaal_binnen"`
	IsMeerwerk          *bool    `json:"is_meerwerk"`
	Spoed               *bool    `json:"spoed"`
	BegroteUren         *float64 `json:"begrote_uren"`
	Plaatsingsdatum     *string  `json:"plaatsingsdatum"` // YYYY-MM-DD, empty clears
	Notitie             *string  `json:"notitie"`
	OfferteKorting      *float64 `json:"offerte_korting"`
	OfferteKortingType  *string  `json:"offerte_korting_type"`
	UrenCompleet        *bool    `json:"uren_compleet"`
	NacalculatieGedaan  *bool    `json:"nacalculatie_gedaan"`
}

// Update validates and applies a partial update. The checkbox
// dependencies that the front-end enforces by disabling controls are
// validated here as well, so a direct API call cannot bypass them.
func (s *OrderService) Update(ctx context.Context, id string, req UpdateOrderRequest) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order niet gevonden: %w", err)
	}

	if req.Naam != nil {
		order.Naam = *req.Naam
	}
	if req.TekeningKlaar != nil {
		order.TekeningKlaar = *req.TekeningKlaar
	}
	if req.TekeningGoedgekeurd != nil {
		if *req.TekeningGoedgekeurd && !order.TekeningKlaar {
			return nil, fmt.Errorf("tekening kan niet goedgekeurd worden voordat deze klaar is")
		}
		order.TekeningGoedgekeurd = *req.TekeningGoedgekeurd
	}
	if req.MateriaalBesteld != nil {
		order.MateriaalBesteld = *req.MateriaalBesteld
	}
	if req.MateriaalBinnen != nil {
		if *req.MateriaalBinnen && !order.MateriaalBesteld {
			return nil, fmt.Errorf("materiaal kan niet binnen zijn voordat het besteld is")
		}
		order.MateriaalBinnen = *req.MateriaalBinnen
	}
	if req.Status != nil {
		if err := s.checkStatusChange(order, *req.Status); err != nil {
			return nil, err
		}
		order.Status = *req.Status
	}
	if req.IsMeerwerk != nil {
		order.IsMeerwerk = *req.IsMeerwerk
	}
	if req.Spoed != nil {
		order.Spoed = *req.Spoed
	}
	if req.BegroteUren != nil {
		order.BegroteUren = *req.BegroteUren
	}
	if req.Plaatsingsdatum != nil {
		if *req.Plaatsingsdatum == "" {
			order.Plaatsingsdatum = nil
		} else {
			t, err := time.Parse("2006-01-02", *req.Plaatsingsdatum)
			if err != nil {
				return nil, fmt.Errorf("ongeldige plaatsingsdatum: %w", err)
			}
			order.Plaatsingsdatum = &t
		}
	}
	if req.Notitie != nil {
		order.Notitie = *req.Notitie
	}
	if req.OfferteKorting != nil {
		order.OfferteKorting = *req.OfferteKorting
	}
	if req.OfferteKortingType != nil {
		if *req.OfferteKortingType != KortingProcent && *req.OfferteKortingType != KortingBedrag {
			return nil, fmt.Errorf("ongeldig kortingstype: %s", *req.OfferteKortingType)
		}
		order.OfferteKortingType = *req.OfferteKortingType
	}
	if req.UrenCompleet != nil {
		order.UrenCompleet = *req.UrenCompleet
	}
	if req.NacalculatieGedaan != nil {
		order.NacalculatieGedaan = *req.NacalculatieGedaan
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("order bijwerken mislukt: %w", err)
	}
	return order, nil
}

// checkStatusChange validates a requested status. The only guarded
// transition is into production; everything else may move freely
// forward or backward.
func (s *OrderService) checkStatusChange(order *entity.Order, status string) error {
	if !entity.GeldigeStatus(status) {
		return fmt.Errorf("onbekende status: %s", status)
	}
	if status == entity.StatusInProductie && !order.KanNaarProductie() {
		return fmt.Errorf("order kan pas naar productie als de tekening is goedgekeurd en het materiaal binnen is")
	}
	return nil
}

// ChangeStatus moves an order to a new status. On rejection the stored
// status is untouched.
func (s *OrderService) ChangeStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order niet gevonden: %w", err)
	}
	if err := s.checkStatusChange(order, status); err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("status bijwerken mislukt: %w", err)
	}
	return order, nil
}

// DropToColumn handles a kanban drag-and-drop: the order takes the
// target column's default status, subject to the production guard.
func (s *OrderService) DropToColumn(ctx context.Context, id, kolom string) (*entity.Order, error) {
	found := false
	for _, k := range entity.KolomVolgorde {
		if k == kolom {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("onbekende kolom: %s", kolom)
	}
	return s.ChangeStatus(ctx, id, entity.DropStatus(kolom))
}

// Flag fields that may be toggled in bulk from the kanban board, with
// the prerequisite flag each one drags along.
var bulkFlagPrerequisites = map[string]string{
	"tekening_klaar":       "",
	"tekening_goedgekeurd": "tekening_klaar",
	"materiaal_besteld":    "",
	"materiaal_binnen":     "materiaal_besteld",
}

// BulkSetFlag sets one progress flag on a group of orders in a single
// call. Setting a dependent flag to true also sets its prerequisite, so
// the checkbox invariant holds for every row. Non-atomic with respect to
// other fields; the store applies the whole IN-update or none of it.
func (s *OrderService) BulkSetFlag(ctx context.Context, ids []string, field string, value bool) error {
	prerequisite, ok := bulkFlagPrerequisites[field]
	if !ok {
		return fmt.Errorf("veld kan niet in bulk gezet worden: %s", field)
	}
	fields := map[string]interface{}{field: value}
	if value && prerequisite != "" {
		fields[prerequisite] = true
	}
	if err := s.orderRepo.BulkUpdateFields(ctx, ids, fields); err != nil {
		return fmt.Errorf("bulk bijwerken mislukt: %w", err)
	}
	return nil
}

// Totals computes the quote breakdown for one order.
func (s *OrderService) Totals(ctx context.Context, id string) (*OrderTotals, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order niet gevonden: %w", err)
	}
	totals := CalculateOrderTotals(order.Items, order.OfferteKorting, order.OfferteKortingType)
	return &totals, nil
}

// AddLibraryItem puts a library item on the order. An existing line for
// the same library item gets its quantity bumped instead of a duplicate
// line.
func (s *OrderService) AddLibraryItem(ctx context.Context, orderID, bibliotheekID string, aantal float64) (*entity.OrderItem, error) {
	if aantal <= 0 {
		aantal = 1
	}
	bibItem, err := s.libraryRepo.FindByID(ctx, bibliotheekID)
	if err != nil {
		return nil, fmt.Errorf("bibliotheekitem niet gevonden: %w", err)
	}

	existing, err := s.orderRepo.FindItemByLibraryRef(ctx, orderID, bibliotheekID)
	if err == nil {
		existing.Aantal += aantal
		if err := s.orderRepo.UpdateItem(ctx, existing); err != nil {
			return nil, fmt.Errorf("orderregel bijwerken mislukt: %w", err)
		}
		return existing, nil
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	item := &entity.OrderItem{
		ID:              uuid.New().String(),
		OrderID:         orderID,
		BibliotheekID:   &bibItem.ID,
		Categorie:       bibItem.Categorie,
		Naam:            bibItem.Naam,
		Eenheid:         bibItem.Eenheid,
		Aantal:          aantal,
		PrijsPerEenheid: bibItem.Prijs,
	}
	if err := s.orderRepo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("orderregel aanmaken mislukt: %w", err)
	}
	return item, nil
}

type UpdateOrderItemRequest struct {
	Aantal          *float64 `json:"aantal"`
	PrijsPerEenheid *float64 `json:"prijs_per_eenheid"`
	Naam            *string  `json:"naam"`
}

func (s *OrderService) UpdateItem(ctx context.Context, orderID, itemID string, req UpdateOrderItemRequest) (*entity.OrderItem, error) {
	items, err := s.orderRepo.FindItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	var item *entity.OrderItem
	for i := range items {
		if items[i].ID == itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("orderregel niet gevonden: %w", repository.ErrNotFound)
	}

	if req.Aantal != nil {
		item.Aantal = *req.Aantal
	}
	if req.PrijsPerEenheid != nil {
		item.PrijsPerEenheid = *req.PrijsPerEenheid
	}
	if req.Naam != nil {
		item.Naam = *req.Naam
	}
	if err := s.orderRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("orderregel bijwerken mislukt: %w", err)
	}
	return item, nil
}

func (s *OrderService) RemoveItem(ctx context.Context, itemID string) error {
	return s.orderRepo.DeleteItem(ctx, itemID)
}

// ApplyTemplate merges a template into the order's lines: quantities add
// up for lines that reference the same library item, new lines are
// created for the rest. Lines run sequentially; the first failure aborts
// the remainder and earlier lines stay applied.
func (s *OrderService) ApplyTemplate(ctx context.Context, orderID, templateID string) ([]entity.OrderItem, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("order niet gevonden: %w", err)
	}
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("sjabloon niet gevonden: %w", err)
	}

	for _, tmplItem := range template.Items {
		bibItem, err := s.libraryRepo.FindByID(ctx, tmplItem.BibliotheekID)
		if err != nil {
			// library item was deleted after the template was made
			continue
		}

		existing, err := s.orderRepo.FindItemByLibraryRef(ctx, orderID, bibItem.ID)
		switch err {
		case nil:
			existing.Aantal += tmplItem.Aantal
			if err := s.orderRepo.UpdateItem(ctx, existing); err != nil {
				return nil, fmt.Errorf("sjabloonregel %q toepassen mislukt: %w", bibItem.Naam, err)
			}
		case repository.ErrNotFound:
			item := &entity.OrderItem{
				ID:              uuid.New().String(),
				OrderID:         orderID,
				BibliotheekID:   &bibItem.ID,
				Categorie:       bibItem.Categorie,
				Naam:            bibItem.Naam,
				Eenheid:         bibItem.Eenheid,
				Aantal:          tmplItem.Aantal,
				PrijsPerEenheid: bibItem.Prijs,
			}
			if err := s.orderRepo.CreateItem(ctx, item); err != nil {
				return nil, fmt.Errorf("sjabloonregel %q toepassen mislukt: %w", bibItem.Naam, err)
			}
		default:
			return nil, err
		}
	}

	return s.orderRepo.FindItems(ctx, orderID)
}
