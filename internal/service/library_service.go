package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Price entry modes for library items.
const (
	PrijsModeBerekend = "berekend" // catalog price minus discount
	PrijsModeDirect   = "direct"   // price entered as-is
)

const (
	libraryCacheKey = "bibliotheek:all"
	libraryCacheTTL = 5 * time.Minute
)

type LibraryService struct {
	libraryRepo *repository.LibraryRepository
	rdb         *redis.Client
	logger      *zap.Logger
}

func NewLibraryService(libraryRepo *repository.LibraryRepository, rdb *redis.Client, logger *zap.Logger) *LibraryService {
	return &LibraryService{libraryRepo: libraryRepo, rdb: rdb, logger: logger}
}

// List returns library items. The unfiltered list is served from the
// Redis cache when possible; filtered queries always hit the store.
func (s *LibraryService) List(ctx context.Context, filters map[string]string) ([]entity.LibraryItem, error) {
	unfiltered := filters["categorie"] == "" && filters["leverancier"] == "" && filters["search"] == ""

	if unfiltered && s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, libraryCacheKey).Bytes(); err == nil {
			var items []entity.LibraryItem
			if json.Unmarshal(cached, &items) == nil {
				return items, nil
			}
		}
	}

	items, err := s.libraryRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("bibliotheek laden mislukt: %w", err)
	}

	if unfiltered && s.rdb != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.rdb.Set(ctx, libraryCacheKey, data, libraryCacheTTL).Err(); err != nil {
				s.logger.Debug("library cache write failed", zap.Error(err))
			}
		}
	}
	return items, nil
}

// invalidateCache drops the cached list after any library mutation.
func (s *LibraryService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, libraryCacheKey).Err(); err != nil {
		s.logger.Debug("library cache invalidation failed", zap.Error(err))
	}
}

type LibraryItemRequest struct {
	Categorie      string   `json:"categorie" binding:"required"`
	Naam           string   `json:"naam" binding:"required"`
	Artikelnummer  string   `json:"artikelnummer"`
	Omschrijving   string   `json:"omschrijving"`
	Subcategorie   string   `json:"subcategorie"`
	Leverancier    string   `json:"leverancier"`
	Eenheid        string   `json:"eenheid"`
	PrijsMode      string   `json:"prijs_mode"`
	Catalogusprijs float64  `json:"catalogusprijs"`
	Korting        float64  `json:"korting"`
	Prijs          *float64 `json:"prijs"`
}

// resolve fills the stored price from the request. In computed mode the
// price derives from catalog price and discount; in direct mode the
// entered price is stored verbatim and the discount is cleared.
func (req *LibraryItemRequest) resolve(item *entity.LibraryItem) {
	item.Catalogusprijs = req.Catalogusprijs
	item.Korting = req.Korting
	switch {
	case req.PrijsMode == PrijsModeDirect && req.Prijs != nil:
		item.Prijs = *req.Prijs
		item.Korting = 0
	case req.Prijs != nil && req.Catalogusprijs == 0:
		item.Prijs = *req.Prijs
	default:
		item.Prijs = ResolvePrice(req.Catalogusprijs, req.Korting)
	}
}

func (s *LibraryService) Create(ctx context.Context, req LibraryItemRequest) (*entity.LibraryItem, error) {
	if !entity.GeldigeCategorie(req.Categorie) {
		return nil, fmt.Errorf("onbekende categorie: %s", req.Categorie)
	}

	item := &entity.LibraryItem{
		ID:            uuid.New().String(),
		Categorie:     req.Categorie,
		Naam:          strings.TrimSpace(req.Naam),
		Artikelnummer: strings.TrimSpace(req.Artikelnummer),
		Omschrijving:  req.Omschrijving,
		Subcategorie:  req.Subcategorie,
		Leverancier:   req.Leverancier,
		Eenheid:       req.Eenheid,
	}
	if item.Eenheid == "" {
		item.Eenheid = "stuk"
	}
	req.resolve(item)

	if err := s.libraryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("bibliotheekitem aanmaken mislukt: %w", err)
	}
	s.invalidateCache(ctx)
	return item, nil
}

func (s *LibraryService) Update(ctx context.Context, id string, req LibraryItemRequest) (*entity.LibraryItem, error) {
	item, err := s.libraryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("bibliotheekitem niet gevonden: %w", err)
	}
	if !entity.GeldigeCategorie(req.Categorie) {
		return nil, fmt.Errorf("onbekende categorie: %s", req.Categorie)
	}

	item.Categorie = req.Categorie
	item.Naam = strings.TrimSpace(req.Naam)
	item.Artikelnummer = strings.TrimSpace(req.Artikelnummer)
	item.Omschrijving = req.Omschrijving
	item.Subcategorie = req.Subcategorie
	item.Leverancier = req.Leverancier
	if req.Eenheid != "" {
		item.Eenheid = req.Eenheid
	}
	req.resolve(item)

	if err := s.libraryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("bibliotheekitem bijwerken mislukt: %w", err)
	}
	s.invalidateCache(ctx)
	return item, nil
}

func (s *LibraryService) Delete(ctx context.Context, id string) error {
	if err := s.libraryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("bibliotheekitem verwijderen mislukt: %w", err)
	}
	s.invalidateCache(ctx)
	return nil
}
