package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/entity"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Import target fields, in the order they claim headers during
// auto-mapping. A header is tested against each field's keyword set top
// to bottom; the first field that matches wins the column.
var importFieldOrder = []string{
	"artikelnummer",
	"naam",
	"omschrijving",
	"eenheid",
	"subcategorie",
	"catalogusprijs",
	"korting",
	"eindprijs",
}

var importFieldKeywords = map[string][]string{
	"artikelnummer":  {"artikelnr", "article", "artnr"},
	"naam":           {"naam", "name", "product"},
	"omschrijving":   {"omschrijving", "description", "desc"},
	"eenheid":        {"eenheid", "unit"},
	"subcategorie":   {"categorie", "category", "groep"},
	"catalogusprijs": {"catalogus", "bruto", "lijst"},
	"korting":        {"korting", "discount"},
	"eindprijs":      {"eind", "netto", "prijs", "price"},
}

// ColumnMapping maps import fields to zero-based column indexes.
type ColumnMapping map[string]int

// ImportPreview is what the user reviews before committing an import.
type ImportPreview struct {
	Headers []string      `json:"headers"`
	Rows    [][]string    `json:"rows"`
	Mapping ColumnMapping `json:"mapping"`
}

type ImportService struct {
	libraryRepo *repository.LibraryRepository
	library     *LibraryService
	mc          *minio.Client
	bucket      string
	logger      *zap.Logger
}

func NewImportService(libraryRepo *repository.LibraryRepository, library *LibraryService, mc *minio.Client, bucket string, logger *zap.Logger) *ImportService {
	return &ImportService{
		libraryRepo: libraryRepo,
		library:     library,
		mc:          mc,
		bucket:      bucket,
		logger:      logger,
	}
}

// normalizeImportHeader lowers a header and drops everything that is not
// a letter or digit, so "Art.nr", "Art nr" and "artnr" compare equal.
func normalizeImportHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AutoMapColumns guesses the field mapping from the header row by
// case-insensitive substring matching; punctuation and spaces in headers
// are ignored. Headers that match no keyword set stay unmapped; each
// header is claimed by at most one field.
func AutoMapColumns(headers []string) ColumnMapping {
	mapping := ColumnMapping{}
	for index, header := range headers {
		h := normalizeImportHeader(header)
		for _, field := range importFieldOrder {
			if _, taken := mapping[field]; taken {
				continue
			}
			matched := false
			for _, keyword := range importFieldKeywords[field] {
				if strings.Contains(h, keyword) {
					matched = true
					break
				}
			}
			if matched {
				mapping[field] = index
				break
			}
		}
	}
	return mapping
}

// ParseImportNumber normalizes a spreadsheet cell to a float: the first
// comma becomes a period, currency symbols and other noise are stripped,
// and anything unparsable becomes 0. Cells with a thousands separator,
// like "1.234,56", keep their leading numeric prefix.
func ParseImportNumber(value string) float64 {
	if value == "" {
		return 0
	}
	cleaned := strings.Replace(value, ",", ".", 1)
	var b strings.Builder
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	for i := len(s) - 1; i > 0; i-- {
		if f, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return f
		}
	}
	return 0
}

// rowIsEmpty reports whether every cell of the row is blank.
func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Preview parses the uploaded workbook and proposes a column mapping.
// The workbook needs a header row and at least one data row; fully empty
// rows are dropped before anything else happens.
func (s *ImportService) Preview(data []byte) (*ImportPreview, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bestand kan niet gelezen worden: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("werkblad lezen mislukt: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("bestand bevat geen data")
	}

	headers := rows[0]
	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowIsEmpty(row) {
			continue
		}
		dataRows = append(dataRows, row)
	}
	if len(dataRows) == 0 {
		return nil, fmt.Errorf("bestand bevat geen data")
	}

	return &ImportPreview{
		Headers: headers,
		Rows:    dataRows,
		Mapping: AutoMapColumns(headers),
	}, nil
}

// ImportRequest commits a previewed import. Category and supplier apply
// to the whole batch; the mapping may have been adjusted by the user.
type ImportRequest struct {
	Categorie   string        `json:"categorie" binding:"required"`
	Leverancier string        `json:"leverancier"`
	Mapping     ColumnMapping `json:"mapping" binding:"required"`
	Rows        [][]string    `json:"rows" binding:"required"`
	Filename    string        `json:"filename"`
}

// BuildItems turns mapped rows into library items. Rows without a name
// are skipped. The final price falls back to catalog price minus
// discount when the price column is unmapped or empty.
func BuildItems(req ImportRequest) []entity.LibraryItem {
	cell := func(row []string, field string) string {
		index, ok := req.Mapping[field]
		if !ok || index < 0 || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	items := make([]entity.LibraryItem, 0, len(req.Rows))
	for _, row := range req.Rows {
		naam := cell(row, "naam")
		if naam == "" {
			continue
		}

		catalogusprijs := ParseImportNumber(cell(row, "catalogusprijs"))
		korting := ParseImportNumber(cell(row, "korting"))
		prijs := ResolvePrice(catalogusprijs, korting)
		if raw := cell(row, "eindprijs"); raw != "" {
			prijs = ParseImportNumber(raw)
		}

		eenheid := cell(row, "eenheid")
		if eenheid == "" {
			eenheid = "stuk"
		}

		items = append(items, entity.LibraryItem{
			ID:             uuid.New().String(),
			Categorie:      req.Categorie,
			Naam:           naam,
			Artikelnummer:  cell(row, "artikelnummer"),
			Omschrijving:   cell(row, "omschrijving"),
			Subcategorie:   cell(row, "subcategorie"),
			Leverancier:    req.Leverancier,
			Eenheid:        eenheid,
			Catalogusprijs: catalogusprijs,
			Korting:        korting,
			Prijs:          prijs,
		})
	}
	return items
}

// Import writes the mapped rows as one bulk insert. Nothing is written
// when validation fails or the insert errors. The original workbook is
// archived afterwards, best-effort.
func (s *ImportService) Import(ctx context.Context, req ImportRequest, original []byte) (int, error) {
	if !entity.GeldigeCategorie(req.Categorie) {
		return 0, fmt.Errorf("onbekende categorie: %s", req.Categorie)
	}
	if _, ok := req.Mapping["naam"]; !ok {
		return 0, fmt.Errorf("koppel minstens de kolom \"Naam\"")
	}

	items := BuildItems(req)
	if len(items) == 0 {
		return 0, fmt.Errorf("geen geldige items gevonden")
	}

	if err := s.libraryRepo.BatchCreate(ctx, items); err != nil {
		return 0, fmt.Errorf("importeren mislukt: %w", err)
	}
	s.library.invalidateCache(ctx)

	if len(original) > 0 {
		s.archive(ctx, req.Filename, original)
	}
	return len(items), nil
}

// archive stores the uploaded workbook in MinIO for later reference.
// Failures only log; the import itself already succeeded.
func (s *ImportService) archive(ctx context.Context, filename string, data []byte) {
	if s.mc == nil {
		return
	}
	if filename == "" {
		filename = "import.xlsx"
	}
	objectName := fmt.Sprintf("%s/%s", time.Now().Format("2006-01-02"), filename)
	_, err := s.mc.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		s.logger.Warn("import archive failed",
			zap.String("object", objectName),
			zap.Error(err),
		)
	}
}
