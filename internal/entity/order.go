package entity

import (
	"time"
)

// Order hoofdstatus, linear quote-to-delivery sequence.
const (
	StatusPrijsvraag         = "prijsvraag"
	StatusGeteld             = "geteld"
	StatusOfferteVerstuurd   = "offerte_verstuurd"
	StatusGoedgekeurd        = "goedgekeurd"
	StatusInProductie        = "in_productie"
	StatusKwaliteitscontrole = "kwaliteitscontrole"
	StatusKlaarVoorPlaatsing = "klaar_voor_plaatsing"
	StatusInPlaatsing        = "in_plaatsing"
	StatusGeplaatst          = "geplaatst"
	StatusOpgeleverd         = "opgeleverd"
)

// StatusVolgorde is the canonical status order for sorting and display.
var StatusVolgorde = []string{
	StatusPrijsvraag,
	StatusGeteld,
	StatusOfferteVerstuurd,
	StatusGoedgekeurd,
	StatusInProductie,
	StatusKwaliteitscontrole,
	StatusKlaarVoorPlaatsing,
	StatusInPlaatsing,
	StatusGeplaatst,
	StatusOpgeleverd,
}

// Kanban columns group the statuses for the board view.
const (
	KolomOfferte       = "offerte"
	KolomVoorbereiding = "voorbereiding"
	KolomProductie     = "productie"
	KolomPlaatsing     = "plaatsing"
	KolomAfgerond      = "afgerond"
)

// KolomVolgorde is the board column order, left to right.
var KolomVolgorde = []string{
	KolomOfferte,
	KolomVoorbereiding,
	KolomProductie,
	KolomPlaatsing,
	KolomAfgerond,
}

// kolomStatussen maps each column to its member statuses.
var kolomStatussen = map[string][]string{
	KolomOfferte:       {StatusPrijsvraag, StatusGeteld, StatusOfferteVerstuurd},
	KolomVoorbereiding: {StatusGoedgekeurd},
	KolomProductie:     {StatusInProductie, StatusKwaliteitscontrole},
	KolomPlaatsing:     {StatusKlaarVoorPlaatsing, StatusInPlaatsing},
	KolomAfgerond:      {StatusGeplaatst, StatusOpgeleverd},
}

// KolomVoorStatus returns the kanban column for a status. Unknown or
// empty statuses land in the quote column.
func KolomVoorStatus(status string) string {
	for _, kolom := range KolomVolgorde {
		for _, s := range kolomStatussen[kolom] {
			if s == status {
				return kolom
			}
		}
	}
	return KolomOfferte
}

// StatussenVoorKolom returns the member statuses of a column.
func StatussenVoorKolom(kolom string) []string {
	return kolomStatussen[kolom]
}

// DropStatus is the status an order gets when dropped on a column.
func DropStatus(kolom string) string {
	switch kolom {
	case KolomOfferte:
		return StatusPrijsvraag
	case KolomVoorbereiding:
		return StatusGoedgekeurd
	case KolomProductie:
		return StatusInProductie
	case KolomPlaatsing:
		return StatusKlaarVoorPlaatsing
	case KolomAfgerond:
		return StatusOpgeleverd
	default:
		return StatusPrijsvraag
	}
}

// GeldigeStatus reports whether status is one of the ten defined values.
func GeldigeStatus(status string) bool {
	for _, s := range StatusVolgorde {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a unit of manufacturing work within a project.
type Order struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID string `json:"project_id" gorm:"type:uuid;not null;index"`
	Naam      string `json:"naam" gorm:"size:255;not null"`
	Status    string `json:"status" gorm:"size:32;not null;default:prijsvraag;index"`

	// Drawing track: klaar -> goedgekeurd. Material track: besteld -> binnen.
	// Both end flags must be set before the order may enter production.
	TekeningKlaar       bool `json:"tekening_klaar" gorm:"default:false"`
	TekeningGoedgekeurd bool `json:"tekening_goedgekeurd" gorm:"default:false"`
	MateriaalBesteld    bool `json:"materiaal_besteld" gorm:"default:false"`
	MateriaalBinnen     bool `json:"materiaal_binnen" gorm:"default:false"`

	IsMeerwerk bool `json:"is_meerwerk" gorm:"default:false"`
	Spoed      bool `json:"spoed" gorm:"default:false"`

	BegroteUren     float64    `json:"begrote_uren" gorm:"type:decimal(8,2);default:0"`
	Plaatsingsdatum *time.Time `json:"plaatsingsdatum"`
	Notitie         string     `json:"notitie" gorm:"type:text"`

	OfferteKorting     float64 `json:"offerte_korting" gorm:"type:decimal(12,2);default:0"`
	OfferteKortingType string  `json:"offerte_korting_type" gorm:"size:16;default:procent"`

	// Post-hoc bookkeeping flags.
	UrenCompleet       bool `json:"uren_compleet" gorm:"default:false"`
	NacalculatieGedaan bool `json:"nacalculatie_gedaan" gorm:"default:false"`

	AddedFrom string    `json:"added_from" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// KanNaarProductie reports whether the production guard is satisfied.
func (o *Order) KanNaarProductie() bool {
	return o.TekeningGoedgekeurd && o.MateriaalBinnen
}

// Kolom returns the derived kanban column for this order.
func (o *Order) Kolom() string {
	return KolomVoorStatus(o.Status)
}

// OrderItem is a quote line on an order. The library reference is
// nullable: the snapshot fields keep the line intact when the library
// item is later edited or removed.
type OrderItem struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID         string    `json:"order_id" gorm:"type:uuid;not null;index"`
	BibliotheekID   *string   `json:"bibliotheek_id" gorm:"type:uuid;index"`
	Categorie       string    `json:"categorie" gorm:"size:32"`
	Naam            string    `json:"naam" gorm:"size:255;not null"`
	Eenheid         string    `json:"eenheid" gorm:"size:32;default:stuk"`
	Aantal          float64   `json:"aantal" gorm:"type:decimal(12,2);not null;default:1"`
	PrijsPerEenheid float64   `json:"prijs_per_eenheid" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
