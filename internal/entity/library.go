package entity

import (
	"time"
)

// Library categories, a fixed set.
const (
	CategorieMateriaal      = "materiaal"
	CategorieArbeid         = "arbeid"
	CategorieMaterieel      = "materieel"
	CategorieOnderaanneming = "onderaanneming"
)

// Categorieen lists the valid library categories.
var Categorieen = []string{
	CategorieMateriaal,
	CategorieArbeid,
	CategorieMaterieel,
	CategorieOnderaanneming,
}

// GeldigeCategorie reports whether categorie is one of the fixed set.
func GeldigeCategorie(categorie string) bool {
	for _, c := range Categorieen {
		if c == categorie {
			return true
		}
	}
	return false
}

// LibraryItem is a priced catalog entry usable on orders. Prijs is
// either entered directly or derived from catalogusprijs and korting.
type LibraryItem struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Categorie      string    `json:"categorie" gorm:"size:32;not null;index"`
	Naam           string    `json:"naam" gorm:"size:255;not null"`
	Artikelnummer  string    `json:"artikelnummer" gorm:"size:64"`
	Omschrijving   string    `json:"omschrijving" gorm:"type:text"`
	Subcategorie   string    `json:"subcategorie" gorm:"size:128"`
	Leverancier    string    `json:"leverancier" gorm:"size:255;index"`
	Eenheid        string    `json:"eenheid" gorm:"size:32;default:stuk"`
	Catalogusprijs float64   `json:"catalogusprijs" gorm:"type:decimal(12,2);default:0"`
	Korting        float64   `json:"korting" gorm:"type:decimal(5,2);default:0"`
	Prijs          float64   `json:"prijs" gorm:"type:decimal(12,2);default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (LibraryItem) TableName() string {
	return "bibliotheek"
}
