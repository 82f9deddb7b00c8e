package entity

import (
	"time"
)

// Template is a reusable bundle of library items with quantities,
// applied to an order in one step.
type Template struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Naam         string    `json:"naam" gorm:"size:255;not null"`
	Omschrijving string    `json:"omschrijving" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Items []TemplateItem `json:"items,omitempty" gorm:"foreignKey:TemplateID"`
}

func (Template) TableName() string {
	return "sjablonen"
}

type TemplateItem struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TemplateID    string    `json:"sjabloon_id" gorm:"column:sjabloon_id;type:uuid;not null;index"`
	BibliotheekID string    `json:"bibliotheek_id" gorm:"type:uuid;not null"`
	Aantal        float64   `json:"aantal" gorm:"type:decimal(12,2);not null;default:1"`
	CreatedAt     time.Time `json:"created_at"`

	Bibliotheek *LibraryItem `json:"bibliotheek,omitempty" gorm:"foreignKey:BibliotheekID"`
}

func (TemplateItem) TableName() string {
	return "sjabloon_items"
}
