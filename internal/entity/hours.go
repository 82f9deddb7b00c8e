package entity

import (
	"time"
)

// Work types for hour registration.
var TypeWerkOpties = []string{
	"onderdelen",
	"monteren",
	"inpakken",
	"lakwerk",
	"metaalwerk",
	"overig",
}

// GeldigTypeWerk reports whether typeWerk is a known work type.
func GeldigTypeWerk(typeWerk string) bool {
	for _, t := range TypeWerkOpties {
		if t == typeWerk {
			return true
		}
	}
	return false
}

// HourEntry is one labor-hour registration on an order.
type HourEntry struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MedewerkerID string    `json:"medewerker_id" gorm:"type:uuid;not null;index"`
	ProjectID    string    `json:"project_id" gorm:"type:uuid;not null;index"`
	OrderID      string    `json:"order_id" gorm:"type:uuid;not null;index"`
	Datum        time.Time `json:"datum" gorm:"type:date;not null"`
	TypeWerk     string    `json:"type_werk" gorm:"size:32;not null;default:overig"`
	Uren         float64   `json:"uren" gorm:"type:decimal(6,2);not null"`
	CreatedAt    time.Time `json:"created_at"`

	Medewerker *Employee `json:"medewerker,omitempty" gorm:"foreignKey:MedewerkerID"`
}

func (HourEntry) TableName() string {
	return "uren_registratie"
}

// Employee can log hours; inactive employees stay for history but are
// hidden from the registration form.
type Employee struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Naam      string    `json:"naam" gorm:"size:255;not null"`
	Actief    bool      `json:"actief" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "medewerkers"
}
