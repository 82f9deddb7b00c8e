package entity

import (
	"time"
)

// Project groups manufacturing orders for one client job.
type Project struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectNummer string    `json:"project_nummer" gorm:"size:32;index"`
	Naam          string    `json:"naam" gorm:"size:255;not null"`
	Klant         string    `json:"klant" gorm:"size:255"`
	Architect     string    `json:"architect" gorm:"size:255"`
	Telefoon      string    `json:"telefoon" gorm:"size:64"`
	Email         string    `json:"email" gorm:"size:255"`
	Adres         string    `json:"adres" gorm:"type:text"`
	Notities      string    `json:"notities" gorm:"type:text"`
	Kleur         string    `json:"kleur" gorm:"size:32"`
	Emoji         string    `json:"emoji" gorm:"size:16"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "projecten"
}
