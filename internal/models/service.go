package models

import "time"

type Service struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StylistID string `gorm:"size:36;index" json:"stylist_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	DurationMin int    `json:"duration"`
	Price       int    `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
