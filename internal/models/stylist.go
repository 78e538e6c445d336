package models

import "time"

// Availability describes on which weekdays a stylist takes bookings and
// which slot start times are offered. Days hold Swedish weekday names,
// hours are "HH:MM" strings ordered ascending. The hour list is the same
// for every available day.
type Availability struct {
	Days  []string `json:"days"`
	Hours []string `json:"hours"`
}

type Stylist struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Specialty  string `gorm:"size:100" json:"specialty"`
	Bio        string `gorm:"size:500" json:"bio"`
	Location   string `gorm:"size:255" json:"location"`
	ImageURL   string `gorm:"size:255" json:"image"`
	Experience int    `json:"experience"`

	Rating float64 `json:"rating"`

	Specialties []string `gorm:"serializer:json" json:"specialties"`

	Availability Availability `gorm:"serializer:json" json:"availability"`

	Services []Service `gorm:"foreignKey:StylistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
