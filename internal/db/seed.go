package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/WoolleyCutzz/salon-booking/internal/config"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

// Seed inserts the stylist catalog and the admin account. Stylists are
// upserted so a restart refreshes profile data without touching bookings.
func Seed(db *gorm.DB, cfg *config.Config) error {

	stylists := []models.Stylist{
		{
			ID:          "1",
			Name:        "Woolley Cutzz",
			Specialty:   "Herrklippning & Skäggvård",
			Bio:         "Professionell frisör med fokus på herrklippning och skäggvård. Erbjuder en avslappnad och professionell upplevelse i Kristinedal träningcenter.",
			Location:    "Kristinedal träningcenter",
			ImageURL:    "/images/stylist1.jpg",
			Experience:  5,
			Rating:      4.9,
			Specialties: []string{"Herrklippning", "Skäggvård"},
			Availability: models.Availability{
				Days: []string{"onsdag", "torsdag", "fredag", "lördag", "söndag"},
				Hours: []string{
					"11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
					"17:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00",
				},
			},
			Services: []models.Service{
				{
					ID:          1,
					StylistID:   "1",
					Name:        "Herrklippning",
					Price:       300,
					DurationMin: 30,
					Description: "Professionell herrklippning med skäggtrimning",
				},
				{
					ID:          2,
					StylistID:   "1",
					Name:        "Herrklippning med skägg",
					Price:       400,
					DurationMin: 45,
					Description: "Herrklippning med full skäggvård",
				},
			},
		},
	}

	for i := range stylists {
		st := stylists[i]
		services := st.Services
		st.Services = nil

		if err := db.
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&st).Error; err != nil {
			return err
		}

		for j := range services {
			if err := db.
				Clauses(clause.OnConflict{UpdateAll: true}).
				Create(&services[j]).Error; err != nil {
				return err
			}
		}
	}

	var count int64
	db.Model(&models.AdminUser{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Name:         "Woolley Cutzz",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	return db.Create(&admin).Error
}
