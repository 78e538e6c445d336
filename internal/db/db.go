package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/WoolleyCutzz/salon-booking/internal/config"
	"github.com/WoolleyCutzz/salon-booking/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Stylist{},
		&models.Service{},
		&models.Booking{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Uniqueness of (stylist_id, date, time) is enforced by the database so
	// a second writer racing past the application-level check is rejected
	// at insert time. With the cancelled-slot policy enabled the index only
	// covers live bookings, freeing cancelled slots for rebooking.
	if cfg.FreeCancelledSlots {
		db.Exec(`DROP INDEX IF EXISTS uq_bookings_stylist_slot`)
		db.Exec(`
            CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_stylist_slot_live
            ON bookings (stylist_id, date, time)
            WHERE status <> 'cancelled'
        `)
	} else {
		db.Exec(`DROP INDEX IF EXISTS uq_bookings_stylist_slot_live`)
		db.Exec(`
            CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_stylist_slot
            ON bookings (stylist_id, date, time)
        `)
	}

	if err := Seed(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed")
	}

	return db
}
