package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/internal/model"
)

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Enrollment{},
		&model.TicketType{},
		&model.Ticket{},
		&model.Hotel{},
		&model.Room{},
		&model.Booking{},
	)
}
