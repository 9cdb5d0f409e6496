package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/internal/model"
)

type TicketRepo interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*model.Ticket, error)
}

type ticketRepoGorm struct {
	db *gorm.DB
}

var _ TicketRepo = (*ticketRepoGorm)(nil)

func NewTicketRepoGorm(db *gorm.DB) *ticketRepoGorm {
	return &ticketRepoGorm{
		db: db,
	}
}

func (r *ticketRepoGorm) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*model.Ticket, error) {
	ticket, err := gorm.G[model.Ticket](r.db).
		Preload("TicketType", nil).
		Where("enrollment_id = ?", enrollmentID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
