package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/internal/model"
	"github.com/eventhotel/booking-api/internal/repository"
)

// EligibilityService decides whether a user may perform hotel booking
// actions: an enrollment must exist and it must hold a paid, in-person
// ticket whose type includes hotel accommodation.
type EligibilityService interface {
	CheckUser(ctx context.Context, userID uint) error
}

type eligibilityService struct {
	Enrollments repository.EnrollmentRepo
	Tickets     repository.TicketRepo
}

var _ EligibilityService = (*eligibilityService)(nil)

func NewEligibilityService(enrollments repository.EnrollmentRepo, tickets repository.TicketRepo) *eligibilityService {
	return &eligibilityService{
		Enrollments: enrollments,
		Tickets:     tickets,
	}
}

func (s *eligibilityService) CheckUser(ctx context.Context, userID uint) error {
	enrollment, err := s.Enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ticket, err := s.Tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}

	return checkTicket(ticket)
}

// checkTicket is the pure part of the decision; the ticket must carry
// its TicketType.
func checkTicket(ticket *model.Ticket) error {
	if ticket == nil ||
		ticket.Status == model.TicketReserved ||
		ticket.TicketType.IsRemote ||
		!ticket.TicketType.IncludesHotel {
		return ErrForbidden
	}
	return nil
}
