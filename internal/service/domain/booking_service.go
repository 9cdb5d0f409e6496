package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/internal/model"
	"github.com/eventhotel/booking-api/internal/repository"
)

// BookingService orchestrates the eligibility check, room capacity
// accounting and booking persistence. Every operation re-runs the
// eligibility check; the decision is never cached across calls.
type BookingService interface {
	Get(ctx context.Context, userID uint) (*model.Booking, error)
	Create(ctx context.Context, userID, roomID uint) (uint, error)
	Update(ctx context.Context, userID, roomID, bookingID uint) (uint, error)
}

type bookingService struct {
	DB *gorm.DB

	Eligibility EligibilityService
	Bookings    repository.BookingRepo
	Rooms       repository.RoomRepo
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(db *gorm.DB, eligibility EligibilityService, bookings repository.BookingRepo, rooms repository.RoomRepo) *bookingService {
	return &bookingService{
		DB:          db,
		Eligibility: eligibility,
		Bookings:    bookings,
		Rooms:       rooms,
	}
}

func (s *bookingService) Get(ctx context.Context, userID uint) (*model.Booking, error) {
	if err := s.Eligibility.CheckUser(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// Create reserves a room for the user. The capacity check and the
// insert run in one transaction holding a lock on the room row, so
// concurrent requests cannot jointly overbook a room.
func (s *bookingService) Create(ctx context.Context, userID, roomID uint) (uint, error) {
	if err := s.Eligibility.CheckUser(ctx, userID); err != nil {
		return 0, err
	}

	var bookingID uint
	err := s.transact(ctx, func(tx *gorm.DB) error {
		rooms := s.Rooms.WithTx(tx)
		bookings := s.Bookings.WithTx(tx)

		room, err := rooms.FindByIDForUpdate(ctx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		exists, err := bookings.ExistsForUser(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrForbidden
		}

		occupied, err := bookings.CountForRoom(ctx, room.ID)
		if err != nil {
			return err
		}
		if occupied >= int64(room.Capacity) {
			return ErrRoomFull
		}

		booking := &model.Booking{UserID: userID, RoomID: room.ID}
		if err := bookings.Create(ctx, booking); err != nil {
			return ErrNotFound
		}
		bookingID = booking.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

// Update moves an existing booking to another room. The booking being
// moved is excluded from the target room's occupancy, so a reassignment
// within the current room is never blocked by itself.
func (s *bookingService) Update(ctx context.Context, userID, roomID, bookingID uint) (uint, error) {
	if err := s.Eligibility.CheckUser(ctx, userID); err != nil {
		return 0, err
	}

	err := s.transact(ctx, func(tx *gorm.DB) error {
		rooms := s.Rooms.WithTx(tx)
		bookings := s.Bookings.WithTx(tx)

		room, err := rooms.FindByIDForUpdate(ctx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		occupied, err := bookings.CountForRoomExcluding(ctx, room.ID, bookingID)
		if err != nil {
			return err
		}
		if occupied >= int64(room.Capacity) {
			return ErrRoomFull
		}

		owns, err := bookings.BelongsToUser(ctx, bookingID, userID)
		if err != nil {
			return err
		}
		if !owns {
			return ErrForbidden
		}

		rows, err := bookings.UpdateRoom(ctx, bookingID, room.ID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

// transact runs fn inside a transaction when a database handle is
// present; without one the repositories are used as-is.
func (s *bookingService) transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.DB == nil {
		return fn(nil)
	}
	return s.DB.WithContext(ctx).Transaction(fn)
}
