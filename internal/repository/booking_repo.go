package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/internal/model"
)

type BookingRepo interface {
	WithTx(tx *gorm.DB) BookingRepo
	Create(ctx context.Context, booking *model.Booking) error
	FindByUserID(ctx context.Context, userID uint) (*model.Booking, error)
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	BelongsToUser(ctx context.Context, bookingID, userID uint) (bool, error)
	CountForRoom(ctx context.Context, roomID uint) (int64, error)
	CountForRoomExcluding(ctx context.Context, roomID, bookingID uint) (int64, error)
	UpdateRoom(ctx context.Context, bookingID, roomID uint) (int, error)
}

type bookingRepoGorm struct {
	db *gorm.DB
}

var _ BookingRepo = (*bookingRepoGorm)(nil)

func NewBookingRepoGorm(db *gorm.DB) *bookingRepoGorm {
	return &bookingRepoGorm{
		db: db,
	}
}

func (r *bookingRepoGorm) WithTx(tx *gorm.DB) BookingRepo {
	return &bookingRepoGorm{
		db: tx,
	}
}

func (r *bookingRepoGorm) Create(ctx context.Context, booking *model.Booking) error {
	return gorm.G[model.Booking](r.db).Create(ctx, booking)
}

func (r *bookingRepoGorm) FindByUserID(ctx context.Context, userID uint) (*model.Booking, error) {
	booking, err := gorm.G[model.Booking](r.db).
		Preload("Room", nil).
		Where("user_id = ?", userID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	count, err := gorm.G[model.Booking](r.db).Where("user_id = ?", userID).Count(ctx, "id")
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepoGorm) BelongsToUser(ctx context.Context, bookingID, userID uint) (bool, error) {
	count, err := gorm.G[model.Booking](r.db).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Count(ctx, "id")
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepoGorm) CountForRoom(ctx context.Context, roomID uint) (int64, error) {
	return gorm.G[model.Booking](r.db).Where("room_id = ?", roomID).Count(ctx, "id")
}

// CountForRoomExcluding leaves out the booking that is being moved, so a
// reassignment within the same room is not blocked by its own occupancy.
func (r *bookingRepoGorm) CountForRoomExcluding(ctx context.Context, roomID, bookingID uint) (int64, error) {
	return gorm.G[model.Booking](r.db).
		Where("room_id = ? AND id <> ?", roomID, bookingID).
		Count(ctx, "id")
}

func (r *bookingRepoGorm) UpdateRoom(ctx context.Context, bookingID, roomID uint) (int, error) {
	return gorm.G[model.Booking](r.db).
		Where("id = ?", bookingID).
		Update(ctx, "room_id", roomID)
}
