package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventhotel/booking-api/internal/model"
)

type RoomRepo interface {
	WithTx(tx *gorm.DB) RoomRepo
	FindByID(ctx context.Context, id uint) (*model.Room, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Room, error)
}

type roomRepoGorm struct {
	db *gorm.DB
}

var _ RoomRepo = (*roomRepoGorm)(nil)

func NewRoomRepoGorm(db *gorm.DB) *roomRepoGorm {
	return &roomRepoGorm{
		db: db,
	}
}

func (r *roomRepoGorm) WithTx(tx *gorm.DB) RoomRepo {
	return &roomRepoGorm{
		db: tx,
	}
}

func (r *roomRepoGorm) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	room, err := gorm.G[model.Room](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate takes a row lock on the room so that the capacity
// check and the subsequent booking write serialize across requests.
// Must run inside a transaction.
func (r *roomRepoGorm) FindByIDForUpdate(ctx context.Context, id uint) (*model.Room, error) {
	room, err := gorm.G[model.Room](r.db, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
