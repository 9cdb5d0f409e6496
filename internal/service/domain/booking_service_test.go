package domain

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/internal/model"
	"github.com/eventhotel/booking-api/internal/repository"
)

// fixture is a shared in-memory store backing the fake repositories.
type fixture struct {
	rooms    map[uint]model.Room
	bookings map[uint]model.Booking
	nextID   uint
}

func newFixture() *fixture {
	return &fixture{
		rooms:    map[uint]model.Room{},
		bookings: map[uint]model.Booking{},
		nextID:   1,
	}
}

type fakeBookingRepo struct {
	fx        *fixture
	createErr error
}

var _ repository.BookingRepo = (*fakeBookingRepo)(nil)

func (f *fakeBookingRepo) WithTx(_ *gorm.DB) repository.BookingRepo { return f }

func (f *fakeBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	booking.ID = f.fx.nextID
	f.fx.nextID++
	f.fx.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uint) (*model.Booking, error) {
	for _, b := range f.fx.bookings {
		if b.UserID == userID {
			b.Room = f.fx.rooms[b.RoomID]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) ExistsForUser(_ context.Context, userID uint) (bool, error) {
	for _, b := range f.fx.bookings {
		if b.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) BelongsToUser(_ context.Context, bookingID, userID uint) (bool, error) {
	b, ok := f.fx.bookings[bookingID]
	return ok && b.UserID == userID, nil
}

func (f *fakeBookingRepo) CountForRoom(_ context.Context, roomID uint) (int64, error) {
	var n int64
	for _, b := range f.fx.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CountForRoomExcluding(_ context.Context, roomID, bookingID uint) (int64, error) {
	var n int64
	for _, b := range f.fx.bookings {
		if b.RoomID == roomID && b.ID != bookingID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) UpdateRoom(_ context.Context, bookingID, roomID uint) (int, error) {
	b, ok := f.fx.bookings[bookingID]
	if !ok {
		return 0, nil
	}
	b.RoomID = roomID
	f.fx.bookings[bookingID] = b
	return 1, nil
}

type fakeRoomRepo struct {
	fx *fixture
}

var _ repository.RoomRepo = (*fakeRoomRepo)(nil)

func (f *fakeRoomRepo) WithTx(_ *gorm.DB) repository.RoomRepo { return f }

func (f *fakeRoomRepo) FindByID(_ context.Context, id uint) (*model.Room, error) {
	room, ok := f.fx.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &room, nil
}

func (f *fakeRoomRepo) FindByIDForUpdate(ctx context.Context, id uint) (*model.Room, error) {
	return f.FindByID(ctx, id)
}

// newBookingService builds a service over the fixture with eligible
// enrollments and tickets for the given user ids.
func newBookingService(fx *fixture, eligibleUsers ...uint) BookingService {
	enrollments := map[uint]*model.Enrollment{}
	tickets := map[uint]*model.Ticket{}
	for _, userID := range eligibleUsers {
		enrollmentID := userID + 100
		enrollments[userID] = &model.Enrollment{ID: enrollmentID, UserID: userID}
		tickets[enrollmentID] = paidHotelTicket(enrollmentID)
	}

	eligibility := NewEligibilityService(
		&fakeEnrollmentRepo{enrollments: enrollments},
		&fakeTicketRepo{tickets: tickets},
	)
	return NewBookingService(nil, eligibility, &fakeBookingRepo{fx: fx}, &fakeRoomRepo{fx: fx})
}

func TestBookingOpsWithoutEnrollment(t *testing.T) {
	fx := newFixture()
	fx.rooms[1] = model.Room{ID: 1, Name: "101", Capacity: 3, HotelID: 1}
	svc := newBookingService(fx) // nobody enrolled

	if _, err := svc.Get(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() = %v, want %v", err, ErrNotFound)
	}
	if _, err := svc.Create(context.Background(), 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Create() = %v, want %v", err, ErrNotFound)
	}
	if _, err := svc.Update(context.Background(), 1, 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update() = %v, want %v", err, ErrNotFound)
	}
}

func TestGetWithoutBooking(t *testing.T) {
	fx := newFixture()
	svc := newBookingService(fx, 1)

	if _, err := svc.Get(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() = %v, want %v", err, ErrNotFound)
	}
}

func TestCreateBooking(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}
	svc := newBookingService(fx, 1)

	bookingID, err := svc.Create(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if bookingID == 0 {
		t.Fatal("Create() returned zero booking id")
	}

	persisted, ok := fx.bookings[bookingID]
	if !ok {
		t.Fatalf("booking %d not persisted", bookingID)
	}
	if persisted.UserID != 1 || persisted.RoomID != 5 {
		t.Fatalf("persisted booking = %+v, want userID=1 roomID=5", persisted)
	}
}

func TestCreateBookingRoomMissing(t *testing.T) {
	fx := newFixture()
	svc := newBookingService(fx, 1)

	if _, err := svc.Create(context.Background(), 1, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Create() = %v, want %v", err, ErrNotFound)
	}
}

func TestCreateBookingRoomFull(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 1, HotelID: 1}
	fx.bookings[1] = model.Booking{ID: 1, UserID: 9, RoomID: 5}
	fx.nextID = 2
	svc := newBookingService(fx, 1)

	if _, err := svc.Create(context.Background(), 1, 5); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("Create() = %v, want %v", err, ErrRoomFull)
	}
}

func TestCreateSecondBookingForbidden(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}
	fx.rooms[6] = model.Room{ID: 6, Name: "306", Capacity: 3, HotelID: 1}
	svc := newBookingService(fx, 1)

	if _, err := svc.Create(context.Background(), 1, 5); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, 6); !errors.Is(err, ErrForbidden) {
		t.Fatalf("second Create() = %v, want %v", err, ErrForbidden)
	}
}

// The original surface reports a failed insert as a missing resource,
// not a server error.
func TestCreateBookingPersistFailure(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}

	eligibility := NewEligibilityService(
		&fakeEnrollmentRepo{enrollments: map[uint]*model.Enrollment{1: {ID: 101, UserID: 1}}},
		&fakeTicketRepo{tickets: map[uint]*model.Ticket{101: paidHotelTicket(101)}},
	)
	bookings := &fakeBookingRepo{fx: fx, createErr: errors.New("insert failed")}
	svc := NewBookingService(nil, eligibility, bookings, &fakeRoomRepo{fx: fx})

	if _, err := svc.Create(context.Background(), 1, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Create() = %v, want %v", err, ErrNotFound)
	}
}

func TestGetAfterCreate(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}
	svc := newBookingService(fx, 1)

	bookingID, err := svc.Create(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	booking, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if booking.ID != bookingID {
		t.Fatalf("Get() booking id = %d, want %d", booking.ID, bookingID)
	}
	if booking.Room.ID != 5 || booking.Room.Name != "305" {
		t.Fatalf("Get() room = %+v, want room 5 (305)", booking.Room)
	}
}

func TestUpdateBookingNotOwned(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}
	fx.bookings[7] = model.Booking{ID: 7, UserID: 2, RoomID: 5}
	fx.nextID = 8
	svc := newBookingService(fx, 1, 2)

	if _, err := svc.Update(context.Background(), 1, 5, 7); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Update() = %v, want %v", err, ErrForbidden)
	}
}

func TestUpdateBookingTargetFull(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}
	fx.rooms[6] = model.Room{ID: 6, Name: "306", Capacity: 1, HotelID: 1}
	fx.bookings[1] = model.Booking{ID: 1, UserID: 1, RoomID: 5}
	fx.bookings[2] = model.Booking{ID: 2, UserID: 9, RoomID: 6}
	fx.nextID = 3
	svc := newBookingService(fx, 1)

	if _, err := svc.Update(context.Background(), 1, 6, 1); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("Update() = %v, want %v", err, ErrRoomFull)
	}
}

func TestUpdateBookingMovesRoom(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 3, HotelID: 1}
	fx.rooms[6] = model.Room{ID: 6, Name: "306", Capacity: 1, HotelID: 1}
	fx.bookings[1] = model.Booking{ID: 1, UserID: 1, RoomID: 5}
	fx.nextID = 2
	svc := newBookingService(fx, 1)

	bookingID, err := svc.Update(context.Background(), 1, 6, 1)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if bookingID != 1 {
		t.Fatalf("Update() booking id = %d, want 1", bookingID)
	}
	if got := fx.bookings[1].RoomID; got != 6 {
		t.Fatalf("booking room = %d, want 6", got)
	}
}

// Moving a booking within its current room is not blocked by the
// booking's own occupancy, even at capacity 1.
func TestUpdateBookingSameRoomAtCapacity(t *testing.T) {
	fx := newFixture()
	fx.rooms[5] = model.Room{ID: 5, Name: "305", Capacity: 1, HotelID: 1}
	fx.bookings[1] = model.Booking{ID: 1, UserID: 1, RoomID: 5}
	fx.nextID = 2
	svc := newBookingService(fx, 1)

	if _, err := svc.Update(context.Background(), 1, 5, 1); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

// End-to-end capacity scenario: one eligible user fills a capacity-1
// room, a second eligible user is then rejected.
func TestCapacityExhaustionScenario(t *testing.T) {
	fx := newFixture()
	fx.rooms[1] = model.Room{ID: 1, Name: "101", Capacity: 1, HotelID: 1}
	svc := newBookingService(fx, 1, 2)

	bookingID, err := svc.Create(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Create() for user 1 error = %v", err)
	}

	booking, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if booking.ID != bookingID || booking.Room.ID != 1 {
		t.Fatalf("Get() = %+v, want booking %d in room 1", booking, bookingID)
	}

	if _, err := svc.Create(context.Background(), 2, 1); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("Create() for user 2 = %v, want %v", err, ErrRoomFull)
	}
}
