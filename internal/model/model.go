package model

import (
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Enrollment is the user's registration record. Its existence is the
// first precondition for any booking action.
type Enrollment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;uniqueIndex" json:"userId"`
	Name      string `gorm:"size:255;not null" json:"name"`
	CPF       string `gorm:"size:32;not null" json:"cpf"`
	Birthday  time.Time
	Phone     string `gorm:"size:32" json:"phone"`
	Street    string `gorm:"size:255" json:"street"`
	City      string `gorm:"size:128" json:"city"`
	State     string `gorm:"size:64" json:"state"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// TicketType decides booking eligibility: only paid, in-person tickets
// whose type includes hotel accommodation may book a room.
type TicketType struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Price         int    `gorm:"not null" json:"price"`
	IsRemote      bool   `gorm:"not null" json:"isRemote"`
	IncludesHotel bool   `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"not null;index" json:"ticketTypeId"`
	EnrollmentID uint         `gorm:"not null;index" json:"enrollmentId"`
	Status       TicketStatus `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	TicketType TicketType `gorm:"foreignKey:TicketTypeID" json:"TicketType"`
}

type Hotel struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Image     string `gorm:"size:512" json:"image"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Rooms []Room `gorm:"foreignKey:HotelID" json:"Rooms,omitempty"`
}

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	HotelID   uint      `gorm:"not null;index" json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Booking links a user to a room. The unique index on UserID makes the
// one-booking-per-user rule a storage constraint rather than an
// assumption hidden in query shape.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"-"`
	RoomID    uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID" json:"Room"`
}
