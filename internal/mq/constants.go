package mq

// Queue names and message definitions

// immediate queue carrying booking lifecycle events to downstream
// consumers (confirmation mails, reporting)
const (
	BookingEventsQueue = "booking.events.immediate"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
)

type BookingEventMessage struct {
	Event     string `json:"event"`
	BookingID uint   `json:"booking_id"`
	UserID    uint   `json:"user_id"`
	RoomID    uint   `json:"room_id"`
}
