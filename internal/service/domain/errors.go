// Package domain holds the booking business logic. Sentinel errors let
// handlers translate failures into HTTP statuses with errors.Is.
package domain

import "errors"

// ErrNotFound is returned when a record in the booking chain
// (enrollment, room, booking) does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the user's ticket does not permit hotel
// booking, or the user acts on a booking they do not own.
var ErrForbidden = errors.New("forbidden")

// ErrRoomFull is returned when a room has no free capacity left.
var ErrRoomFull = errors.New("room full")

// ErrUnauthorized is produced by the auth gate, never by the services.
var ErrUnauthorized = errors.New("unauthorized")
