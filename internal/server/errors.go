package server

import "errors"

// Validation failures surfaced to clients as room_error notices. None of
// these are fatal; authorization failures inside a room are silent no-ops
// and never reach this layer.
var (
	ErrRoomNotFound  = errors.New("room code not found")
	ErrInvalidBuyIn  = errors.New("invalid buy-in")
	ErrMalformedData = errors.New("malformed message data")
)

// userText maps a validation error to its client-facing wording.
func userText(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "Room code not found."
	case errors.Is(err, ErrInvalidBuyIn):
		return "Enter a valid buy-in."
	default:
		return "Invalid request."
	}
}
