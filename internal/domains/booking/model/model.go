package model

import (
	"hotelier/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldTotalAmount   = "total_amount"
	FieldBookingStatus = "booking_status"

	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Booking struct {
	ID            int64     `db:"id"`
	GuestID       int64     `db:"guest_id"`
	RoomID        int64     `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	TotalAmount   float64   `db:"total_amount"`
	BookingStatus string    `db:"booking_status"`
	GuestName     string    `db:"guest_name"  table:"guests" column:"name"`
	RoomNumber    string    `db:"room_number" table:"rooms"  column:"room_number"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON guests.id = bookings.guest_id JOIN rooms ON rooms.id = bookings.room_id"
}
