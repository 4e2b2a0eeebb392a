package model

import (
	"time"

	"hotelhills/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldRoomID   = "room_id"
	FieldGuestID  = "guest_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
)

const (
	StatusBooked     = "booked"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"
)

// Booking is a stay of a guest in a room between check-in and check-out.
type Booking struct {
	ID       string    `db:"id"`
	RoomID   string    `db:"room_id"`
	GuestID  string    `db:"guest_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Status   string    `db:"status"`
	model.Metadata
}

// BookingDetail is a booking joined with the current state of its room and guest.
type BookingDetail struct {
	Booking
	RoomNumber   string  `column:"number"  db:"room_number"   table:"rooms"`
	RoomType     string  `column:"type"    db:"room_type"     table:"rooms"`
	RoomStatus   string  `column:"status"  db:"room_status"   table:"rooms"`
	RoomPrice    float64 `column:"price"   db:"room_price"    table:"rooms"`
	GuestName    string  `column:"name"    db:"guest_name"    table:"guests"`
	GuestPhone   string  `column:"phone"   db:"guest_phone"   table:"guests"`
	GuestEmail   string  `column:"email"   db:"guest_email"   table:"guests"`
	GuestAddress string  `column:"address" db:"guest_address" table:"guests"`
}

func (BookingDetail) GetJoinQuery() string {
	return "INNER JOIN rooms ON rooms.id = bookings.room_id INNER JOIN guests ON guests.id = bookings.guest_id"
}
