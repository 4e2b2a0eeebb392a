package model

import (
	"time"

	"hotelhills/shared/model"
)

const (
	TableName  = "table_bookings"
	EntityName = "table booking"

	FieldID          = "id"
	FieldTableID     = "table_id"
	FieldGuestID     = "guest_id"
	FieldBookingTime = "booking_time"
	FieldStatus      = "status"
)

const (
	StatusReserved  = "reserved"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type TableBooking struct {
	ID          string    `db:"id"`
	TableID     string    `db:"table_id"`
	GuestID     string    `db:"guest_id"`
	BookingTime time.Time `db:"booking_time"`
	Status      string    `db:"status"`
	model.Metadata
}

type TableBookingDetail struct {
	TableBooking
	TableNumber   string `column:"number"   db:"table_number"   table:"restaurant_tables"`
	TableCapacity int    `column:"capacity" db:"table_capacity" table:"restaurant_tables"`
	TableStatus   string `column:"status"   db:"table_status"   table:"restaurant_tables"`
	GuestName     string `column:"name"     db:"guest_name"     table:"guests"`
	GuestPhone    string `column:"phone"    db:"guest_phone"    table:"guests"`
	GuestEmail    string `column:"email"    db:"guest_email"    table:"guests"`
	GuestAddress  string `column:"address"  db:"guest_address"  table:"guests"`
}

func (TableBookingDetail) GetJoinQuery() string {
	return "INNER JOIN restaurant_tables ON restaurant_tables.id = table_bookings.table_id " +
		"INNER JOIN guests ON guests.id = table_bookings.guest_id"
}
