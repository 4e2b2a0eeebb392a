package model

import (
	"time"

	"hotelhills/shared/model"
)

const (
	TableName  = "banquet_bookings"
	EntityName = "banquet booking"

	FieldID        = "id"
	FieldBanquetID = "banquet_id"
	FieldGuestID   = "guest_id"
	FieldEventDate = "event_date"
	FieldStatus    = "status"
)

const (
	StatusBooked    = "booked"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type BanquetBooking struct {
	ID        string    `db:"id"`
	BanquetID string    `db:"banquet_id"`
	GuestID   string    `db:"guest_id"`
	EventDate time.Time `db:"event_date"`
	Status    string    `db:"status"`
	model.Metadata
}

type BanquetBookingDetail struct {
	BanquetBooking
	BanquetName     string  `column:"name"     db:"banquet_name"     table:"banquets"`
	BanquetCapacity int     `column:"capacity" db:"banquet_capacity" table:"banquets"`
	BanquetStatus   string  `column:"status"   db:"banquet_status"   table:"banquets"`
	BanquetPrice    float64 `column:"price"    db:"banquet_price"    table:"banquets"`
	GuestName       string  `column:"name"     db:"guest_name"       table:"guests"`
	GuestPhone      string  `column:"phone"    db:"guest_phone"      table:"guests"`
	GuestEmail      string  `column:"email"    db:"guest_email"      table:"guests"`
	GuestAddress    string  `column:"address"  db:"guest_address"    table:"guests"`
}

func (BanquetBookingDetail) GetJoinQuery() string {
	return "INNER JOIN banquets ON banquets.id = banquet_bookings.banquet_id " +
		"INNER JOIN guests ON guests.id = banquet_bookings.guest_id"
}
