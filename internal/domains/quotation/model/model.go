package model

import (
	"time"

	"hotelhills/shared/model"
)

const (
	TableName  = "quotations"
	EntityName = "quotation"

	FieldID               = "id"
	FieldBanquetBookingID = "banquet_booking_id"
	FieldAmount           = "amount"
	FieldDetails          = "details"
	FieldStatus           = "status"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Quotation struct {
	ID               string  `db:"id"`
	BanquetBookingID string  `db:"banquet_booking_id"`
	Amount           float64 `db:"amount"`
	Details          string  `db:"details"`
	Status           string  `db:"status"`
	model.Metadata
}

type QuotationDetail struct {
	Quotation
	BanquetID        string    `column:"banquet_id" db:"booking_banquet_id" table:"banquet_bookings"`
	GuestID          string    `column:"guest_id"   db:"booking_guest_id"   table:"banquet_bookings"`
	BookingEventDate time.Time `column:"event_date" db:"booking_event_date" table:"banquet_bookings"`
	BookingStatus    string    `column:"status"     db:"booking_status"     table:"banquet_bookings"`
}

func (QuotationDetail) GetJoinQuery() string {
	return "INNER JOIN banquet_bookings ON banquet_bookings.id = quotations.banquet_booking_id"
}
