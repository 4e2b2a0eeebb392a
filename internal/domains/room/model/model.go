package model

import "hotelhills/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID      = "id"
	FieldNumber  = "number"
	FieldType    = "type"
	FieldStatus  = "status"
	FieldPrice   = "price"
	FieldGuestID = "guest_id"
)

const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID      string  `db:"id"`
	Number  string  `db:"number"`
	Type    string  `db:"type"`
	Status  string  `db:"status"`
	Price   float64 `db:"price"`
	GuestID *string `db:"guest_id"`
	model.Metadata
}
