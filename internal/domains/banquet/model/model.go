package model

import "hotelhills/shared/model"

const (
	TableName  = "banquets"
	EntityName = "banquet"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldStatus   = "status"
	FieldPrice    = "price"
)

const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
)

// Banquet is a hall that can be booked for events.
type Banquet struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Capacity int     `db:"capacity"`
	Status   string  `db:"status"`
	Price    float64 `db:"price"`
	model.Metadata
}
