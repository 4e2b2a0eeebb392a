package model

import "hotelhills/shared/model"

const (
	TableName  = "restaurant_tables"
	EntityName = "table"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldCapacity = "capacity"
	FieldStatus   = "status"
)

const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusOccupied  = "occupied"
)

// Table is a restaurant table.
type Table struct {
	ID       string `db:"id"`
	Number   string `db:"number"`
	Capacity int    `db:"capacity"`
	Status   string `db:"status"`
	model.Metadata
}
