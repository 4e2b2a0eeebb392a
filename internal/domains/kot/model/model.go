package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"hotelhills/shared/model"
)

const (
	TableName  = "kots"
	EntityName = "kot"

	FieldID      = "id"
	FieldTableID = "table_id"
	FieldItems   = "items"
	FieldStatus  = "status"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusServed     = "served"
)

var errUnsupportedItemsSource = errors.New("unsupported items source")

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Items is stored as a JSONB array.
type Items []Item

func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal items: %w", err)
	}

	return data, nil
}

func (i *Items) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*i = Items{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedItemsSource, src)
	}

	if err := json.Unmarshal(data, i); err != nil {
		return fmt.Errorf("failed to unmarshal items: %w", err)
	}

	return nil
}

// KOT is a kitchen order ticket raised for a restaurant table.
type KOT struct {
	ID      string `db:"id"`
	TableID string `db:"table_id"`
	Items   Items  `db:"items"`
	Status  string `db:"status"`
	model.Metadata
}

type KOTDetail struct {
	KOT
	TableNumber   string `column:"number"   db:"table_number"   table:"restaurant_tables"`
	TableCapacity int    `column:"capacity" db:"table_capacity" table:"restaurant_tables"`
	TableStatus   string `column:"status"   db:"table_status"   table:"restaurant_tables"`
}

func (KOTDetail) GetJoinQuery() string {
	return "INNER JOIN restaurant_tables ON restaurant_tables.id = kots.table_id"
}
