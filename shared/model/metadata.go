package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// NewMetadata stamps both timestamps with the same instant.
func NewMetadata(now time.Time) Metadata {
	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
	}
}
