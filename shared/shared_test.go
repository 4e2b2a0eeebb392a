package shared_test

import (
	"testing"
	"time"

	"hotelhills/shared"
	"hotelhills/shared/constant"
	"hotelhills/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no rooms", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 42, limit: 0, want: 1},
		{name: "negative limit", total: 42, limit: -5, want: 1},
		{name: "exact pages", total: 40, limit: 10, want: 4},
		{name: "partial last page", total: 41, limit: 10, want: 5},
		{name: "limit above total", total: 3, limit: 10, want: 1},
		{name: "large table", total: 1000000, limit: 7, want: 142858},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomUpdate struct {
		Number   string   `db:"number"`
		Type     string   `db:"type"`
		Price    *float64 `db:"price"`
		Capacity *int     `db:"capacity"`
		Notes    string
		Internal string `db:"-"`
	}

	price := 180.5
	capacity := 0

	before := time.Now()
	fields := shared.TransformFields(roomUpdate{
		Type:     "Suite",
		Price:    &price,
		Capacity: &capacity,
		Notes:    "sea view",
		Internal: "skip",
	})

	assert.Equal(t, "Suite", fields["type"])
	assert.Equal(t, &price, fields["price"])
	assert.Equal(t, &capacity, fields["capacity"], "pointer to a zero value is still written")
	assert.NotContains(t, fields, "number")
	assert.NotContains(t, fields, "-")
	assert.Len(t, fields, 4)

	modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time)
	require.True(t, ok)
	assert.False(t, modifiedAt.Before(before.Add(-time.Second)))
}

func TestTransformFields_EmptyUpdateOnlyStampsModifiedAt(t *testing.T) {
	type guestUpdate struct {
		Name  string `db:"name"`
		Phone string `db:"phone"`
	}

	fields := shared.TransformFields(guestUpdate{})

	assert.Len(t, fields, 1)
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	require.Len(t, group.Filters, 1)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "550e8400-e29b-41d4-a716-446655440000"}, args)
}
