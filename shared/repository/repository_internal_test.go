package repository

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hotelhills/infras/otel/mocks"
	"hotelhills/shared/dto"
	"hotelhills/shared/failure"
)

type sampleStay struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	CreatedAt time.Time `db:"created_at"`
}

type sampleStayDetail struct {
	sampleStay
	RoomNumber string  `db:"room_number" table:"rooms" column:"number"`
	RoomPrice  float64 `db:"room_price"  table:"rooms" column:"price"`
}

func (sampleStayDetail) GetJoinQuery() string {
	return "INNER JOIN rooms ON rooms.id = stays.room_id"
}

func TestNewRepository_DetailColumns(t *testing.T) {
	repo := NewRepository[sampleStayDetail]("stay", "stays", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "room_id", "created_at"}, repo.InsertColumns)
	assert.Equal(t, "INNER JOIN rooms ON rooms.id = stays.room_id", repo.join)
	assert.Equal(t,
		"stays.id, stays.room_id, stays.created_at, rooms.number AS room_number, rooms.price AS room_price",
		repo.getSelectQuery(),
	)
}

func TestRepository_OrderBy(t *testing.T) {
	repo := NewRepository[sampleStayDetail]("stay", "stays", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{
			name:   "known column keeps direction",
			params: dto.QueryParams{SortBy: "room_id", SortDir: dto.SortDirDesc},
			want:   "ORDER BY stays.room_id DESC, stays.id",
		},
		{
			name:   "joined alias is qualified with its table",
			params: dto.QueryParams{SortBy: "room_number"},
			want:   "ORDER BY rooms.number ASC, stays.id",
		},
		{
			name:   "unknown column falls back to newest first",
			params: dto.QueryParams{SortBy: "id; DROP TABLE stays", SortDir: dto.SortDirAsc},
			want:   "ORDER BY stays.created_at DESC, stays.id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderBy(tt.params))
		})
	}
}

func TestRepository_TranslateError(t *testing.T) {
	repo := NewRepository[sampleStay]("stay", "stays", "id", nil, mocks.NewOtel())

	unique := repo.translateError(&pq.Error{Code: "23505"}, "insert")
	assert.Equal(t, http.StatusConflict, failure.GetCode(unique))

	missingRef := repo.translateError(&pq.Error{Code: "23503"}, "insert")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(missingRef))

	stillReferenced := repo.translateError(&pq.Error{Code: "23503"}, operationDelete)
	assert.Equal(t, http.StatusConflict, failure.GetCode(stillReferenced))

	outOfRange := repo.translateError(&pq.Error{Code: "22003"}, "insert")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(outOfRange))
	assert.Equal(t, "stay has an amount out of range", outOfRange.Error())

	plain := repo.translateError(errors.New("connection reset"), "update")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(plain))
	assert.Contains(t, plain.Error(), "failed to update data (stay)")
}

var (
	_ Store[sampleStay] = (*Repository[sampleStay])(nil)
	_ Store[sampleStay] = (*WithDetail[sampleStay, sampleStayDetail])(nil)
)

func TestNewWithDetail(t *testing.T) {
	repo := NewWithDetail[sampleStay, sampleStayDetail]("stay", "stays", "id", nil, mocks.NewOtel())

	assert.Empty(t, repo.join, "writes never join")
	assert.Equal(t, []string{"id", "room_id", "created_at"}, repo.InsertColumns)
	assert.Equal(t, "INNER JOIN rooms ON rooms.id = stays.room_id", repo.detail.join)
}

func TestRepository_SelectQueryRestricted(t *testing.T) {
	repo := NewRepository[sampleStayDetail]("stay", "stays", "id", nil, mocks.NewOtel())

	assert.Equal(t, "stays.id, rooms.price AS room_price", repo.getSelectQuery("id", "price"))
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := NewRepository[sampleStay]("stay", "stays", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(dto.NewFilterGroup())
	assert.Empty(t, where)
	assert.Empty(t, args)

	group := dto.NewFilterGroup()
	group.AppendIfPresent(dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "r-1", Table: "stays"})

	where, args = repo.BuildWhereClause(group)
	assert.Contains(t, where, "stays.room_id = :")
	assert.Len(t, args, 1)
}
