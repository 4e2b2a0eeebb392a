package repository

import (
	"context"

	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/shared/dto"
)

// Store is the CRUD surface every table-backed domain repository exposes.
type Store[T any] interface {
	Insert(ctx context.Context, model T) error
	Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter dto.FilterGroup) error
	Delete(ctx context.Context, filter dto.FilterGroup) error
}

// WithDetail pairs a table's own repository with a read-only one over its detail
// model, whose GetJoinQuery expands the referenced rows.
type WithDetail[T, D any] struct {
	Repository[T]

	detail Repository[D]
}

func NewWithDetail[T, D any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) *WithDetail[T, D] {
	return &WithDetail[T, D]{
		Repository: NewRepository[T](entityName, tableName, primaryColumn, db, otl),
		detail:     NewRepository[D](entityName, tableName, primaryColumn, db, otl),
	}
}

func (r *WithDetail[T, D]) GetDetail(ctx context.Context, filter dto.FilterGroup) (D, error) {
	return r.detail.Get(ctx, filter)
}

func (r *WithDetail[T, D]) GetAllDetail(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]D, error) {
	return r.detail.GetAll(ctx, params, filter)
}

// NewStore builds a Store for a table without references.
func NewStore[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Store[T] {
	repo := NewRepository[T](entityName, tableName, primaryColumn, db, otl)

	return &repo
}
