package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/bill/model"
	gDto "hotelhills/shared/dto"
	gRepo "hotelhills/shared/repository"
)

// Bill has no update or delete: generated bills are immutable.
type Bill interface {
	Insert(ctx context.Context, model model.Bill) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BillDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BillDetail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

func New(db *postgres.Connection, otel otel.Otel) Bill {
	return gRepo.NewWithDetail[model.Bill, model.BillDetail](model.EntityName, model.TableName, model.FieldID, db, otel)
}
