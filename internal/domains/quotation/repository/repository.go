package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/quotation/model"
	gDto "hotelhills/shared/dto"
	gRepo "hotelhills/shared/repository"
)

type Quotation interface {
	Insert(ctx context.Context, model model.Quotation) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.QuotationDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.QuotationDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

func New(db *postgres.Connection, otel otel.Otel) Quotation {
	return gRepo.NewWithDetail[model.Quotation, model.QuotationDetail](model.EntityName, model.TableName, model.FieldID, db, otel)
}
