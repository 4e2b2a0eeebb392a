package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/kot/model"
	gDto "hotelhills/shared/dto"
	gRepo "hotelhills/shared/repository"
)

type KOT interface {
	Insert(ctx context.Context, model model.KOT) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.KOTDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.KOTDetail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

func New(db *postgres.Connection, otel otel.Otel) KOT {
	return gRepo.NewWithDetail[model.KOT, model.KOTDetail](model.EntityName, model.TableName, model.FieldID, db, otel)
}
