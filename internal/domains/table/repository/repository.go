package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/table/model"
	gRepo "hotelhills/shared/repository"
)

type Table interface {
	gRepo.Store[model.Table]
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return gRepo.NewStore[model.Table](model.EntityName, model.TableName, model.FieldID, db, otel)
}
