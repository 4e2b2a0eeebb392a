package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/banquet/model"
	gRepo "hotelhills/shared/repository"
)

type Banquet interface {
	gRepo.Store[model.Banquet]
}

func New(db *postgres.Connection, otel otel.Otel) Banquet {
	return gRepo.NewStore[model.Banquet](model.EntityName, model.TableName, model.FieldID, db, otel)
}
