package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/guest/model"
	gRepo "hotelhills/shared/repository"
)

type Guest interface {
	gRepo.Store[model.Guest]
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return gRepo.NewStore[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel)
}
