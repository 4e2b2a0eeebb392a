package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/menu/model"
	gRepo "hotelhills/shared/repository"
)

type Menu interface {
	gRepo.Store[model.Menu]
}

func New(db *postgres.Connection, otel otel.Otel) Menu {
	return gRepo.NewStore[model.Menu](model.EntityName, model.TableName, model.FieldID, db, otel)
}
