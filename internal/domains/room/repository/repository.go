package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/internal/domains/room/model"
	gRepo "hotelhills/shared/repository"
)

type Room interface {
	gRepo.Store[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return gRepo.NewStore[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel)
}
