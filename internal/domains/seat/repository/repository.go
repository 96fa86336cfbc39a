package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/internal/domains/seat/model"
	gDto "desk/shared/dto"
	gRepo "desk/shared/repository"
)

type Seat interface {
	InsertBulk(ctx context.Context, models []model.Seat) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Seat, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Seat, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Seat]
}

func New(db *postgres.Connection, otel otel.Otel) Seat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Seat](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
