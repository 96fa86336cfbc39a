package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/internal/domains/holiday/model"
	"desk/shared/calendar"
	gDto "desk/shared/dto"
	gRepo "desk/shared/repository"
)

const constraintUniqueDate = "uq_holidays_date"

var ErrDuplicateDate = errors.New("holiday already exists on date")

type Holiday interface {
	Insert(ctx context.Context, model model.Holiday) error
	InsertBulk(ctx context.Context, models []model.Holiday) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Holiday, error)
	GetByDate(ctx context.Context, date time.Time) (model.Holiday, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Holiday, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Holiday]
}

func New(db *postgres.Connection, otel otel.Otel) Holiday {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Holiday](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Insert maps a clash on the date index to ErrDuplicateDate.
func (r *repositoryImpl) Insert(ctx context.Context, holiday model.Holiday) error {
	err := r.Repository.Insert(ctx, holiday)
	if gRepo.IsUniqueViolation(err, constraintUniqueDate) {
		return ErrDuplicateDate
	}

	return err
}

func (r *repositoryImpl) GetByDate(ctx context.Context, date time.Time) (model.Holiday, bool, error) {
	holiday, err := r.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Value:    calendar.FormatDate(date),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		return holiday, false, err
	}

	return holiday, holiday.ID != "", nil
}
