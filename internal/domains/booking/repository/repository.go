package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/internal/domains/booking/model"
	gDto "desk/shared/dto"
	gRepo "desk/shared/repository"
)

const constraintSeatDate = "uq_seat_bookings_seat_date"

var (
	// ErrAlreadyBooked is returned by Create when the seat is taken for the date.
	ErrAlreadyBooked = errors.New("seat already booked for date")
	// ErrSeatMissing is returned by Create when the seat row does not exist.
	ErrSeatMissing = errors.New("seat does not exist")
)

type Booking interface {
	Create(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Create inserts the booking. The (seat_id, date) unique index decides races,
// so concurrent callers for the same seat and day see exactly one success.
func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) error {
	err := r.Insert(ctx, booking)

	switch {
	case err == nil:
		return nil
	case gRepo.IsUniqueViolation(err, constraintSeatDate):
		return ErrAlreadyBooked
	case gRepo.IsForeignKeyViolation(err):
		return ErrSeatMissing
	default:
		return err
	}
}
