package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horizon/infras/otel"
	"horizon/infras/postgres"
	"horizon/internal/domains/booking/model"
	"horizon/shared/constant"
	gDto "horizon/shared/dto"
	"horizon/shared/logger"
	gRepo "horizon/shared/repository"
)

// ErrDateConflict is returned by InsertIfAvailable when a blocking booking
// claimed the date range between the caller's availability check and the
// insert itself.
var ErrDateConflict = errors.New("room already booked for the requested dates")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountBlocking(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	InsertIfAvailable(ctx context.Context, model model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BlockingFilter matches the bookings that hold roomID for any part of the
// half-open range [checkIn, checkOut).
func BlockingFilter(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	blocking := []string{}
	for _, status := range model.BlockingStatuses() {
		blocking = append(blocking, string(status))
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    blocking,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "before_check_out",
				Field:    model.FieldCheckIn,
				Value:    checkOut,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "after_check_in",
				Field:    model.FieldCheckOut,
				Value:    checkIn,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

// CountBlocking reads the live ledger, never a cache, so the availability
// answer reflects every committed booking.
func (repo *repositoryImpl) CountBlocking(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountBlocking")
	defer scope.End()

	return repo.Count(ctx, BlockingFilter(roomID, checkIn, checkOut)) //nolint:wrapcheck
}

// InsertIfAvailable re-checks the date range and inserts inside one
// transaction. A per-room advisory lock serializes concurrent admissions for
// the same room so two requests cannot both pass the re-check.
func (repo *repositoryImpl) InsertIfAvailable(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", booking.RoomID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire room lock (%s): %w", model.EntityName, err)
	}

	query := `SELECT COUNT(id) FROM bookings
		WHERE room_id = $1
		AND status IN ('confirmed', 'checked-in')
		AND check_in < $2
		AND check_out > $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var blocking int

	err = tx.GetContext(ctx, &blocking, query, booking.RoomID, booking.CheckOut, booking.CheckIn)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to re-check availability (%s): %w", model.EntityName, err)
	}

	if blocking > 0 {
		return ErrDateConflict
	}

	err = repo.InsertTx(ctx, tx, booking)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = tx.Commit()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking (%s): %w", model.EntityName, err)
	}

	return nil
}
