package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"horizon/infras/otel"
	"horizon/infras/postgres"
	"horizon/internal/domains/room/model"
	"horizon/shared/constant"
	gDto "horizon/shared/dto"
	"horizon/shared/logger"
	gRepo "horizon/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailableByType(ctx context.Context, roomType model.RoomType) (model.Room, error)
	FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time, roomType model.RoomType) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailableByType returns the first available room of the given type.
func (repo *repositoryImpl) FindAvailableByType(ctx context.Context, roomType model.RoomType) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailableByType")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Value:    string(roomType),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter) //nolint:wrapcheck
}

// FindAvailableBetween returns the rooms free of blocking bookings over
// [checkIn, checkOut). An empty roomType means all types.
func (repo *repositoryImpl) FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time, roomType model.RoomType) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailableBetween")
	defer scope.End()

	query := `SELECT id, room_number, type, title, description, price,
			capacity_adults, capacity_children, bed_type, size, floor,
			amenities, is_available, created_at, modified_at, created_by, modified_by
		FROM rooms
		WHERE is_available = TRUE
		AND (:type = '' OR type = :type)
		AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = rooms.id
			AND b.status IN ('confirmed', 'checked-in')
			AND b.check_in < :check_out
			AND b.check_out > :check_in
		)
		ORDER BY price ASC, room_number ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"type":      string(roomType),
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var rooms []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}
