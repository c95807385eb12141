package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=../mocks/availability_mock.go -package=mocks

import (
	"context"
	"time"

	"horizon/infras/otel"
	"horizon/internal/domains/booking/repository"
	"horizon/shared/constant"
)

// Availability answers whether a room is free over a half-open date range.
// It always reads the live ledger; caching here would admit double bookings.
type Availability interface {
	HasConflict(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

type availabilityImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func NewAvailability(repo repository.Booking, otel otel.Otel) Availability {
	return &availabilityImpl{
		repo: repo,
		otel: otel,
	}
}

func (a *availabilityImpl) HasConflict(ctx context.Context, roomID string, checkIn, checkOut time.Time) (conflict bool, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	blocking, err := a.repo.CountBlocking(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return blocking > 0, nil
}
