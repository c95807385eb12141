package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horizon/config"
	"horizon/infras/kafka"
	"horizon/infras/mailer"
	"horizon/infras/otel"
	"horizon/internal/domains/booking/model"
	"horizon/internal/domains/booking/model/dto"
	"horizon/internal/domains/booking/repository"
	roomModel "horizon/internal/domains/room/model"
	roomRepository "horizon/internal/domains/room/repository"
	"horizon/shared"
	"horizon/shared/cache"
	"horizon/shared/constant"
	gDto "horizon/shared/dto"
	gModel "horizon/shared/model"
	"horizon/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	defaultPaymentMethod = "credit-card"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByReference(ctx context.Context, reference string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepository.Room
	availability Availability
	policy       model.TransitionPolicy
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	mailer       mailer.Mailer
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	availability Availability,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	mailer mailer.Mailer,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		availability: availability,
		policy:       model.DefaultTransitionPolicy(),
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		mailer:       mailer,
		kafka:        kafka,
	}
}

// Create admits a booking request. Validation failures are reported through
// the sentinel errors in errors.go, in request order: dates first, then room
// resolution, capacity, and finally the date-range conflict check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, errIn := model.ParseDate(req.CheckIn)
	checkOut, errOut := model.ParseDate(req.CheckOut)
	if errIn != nil || errOut != nil {
		return res, ErrInvalidDate
	}

	if !checkIn.Before(checkOut) {
		return res, ErrInvalidDateRange
	}

	if checkIn.Before(model.Today()) {
		return res, ErrPastCheckIn
	}

	roomType, ok := roomModel.NormalizeType(req.RoomType)
	if !ok {
		log.Warn().Str("roomType", req.RoomType).Msg("unknown room type requested")

		return res, ErrUnknownRoomType
	}

	room, err := s.resolveRoom(ctx, roomType)
	if err != nil {
		return res, err
	}

	if req.Adults > room.CapacityAdults || req.Children > room.CapacityChildren {
		return res, ErrCapacityExceeded
	}

	conflict, err := s.availability.HasConflict(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if conflict {
		return res, ErrDateRangeConflict
	}

	nights := model.Nights(checkIn, checkOut)
	booking := s.buildBooking(ctx, req, room, checkIn, checkOut, nights)

	err = s.repo.InsertIfAvailable(ctx, booking)
	if errors.Is(err, repository.ErrDateConflict) {
		return res, ErrDateRangeConflict
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read created booking")

		return res, fmt.Errorf("failed to read created booking: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	return res, nil
}

// resolveRoom picks the representative room for a type. A type with no rooms
// at all and a type whose rooms are all flagged unavailable are distinct
// failures.
func (s *serviceImpl) resolveRoom(ctx context.Context, roomType roomModel.RoomType) (roomModel.Room, error) {
	room, err := s.roomRepo.FindAvailableByType(ctx, roomType)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up room by type")

		return room, fmt.Errorf("failed to look up room by type: %w", err)
	}

	if room.ID != constant.Empty {
		return room, nil
	}

	exist, err := s.roomRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldType,
				Value:    string(roomType),
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return room, fmt.Errorf("failed to check room type existence: %w", err)
	}

	if exist {
		return room, ErrRoomUnavailable
	}

	return room, ErrRoomTypeUnavailable
}

func (s *serviceImpl) buildBooking(ctx context.Context, req dto.CreateBookingRequest, room roomModel.Room, checkIn, checkOut time.Time, nights int) model.Booking {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var userID *string
	createdBy := constant.ContextGuest
	if user != constant.Empty {
		userID = &user
		createdBy = user
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == constant.Empty {
		paymentMethod = defaultPaymentMethod
	}

	return model.Booking{
		ID:              uuid.NewString(),
		Reference:       model.NewReference(),
		RoomID:          room.ID,
		UserID:          userID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          req.Adults,
		Children:        req.Children,
		Nights:          nights,
		TotalAmount:     float64(nights) * room.Price,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
		PaymentMethod:   paymentMethod,
		SpecialRequests: req.SpecialRequests,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// GetByReference backs the public tracking endpoint, looked up by the
// human-readable token instead of the internal id.
func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(reference, model.FieldReference, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by reference")

		return res, fmt.Errorf("failed to get booking by reference: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, ErrBookingNotFound
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	if req.PaymentStatus != constant.Empty {
		if _, ok := model.ParsePaymentStatus(req.PaymentStatus); !ok {
			return ErrInvalidStatus
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return ErrBookingNotFound
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, ErrBookingNotFound
	}

	return booking, nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()
}
