package service

import (
	"context"
	"fmt"

	"horizon/infras/kafka"
	"horizon/internal/domains/booking/model"
	"horizon/internal/domains/booking/model/dto"
	"horizon/shared"
	"horizon/shared/constant"
	"horizon/shared/timezone"

	"github.com/rs/zerolog/log"
)

// StatusChangedEvent is published to Kafka after every successful transition.
type StatusChangedEvent struct {
	BookingID  string `json:"booking_id"`
	Reference  string `json:"reference"`
	RoomID     string `json:"room_id"`
	FromStatus string  `json:"from_status"`
	ToStatus   string  `json:"to_status"`
	Reason     *string `json:"reason,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// UpdateStatus moves a booking through its lifecycle. The transition policy
// decides which moves are legal; notification and event publishing are best
// effort and never fail the transition.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	status, ok := model.ParseStatus(req.Status)
	if !ok {
		return res, ErrInvalidStatus
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !s.policy.Allows(booking.Status, status) {
		log.Warn().
			Str("bookingID", id).
			Str("from", string(booking.Status)).
			Str("to", string(status)).
			Msg("status transition rejected")

		return res, ErrTransitionNotAllowed
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        string(status),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if status == model.StatusCancelled && req.CancellationReason != nil {
		fields[model.FieldCancellationReason] = *req.CancellationReason
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	updated, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	s.notifyStatusChange(ctx, updated, booking.Status)
	s.invalidateBooking(ctx, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) notifyStatusChange(ctx context.Context, booking model.Booking, from model.Status) {
	if booking.Status == model.StatusConfirmed || booking.Status == model.StatusCancelled {
		s.sendStatusMail(ctx, booking)
	}

	event := StatusChangedEvent{
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		RoomID:     booking.RoomID,
		FromStatus: string(from),
		ToStatus:   string(booking.Status),
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}

	if booking.Status == model.StatusCancelled {
		event.Reason = booking.CancellationReason
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, kafka.Message{
		Key:   booking.ID,
		Value: event,
	}); err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("failed to publish status change event")
	}
}

func (s *serviceImpl) sendStatusMail(ctx context.Context, booking model.Booking) {
	to := booking.NotifyEmail()
	if to == constant.Empty {
		return
	}

	roomLabel := booking.RoomTitle
	if roomLabel == constant.Empty {
		roomLabel = booking.RoomType
	}

	var subject, body string

	switch booking.Status {
	case model.StatusConfirmed:
		subject = "Votre réservation a été confirmée"
		body = fmt.Sprintf(
			"Bonjour %s,\n\nVotre réservation (%s) pour la chambre %s a été confirmée.\nNous avons hâte de vous accueillir !",
			booking.NotifyName(), booking.Reference, roomLabel,
		)
	case model.StatusCancelled:
		subject = "Votre réservation a été annulée"
		body = fmt.Sprintf(
			"Bonjour %s,\n\nNous sommes désolés de vous informer que votre réservation (%s) a été annulée.",
			booking.NotifyName(), booking.Reference,
		)
		if booking.CancellationReason != nil && *booking.CancellationReason != constant.Empty {
			body += fmt.Sprintf("\nRaison : %s", *booking.CancellationReason)
		}
		body += "\nContactez-nous pour plus d'informations."
	default:
		return
	}

	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("failed to send status notification mail")
	}
}
