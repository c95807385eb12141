package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"horizon/internal/domains/booking/model"
	"horizon/internal/domains/booking/model/dto"
	"horizon/shared/constant"
	gModel "horizon/shared/model"
	"horizon/shared/timezone"
)

func sampleBooking(id string) model.Booking {
	now := timezone.Now()
	guestName := "Jane Guest"
	guestEmail := "jane@example.com"
	requests := "late check-in"

	return model.Booking{
		ID:              id,
		Reference:       "HTL-TEST-ABC12",
		RoomID:          "room-1",
		CheckIn:         timezone.Now().Truncate(24 * time.Hour),
		CheckOut:        timezone.Now().AddDate(0, 0, 3).Truncate(24 * time.Hour),
		Adults:          2,
		Children:        1,
		Nights:          3,
		TotalAmount:     450,
		Status:          model.StatusConfirmed,
		PaymentStatus:   model.PaymentPending,
		PaymentMethod:   "credit-card",
		SpecialRequests: &requests,
		ContactPhone:    "+21612345678",
		ContactEmail:    "contact@example.com",
		RoomNumber:      "101",
		RoomType:        "deluxe",
		RoomTitle:       "Deluxe Room",
		RoomPrice:       150,
		GuestName:       &guestName,
		GuestEmail:      &guestEmail,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	bookingModel := sampleBooking("test-id")

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.Reference, response.Reference)
	assert.Equal(t, bookingModel.RoomID, response.RoomID)
	assert.Equal(t, bookingModel.RoomNumber, response.RoomNumber)
	assert.Equal(t, "deluxe", response.RoomType)
	assert.Equal(t, bookingModel.CheckIn.Format(constant.DateOnlyFormat), response.CheckIn)
	assert.Equal(t, bookingModel.CheckOut.Format(constant.DateOnlyFormat), response.CheckOut)
	assert.Equal(t, bookingModel.Adults, response.Adults)
	assert.Equal(t, bookingModel.Children, response.Children)
	assert.Equal(t, bookingModel.Nights, response.Nights)
	assert.Equal(t, bookingModel.TotalAmount, response.TotalAmount)
	assert.Equal(t, "confirmed", response.Status)
	assert.Equal(t, "pending", response.PaymentStatus)
	assert.Equal(t, bookingModel.GuestName, response.GuestName)
	assert.Equal(t, bookingModel.GuestEmail, response.GuestEmail)
	assert.Equal(t, bookingModel.SpecialRequests, response.SpecialRequests)
	assert.Nil(t, response.CancellationReason)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
	assert.Equal(t, bookingModel.ModifiedBy, response.ModifiedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		sampleBooking("test-id-1"),
		sampleBooking("test-id-2"),
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 25, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "test-id-1", response.Bookings[0].ID)
	assert.Equal(t, "test-id-2", response.Bookings[1].ID)
}

func TestGetBookingsResponse_FromModelsEmpty(t *testing.T) {
	var response dto.GetBookingsResponse
	response.FromModels(nil, 0, 10)

	assert.Empty(t, response.Bookings)
	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
}
