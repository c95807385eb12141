package dto

import (
	"horizon/internal/domains/booking/model"
	"horizon/shared"
	"horizon/shared/constant"
	gDto "horizon/shared/dto"
)

type CreateBookingRequest struct {
	RoomType        string  `json:"room_type"        validate:"required"`
	CheckIn         string  `json:"check_in"         validate:"required"`
	CheckOut        string  `json:"check_out"        validate:"required"`
	Adults          int     `json:"adults"           validate:"required,min=1"`
	Children        int     `json:"children"         validate:"omitempty,min=0"`
	ContactPhone    string  `json:"contact_phone"    validate:"required,max=20"`
	ContactEmail    string  `json:"contact_email"    validate:"required,email,max=100"`
	PaymentMethod   string  `json:"payment_method"   validate:"omitempty,oneof=credit-card debit-card paypal bank-transfer cash"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status             string  `json:"status"              validate:"required"`
	CancellationReason *string `json:"cancellation_reason" validate:"omitempty,max=200"`
}

type UpdateBookingRequest struct {
	PaymentStatus   string  `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending paid refunded failed"`
	PaymentMethod   string  `db:"payment_method"   json:"payment_method"   validate:"omitempty,oneof=credit-card debit-card paypal bank-transfer cash"`
	ContactPhone    string  `db:"contact_phone"    json:"contact_phone"    validate:"omitempty,max=20"`
	ContactEmail    string  `db:"contact_email"    json:"contact_email"    validate:"omitempty,email,max=100"`
	SpecialRequests *string `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	Reference          string  `json:"reference"`
	RoomID             string  `json:"room_id"`
	RoomNumber         string  `json:"room_number"`
	RoomType           string  `json:"room_type"`
	RoomTitle          string  `json:"room_title"`
	GuestName          *string `json:"guest_name,omitempty"`
	GuestEmail         *string `json:"guest_email,omitempty"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	Adults             int     `json:"adults"`
	Children           int     `json:"children"`
	Nights             int     `json:"nights"`
	TotalAmount        float64 `json:"total_amount"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	PaymentMethod      string  `json:"payment_method"`
	ContactPhone       string  `json:"contact_phone"`
	ContactEmail       string  `json:"contact_email"`
	SpecialRequests    *string `json:"special_requests,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Reference = mod.Reference
	r.RoomID = mod.RoomID
	r.RoomNumber = mod.RoomNumber
	r.RoomType = mod.RoomType
	r.RoomTitle = mod.RoomTitle
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.Adults = mod.Adults
	r.Children = mod.Children
	r.Nights = mod.Nights
	r.TotalAmount = mod.TotalAmount
	r.Status = string(mod.Status)
	r.PaymentStatus = string(mod.PaymentStatus)
	r.PaymentMethod = mod.PaymentMethod
	r.ContactPhone = mod.ContactPhone
	r.ContactEmail = mod.ContactEmail
	r.SpecialRequests = mod.SpecialRequests
	r.CancellationReason = mod.CancellationReason
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
