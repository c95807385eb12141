package model

import (
	"time"

	"horizon/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldReference          = "reference"
	FieldRoomID             = "room_id"
	FieldUserID             = "user_id"
	FieldCheckIn            = "check_in"
	FieldCheckOut           = "check_out"
	FieldAdults             = "adults"
	FieldChildren           = "children"
	FieldNights             = "nights"
	FieldTotalAmount        = "total_amount"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldPaymentMethod      = "payment_method"
	FieldSpecialRequests    = "special_requests"
	FieldCancellationReason = "cancellation_reason"
	FieldContactPhone       = "contact_phone"
	FieldContactEmail       = "contact_email"
)

type Booking struct {
	ID                 string        `db:"id"`
	Reference          string        `db:"reference"`
	RoomID             string        `db:"room_id"`
	UserID             *string       `db:"user_id"`
	CheckIn            time.Time     `db:"check_in"`
	CheckOut           time.Time     `db:"check_out"`
	Adults             int           `db:"adults"`
	Children           int           `db:"children"`
	Nights             int           `db:"nights"`
	TotalAmount        float64       `db:"total_amount"`
	Status             Status        `db:"status"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
	PaymentMethod      string        `db:"payment_method"`
	SpecialRequests    *string       `db:"special_requests"`
	CancellationReason *string       `db:"cancellation_reason"`
	ContactPhone       string        `db:"contact_phone"`
	ContactEmail       string        `db:"contact_email"`
	RoomNumber         string        `db:"room_number" table:"rooms"`
	RoomType           string        `db:"room_type"   table:"rooms" column:"type"`
	RoomTitle          string        `db:"room_title"  table:"rooms" column:"title"`
	RoomPrice          float64       `db:"room_price"  table:"rooms" column:"price"`
	GuestName          *string       `db:"guest_name"  table:"users" column:"full_name"`
	GuestEmail         *string       `db:"guest_email" table:"users" column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id LEFT JOIN users ON users.id = bookings.user_id"
}

// NotifyEmail returns the address status notifications should go to, favoring
// the account email over the contact one.
func (b *Booking) NotifyEmail() string {
	if b.GuestEmail != nil && *b.GuestEmail != "" {
		return *b.GuestEmail
	}

	return b.ContactEmail
}

// NotifyName returns the guest display name for notifications.
func (b *Booking) NotifyName() string {
	if b.GuestName != nil && *b.GuestName != "" {
		return *b.GuestName
	}

	return "Guest"
}
