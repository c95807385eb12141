package model

import "slices"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

func ParseStatus(value string) (Status, bool) {
	status := Status(value)

	switch status {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	status := PaymentStatus(value)

	switch status {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return status, true
	default:
		return "", false
	}
}

// BlockingStatuses are the statuses that hold a room for their date range.
// Pending, checked-out and cancelled bookings never block.
func BlockingStatuses() []Status {
	return []Status{StatusConfirmed, StatusCheckedIn}
}

// TransitionPolicy maps a target status to the statuses a booking may move
// from. Targets absent from the map are unreachable.
type TransitionPolicy map[Status][]Status

func (p TransitionPolicy) Allows(from, to Status) bool {
	allowed, ok := p[to]
	if !ok {
		return false
	}

	return slices.Contains(allowed, from)
}

// DefaultTransitionPolicy permits any move between live statuses and seals
// the terminal ones, checked-out and cancelled.
func DefaultTransitionPolicy() TransitionPolicy {
	live := []Status{StatusPending, StatusConfirmed, StatusCheckedIn}

	return TransitionPolicy{
		StatusPending:    live,
		StatusConfirmed:  live,
		StatusCheckedIn:  live,
		StatusCheckedOut: live,
		StatusCancelled:  live,
	}
}
