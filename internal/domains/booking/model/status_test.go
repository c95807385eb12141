package model_test

import (
	"testing"

	"horizon/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "checked-in", "checked-out", "cancelled"} {
		status, ok := model.ParseStatus(valid)
		assert.True(t, ok, "expected %q to parse", valid)
		assert.Equal(t, model.Status(valid), status)
	}

	for _, invalid := range []string{"", "unknown", "Confirmed", "checked_in"} {
		_, ok := model.ParseStatus(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "refunded", "failed"} {
		status, ok := model.ParsePaymentStatus(valid)
		assert.True(t, ok, "expected %q to parse", valid)
		assert.Equal(t, model.PaymentStatus(valid), status)
	}

	_, ok := model.ParsePaymentStatus("settled")
	assert.False(t, ok)
}

func TestBlockingStatuses(t *testing.T) {
	blocking := model.BlockingStatuses()

	assert.ElementsMatch(t, []model.Status{model.StatusConfirmed, model.StatusCheckedIn}, blocking)
	assert.NotContains(t, blocking, model.StatusPending)
	assert.NotContains(t, blocking, model.StatusCheckedOut)
	assert.NotContains(t, blocking, model.StatusCancelled)
}

func TestDefaultTransitionPolicy(t *testing.T) {
	policy := model.DefaultTransitionPolicy()

	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{
			name: "pending to confirmed",
			from: model.StatusPending,
			to:   model.StatusConfirmed,
			want: true,
		},
		{
			name: "confirmed to checked-in",
			from: model.StatusConfirmed,
			to:   model.StatusCheckedIn,
			want: true,
		},
		{
			name: "checked-in to checked-out",
			from: model.StatusCheckedIn,
			to:   model.StatusCheckedOut,
			want: true,
		},
		{
			name: "pending to cancelled",
			from: model.StatusPending,
			to:   model.StatusCancelled,
			want: true,
		},
		{
			name: "cancelled is terminal",
			from: model.StatusCancelled,
			to:   model.StatusPending,
			want: false,
		},
		{
			name: "cancelled cannot be confirmed",
			from: model.StatusCancelled,
			to:   model.StatusConfirmed,
			want: false,
		},
		{
			name: "checked-out is terminal",
			from: model.StatusCheckedOut,
			to:   model.StatusCheckedIn,
			want: false,
		},
		{
			name: "checked-out cannot be cancelled",
			from: model.StatusCheckedOut,
			to:   model.StatusCancelled,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allows(tt.from, tt.to))
		})
	}
}

func TestTransitionPolicyUnknownTarget(t *testing.T) {
	policy := model.TransitionPolicy{
		model.StatusConfirmed: {model.StatusPending},
	}

	assert.True(t, policy.Allows(model.StatusPending, model.StatusConfirmed))
	assert.False(t, policy.Allows(model.StatusConfirmed, model.StatusPending), "target absent from the policy is unreachable")
	assert.False(t, policy.Allows(model.StatusConfirmed, model.StatusCancelled))
}
