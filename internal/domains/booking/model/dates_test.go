package model_test

import (
	"testing"
	"time"

	"horizon/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2026, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-06-15",
			want:  date(15),
		},
		{
			name:  "surrounding whitespace is tolerated",
			input: " 2026-06-15 ",
			want:  date(15),
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong format",
			input:   "15/06/2026",
			wantErr: true,
		},
		{
			name:  "timestamped input is normalized to midnight",
			input: "2026-06-15T23:00:00Z",
			want:  date(15),
		},
		{
			name:  "timestamped input with offset keeps its calendar day",
			input: "2026-06-15T23:00:00+03:00",
			want:  date(15),
		},
		{
			name:    "time part without zone",
			input:   "2026-06-15T10:00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "expected %v, got %v", tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	input := time.Date(2026, time.June, 15, 23, 45, 12, 999, loc)

	got := model.NormalizeDate(input)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
	assert.Equal(t, 15, got.Day())
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  date(15),
			checkOut: date(18),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  date(15),
			checkOut: date(16),
			want:     1,
		},
		{
			name:     "same day floors to one night",
			checkIn:  date(15),
			checkOut: date(15),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  date(15),
			checkOut: date(16).Add(6 * time.Hour),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "full containment",
			aStart: date(10), aEnd: date(20),
			bStart: date(12), bEnd: date(14),
			want: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: date(10), aEnd: date(15),
			bStart: date(14), bEnd: date(18),
			want: true,
		},
		{
			name:   "touching endpoints do not overlap",
			aStart: date(10), aEnd: date(15),
			bStart: date(15), bEnd: date(18),
			want: false,
		},
		{
			name:   "touching endpoints the other way",
			aStart: date(15), aEnd: date(18),
			bStart: date(10), bEnd: date(15),
			want: false,
		},
		{
			name:   "disjoint ranges",
			aStart: date(1), aEnd: date(5),
			bStart: date(10), bEnd: date(15),
			want: false,
		},
		{
			name:   "identical ranges",
			aStart: date(10), aEnd: date(15),
			bStart: date(10), bEnd: date(15),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// overlap is symmetric in its two ranges
			mirrored := model.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, got, mirrored)
		})
	}
}
