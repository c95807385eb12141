package model_test

import (
	"testing"

	"horizon/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  model.RoomType
		ok    bool
	}{
		{
			name:  "canonical type",
			label: "deluxe",
			want:  model.TypeDeluxe,
			ok:    true,
		},
		{
			name:  "uppercase input",
			label: "SUITE",
			want:  model.TypeSuite,
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			label: "  standard  ",
			want:  model.TypeStandard,
			ok:    true,
		},
		{
			name:  "french label",
			label: "chambre deluxe",
			want:  model.TypeDeluxe,
			ok:    true,
		},
		{
			name:  "french label with accents",
			label: "présidentielle",
			want:  model.TypePresidential,
			ok:    true,
		},
		{
			name:  "french label without accents",
			label: "chambre presidentielle",
			want:  model.TypePresidential,
			ok:    true,
		},
		{
			name:  "mixed case french label",
			label: "Chambre Présidentielle",
			want:  model.TypePresidential,
			ok:    true,
		},
		{
			name:  "unknown label",
			label: "penthouse",
			ok:    false,
		},
		{
			name:  "empty label",
			label: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.NormalizeType(tt.label)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAllTypes(t *testing.T) {
	types := model.AllTypes()

	assert.Len(t, types, 4)
	assert.Contains(t, types, model.TypeStandard)
	assert.Contains(t, types, model.TypeDeluxe)
	assert.Contains(t, types, model.TypeSuite)
	assert.Contains(t, types, model.TypePresidential)
}
