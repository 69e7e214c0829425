package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
)

func TestSlotGrid_Shape(t *testing.T) {
	require.Len(t, booking.SlotGrid, 18)
	assert.Equal(t, "08:00", booking.SlotGrid[0])
	assert.Equal(t, "11:30", booking.SlotGrid[7])
	assert.Equal(t, "14:00", booking.SlotGrid[8])
	assert.Equal(t, "18:30", booking.SlotGrid[17])

	// pausa de almoço: nada entre 11:30 e 14:00
	assert.NotContains(t, booking.SlotGrid, "12:00")
	assert.NotContains(t, booking.SlotGrid, "13:30")
}

func TestIsGridSlot(t *testing.T) {
	assert.True(t, booking.IsGridSlot("08:00"))
	assert.True(t, booking.IsGridSlot("18:30"))
	assert.False(t, booking.IsGridSlot("12:00"))
	assert.False(t, booking.IsGridSlot("08:15"))
	assert.False(t, booking.IsGridSlot(""))
}

func TestSlotMinutes(t *testing.T) {
	cases := []struct {
		label   string
		minutes int
		ok      bool
	}{
		{"08:00", 480, true},
		{"14:30", 870, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"08:60", 0, false},
		{"8:00", 0, false},
		{"08-00", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		minutes, ok := booking.SlotMinutes(tc.label)
		assert.Equal(t, tc.ok, ok, "label %q", tc.label)
		if tc.ok {
			assert.Equal(t, tc.minutes, minutes, "label %q", tc.label)
		}
	}
}
