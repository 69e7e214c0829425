package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

func appointmentAt(barberID, date, slot string) models.Appointment {
	return models.Appointment{
		ID:       "ap-" + barberID + "-" + date + "-" + slot,
		BarberID: barberID,
		Date:     date,
		Time:     slot,
	}
}

// dia anterior à data consultada: nenhum filtro de horário se aplica
func TestAvailableSlots_ExcludesBookedSlot(t *testing.T) {
	appts := []models.Appointment{
		appointmentAt("1", "2024-06-10", "09:00"),
	}
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", appts, now)

	require.Len(t, got, 17)
	assert.Equal(t, []string{"08:00", "08:30", "09:30"}, got[:3])
	assert.NotContains(t, got, "09:00")
}

func TestAvailableSlots_FullGridWhenNoBookings(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", nil, now)

	assert.Equal(t, booking.SlotGrid, got)
}

func TestAvailableSlots_IgnoresOtherBarberAndOtherDate(t *testing.T) {
	appts := []models.Appointment{
		appointmentAt("2", "2024-06-10", "09:00"),
		appointmentAt("1", "2024-06-11", "10:00"),
	}
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", appts, now)

	assert.Len(t, got, len(booking.SlotGrid))
}

func TestAvailableSlots_MissingInputsMeanNoComputation(t *testing.T) {
	now := time.Now()

	assert.Empty(t, booking.AvailableSlots("", "2024-06-10", nil, now))
	assert.Empty(t, booking.AvailableSlots("1", "", nil, now))
}

func TestAvailableSlots_TodayFiltersPastTimes(t *testing.T) {
	// 14:15: tudo até "14:00" sai (não é estritamente maior que o minuto
	// atual); "14:30" em diante fica.
	now := time.Date(2024, 6, 10, 14, 15, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", nil, now)

	assert.Equal(t, []string{
		"14:30", "15:00", "15:30", "16:00", "16:30",
		"17:00", "17:30", "18:00", "18:30",
	}, got)
}

func TestAvailableSlots_TodayExcludesExactCurrentMinute(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", nil, now)

	assert.NotContains(t, got, "14:30")
	assert.Contains(t, got, "15:00")
}

func TestAvailableSlots_AfterLastSlotReturnsEmpty(t *testing.T) {
	now := time.Date(2024, 6, 10, 19, 0, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", nil, now)

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestAvailableSlots_OtherDateIgnoresClock(t *testing.T) {
	// now tarde da noite, mas a data pedida é outro dia: grade cheia.
	now := time.Date(2024, 6, 9, 23, 59, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", nil, now)

	assert.Len(t, got, len(booking.SlotGrid))
}

func TestAvailableSlots_MalformedDateSkipsTimeFilter(t *testing.T) {
	appts := []models.Appointment{
		appointmentAt("1", "10/06/2024", "09:00"),
	}
	now := time.Date(2024, 6, 10, 23, 0, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "10/06/2024", appts, now)

	// Data malformada nunca é "hoje": só a exclusão de agendados vale.
	assert.Len(t, got, 17)
	assert.NotContains(t, got, "09:00")
}

func TestAvailableSlots_SubsetInGridOrderNoDuplicates(t *testing.T) {
	appts := []models.Appointment{
		appointmentAt("1", "2024-06-10", "08:30"),
		appointmentAt("1", "2024-06-10", "16:00"),
	}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)

	got := booking.AvailableSlots("1", "2024-06-10", appts, now)

	seen := map[string]bool{}
	gridIdx := 0
	for _, slot := range got {
		assert.False(t, seen[slot], "slot duplicado: %s", slot)
		seen[slot] = true

		for gridIdx < len(booking.SlotGrid) && booking.SlotGrid[gridIdx] != slot {
			gridIdx++
		}
		require.Less(t, gridIdx, len(booking.SlotGrid), "slot fora da grade ou fora de ordem: %s", slot)
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	appts := []models.Appointment{
		appointmentAt("1", "2024-06-10", "10:00"),
	}
	now := time.Date(2024, 6, 10, 9, 45, 0, 0, time.Local)

	first := booking.AvailableSlots("1", "2024-06-10", appts, now)
	second := booking.AvailableSlots("1", "2024-06-10", appts, now)

	assert.Equal(t, first, second)
}

func TestIsSlotFree(t *testing.T) {
	appts := []models.Appointment{
		appointmentAt("2", "2024-06-10", "10:00"),
	}

	assert.False(t, booking.IsSlotFree("2", "2024-06-10", "10:00", appts))

	// qualquer componente da tripla diferente: livre
	assert.True(t, booking.IsSlotFree("1", "2024-06-10", "10:00", appts))
	assert.True(t, booking.IsSlotFree("2", "2024-06-11", "10:00", appts))
	assert.True(t, booking.IsSlotFree("2", "2024-06-10", "10:30", appts))

	assert.True(t, booking.IsSlotFree("2", "2024-06-10", "10:00", nil))
}
