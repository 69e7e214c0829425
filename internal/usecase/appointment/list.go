package appointment

import (
	"context"
	"sort"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

type ListAppointments struct {
	appointments booking.AppointmentRepository
}

func NewListAppointments(appointments booking.AppointmentRepository) *ListAppointments {
	return &ListAppointments{appointments: appointments}
}

type ListAppointmentsFilter struct {
	BarberID string // vazio: todos os barbeiros
	Date     string // vazio: todas as datas
}

// Execute lista agendamentos com os filtros do gerenciamento, ordenados
// por data e depois por horário. Datas e horários em formato ISO ordenam
// corretamente como strings.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter ListAppointmentsFilter,
) ([]models.Appointment, error) {

	all, err := uc.appointments.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if filter.BarberID != "" && ap.BarberID != filter.BarberID {
			continue
		}
		if filter.Date != "" && ap.Date != filter.Date {
			continue
		}
		filtered = append(filtered, ap)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})

	return filtered, nil
}
