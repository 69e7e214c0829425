package appointment

import (
	"context"
	"time"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
)

type GetAvailability struct {
	barbers      booking.BarberRepository
	appointments booking.AppointmentRepository

	now func() time.Time
}

func NewGetAvailability(
	barbers booking.BarberRepository,
	appointments booking.AppointmentRepository,
	now func() time.Time,
) *GetAvailability {
	return &GetAvailability{
		barbers:      barbers,
		appointments: appointments,
		now:          now,
	}
}

// Execute devolve os horários ainda agendáveis para o barbeiro na data,
// na ordem da grade. Lista vazia é um resultado válido: significa "nenhum
// horário disponível", diferente de "nada a calcular" (parâmetros
// ausentes), que o handler recusa antes de chegar aqui.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, error) {

	if _, err := uc.barbers.GetByID(ctx, barberID); err != nil {
		return nil, err
	}

	appointments, err := uc.appointments.ListForBarberAndDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return booking.AvailableSlots(barberID, date, appointments, uc.now()), nil
}
