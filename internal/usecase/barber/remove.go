package barber

import (
	"context"
	"strconv"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
)

type RemoveBarber struct {
	barbers booking.BarberRepository
	audit   *audit.Dispatcher
}

func NewRemoveBarber(barbers booking.BarberRepository, auditDispatcher *audit.Dispatcher) *RemoveBarber {
	return &RemoveBarber{barbers: barbers, audit: auditDispatcher}
}

// Execute remove o barbeiro em cascata: todos os agendamentos com o
// barberId dele caem junto. Retorna quantos agendamentos foram removidos.
func (uc *RemoveBarber) Execute(ctx context.Context, id string) (int, error) {
	removed, err := uc.barbers.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: id,
		Metadata: map[string]string{"appointmentsRemoved": strconv.Itoa(removed)},
	})
	return removed, nil
}
