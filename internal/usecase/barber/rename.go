package barber

import (
	"context"
	"strings"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
)

type RenameBarber struct {
	barbers booking.BarberRepository
	audit   *audit.Dispatcher
}

func NewRenameBarber(barbers booking.BarberRepository, auditDispatcher *audit.Dispatcher) *RenameBarber {
	return &RenameBarber{barbers: barbers, audit: auditDispatcher}
}

// Execute renomeia um barbeiro. O repositório sincroniza o BarberName de
// todos os agendamentos dele na mesma gravação; nenhum outro campo muda.
func (uc *RenameBarber) Execute(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return httperr.ErrBusiness("missing_name")
	}

	if err := uc.barbers.Rename(ctx, id, name); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_renamed",
		Entity:   "barber",
		EntityID: id,
		Metadata: map[string]string{"name": name},
	})
	return nil
}
