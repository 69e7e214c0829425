package barber

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

type AddBarber struct {
	barbers booking.BarberRepository
	audit   *audit.Dispatcher
}

func NewAddBarber(barbers booking.BarberRepository, auditDispatcher *audit.Dispatcher) *AddBarber {
	return &AddBarber{barbers: barbers, audit: auditDispatcher}
}

// Execute cadastra um barbeiro. O nome é obrigatório e único entre os
// barbeiros atuais, sem diferenciar maiúsculas de minúsculas.
func (uc *AddBarber) Execute(ctx context.Context, name string) (*models.Barber, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_name")
	}

	// Falha cedo se o nome já existe; o repositório reconfere a
	// unicidade sob o lock de escrita.
	if _, err := uc.barbers.FindByName(ctx, name); err == nil {
		return nil, httperr.ErrBusiness("duplicate_name")
	}

	now := time.Now()
	b := &models.Barber{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.barbers.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: b.ID,
		Metadata: map[string]string{"name": b.Name},
	})

	return b, nil
}
