package appointment

import (
	"context"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
)

type DeleteAppointment struct {
	appointments booking.AppointmentRepository
	audit        *audit.Dispatcher
}

func NewDeleteAppointment(
	appointments booking.AppointmentRepository,
	auditDispatcher *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		appointments: appointments,
		audit:        auditDispatcher,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id string) error {
	if err := uc.appointments.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})
	return nil
}
