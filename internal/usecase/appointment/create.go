package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	"github.com/barbeariaclassica/agenda-api/internal/metrics"
	"github.com/barbeariaclassica/agenda-api/internal/models"
	"github.com/barbeariaclassica/agenda-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	BarberID string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM, horário da grade
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment percorre a máquina de estados de uma tentativa de
// agendamento: Validating → CheckingConflict → Committing. A validação
// falha fechado; o conflito dispara a reverificação da lista de horários
// no cliente; a gravação reverifica a tripla sob o lock de escrita.
type CreateAppointment struct {
	barbers      booking.BarberRepository
	appointments booking.AppointmentRepository
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics

	loc *time.Location
	now func() time.Time
}

func NewCreateAppointment(
	barbers booking.BarberRepository,
	appointments booking.AppointmentRepository,
	auditDispatcher *audit.Dispatcher,
	m *metrics.Metrics,
	loc *time.Location,
	now func() time.Time,
) *CreateAppointment {
	return &CreateAppointment{
		barbers:      barbers,
		appointments: appointments,
		audit:        auditDispatcher,
		metrics:      m,
		loc:          loc,
		now:          now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	attempt := booking.NewAttempt()

	// --------------------------------------------------
	// 1. Validação do formulário
	// --------------------------------------------------
	if err := attempt.Advance(booking.StageValidating); err != nil {
		return nil, err
	}

	if err := uc.validate(in); err != nil {
		uc.metrics.BookingValidations.Inc()
		return nil, attempt.Fail(err)
	}

	barber, err := uc.barbers.GetByID(ctx, in.BarberID)
	if err != nil {
		uc.metrics.BookingValidations.Inc()
		return nil, attempt.Fail(err)
	}

	// --------------------------------------------------
	// 2. Reverificação de conflito sobre a lista recente
	// --------------------------------------------------
	if err := attempt.Advance(booking.StageCheckingConflict); err != nil {
		return nil, err
	}

	existing, err := uc.appointments.ListForBarberAndDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, attempt.Fail(err)
	}

	if !booking.IsSlotFree(in.BarberID, in.Date, in.Time, existing) {
		uc.metrics.BookingConflicts.Inc()
		return nil, attempt.Fail(httperr.ErrBusiness("slot_conflict"))
	}

	// --------------------------------------------------
	// 3. Gravação (a tripla é reverificada sob o lock)
	// --------------------------------------------------
	if err := attempt.Advance(booking.StageCommitting); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		Date:        in.Date,
		Time:        in.Time,
		BarberID:    barber.ID,
		BarberName:  barber.Name,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   uc.now(),
	}

	if err := uc.appointments.CreateScheduled(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.metrics.BookingConflicts.Inc()
		}
		return nil, attempt.Fail(err)
	}

	if err := attempt.Advance(booking.StageSucceeded); err != nil {
		return nil, err
	}

	uc.metrics.BookingsCreated.Inc()
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"barberId": ap.BarberID,
			"date":     ap.Date,
			"time":     ap.Time,
		},
	})

	return ap, nil
}

// validate cobre as condições que falham fechado no envio: campo
// obrigatório vazio, e-mail malformado e data/hora no passado (igual a
// "agora" também é rejeitado). Telefone é orientativo, nunca bloqueia.
func (uc *CreateAppointment) validate(in CreateAppointmentInput) error {
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ClientPhone) == "" ||
		strings.TrimSpace(in.ClientEmail) == "" ||
		in.Date == "" || in.Time == "" || in.BarberID == "" {
		return httperr.ErrBusiness("missing_fields")
	}

	if !validators.IsValidEmail(strings.TrimSpace(in.ClientEmail)) {
		return httperr.ErrBusiness("invalid_email")
	}

	if !booking.IsGridSlot(in.Time) {
		return httperr.ErrBusiness("invalid_slot")
	}

	start, err := time.ParseInLocation(
		booking.DateLayout+" 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if !start.After(uc.now()) {
		return httperr.ErrBusiness("past_datetime")
	}

	return nil
}
