package repository

import (
	"context"

	"github.com/barbeariaclassica/agenda-api/internal/db"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

type AppointmentFileRepository struct {
	store *db.Store
}

func NewAppointmentFileRepository(store *db.Store) *AppointmentFileRepository {
	return &AppointmentFileRepository{store: store}
}

func (r *AppointmentFileRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	r.store.View(func(d *db.Data) {
		out = append([]models.Appointment(nil), d.Appointments...)
	})
	return out, nil
}

func (r *AppointmentFileRepository) ListForBarberAndDate(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	r.store.View(func(d *db.Data) {
		for _, ap := range d.Appointments {
			if ap.BarberID == barberID && ap.Date == date {
				out = append(out, ap)
			}
		}
	})
	return out, nil
}

// CreateScheduled grava o agendamento com a reverificação de conflito e a
// escrita sob o mesmo lock, fechando a janela entre checagem e gravação.
func (r *AppointmentFileRepository) CreateScheduled(ctx context.Context, ap *models.Appointment) error {
	return r.store.Update(func(d *db.Data) error {
		for _, existing := range d.Appointments {
			if existing.BarberID == ap.BarberID &&
				existing.Date == ap.Date &&
				existing.Time == ap.Time {
				return httperr.ErrBusiness("slot_conflict")
			}
		}
		d.Appointments = append(d.Appointments, *ap)
		return nil
	})
}

func (r *AppointmentFileRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(d *db.Data) error {
		for i := range d.Appointments {
			if d.Appointments[i].ID == id {
				d.Appointments = append(d.Appointments[:i], d.Appointments[i+1:]...)
				return nil
			}
		}
		return httperr.ErrBusiness("appointment_not_found")
	})
}
