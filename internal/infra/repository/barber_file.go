package repository

import (
	"context"
	"strings"
	"time"

	"github.com/barbeariaclassica/agenda-api/internal/db"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

type BarberFileRepository struct {
	store *db.Store
}

func NewBarberFileRepository(store *db.Store) *BarberFileRepository {
	return &BarberFileRepository{store: store}
}

func (r *BarberFileRepository) List(ctx context.Context) ([]models.Barber, error) {
	var out []models.Barber
	r.store.View(func(d *db.Data) {
		out = append([]models.Barber(nil), d.Barbers...)
	})
	return out, nil
}

func (r *BarberFileRepository) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	var found *models.Barber
	r.store.View(func(d *db.Data) {
		for i := range d.Barbers {
			if d.Barbers[i].ID == id {
				b := d.Barbers[i]
				found = &b
				return
			}
		}
	})
	if found == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return found, nil
}

func (r *BarberFileRepository) FindByName(ctx context.Context, name string) (*models.Barber, error) {
	var found *models.Barber
	r.store.View(func(d *db.Data) {
		for i := range d.Barbers {
			if strings.EqualFold(d.Barbers[i].Name, name) {
				b := d.Barbers[i]
				found = &b
				return
			}
		}
	})
	if found == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return found, nil
}

func (r *BarberFileRepository) Create(ctx context.Context, barber *models.Barber) error {
	return r.store.Update(func(d *db.Data) error {
		for i := range d.Barbers {
			if strings.EqualFold(d.Barbers[i].Name, barber.Name) {
				return httperr.ErrBusiness("duplicate_name")
			}
		}
		d.Barbers = append(d.Barbers, *barber)
		return nil
	})
}

// Rename troca o nome do barbeiro e, na mesma gravação, atualiza o campo
// desnormalizado BarberName em todos os agendamentos dele. Nenhum outro
// campo dos agendamentos muda.
func (r *BarberFileRepository) Rename(ctx context.Context, id, name string) error {
	return r.store.Update(func(d *db.Data) error {
		idx := -1
		for i := range d.Barbers {
			if d.Barbers[i].ID == id {
				idx = i
				continue
			}
			if strings.EqualFold(d.Barbers[i].Name, name) {
				return httperr.ErrBusiness("duplicate_name")
			}
		}
		if idx < 0 {
			return httperr.ErrBusiness("barber_not_found")
		}

		d.Barbers[idx].Name = name
		d.Barbers[idx].UpdatedAt = time.Now()

		for i := range d.Appointments {
			if d.Appointments[i].BarberID == id {
				d.Appointments[i].BarberName = name
			}
		}
		return nil
	})
}

// Delete remove o barbeiro e faz o cascade: todo agendamento com o
// barberId dele sai da lista na mesma gravação.
func (r *BarberFileRepository) Delete(ctx context.Context, id string) (int, error) {
	removed := 0
	err := r.store.Update(func(d *db.Data) error {
		idx := -1
		for i := range d.Barbers {
			if d.Barbers[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return httperr.ErrBusiness("barber_not_found")
		}

		d.Barbers = append(d.Barbers[:idx], d.Barbers[idx+1:]...)

		kept := d.Appointments[:0]
		for _, ap := range d.Appointments {
			if ap.BarberID == id {
				removed++
				continue
			}
			kept = append(kept, ap)
		}
		d.Appointments = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
