package booking

import (
	"context"

	"github.com/barbeariaclassica/agenda-api/internal/models"
)

// BarberRepository é o diretório de barbeiros. As operações de mutação
// são responsáveis por manter o invariante do campo desnormalizado
// BarberName nos agendamentos: Rename sincroniza, Delete faz o cascade.
type BarberRepository interface {
	List(ctx context.Context) ([]models.Barber, error)

	GetByID(ctx context.Context, id string) (*models.Barber, error)

	// FindByName busca por nome sem diferenciar maiúsculas de minúsculas.
	FindByName(ctx context.Context, name string) (*models.Barber, error)

	Create(ctx context.Context, barber *models.Barber) error

	// Rename troca o nome do barbeiro e atualiza BarberName em todos os
	// agendamentos dele, na mesma gravação.
	Rename(ctx context.Context, id, name string) error

	// Delete remove o barbeiro e todos os agendamentos com o barberId
	// dele, na mesma gravação. Retorna quantos agendamentos caíram.
	Delete(ctx context.Context, id string) (int, error)
}

// AppointmentRepository é a lista persistida de agendamentos.
type AppointmentRepository interface {
	List(ctx context.Context) ([]models.Appointment, error)

	ListForBarberAndDate(ctx context.Context, barberID, date string) ([]models.Appointment, error)

	// CreateScheduled grava o agendamento reverificando, sob o mesmo lock
	// de escrita, que a tripla (barberId, date, time) continua livre.
	// Retorna slot_conflict se outro agendamento chegou antes.
	CreateScheduled(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, id string) error
}
