package barber

import (
	"context"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/models"
)

type ListBarbers struct {
	barbers booking.BarberRepository
}

func NewListBarbers(barbers booking.BarberRepository) *ListBarbers {
	return &ListBarbers{barbers: barbers}
}

func (uc *ListBarbers) Execute(ctx context.Context) ([]models.Barber, error) {
	return uc.barbers.List(ctx)
}
