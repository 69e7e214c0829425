package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
)

type ListByMonth struct {
	appointments booking.AppointmentRepository
}

func NewListByMonth(appointments booking.AppointmentRepository) *ListByMonth {
	return &ListByMonth{appointments: appointments}
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Execute devolve, para o calendário, quantos agendamentos há em cada dia
// do mês. Dias sem agendamento não aparecem.
func (uc *ListByMonth) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) ([]DayCount, error) {

	all, err := uc.appointments.List(ctx)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	counts := map[string]int{}
	for _, ap := range all {
		if len(ap.Date) == len(booking.DateLayout) && ap.Date[:8] == prefix {
			counts[ap.Date]++
		}
	}

	out := make([]DayCount, 0, len(counts))
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%s%02d", prefix, day)
		if n := counts[date]; n > 0 {
			out = append(out, DayCount{Date: date, Count: n})
		}
	}

	return out, nil
}
