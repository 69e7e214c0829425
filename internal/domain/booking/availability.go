package booking

import (
	"time"

	"github.com/barbeariaclassica/agenda-api/internal/models"
)

const DateLayout = "2006-01-02"

// AvailableSlots calcula os horários ainda agendáveis para um barbeiro em
// uma data. O resultado é sempre um subconjunto de SlotGrid, na ordem da
// grade. Função pura: o instante atual entra como parâmetro, nunca é lido
// do relógio do sistema.
//
// Regras:
//   - barberID ou date vazios: nada a calcular, resultado vazio.
//   - horários já agendados para (barberID, date) saem da grade;
//   - se date é o dia de hoje no fuso de now, saem também os horários que
//     não são estritamente maiores que o minuto atual;
//   - date malformada nunca é igual ao dia de hoje, então só a exclusão de
//     agendados se aplica.
func AvailableSlots(barberID, date string, appointments []models.Appointment, now time.Time) []string {
	if barberID == "" || date == "" {
		return []string{}
	}

	booked := make(map[string]struct{}, len(appointments))
	for _, ap := range appointments {
		if ap.BarberID == barberID && ap.Date == date {
			booked[ap.Time] = struct{}{}
		}
	}

	isToday := date == now.Format(DateLayout)
	nowMinutes := now.Hour()*60 + now.Minute()

	available := make([]string, 0, len(SlotGrid))
	for _, slot := range SlotGrid {
		if _, taken := booked[slot]; taken {
			continue
		}

		if isToday {
			minutes, ok := SlotMinutes(slot)
			if !ok || minutes <= nowMinutes {
				continue
			}
		}

		available = append(available, slot)
	}

	return available
}

// IsSlotFree informa se nenhum agendamento existente ocupa exatamente a
// tripla (barberID, date, slot). É a reverificação feita imediatamente
// antes de gravar, sobre a lista mais recente, para fechar a janela entre
// a renderização do formulário e o envio.
func IsSlotFree(barberID, date, slot string, appointments []models.Appointment) bool {
	for _, ap := range appointments {
		if ap.BarberID == barberID && ap.Date == date && ap.Time == slot {
			return false
		}
	}
	return true
}
