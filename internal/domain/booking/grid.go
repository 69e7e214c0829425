package booking

// SlotGrid é a grade fixa de horários agendáveis de qualquer dia:
// meia em meia hora, com pausa de almoço entre 11:30 e 14:00.
// A ordem da grade é a ordem cronológica e nunca muda.
var SlotGrid = []string{
	"08:00", "08:30", "09:00", "09:30",
	"10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30",
}

// IsGridSlot informa se o rótulo pertence à grade fixa.
func IsGridSlot(label string) bool {
	for _, s := range SlotGrid {
		if s == label {
			return true
		}
	}
	return false
}

// SlotMinutes converte um rótulo "HH:MM" em minutos desde a meia-noite.
// Retorna false para rótulos malformados.
func SlotMinutes(label string) (int, bool) {
	if len(label) != 5 || label[2] != ':' {
		return 0, false
	}

	h, ok := twoDigits(label[0], label[1])
	if !ok || h > 23 {
		return 0, false
	}

	m, ok := twoDigits(label[3], label[4])
	if !ok || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
