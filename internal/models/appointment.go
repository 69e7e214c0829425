package models

import "time"

// Appointment é o registro persistido de um agendamento. BarberName é uma
// cópia desnormalizada do nome do barbeiro no momento da reserva, mantida
// em sincronia quando o barbeiro é renomeado.
type Appointment struct {
	ID string `json:"id"`

	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ClientEmail string `json:"clientEmail"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM, um dos horários da grade

	BarberID   string `json:"barberId"`
	BarberName string `json:"barberName"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
