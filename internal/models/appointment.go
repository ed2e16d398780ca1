package models

import "time"

// Appointment é o agendamento feito pela landing page.
// Date/Time ficam como texto normalizado ("2006-01-02" / "15:04:05") para
// casar com o formato da API pública; o índice único sobre
// (service, date, time) é quem garante a ausência de double-booking.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;index" json:"phone"`

	Service string `gorm:"size:50;not null;uniqueIndex:idx_appointments_slot,priority:1" json:"service"`
	Date    string `gorm:"size:10;not null;uniqueIndex:idx_appointments_slot,priority:2" json:"date"`
	Time    string `gorm:"size:8;not null;uniqueIndex:idx_appointments_slot,priority:3" json:"time"`

	Notes  string `gorm:"type:text" json:"notes"`
	Source string `gorm:"size:20;default:'landing'" json:"source"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
