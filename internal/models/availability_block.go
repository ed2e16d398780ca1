package models

import "time"

// AvailabilityBlock é um bloqueio manual criado pela administração.
// Time nulo bloqueia o dia inteiro; Service nulo vale para todos os serviços.
type AvailabilityBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date    string  `gorm:"size:10;not null;index" json:"date"`
	Time    *string `gorm:"size:8" json:"time"`
	Service *string `gorm:"size:50" json:"service"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
