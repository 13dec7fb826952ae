package domain

import (
	"time"
)

// AdminSettings — единственная запись настроек. Движок доступности никогда
// не читает её из глобального состояния: снимок настроек явно передаётся
// аргументом в каждую проверку.
type AdminSettings struct {
	ID                      int64       `json:"id"`
	MultipleBarbersEnabled  bool        `json:"multiple_barbers_enabled"`
	DefaultBarberID         *int64      `json:"default_barber_id,omitempty"`
	EarlyBookingRestriction bool        `json:"early_booking_restriction"`
	EarlyBookingHours       int         `json:"early_booking_hours"`
	RestrictedHours         []TimeLabel `json:"restricted_hours"`
	ReviewsEnabled          bool        `json:"reviews_enabled"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

// IsRestrictedHour — входит ли слот в список ограниченных настроек.
func (s *AdminSettings) IsRestrictedHour(label TimeLabel) bool {
	return ContainsLabel(s.RestrictedHours, label)
}

type UpdateSettingsDTO struct {
	MultipleBarbersEnabled  *bool     `json:"multiple_barbers_enabled,omitempty"`
	DefaultBarberID         *int64    `json:"default_barber_id,omitempty"`
	EarlyBookingRestriction *bool     `json:"early_booking_restriction,omitempty"`
	EarlyBookingHours       *int      `json:"early_booking_hours,omitempty" binding:"omitempty,min=0,max=168"`
	RestrictedHours         *[]string `json:"restricted_hours,omitempty"`
	ReviewsEnabled          *bool     `json:"reviews_enabled,omitempty"`
}
