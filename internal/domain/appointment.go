package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusActive    AppointmentStatus = "active"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment — запись клиента. Отмена — единственная мутация жизненного
// цикла: запись помечается отменённой и сохраняется для истории, жёсткого
// удаления нет. Инвариант, который защищает весь движок доступности:
// не более одной неотменённой записи на (дата, время, мастер).
type Appointment struct {
	ID          int64             `json:"id"`
	Date        Date              `json:"date"`
	Time        TimeLabel         `json:"time"`
	ClientName  string            `json:"client_name"`
	ClientPhone string            `json:"client_phone"`
	Service     string            `json:"service"`
	BarberID    *int64            `json:"barber_id,omitempty"`
	BarberName  string            `json:"barber_name,omitempty"`
	Confirmed   bool              `json:"confirmed"`
	Status      AppointmentStatus `json:"status"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

type CreateAppointmentDTO struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Service     string `json:"service" binding:"required"`
	BarberID    *int64 `json:"barber_id,omitempty"`
}

type AppointmentFilter struct {
	Date             *Date  `json:"date"`
	BarberID         *int64 `json:"barber_id"`
	ClientPhone      *string `json:"client_phone"`
	IncludeCancelled bool   `json:"include_cancelled"`
	Limit            int    `json:"limit"`
	Offset           int    `json:"offset"`
}

// SlotStatus — элемент карты доступности дня для одного слота.
type SlotStatus struct {
	Time      TimeLabel `json:"time"`
	Available bool      `json:"available"`
}
