package domain

import (
	"time"
)

// Review — отзыв клиента. Публикуются только одобренные администратором;
// отзыв считается подтверждённым, если телефон клиента встречается среди
// неотменённых записей.
type Review struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	ServiceUsed string    `json:"service_used"`
	BarberID    *int64    `json:"barber_id,omitempty"`
	BarberName  string    `json:"barber_name,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateReviewDTO struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"required"`
	ServiceUsed string `json:"service_used" binding:"required"`
	BarberID    *int64 `json:"barber_id,omitempty"`
}

type ReviewFilter struct {
	BarberID     *int64 `json:"barber_id"`
	OnlyApproved bool   `json:"only_approved"`
	Limit        int    `json:"limit"`
	Offset       int    `json:"offset"`
}
