package domain

import (
	"time"
)

// Barber — мастер барбершопа. Ключ доступа выдаётся администратором и
// позволяет мастеру смотреть собственные записи; наружу хеш не отдаётся.
type Barber struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	IsActive      bool      `json:"is_active"`
	PhotoURL      *string   `json:"photo_url,omitempty"`
	AccessKeyHash string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateBarberDTO struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type UpdateBarberDTO struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type VerifyAccessKeyDTO struct {
	AccessKey string `json:"access_key" binding:"required"`
}
