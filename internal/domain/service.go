package domain

import (
	"time"
)

// Service — услуга из прейскуранта барбершопа.
type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateServiceDTO struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateServiceDTO struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" binding:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}
