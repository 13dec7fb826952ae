package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberia/internal/domain"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
	}
}

func (r *SettingsRepo) Get(ctx context.Context) (*domain.AdminSettings, error) {
	query := `
		SELECT id, multiple_barbers_enabled, default_barber_id, early_booking_restriction,
		       early_booking_hours, restricted_hours, reviews_enabled, created_at, updated_at
		FROM admin_settings
		ORDER BY id
		LIMIT 1
	`

	var settings domain.AdminSettings
	var restricted []string

	err := r.db.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.MultipleBarbersEnabled,
		&settings.DefaultBarberID,
		&settings.EarlyBookingRestriction,
		&settings.EarlyBookingHours,
		&restricted,
		&settings.ReviewsEnabled,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	settings.RestrictedHours, err = domain.ParseTimeLabels(restricted)
	if err != nil {
		return nil, fmt.Errorf("некорректные ограниченные часы в БД: %w", err)
	}

	return &settings, nil
}

func (r *SettingsRepo) Update(ctx context.Context, dto domain.UpdateSettingsDTO) error {
	var sets []string
	var args []interface{}

	if dto.MultipleBarbersEnabled != nil {
		args = append(args, *dto.MultipleBarbersEnabled)
		sets = append(sets, fmt.Sprintf("multiple_barbers_enabled = $%d", len(args)))
	}
	if dto.DefaultBarberID != nil {
		args = append(args, *dto.DefaultBarberID)
		sets = append(sets, fmt.Sprintf("default_barber_id = $%d", len(args)))
	}
	if dto.EarlyBookingRestriction != nil {
		args = append(args, *dto.EarlyBookingRestriction)
		sets = append(sets, fmt.Sprintf("early_booking_restriction = $%d", len(args)))
	}
	if dto.EarlyBookingHours != nil {
		args = append(args, *dto.EarlyBookingHours)
		sets = append(sets, fmt.Sprintf("early_booking_hours = $%d", len(args)))
	}
	if dto.RestrictedHours != nil {
		labels, err := domain.ParseTimeLabels(*dto.RestrictedHours)
		if err != nil {
			return fmt.Errorf("некорректные ограниченные часы: %w", err)
		}
		stored := make([]string, 0, len(labels))
		for _, label := range labels {
			stored = append(stored, label.Format24())
		}
		args = append(args, stored)
		sets = append(sets, fmt.Sprintf("restricted_hours = $%d", len(args)))
	}
	if dto.ReviewsEnabled != nil {
		args = append(args, *dto.ReviewsEnabled)
		sets = append(sets, fmt.Sprintf("reviews_enabled = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, time.Now())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	query := fmt.Sprintf(`
		UPDATE admin_settings
		SET %s
		WHERE id = (SELECT id FROM admin_settings ORDER BY id LIMIT 1)
	`, strings.Join(sets, ", "))

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления настроек: %w", err)
	}

	return nil
}
