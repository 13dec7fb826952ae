package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberia/internal/domain"
)

type ScheduleRepo struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{
		db: db,
	}
}

func (r *ScheduleRepo) GetBusinessHours(ctx context.Context, dayOfWeek int) (*domain.WeeklyHours, error) {
	query := `
		SELECT id, day_of_week, is_open, morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at
		FROM business_hours
		WHERE day_of_week = $1
	`

	var hours domain.WeeklyHours
	var morningStart, morningEnd, afternoonStart, afternoonEnd *string

	err := r.db.QueryRow(ctx, query, dayOfWeek).Scan(
		&hours.ID,
		&hours.DayOfWeek,
		&hours.IsOpen,
		&morningStart,
		&morningEnd,
		&afternoonStart,
		&afternoonEnd,
		&hours.CreatedAt,
		&hours.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения часов работы: %w", err)
	}

	hours.Morning, err = parseHourRange(morningStart, morningEnd)
	if err != nil {
		return nil, fmt.Errorf("некорректный утренний интервал для дня %d: %w", dayOfWeek, err)
	}
	hours.Afternoon, err = parseHourRange(afternoonStart, afternoonEnd)
	if err != nil {
		return nil, fmt.Errorf("некорректный дневной интервал для дня %d: %w", dayOfWeek, err)
	}

	return &hours, nil
}

func (r *ScheduleRepo) ListBusinessHours(ctx context.Context) ([]domain.WeeklyHours, error) {
	query := `
		SELECT id, day_of_week, is_open, morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at
		FROM business_hours
		ORDER BY day_of_week
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения часов работы: %w", err)
	}
	defer rows.Close()

	var result []domain.WeeklyHours
	for rows.Next() {
		var hours domain.WeeklyHours
		var morningStart, morningEnd, afternoonStart, afternoonEnd *string

		err := rows.Scan(
			&hours.ID,
			&hours.DayOfWeek,
			&hours.IsOpen,
			&morningStart,
			&morningEnd,
			&afternoonStart,
			&afternoonEnd,
			&hours.CreatedAt,
			&hours.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования часов работы: %w", err)
		}

		hours.Morning, err = parseHourRange(morningStart, morningEnd)
		if err != nil {
			return nil, fmt.Errorf("некорректный утренний интервал: %w", err)
		}
		hours.Afternoon, err = parseHourRange(afternoonStart, afternoonEnd)
		if err != nil {
			return nil, fmt.Errorf("некорректный дневной интервал: %w", err)
		}

		result = append(result, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return result, nil
}

func (r *ScheduleRepo) UpsertBusinessHours(ctx context.Context, dayOfWeek int, dto domain.UpdateWeeklyHoursDTO) error {
	query := `
		INSERT INTO business_hours (day_of_week, is_open, morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (day_of_week) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			morning_start = EXCLUDED.morning_start,
			morning_end = EXCLUDED.morning_end,
			afternoon_start = EXCLUDED.afternoon_start,
			afternoon_end = EXCLUDED.afternoon_end,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		dayOfWeek,
		dto.IsOpen,
		dto.MorningStart,
		dto.MorningEnd,
		dto.AfternoonStart,
		dto.AfternoonEnd,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения часов работы: %w", err)
	}

	return nil
}

func (r *ScheduleRepo) GetBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) (*domain.BarberSchedule, error) {
	query := `
		SELECT id, barber_id, day_of_week, is_available, morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at
		FROM barber_schedules
		WHERE barber_id = $1 AND day_of_week = $2
	`

	schedule, err := scanBarberSchedule(r.db.QueryRow(ctx, query, barberID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения расписания мастера: %w", err)
	}

	return schedule, nil
}

func (r *ScheduleRepo) ListBarberSchedules(ctx context.Context, barberID int64) ([]domain.BarberSchedule, error) {
	query := `
		SELECT id, barber_id, day_of_week, is_available, morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at
		FROM barber_schedules
		WHERE barber_id = $1
		ORDER BY day_of_week
	`

	rows, err := r.db.Query(ctx, query, barberID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения расписаний мастера: %w", err)
	}
	defer rows.Close()

	var result []domain.BarberSchedule
	for rows.Next() {
		schedule, err := scanBarberSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования расписания мастера: %w", err)
		}
		result = append(result, *schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return result, nil
}

func (r *ScheduleRepo) UpsertBarberSchedule(ctx context.Context, barberID int64, dto domain.UpsertBarberScheduleDTO) error {
	query := `
		INSERT INTO barber_schedules (barber_id, day_of_week, is_available, morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (barber_id, day_of_week) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			morning_start = EXCLUDED.morning_start,
			morning_end = EXCLUDED.morning_end,
			afternoon_start = EXCLUDED.afternoon_start,
			afternoon_end = EXCLUDED.afternoon_end,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		barberID,
		dto.DayOfWeek,
		dto.IsAvailable,
		dto.MorningStart,
		dto.MorningEnd,
		dto.AfternoonStart,
		dto.AfternoonEnd,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения расписания мастера: %w", err)
	}

	return nil
}

func (r *ScheduleRepo) DeleteBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) error {
	query := `
		DELETE FROM barber_schedules
		WHERE barber_id = $1 AND day_of_week = $2
	`

	_, err := r.db.Exec(ctx, query, barberID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("ошибка удаления расписания мастера: %w", err)
	}

	return nil
}

func scanBarberSchedule(row pgx.Row) (*domain.BarberSchedule, error) {
	var schedule domain.BarberSchedule
	var morningStart, morningEnd, afternoonStart, afternoonEnd *string

	err := row.Scan(
		&schedule.ID,
		&schedule.BarberID,
		&schedule.DayOfWeek,
		&schedule.IsAvailable,
		&morningStart,
		&morningEnd,
		&afternoonStart,
		&afternoonEnd,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.Morning, err = parseHourRange(morningStart, morningEnd)
	if err != nil {
		return nil, fmt.Errorf("некорректный утренний интервал: %w", err)
	}
	schedule.Afternoon, err = parseHourRange(afternoonStart, afternoonEnd)
	if err != nil {
		return nil, fmt.Errorf("некорректный дневной интервал: %w", err)
	}

	return &schedule, nil
}

// parseHourRange собирает интервал из пары nullable-колонок; интервал
// существует, только когда заданы обе границы.
func parseHourRange(start, end *string) (*domain.HourRange, error) {
	if start == nil || end == nil {
		return nil, nil
	}

	startLabel, err := domain.ParseTimeLabel(*start)
	if err != nil {
		return nil, err
	}
	endLabel, err := domain.ParseTimeLabel(*end)
	if err != nil {
		return nil, err
	}

	return &domain.HourRange{Start: startLabel, End: endLabel}, nil
}
