package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberia/internal/domain"
)

type OverrideRepo struct {
	db *pgxpool.Pool
}

func NewOverrideRepository(db *pgxpool.Pool) *OverrideRepo {
	return &OverrideRepo{
		db: db,
	}
}

func (r *OverrideRepo) CreateHoliday(ctx context.Context, dto domain.CreateHolidayDTO, date domain.Date) (int64, error) {
	query := `
		INSERT INTO holidays (date, description, barber_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, date.String(), dto.Description, dto.BarberID, time.Now()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("ошибка создания выходного дня: %w", err)
	}

	return id, nil
}

func (r *OverrideRepo) DeleteHoliday(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM holidays WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления выходного дня: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *OverrideRepo) ListHolidays(ctx context.Context, from, to *domain.Date) ([]domain.Holiday, error) {
	baseQuery := `
		SELECT id, date, description, barber_id, created_at
		FROM holidays
	`

	var conditions []string
	var args []interface{}

	if from != nil {
		args = append(args, from.String())
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, to.String())
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY date"

	rows, err := r.db.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения выходных дней: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *OverrideRepo) ListHolidaysByDate(ctx context.Context, date domain.Date) ([]domain.Holiday, error) {
	query := `
		SELECT id, date, description, barber_id, created_at
		FROM holidays
		WHERE date = $1
	`

	rows, err := r.db.Query(ctx, query, date.String())
	if err != nil {
		return nil, fmt.Errorf("ошибка получения выходных дней на дату: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *OverrideRepo) CreateBlockedTime(ctx context.Context, date domain.Date, slots []domain.TimeLabel, reason string, barberID *int64) (int64, error) {
	stored := make([]string, 0, len(slots))
	for _, slot := range slots {
		stored = append(stored, slot.Format24())
	}

	query := `
		INSERT INTO blocked_times (date, time_slots, reason, barber_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, date.String(), stored, reason, barberID, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания блокировки времени: %w", err)
	}

	return id, nil
}

func (r *OverrideRepo) DeleteBlockedTime(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM blocked_times WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления блокировки времени: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *OverrideRepo) ListBlockedTimes(ctx context.Context, from, to *domain.Date) ([]domain.BlockedTime, error) {
	baseQuery := `
		SELECT id, date, time_slots, reason, barber_id, created_at
		FROM blocked_times
	`

	var conditions []string
	var args []interface{}

	if from != nil {
		args = append(args, from.String())
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, to.String())
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY date"

	rows, err := r.db.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения блокировок времени: %w", err)
	}
	defer rows.Close()

	return collectBlockedTimes(rows)
}

func (r *OverrideRepo) ListBlockedTimesByDate(ctx context.Context, date domain.Date) ([]domain.BlockedTime, error) {
	query := `
		SELECT id, date, time_slots, reason, barber_id, created_at
		FROM blocked_times
		WHERE date = $1
	`

	rows, err := r.db.Query(ctx, query, date.String())
	if err != nil {
		return nil, fmt.Errorf("ошибка получения блокировок на дату: %w", err)
	}
	defer rows.Close()

	return collectBlockedTimes(rows)
}

func collectHolidays(rows pgx.Rows) ([]domain.Holiday, error) {
	var holidays []domain.Holiday
	for rows.Next() {
		var holiday domain.Holiday
		var date time.Time

		err := rows.Scan(
			&holiday.ID,
			&date,
			&holiday.Description,
			&holiday.BarberID,
			&holiday.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования выходного дня: %w", err)
		}

		holiday.Date = domain.DateOf(date)
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return holidays, nil
}

func collectBlockedTimes(rows pgx.Rows) ([]domain.BlockedTime, error) {
	var blocked []domain.BlockedTime
	for rows.Next() {
		var block domain.BlockedTime
		var date time.Time
		var stored []string

		err := rows.Scan(
			&block.ID,
			&date,
			&stored,
			&block.Reason,
			&block.BarberID,
			&block.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования блокировки времени: %w", err)
		}

		block.Date = domain.DateOf(date)

		block.Slots, err = domain.ParseTimeLabels(stored)
		if err != nil {
			return nil, fmt.Errorf("некорректные слоты блокировки в БД: %w", err)
		}

		blocked = append(blocked, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return blocked, nil
}
