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

const uniqueViolationCode = "23505"

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Повторная проверка занятости прямо перед вставкой сужает окно гонки;
	// последний рубеж — частичный уникальный индекс по неотменённым записям.
	checkQuery := `
		SELECT COUNT(*)
		FROM appointments
		WHERE date = $1
		AND time_slot = $2
		AND status <> 'cancelled'
		AND COALESCE(barber_id, 0) = COALESCE($3, 0)
	`

	var count int
	err = tx.QueryRow(ctx, checkQuery, appointment.Date.String(), appointment.Time.Format24(), appointment.BarberID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка проверки занятости слота: %w", err)
	}
	if count > 0 {
		return 0, ErrSlotTaken
	}

	query := `
		INSERT INTO appointments (date, time_slot, client_name, client_phone, service, barber_id, confirmed, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRow(ctx, query,
		appointment.Date.String(),
		appointment.Time.Format24(),
		appointment.ClientName,
		appointment.ClientPhone,
		appointment.Service,
		appointment.BarberID,
		appointment.Confirmed,
		domain.AppointmentStatusActive,
		now,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, ErrSlotTaken
		}
		return 0, fmt.Errorf("ошибка создания записи: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, ErrSlotTaken
		}
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `
		SELECT a.id, a.date, a.time_slot, a.client_name, a.client_phone, a.service,
		       a.barber_id, COALESCE(b.name, ''), a.confirmed, a.status, a.cancelled_at,
		       a.created_at, a.updated_at
		FROM appointments a
		LEFT JOIN barbers b ON a.barber_id = b.id
		WHERE a.id = $1
	`

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}

	return appointment, nil
}

func (r *AppointmentRepo) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	query := `
		UPDATE appointments
		SET status = $1, cancelled_at = $2, updated_at = $2
		WHERE id = $3 AND status <> $1
	`

	_, err := r.db.Exec(ctx, query, domain.AppointmentStatusCancelled, cancelledAt, id)
	if err != nil {
		return fmt.Errorf("ошибка отмены записи: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	baseQuery := `
		SELECT a.id, a.date, a.time_slot, a.client_name, a.client_phone, a.service,
		       a.barber_id, COALESCE(b.name, ''), a.confirmed, a.status, a.cancelled_at,
		       a.created_at, a.updated_at
		FROM appointments a
		LEFT JOIN barbers b ON a.barber_id = b.id
	`

	conditions, args := appointmentConditions(filter)
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	baseQuery += " ORDER BY a.date, a.time_slot"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		baseQuery += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		baseQuery += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка записей: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	baseQuery := `
		SELECT COUNT(*)
		FROM appointments a
	`

	conditions, args := appointmentConditions(filter)
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := r.db.QueryRow(ctx, baseQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка получения количества записей: %w", err)
	}

	return count, nil
}

func (r *AppointmentRepo) ListActiveByDate(ctx context.Context, date domain.Date) ([]domain.Appointment, error) {
	query := `
		SELECT a.id, a.date, a.time_slot, a.client_name, a.client_phone, a.service,
		       a.barber_id, COALESCE(b.name, ''), a.confirmed, a.status, a.cancelled_at,
		       a.created_at, a.updated_at
		FROM appointments a
		LEFT JOIN barbers b ON a.barber_id = b.id
		WHERE a.date = $1 AND a.status <> 'cancelled'
		ORDER BY a.time_slot
	`

	rows, err := r.db.Query(ctx, query, date.String())
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей на дату: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentRepo) ExistsActiveByPhone(ctx context.Context, clientPhone string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE client_phone = $1 AND status <> 'cancelled'
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, clientPhone).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка поиска записей по телефону: %w", err)
	}

	return exists, nil
}

func appointmentConditions(filter domain.AppointmentFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Date != nil {
		args = append(args, filter.Date.String())
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(args)))
	}

	if filter.BarberID != nil {
		args = append(args, *filter.BarberID)
		conditions = append(conditions, fmt.Sprintf("a.barber_id = $%d", len(args)))
	}

	if filter.ClientPhone != nil {
		args = append(args, *filter.ClientPhone)
		conditions = append(conditions, fmt.Sprintf("a.client_phone = $%d", len(args)))
	}

	if !filter.IncludeCancelled {
		conditions = append(conditions, "a.status <> 'cancelled'")
	}

	return conditions, args
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var date time.Time
	var timeSlot string

	err := row.Scan(
		&appointment.ID,
		&date,
		&timeSlot,
		&appointment.ClientName,
		&appointment.ClientPhone,
		&appointment.Service,
		&appointment.BarberID,
		&appointment.BarberName,
		&appointment.Confirmed,
		&appointment.Status,
		&appointment.CancelledAt,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.Date = domain.DateOf(date)

	label, err := domain.ParseTimeLabel(timeSlot)
	if err != nil {
		return nil, fmt.Errorf("некорректное время слота в БД: %w", err)
	}
	appointment.Time = label

	return &appointment, nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return appointments, nil
}
