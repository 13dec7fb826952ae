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

type BarberRepo struct {
	db *pgxpool.Pool
}

func NewBarberRepository(db *pgxpool.Pool) *BarberRepo {
	return &BarberRepo{
		db: db,
	}
}

func (r *BarberRepo) Create(ctx context.Context, dto domain.CreateBarberDTO, accessKeyHash string) (int64, error) {
	query := `
		INSERT INTO barbers (name, phone, is_active, access_key_hash, created_at, updated_at)
		VALUES ($1, $2, true, $3, $4, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.Name, dto.Phone, accessKeyHash, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания мастера: %w", err)
	}

	return id, nil
}

func (r *BarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	query := `
		SELECT id, name, phone, is_active, photo_url, access_key_hash, created_at, updated_at
		FROM barbers
		WHERE id = $1
	`

	var barber domain.Barber
	err := r.db.QueryRow(ctx, query, id).Scan(
		&barber.ID,
		&barber.Name,
		&barber.Phone,
		&barber.IsActive,
		&barber.PhotoURL,
		&barber.AccessKeyHash,
		&barber.CreatedAt,
		&barber.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения мастера: %w", err)
	}

	return &barber, nil
}

func (r *BarberRepo) Update(ctx context.Context, id int64, dto domain.UpdateBarberDTO) error {
	var sets []string
	var args []interface{}

	if dto.Name != nil {
		args = append(args, *dto.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if dto.Phone != nil {
		args = append(args, *dto.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if dto.IsActive != nil {
		args = append(args, *dto.IsActive)
		sets = append(sets, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, time.Now())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE barbers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления мастера: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *BarberRepo) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	query := `
		UPDATE barbers
		SET photo_url = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, photoURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления фото мастера: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *BarberRepo) UpdateAccessKey(ctx context.Context, id int64, accessKeyHash string) error {
	query := `
		UPDATE barbers
		SET access_key_hash = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, accessKeyHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления ключа доступа: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *BarberRepo) List(ctx context.Context, onlyActive bool) ([]domain.Barber, error) {
	query := `
		SELECT id, name, phone, is_active, photo_url, access_key_hash, created_at, updated_at
		FROM barbers
	`
	if onlyActive {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка мастеров: %w", err)
	}
	defer rows.Close()

	var barbers []domain.Barber
	for rows.Next() {
		var barber domain.Barber
		err := rows.Scan(
			&barber.ID,
			&barber.Name,
			&barber.Phone,
			&barber.IsActive,
			&barber.PhotoURL,
			&barber.AccessKeyHash,
			&barber.CreatedAt,
			&barber.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования мастера: %w", err)
		}
		barbers = append(barbers, barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return barbers, nil
}
