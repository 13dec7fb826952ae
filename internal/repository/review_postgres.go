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

type ReviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{
		db: db,
	}
}

func (r *ReviewRepo) Create(ctx context.Context, review domain.Review) (int64, error) {
	query := `
		INSERT INTO reviews (client_name, client_phone, rating, comment, service_used, barber_id, is_verified, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		review.ClientName,
		review.ClientPhone,
		review.Rating,
		review.Comment,
		review.ServiceUsed,
		review.BarberID,
		review.IsVerified,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания отзыва: %w", err)
	}

	return id, nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `
		SELECT r.id, r.client_name, r.client_phone, r.rating, r.comment, r.service_used,
		       r.barber_id, COALESCE(b.name, ''), r.is_verified, r.is_approved, r.created_at, r.updated_at
		FROM reviews r
		LEFT JOIN barbers b ON r.barber_id = b.id
		WHERE r.id = $1
	`

	var review domain.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.ClientName,
		&review.ClientPhone,
		&review.Rating,
		&review.Comment,
		&review.ServiceUsed,
		&review.BarberID,
		&review.BarberName,
		&review.IsVerified,
		&review.IsApproved,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения отзыва: %w", err)
	}

	return &review, nil
}

func (r *ReviewRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	query := `
		UPDATE reviews
		SET is_approved = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, approved, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса отзыва: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления отзыва: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ReviewRepo) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error) {
	var conditions []string
	var args []interface{}

	if filter.BarberID != nil {
		args = append(args, *filter.BarberID)
		conditions = append(conditions, fmt.Sprintf("r.barber_id = $%d", len(args)))
	}
	if filter.OnlyApproved {
		conditions = append(conditions, "r.is_approved = true")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM reviews r" + where
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества отзывов: %w", err)
	}

	query := `
		SELECT r.id, r.client_name, r.client_phone, r.rating, r.comment, r.service_used,
		       r.barber_id, COALESCE(b.name, ''), r.is_verified, r.is_approved, r.created_at, r.updated_at
		FROM reviews r
		LEFT JOIN barbers b ON r.barber_id = b.id
	` + where + " ORDER BY r.created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка отзывов: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.ClientName,
			&review.ClientPhone,
			&review.Rating,
			&review.Comment,
			&review.ServiceUsed,
			&review.BarberID,
			&review.BarberName,
			&review.IsVerified,
			&review.IsApproved,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования отзыва: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return reviews, total, nil
}

func (r *ReviewRepo) AverageRating(ctx context.Context, barberID *int64) (float64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE is_approved = true AND ($1::bigint IS NULL OR barber_id = $1)
	`

	var average float64
	if err := r.db.QueryRow(ctx, query, barberID).Scan(&average); err != nil {
		return 0, fmt.Errorf("ошибка получения среднего рейтинга: %w", err)
	}

	return average, nil
}
