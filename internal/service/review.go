package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
	"barberia/pkg/validator"
)

type ReviewServiceImpl struct {
	reviewRepo      repository.ReviewRepository
	appointmentRepo repository.AppointmentRepository
	settingsRepo    repository.SettingsRepository
	logger          *zap.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	appointmentRepo repository.AppointmentRepository,
	settingsRepo repository.SettingsRepository,
	logger *zap.Logger,
) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		reviewRepo:      reviewRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Create принимает отзыв в очередь модерации. Отзыв помечается
// подтверждённым, если телефон клиента встречается среди действующих
// записей; ошибка этой проверки отзыв не блокирует.
func (s *ReviewServiceImpl) Create(ctx context.Context, dto domain.CreateReviewDTO) (int64, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения настроек", zap.Error(err))
		return 0, fmt.Errorf("ошибка получения настроек: %w", err)
	}
	if !settings.ReviewsEnabled {
		return 0, ErrReviewsDisabled
	}

	if !validator.ValidatePhone(dto.ClientPhone) {
		return 0, errors.New("некорректный номер телефона")
	}
	dto.ClientPhone = validator.FormatPhone(dto.ClientPhone)

	verified, err := s.appointmentRepo.ExistsActiveByPhone(ctx, dto.ClientPhone)
	if err != nil {
		s.logger.Warn("ошибка проверки телефона клиента", zap.Error(err))
		verified = false
	}

	id, err := s.reviewRepo.Create(ctx, domain.Review{
		ClientName:  dto.ClientName,
		ClientPhone: dto.ClientPhone,
		Rating:      dto.Rating,
		Comment:     dto.Comment,
		ServiceUsed: dto.ServiceUsed,
		BarberID:    dto.BarberID,
		IsVerified:  verified,
	})
	if err != nil {
		s.logger.Error("ошибка создания отзыва", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания отзыва: %w", err)
	}

	s.logger.Info("отзыв создан", zap.Int64("id", id), zap.Bool("verified", verified))
	return id, nil
}

func (s *ReviewServiceImpl) Approve(ctx context.Context, id int64) error {
	if err := s.reviewRepo.SetApproved(ctx, id, true); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка одобрения отзыва", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка одобрения отзыва: %w", err)
	}
	return nil
}

// Reject удаляет отзыв; отклонённые отзывы не хранятся.
func (s *ReviewServiceImpl) Reject(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления отзыва", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления отзыва: %w", err)
	}
	return nil
}

func (s *ReviewServiceImpl) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error) {
	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка отзывов", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка отзывов: %w", err)
	}
	return reviews, total, nil
}

func (s *ReviewServiceImpl) AverageRating(ctx context.Context, barberID *int64) (float64, error) {
	average, err := s.reviewRepo.AverageRating(ctx, barberID)
	if err != nil {
		s.logger.Error("ошибка получения среднего рейтинга", zap.Error(err))
		return 0, fmt.Errorf("ошибка получения среднего рейтинга: %w", err)
	}
	return average, nil
}
