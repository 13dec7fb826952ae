package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

type SettingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
	barberRepo   repository.BarberRepository
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo repository.SettingsRepository, barberRepo repository.BarberRepository, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		barberRepo:   barberRepo,
		logger:       logger,
	}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*domain.AdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения настроек", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, dto domain.UpdateSettingsDTO) (*domain.AdminSettings, error) {
	if dto.DefaultBarberID != nil {
		barber, err := s.barberRepo.GetByID(ctx, *dto.DefaultBarberID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, errors.New("мастер по умолчанию не найден")
			}
			return nil, fmt.Errorf("ошибка получения мастера: %w", err)
		}
		if !barber.IsActive {
			return nil, errors.New("мастер по умолчанию деактивирован")
		}
	}

	if dto.RestrictedHours != nil {
		for _, raw := range *dto.RestrictedHours {
			if _, err := domain.ParseTimeLabel(raw); err != nil {
				return nil, fmt.Errorf("некорректное время %q: %w", raw, err)
			}
		}
	}

	if err := s.settingsRepo.Update(ctx, dto); err != nil {
		s.logger.Error("ошибка обновления настроек", zap.Error(err))
		return nil, fmt.Errorf("ошибка обновления настроек: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	s.logger.Info("настройки обновлены",
		zap.Bool("multipleBarbers", settings.MultipleBarbersEnabled),
		zap.Bool("earlyBookingRestriction", settings.EarlyBookingRestriction))

	return settings, nil
}
