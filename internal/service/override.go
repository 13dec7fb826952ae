package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

type OverrideServiceImpl struct {
	overrideRepo repository.OverrideRepository
	barberRepo   repository.BarberRepository
	logger       *zap.Logger
}

func NewOverrideService(overrideRepo repository.OverrideRepository, barberRepo repository.BarberRepository, logger *zap.Logger) *OverrideServiceImpl {
	return &OverrideServiceImpl{
		overrideRepo: overrideRepo,
		barberRepo:   barberRepo,
		logger:       logger,
	}
}

func (s *OverrideServiceImpl) CreateHoliday(ctx context.Context, dto domain.CreateHolidayDTO) (int64, error) {
	date, err := domain.ParseDate(dto.Date)
	if err != nil {
		return 0, fmt.Errorf("некорректная дата: %w", err)
	}

	if err := s.checkBarber(ctx, dto.BarberID); err != nil {
		return 0, err
	}

	id, err := s.overrideRepo.CreateHoliday(ctx, dto, date)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, errors.New("выходной на эту дату уже существует")
		}
		s.logger.Error("ошибка создания выходного", zap.String("date", date.String()), zap.Error(err))
		return 0, fmt.Errorf("ошибка создания выходного: %w", err)
	}

	s.logger.Info("выходной создан", zap.Int64("id", id), zap.String("date", date.String()))
	return id, nil
}

func (s *OverrideServiceImpl) DeleteHoliday(ctx context.Context, id int64) error {
	if err := s.overrideRepo.DeleteHoliday(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления выходного", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления выходного: %w", err)
	}
	return nil
}

func (s *OverrideServiceImpl) ListHolidays(ctx context.Context, from, to *domain.Date) ([]domain.Holiday, error) {
	holidays, err := s.overrideRepo.ListHolidays(ctx, from, to)
	if err != nil {
		s.logger.Error("ошибка получения выходных", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения выходных: %w", err)
	}
	return holidays, nil
}

func (s *OverrideServiceImpl) CreateBlockedTime(ctx context.Context, dto domain.CreateBlockedTimeDTO) (int64, error) {
	date, err := domain.ParseDate(dto.Date)
	if err != nil {
		return 0, fmt.Errorf("некорректная дата: %w", err)
	}

	slots := make([]domain.TimeLabel, 0, len(dto.TimeSlots))
	for _, raw := range dto.TimeSlots {
		label, err := domain.ParseTimeLabel(raw)
		if err != nil {
			return 0, fmt.Errorf("некорректное время %q: %w", raw, err)
		}
		if !domain.ContainsLabel(slots, label) {
			slots = append(slots, label)
		}
	}

	if err := s.checkBarber(ctx, dto.BarberID); err != nil {
		return 0, err
	}

	id, err := s.overrideRepo.CreateBlockedTime(ctx, date, slots, dto.Reason, dto.BarberID)
	if err != nil {
		s.logger.Error("ошибка создания блокировки", zap.String("date", date.String()), zap.Error(err))
		return 0, fmt.Errorf("ошибка создания блокировки: %w", err)
	}

	s.logger.Info("блокировка создана",
		zap.Int64("id", id), zap.String("date", date.String()), zap.Int("slots", len(slots)))
	return id, nil
}

func (s *OverrideServiceImpl) DeleteBlockedTime(ctx context.Context, id int64) error {
	if err := s.overrideRepo.DeleteBlockedTime(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления блокировки", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления блокировки: %w", err)
	}
	return nil
}

func (s *OverrideServiceImpl) ListBlockedTimes(ctx context.Context, from, to *domain.Date) ([]domain.BlockedTime, error) {
	blocked, err := s.overrideRepo.ListBlockedTimes(ctx, from, to)
	if err != nil {
		s.logger.Error("ошибка получения блокировок", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения блокировок: %w", err)
	}
	return blocked, nil
}

func (s *OverrideServiceImpl) checkBarber(ctx context.Context, barberID *int64) error {
	if barberID == nil {
		return nil
	}
	if _, err := s.barberRepo.GetByID(ctx, *barberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errors.New("мастер не найден")
		}
		return fmt.Errorf("ошибка получения мастера: %w", err)
	}
	return nil
}
