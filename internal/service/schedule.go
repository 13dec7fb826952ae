package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

type ScheduleServiceImpl struct {
	scheduleRepo repository.ScheduleRepository
	barberRepo   repository.BarberRepository
	logger       *zap.Logger
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, barberRepo repository.BarberRepository, logger *zap.Logger) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		barberRepo:   barberRepo,
		logger:       logger,
	}
}

func (s *ScheduleServiceImpl) ListBusinessHours(ctx context.Context) ([]domain.WeeklyHours, error) {
	hours, err := s.scheduleRepo.ListBusinessHours(ctx)
	if err != nil {
		s.logger.Error("ошибка получения часов работы", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения часов работы: %w", err)
	}
	return hours, nil
}

func (s *ScheduleServiceImpl) UpdateBusinessHours(ctx context.Context, dayOfWeek int, dto domain.UpdateWeeklyHoursDTO) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return errors.New("день недели должен быть от 0 до 6")
	}

	if err := validateDayIntervals(dto.IsOpen, dto.MorningStart, dto.MorningEnd, dto.AfternoonStart, dto.AfternoonEnd); err != nil {
		return err
	}

	if err := s.scheduleRepo.UpsertBusinessHours(ctx, dayOfWeek, dto); err != nil {
		s.logger.Error("ошибка обновления часов работы", zap.Int("dayOfWeek", dayOfWeek), zap.Error(err))
		return fmt.Errorf("ошибка обновления часов работы: %w", err)
	}

	s.logger.Info("часы работы обновлены", zap.Int("dayOfWeek", dayOfWeek), zap.Bool("isOpen", dto.IsOpen))
	return nil
}

func (s *ScheduleServiceImpl) ListBarberSchedules(ctx context.Context, barberID int64) ([]domain.BarberSchedule, error) {
	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("ошибка получения мастера: %w", err)
	}

	schedules, err := s.scheduleRepo.ListBarberSchedules(ctx, barberID)
	if err != nil {
		s.logger.Error("ошибка получения расписаний мастера", zap.Int64("barberId", barberID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения расписаний мастера: %w", err)
	}
	return schedules, nil
}

func (s *ScheduleServiceImpl) UpsertBarberSchedule(ctx context.Context, barberID int64, dto domain.UpsertBarberScheduleDTO) error {
	if dto.DayOfWeek < 0 || dto.DayOfWeek > 6 {
		return errors.New("день недели должен быть от 0 до 6")
	}

	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("ошибка получения мастера: %w", err)
	}

	if err := validateDayIntervals(dto.IsAvailable, dto.MorningStart, dto.MorningEnd, dto.AfternoonStart, dto.AfternoonEnd); err != nil {
		return err
	}

	if err := s.scheduleRepo.UpsertBarberSchedule(ctx, barberID, dto); err != nil {
		s.logger.Error("ошибка сохранения расписания мастера",
			zap.Int64("barberId", barberID), zap.Int("dayOfWeek", dto.DayOfWeek), zap.Error(err))
		return fmt.Errorf("ошибка сохранения расписания мастера: %w", err)
	}

	return nil
}

// DeleteBarberSchedule убирает переопределение: мастер снова наследует
// общие часы заведения на этот день.
func (s *ScheduleServiceImpl) DeleteBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) error {
	if err := s.scheduleRepo.DeleteBarberSchedule(ctx, barberID, dayOfWeek); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления расписания мастера",
			zap.Int64("barberId", barberID), zap.Int("dayOfWeek", dayOfWeek), zap.Error(err))
		return fmt.Errorf("ошибка удаления расписания мастера: %w", err)
	}
	return nil
}

// validateDayIntervals проверяет пары начало/конец: оба края вместе, начало
// раньше конца, дневной интервал не раньше утреннего. Для закрытого дня
// интервалы не проверяются и не обязательны.
func validateDayIntervals(open bool, morningStart, morningEnd, afternoonStart, afternoonEnd *string) error {
	if !open {
		return nil
	}

	morning, err := parseInterval(morningStart, morningEnd, "утренний")
	if err != nil {
		return err
	}
	afternoon, err := parseInterval(afternoonStart, afternoonEnd, "дневной")
	if err != nil {
		return err
	}

	if morning != nil && afternoon != nil && afternoon.Start.Before(morning.End) {
		return errors.New("дневной интервал пересекается с утренним")
	}

	return nil
}

func parseInterval(start, end *string, name string) (*domain.HourRange, error) {
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil || end == nil {
		return nil, fmt.Errorf("%s интервал задан не полностью", name)
	}

	startLabel, err := domain.ParseTimeLabel(*start)
	if err != nil {
		return nil, fmt.Errorf("некорректное начало интервала: %w", err)
	}
	endLabel, err := domain.ParseTimeLabel(*end)
	if err != nil {
		return nil, fmt.Errorf("некорректный конец интервала: %w", err)
	}

	r := domain.HourRange{Start: startLabel, End: endLabel}
	if !r.IsValid() {
		return nil, fmt.Errorf("%s интервал: начало должно быть раньше конца", name)
	}

	return &r, nil
}
