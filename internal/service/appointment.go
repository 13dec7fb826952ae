package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

type AppointmentServiceImpl struct {
	appointmentRepo repository.AppointmentRepository
	barberRepo      repository.BarberRepository
	settingsRepo    repository.SettingsRepository
	availability    AvailabilityService
	logger          *zap.Logger
	now             nowFunc
}

func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	barberRepo repository.BarberRepository,
	settingsRepo repository.SettingsRepository,
	availability AvailabilityService,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		settingsRepo:    settingsRepo,
		availability:    availability,
		logger:          logger,
		now:             time.Now,
	}
}

// Create проводит запись через полный цикл перепроверки: разрешение
// мастера по настройкам, проверка даты, свежая проверка доступности слота
// и вставка с уникальным индексом на стороне базы. Гонка двух
// одновременных бронирований одного слота разрешается базой, а не кодом.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	date, err := domain.ParseDate(dto.Date)
	if err != nil {
		return nil, fmt.Errorf("некорректная дата: %w", err)
	}
	label, err := domain.ParseTimeLabel(dto.Time)
	if err != nil {
		return nil, fmt.Errorf("некорректное время: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения настроек", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	barberID, err := s.resolveBarber(ctx, dto.BarberID, settings)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now())
	if date.Before(today) {
		return nil, ErrPastDate
	}

	available, err := s.availability.IsAvailable(ctx, date, label, domain.ScopeFor(barberID))
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSlotUnavailable
	}

	id, err := s.appointmentRepo.Create(ctx, domain.Appointment{
		Date:        date,
		Time:        label,
		ClientName:  dto.ClientName,
		ClientPhone: dto.ClientPhone,
		Service:     dto.Service,
		BarberID:    barberID,
		Status:      domain.AppointmentStatusActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		s.logger.Error("ошибка создания записи", zap.Error(err))
		return nil, fmt.Errorf("ошибка создания записи: %w", err)
	}

	s.logger.Info("запись создана",
		zap.Int64("id", id),
		zap.String("date", date.String()),
		zap.String("time", label.Format24()))

	return s.appointmentRepo.GetByID(ctx, id)
}

// resolveBarber выбирает мастера для записи. В режиме нескольких мастеров
// явный выбор обязателен либо должен существовать мастер по умолчанию;
// в одиночном режиме запись всегда общая и идентификатор мастера пуст.
func (s *AppointmentServiceImpl) resolveBarber(ctx context.Context, requested *int64, settings *domain.AdminSettings) (*int64, error) {
	if !settings.MultipleBarbersEnabled {
		return nil, nil
	}

	id := requested
	if id == nil {
		id = settings.DefaultBarberID
	}
	if id == nil {
		return nil, ErrNoBarberSelected
	}

	barber, err := s.barberRepo.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoBarberSelected
		}
		s.logger.Error("ошибка получения мастера", zap.Int64("barberID", *id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения мастера: %w", err)
	}
	if !barber.IsActive {
		return nil, ErrBarberInactive
	}

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}
	return appointment, nil
}

// Cancel — мягкая отмена. Повторная отмена уже отменённой или
// несуществующей записи не считается ошибкой: операция идемпотентна.
func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения записи: %w", err)
	}
	if appointment.IsCancelled() {
		return nil
	}

	if err := s.appointmentRepo.Cancel(ctx, id, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		s.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка отмены записи: %w", err)
	}

	s.logger.Info("запись отменена", zap.Int64("id", id))
	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка записей: %w", err)
	}
	total, err := s.appointmentRepo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчёта записей", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка подсчёта записей: %w", err)
	}
	return appointments, total, nil
}
