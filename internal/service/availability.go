package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

// AvailabilityServiceImpl отвечает на вопрос «какие слоты можно забронировать»:
// номинальное расписание минус выходные, блокировки, ограничение ранней
// записи и уже занятые слоты. Все проверки — чистые функции от явно
// переданного снимка настроек и области запроса.
type AvailabilityServiceImpl struct {
	scheduleRepo    repository.ScheduleRepository
	overrideRepo    repository.OverrideRepository
	appointmentRepo repository.AppointmentRepository
	settingsRepo    repository.SettingsRepository
	logger          *zap.Logger
	now             nowFunc
}

func NewAvailabilityService(
	scheduleRepo repository.ScheduleRepository,
	overrideRepo repository.OverrideRepository,
	appointmentRepo repository.AppointmentRepository,
	settingsRepo repository.SettingsRepository,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		scheduleRepo:    scheduleRepo,
		overrideRepo:    overrideRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *AvailabilityServiceImpl) NominalHours(ctx context.Context, date domain.Date, scope domain.Scope) ([]domain.TimeLabel, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения настроек", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	return s.nominalHours(ctx, date, scope, settings)
}

// nominalHours — расписание дня для области запроса. Индивидуальное
// расписание мастера применяется только когда запрос про конкретного
// мастера, включён режим нескольких мастеров и переопределение существует;
// во всех остальных случаях действуют общие часы заведения.
func (s *AvailabilityServiceImpl) nominalHours(ctx context.Context, date domain.Date, scope domain.Scope, settings *domain.AdminSettings) ([]domain.TimeLabel, error) {
	dayOfWeek := int(date.Weekday())

	if barberID, ok := scope.Barber(); ok && settings.MultipleBarbersEnabled {
		schedule, err := s.scheduleRepo.GetBarberSchedule(ctx, barberID, dayOfWeek)
		if err != nil {
			s.logger.Error("ошибка получения расписания мастера",
				zap.Int64("barberID", barberID), zap.Error(err))
			return nil, fmt.Errorf("ошибка получения расписания мастера: %w", err)
		}
		if schedule != nil {
			return schedule.SlotLabels(), nil
		}
	}

	hours, err := s.scheduleRepo.GetBusinessHours(ctx, dayOfWeek)
	if err != nil {
		s.logger.Error("ошибка получения часов работы", zap.Int("dayOfWeek", dayOfWeek), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения часов работы: %w", err)
	}

	return hours.SlotLabels(), nil
}

func (s *AvailabilityServiceImpl) IsAvailable(ctx context.Context, date domain.Date, label domain.TimeLabel, scope domain.Scope) (bool, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения настроек", zap.Error(err))
		return false, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	if isRestrictedHour(date, label, settings, s.now()) {
		return false, nil
	}

	snapshot, err := s.loadDaySnapshot(ctx, date)
	if err != nil {
		return false, err
	}

	if snapshot.isHoliday(scope) {
		return false, nil
	}
	if domain.ContainsLabel(snapshot.blockedLabels(scope), label) {
		return false, nil
	}
	if domain.ContainsLabel(snapshot.takenLabels(scope), label) {
		return false, nil
	}

	return true, nil
}

func (s *AvailabilityServiceImpl) DayAvailability(ctx context.Context, date domain.Date, scope domain.Scope) ([]domain.SlotStatus, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения настроек", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения настроек: %w", err)
	}

	nominal, err := s.nominalHours(ctx, date, scope, settings)
	if err != nil {
		return nil, err
	}
	if len(nominal) == 0 {
		return []domain.SlotStatus{}, nil
	}

	snapshot, err := s.loadDaySnapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	// Выходной для данной области обнуляет весь день: послотовые проверки
	// не выполняются.
	if snapshot.isHoliday(scope) {
		return []domain.SlotStatus{}, nil
	}

	blocked := snapshot.blockedLabels(scope)
	taken := snapshot.takenLabels(scope)
	now := s.now()

	statuses := make([]domain.SlotStatus, 0, len(nominal))
	for _, label := range nominal {
		available := !isRestrictedHour(date, label, settings, now) &&
			!domain.ContainsLabel(blocked, label) &&
			!domain.ContainsLabel(taken, label)
		statuses = append(statuses, domain.SlotStatus{Time: label, Available: available})
	}

	return statuses, nil
}

// daySnapshot — один согласованный срез данных дня, снятый в начале
// вычисления. Карта доступности никогда не пересчитывает предикаты по
// меняющимся данным посреди запроса, и результаты между вызовами не
// кешируются.
type daySnapshot struct {
	holidays     []domain.Holiday
	blocked      []domain.BlockedTime
	appointments []domain.Appointment
}

// loadDaySnapshot читает выходные, блокировки и записи одной волной
// независимых запросов. Любая ошибка чтения отменяет весь снимок.
func (s *AvailabilityServiceImpl) loadDaySnapshot(ctx context.Context, date domain.Date) (*daySnapshot, error) {
	var (
		snapshot                          daySnapshot
		holidaysErr, blockedErr, apptsErr error
		wg                                sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snapshot.holidays, holidaysErr = s.overrideRepo.ListHolidaysByDate(ctx, date)
	}()
	go func() {
		defer wg.Done()
		snapshot.blocked, blockedErr = s.overrideRepo.ListBlockedTimesByDate(ctx, date)
	}()
	go func() {
		defer wg.Done()
		snapshot.appointments, apptsErr = s.appointmentRepo.ListActiveByDate(ctx, date)
	}()
	wg.Wait()

	if holidaysErr != nil {
		s.logger.Error("ошибка получения выходных дней", zap.String("date", date.String()), zap.Error(holidaysErr))
		return nil, fmt.Errorf("ошибка получения выходных дней: %w", holidaysErr)
	}
	if blockedErr != nil {
		s.logger.Error("ошибка получения блокировок", zap.String("date", date.String()), zap.Error(blockedErr))
		return nil, fmt.Errorf("ошибка получения блокировок: %w", blockedErr)
	}
	if apptsErr != nil {
		s.logger.Error("ошибка получения записей", zap.String("date", date.String()), zap.Error(apptsErr))
		return nil, fmt.Errorf("ошибка получения записей: %w", apptsErr)
	}

	return &snapshot, nil
}

func (d *daySnapshot) isHoliday(scope domain.Scope) bool {
	for i := range d.holidays {
		if d.holidays[i].AppliesTo(scope) {
			return true
		}
	}
	return false
}

func (d *daySnapshot) blockedLabels(scope domain.Scope) []domain.TimeLabel {
	var labels []domain.TimeLabel
	for i := range d.blocked {
		if !d.blocked[i].AppliesTo(scope) {
			continue
		}
		for _, slot := range d.blocked[i].Slots {
			if !domain.ContainsLabel(labels, slot) {
				labels = append(labels, slot)
			}
		}
	}
	return labels
}

// takenLabels — занятые слоты дня. Правило области здесь намеренно НЕ
// совпадает с правилом для выходных и блокировок: запрос по мастеру
// учитывает только его записи, а общий запрос учитывает записи ВСЕХ
// мастеров — если хоть кто-то занят в этот час, общий вид не должен
// показывать слот свободным.
func (d *daySnapshot) takenLabels(scope domain.Scope) []domain.TimeLabel {
	barberID, scoped := scope.Barber()

	var labels []domain.TimeLabel
	for i := range d.appointments {
		appointment := &d.appointments[i]
		if scoped && (appointment.BarberID == nil || *appointment.BarberID != barberID) {
			continue
		}
		if !domain.ContainsLabel(labels, appointment.Time) {
			labels = append(labels, appointment.Time)
		}
	}
	return labels
}

// isRestrictedHour — ограничение ранней записи: слот из списка ограниченных
// нельзя бронировать менее чем за настроенное число часов до его начала.
// Ровно на границе бронирование ещё разрешено. Единственное место движка,
// где участвует настоящее время.
func isRestrictedHour(date domain.Date, label domain.TimeLabel, settings *domain.AdminSettings, now time.Time) bool {
	if !settings.EarlyBookingRestriction {
		return false
	}
	if !settings.IsRestrictedHour(label) {
		return false
	}

	target := date.At(label.MinuteOfDay(), now.Location())
	return target.Sub(now) < time.Duration(settings.EarlyBookingHours)*time.Hour
}
