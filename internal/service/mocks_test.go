package service

import (
	"context"
	"time"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

// Фейковые репозитории держат данные в памяти; err, будучи установленным,
// возвращается из всех методов чтения — так проверяется поведение движка
// при отказе хранилища.

type fakeScheduleRepo struct {
	businessHours   map[int]*domain.WeeklyHours
	barberSchedules map[int64]map[int]*domain.BarberSchedule
	err             error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		businessHours:   make(map[int]*domain.WeeklyHours),
		barberSchedules: make(map[int64]map[int]*domain.BarberSchedule),
	}
}

func (f *fakeScheduleRepo) GetBusinessHours(ctx context.Context, dayOfWeek int) (*domain.WeeklyHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.businessHours[dayOfWeek], nil
}

func (f *fakeScheduleRepo) ListBusinessHours(ctx context.Context) ([]domain.WeeklyHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	var hours []domain.WeeklyHours
	for _, h := range f.businessHours {
		hours = append(hours, *h)
	}
	return hours, nil
}

func (f *fakeScheduleRepo) UpsertBusinessHours(ctx context.Context, dayOfWeek int, dto domain.UpdateWeeklyHoursDTO) error {
	return f.err
}

func (f *fakeScheduleRepo) GetBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) (*domain.BarberSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.barberSchedules[barberID][dayOfWeek], nil
}

func (f *fakeScheduleRepo) ListBarberSchedules(ctx context.Context, barberID int64) ([]domain.BarberSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var schedules []domain.BarberSchedule
	for _, s := range f.barberSchedules[barberID] {
		schedules = append(schedules, *s)
	}
	return schedules, nil
}

func (f *fakeScheduleRepo) UpsertBarberSchedule(ctx context.Context, barberID int64, dto domain.UpsertBarberScheduleDTO) error {
	return f.err
}

func (f *fakeScheduleRepo) DeleteBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) error {
	return f.err
}

func (f *fakeScheduleRepo) setBarberSchedule(s *domain.BarberSchedule) {
	if f.barberSchedules[s.BarberID] == nil {
		f.barberSchedules[s.BarberID] = make(map[int]*domain.BarberSchedule)
	}
	f.barberSchedules[s.BarberID][s.DayOfWeek] = s
}

type fakeOverrideRepo struct {
	holidays []domain.Holiday
	blocked  []domain.BlockedTime
	err      error
}

func (f *fakeOverrideRepo) CreateHoliday(ctx context.Context, dto domain.CreateHolidayDTO, date domain.Date) (int64, error) {
	return 0, f.err
}

func (f *fakeOverrideRepo) DeleteHoliday(ctx context.Context, id int64) error { return f.err }

func (f *fakeOverrideRepo) ListHolidays(ctx context.Context, from, to *domain.Date) ([]domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

func (f *fakeOverrideRepo) ListHolidaysByDate(ctx context.Context, date domain.Date) ([]domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []domain.Holiday
	for _, h := range f.holidays {
		if h.Date.Equal(date) {
			result = append(result, h)
		}
	}
	return result, nil
}

func (f *fakeOverrideRepo) CreateBlockedTime(ctx context.Context, date domain.Date, slots []domain.TimeLabel, reason string, barberID *int64) (int64, error) {
	return 0, f.err
}

func (f *fakeOverrideRepo) DeleteBlockedTime(ctx context.Context, id int64) error { return f.err }

func (f *fakeOverrideRepo) ListBlockedTimes(ctx context.Context, from, to *domain.Date) ([]domain.BlockedTime, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blocked, nil
}

func (f *fakeOverrideRepo) ListBlockedTimesByDate(ctx context.Context, date domain.Date) ([]domain.BlockedTime, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []domain.BlockedTime
	for _, b := range f.blocked {
		if b.Date.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeAppointmentRepo struct {
	appointments []domain.Appointment
	nextID       int64
	createErr    error
	err          error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if f.err != nil {
		return 0, f.err
	}
	for _, existing := range f.appointments {
		if existing.IsCancelled() {
			continue
		}
		if existing.Date.Equal(appointment.Date) && existing.Time.Equal(appointment.Time) &&
			barberKey(existing.BarberID) == barberKey(appointment.BarberID) {
			return 0, repository.ErrSlotTaken
		}
	}
	f.nextID++
	appointment.ID = f.nextID
	f.appointments = append(f.appointments, appointment)
	return appointment.ID, nil
}

func barberKey(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentRepo) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = domain.AppointmentStatusCancelled
			f.appointments[i].CancelledAt = &cancelledAt
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.appointments), nil
}

func (f *fakeAppointmentRepo) ListActiveByDate(ctx context.Context, date domain.Date) ([]domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []domain.Appointment
	for _, a := range f.appointments {
		if a.Date.Equal(date) && !a.IsCancelled() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) ExistsActiveByPhone(ctx context.Context, clientPhone string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.appointments {
		if a.ClientPhone == clientPhone && !a.IsCancelled() {
			return true, nil
		}
	}
	return false, nil
}

type fakeSettingsRepo struct {
	settings domain.AdminSettings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.AdminSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	settings := f.settings
	return &settings, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, dto domain.UpdateSettingsDTO) error {
	return f.err
}

type fakeBarberRepo struct {
	barbers map[int64]*domain.Barber
	err     error
}

func newFakeBarberRepo(barbers ...*domain.Barber) *fakeBarberRepo {
	repo := &fakeBarberRepo{barbers: make(map[int64]*domain.Barber)}
	for _, b := range barbers {
		repo.barbers[b.ID] = b
	}
	return repo
}

func (f *fakeBarberRepo) Create(ctx context.Context, dto domain.CreateBarberDTO, accessKeyHash string) (int64, error) {
	return 0, f.err
}

func (f *fakeBarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	if f.err != nil {
		return nil, f.err
	}
	barber, ok := f.barbers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return barber, nil
}

func (f *fakeBarberRepo) Update(ctx context.Context, id int64, dto domain.UpdateBarberDTO) error {
	return f.err
}

func (f *fakeBarberRepo) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	return f.err
}

func (f *fakeBarberRepo) UpdateAccessKey(ctx context.Context, id int64, accessKeyHash string) error {
	return f.err
}

func (f *fakeBarberRepo) List(ctx context.Context, onlyActive bool) ([]domain.Barber, error) {
	if f.err != nil {
		return nil, f.err
	}
	var barbers []domain.Barber
	for _, b := range f.barbers {
		if onlyActive && !b.IsActive {
			continue
		}
		barbers = append(barbers, *b)
	}
	return barbers, nil
}
