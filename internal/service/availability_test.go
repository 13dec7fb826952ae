package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barberia/internal/domain"
)

// 2026-09-07 — понедельник.
var monday = domain.NewDate(2026, time.September, 7)

type availabilityFixture struct {
	svc      *AvailabilityServiceImpl
	schedule *fakeScheduleRepo
	override *fakeOverrideRepo
	appts    *fakeAppointmentRepo
	settings *fakeSettingsRepo
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	schedule := newFakeScheduleRepo()
	schedule.businessHours[1] = &domain.WeeklyHours{
		DayOfWeek: 1,
		IsOpen:    true,
		Morning:   &domain.HourRange{Start: domain.LabelFromHour(7), End: domain.LabelFromHour(12)},
		Afternoon: &domain.HourRange{Start: domain.LabelFromHour(15), End: domain.LabelFromHour(21)},
	}
	schedule.businessHours[0] = &domain.WeeklyHours{DayOfWeek: 0, IsOpen: false}

	override := &fakeOverrideRepo{}
	appts := &fakeAppointmentRepo{}
	settings := &fakeSettingsRepo{}

	svc := NewAvailabilityService(schedule, override, appts, settings, zap.NewNop())
	// Полдень накануне: до любого слота понедельника больше суток.
	svc.now = func() time.Time {
		return time.Date(2026, time.September, 6, 12, 0, 0, 0, time.UTC)
	}

	return &availabilityFixture{svc: svc, schedule: schedule, override: override, appts: appts, settings: settings}
}

func TestNominalHoursGeneral(t *testing.T) {
	f := newAvailabilityFixture(t)

	labels, err := f.svc.NominalHours(context.Background(), monday, domain.GeneralScope())
	require.NoError(t, err)
	require.Len(t, labels, 11)
	assert.Equal(t, "07:00", labels[0].Format24())
	assert.Equal(t, "11:00", labels[4].Format24())
	assert.Equal(t, "15:00", labels[5].Format24())
	assert.Equal(t, "20:00", labels[10].Format24())
}

func TestNominalHoursClosedDay(t *testing.T) {
	f := newAvailabilityFixture(t)

	sunday := domain.NewDate(2026, time.September, 6)
	labels, err := f.svc.NominalHours(context.Background(), sunday, domain.GeneralScope())
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestNominalHoursMissingDay(t *testing.T) {
	f := newAvailabilityFixture(t)

	// Для вторника строки часов нет вовсе: ноль слотов, не ошибка.
	tuesday := domain.NewDate(2026, time.September, 8)
	labels, err := f.svc.NominalHours(context.Background(), tuesday, domain.GeneralScope())
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestNominalHoursBarberOverride(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.settings.settings.MultipleBarbersEnabled = true
	f.schedule.setBarberSchedule(&domain.BarberSchedule{
		BarberID:    1,
		DayOfWeek:   1,
		IsAvailable: true,
		Morning:     &domain.HourRange{Start: domain.LabelFromHour(10), End: domain.LabelFromHour(13)},
	})

	labels, err := f.svc.NominalHours(context.Background(), monday, domain.BarberScope(1))
	require.NoError(t, err)
	require.Len(t, labels, 3)
	assert.Equal(t, "10:00", labels[0].Format24())

	// Мастер без переопределения наследует общие часы.
	labels, err = f.svc.NominalHours(context.Background(), monday, domain.BarberScope(2))
	require.NoError(t, err)
	assert.Len(t, labels, 11)

	// Общий вид переопределения мастеров не видит.
	labels, err = f.svc.NominalHours(context.Background(), monday, domain.GeneralScope())
	require.NoError(t, err)
	assert.Len(t, labels, 11)
}

func TestNominalHoursOverrideIgnoredInSingleBarberMode(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.settings.settings.MultipleBarbersEnabled = false
	f.schedule.setBarberSchedule(&domain.BarberSchedule{
		BarberID:    1,
		DayOfWeek:   1,
		IsAvailable: true,
		Morning:     &domain.HourRange{Start: domain.LabelFromHour(10), End: domain.LabelFromHour(13)},
	})

	labels, err := f.svc.NominalHours(context.Background(), monday, domain.BarberScope(1))
	require.NoError(t, err)
	assert.Len(t, labels, 11)
}

func TestIsAvailableFreeSlot(t *testing.T) {
	f := newAvailabilityFixture(t)

	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableHolidayScoping(t *testing.T) {
	f := newAvailabilityFixture(t)
	barberID := int64(1)
	f.override.holidays = []domain.Holiday{{Date: monday, BarberID: &barberID}}

	// Персональный выходной закрывает день только своему мастеру.
	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.BarberScope(1))
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.BarberScope(2))
	require.NoError(t, err)
	assert.True(t, available)

	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableGeneralHoliday(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.override.holidays = []domain.Holiday{{Date: monday}}

	for _, scope := range []domain.Scope{domain.GeneralScope(), domain.BarberScope(1), domain.BarberScope(2)} {
		available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), scope)
		require.NoError(t, err)
		assert.False(t, available, "scope %s", scope)
	}
}

func TestIsAvailableBlockedTime(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.override.blocked = []domain.BlockedTime{{
		Date:  monday,
		Slots: []domain.TimeLabel{domain.LabelFromHour(9), domain.LabelFromHour(10)},
	}}

	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(11), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableTakenAsymmetry(t *testing.T) {
	f := newAvailabilityFixture(t)
	barberID := int64(1)
	f.appts.appointments = []domain.Appointment{{
		ID:       1,
		Date:     monday,
		Time:     domain.LabelFromHour(9),
		BarberID: &barberID,
		Status:   domain.AppointmentStatusActive,
	}}

	// Запрос по мастеру видит только его записи.
	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.BarberScope(1))
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.BarberScope(2))
	require.NoError(t, err)
	assert.True(t, available)

	// Общий запрос учитывает записи всех мастеров.
	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsAvailableCancelledFreesSlot(t *testing.T) {
	f := newAvailabilityFixture(t)
	cancelled := time.Now()
	f.appts.appointments = []domain.Appointment{{
		ID:          1,
		Date:        monday,
		Time:        domain.LabelFromHour(9),
		Status:      domain.AppointmentStatusCancelled,
		CancelledAt: &cancelled,
	}}

	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableEarlyBookingRestriction(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.settings.settings.EarlyBookingRestriction = true
	f.settings.settings.EarlyBookingHours = 12
	f.settings.settings.RestrictedHours = []domain.TimeLabel{domain.LabelFromHour(7)}

	// Сейчас 20:00 накануне: до слота 07:00 остаётся 11 часов — меньше 12.
	f.svc.now = func() time.Time {
		return time.Date(2026, time.September, 6, 20, 0, 0, 0, time.UTC)
	}

	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(7), domain.GeneralScope())
	require.NoError(t, err)
	assert.False(t, available)

	// Слот вне списка ограниченных не затронут.
	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)

	// Ровно на границе бронирование ещё разрешено.
	f.svc.now = func() time.Time {
		return time.Date(2026, time.September, 6, 19, 0, 0, 0, time.UTC)
	}
	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(7), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)

	// Выключенное ограничение не действует даже на слоты из списка.
	f.settings.settings.EarlyBookingRestriction = false
	f.svc.now = func() time.Time {
		return time.Date(2026, time.September, 7, 6, 30, 0, 0, time.UTC)
	}
	available, err = f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(7), domain.GeneralScope())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableFailsClosed(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.override.err = errors.New("connection refused")

	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	assert.Error(t, err)
	assert.False(t, available)
}

func TestIsAvailableSettingsError(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.settings.err = errors.New("connection refused")

	available, err := f.svc.IsAvailable(context.Background(), monday, domain.LabelFromHour(9), domain.GeneralScope())
	assert.Error(t, err)
	assert.False(t, available)
}

func TestDayAvailability(t *testing.T) {
	f := newAvailabilityFixture(t)
	barberID := int64(1)
	f.override.blocked = []domain.BlockedTime{{
		Date:  monday,
		Slots: []domain.TimeLabel{domain.LabelFromHour(8)},
	}}
	f.appts.appointments = []domain.Appointment{{
		ID:       1,
		Date:     monday,
		Time:     domain.LabelFromHour(9),
		BarberID: &barberID,
		Status:   domain.AppointmentStatusActive,
	}}

	statuses, err := f.svc.DayAvailability(context.Background(), monday, domain.GeneralScope())
	require.NoError(t, err)
	require.Len(t, statuses, 11)

	byHour := make(map[int]bool)
	for _, s := range statuses {
		byHour[s.Time.Hour()] = s.Available
	}

	assert.True(t, byHour[7])
	assert.False(t, byHour[8], "заблокированный слот")
	assert.False(t, byHour[9], "занятый слот")
	assert.True(t, byHour[10])
	assert.True(t, byHour[15])
}

func TestDayAvailabilityHolidayShortCircuits(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.override.holidays = []domain.Holiday{{Date: monday}}

	statuses, err := f.svc.DayAvailability(context.Background(), monday, domain.GeneralScope())
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestDayAvailabilityClosedDay(t *testing.T) {
	f := newAvailabilityFixture(t)

	sunday := domain.NewDate(2026, time.September, 6)
	statuses, err := f.svc.DayAvailability(context.Background(), sunday, domain.GeneralScope())
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestDayAvailabilityFailsClosed(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.appts.err = errors.New("connection refused")

	statuses, err := f.svc.DayAvailability(context.Background(), monday, domain.GeneralScope())
	assert.Error(t, err)
	assert.Nil(t, statuses)
}
