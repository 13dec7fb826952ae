package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

type appointmentFixture struct {
	svc      *AppointmentServiceImpl
	appts    *fakeAppointmentRepo
	barbers  *fakeBarberRepo
	settings *fakeSettingsRepo
	schedule *fakeScheduleRepo
	override *fakeOverrideRepo
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	af := newAvailabilityFixture(t)
	barbers := newFakeBarberRepo(
		&domain.Barber{ID: 1, Name: "Артём", IsActive: true},
		&domain.Barber{ID: 2, Name: "Сергей", IsActive: false},
	)

	svc := NewAppointmentService(af.appts, barbers, af.settings, af.svc, zap.NewNop())
	svc.now = af.svc.now

	return &appointmentFixture{
		svc:      svc,
		appts:    af.appts,
		barbers:  barbers,
		settings: af.settings,
		schedule: af.schedule,
		override: af.override,
	}
}

func defaultDTO() domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		Date:        "2026-09-07",
		Time:        "09:00",
		ClientName:  "Иван Петров",
		ClientPhone: "+79161234567",
		Service:     "Стрижка",
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	appointment, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, monday, appointment.Date)
	assert.Equal(t, "09:00", appointment.Time.Format24())
	assert.Equal(t, domain.AppointmentStatusActive, appointment.Status)
	// В режиме одного мастера запись общая.
	assert.Nil(t, appointment.BarberID)
}

func TestCreateAppointmentWithBarber(t *testing.T) {
	f := newAppointmentFixture(t)
	f.settings.settings.MultipleBarbersEnabled = true

	dto := defaultDTO()
	barberID := int64(1)
	dto.BarberID = &barberID

	appointment, err := f.svc.Create(context.Background(), dto)
	require.NoError(t, err)
	require.NotNil(t, appointment.BarberID)
	assert.Equal(t, int64(1), *appointment.BarberID)
}

func TestCreateAppointmentDefaultBarber(t *testing.T) {
	f := newAppointmentFixture(t)
	defaultBarber := int64(1)
	f.settings.settings.MultipleBarbersEnabled = true
	f.settings.settings.DefaultBarberID = &defaultBarber

	appointment, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)
	require.NotNil(t, appointment.BarberID)
	assert.Equal(t, int64(1), *appointment.BarberID)
}

func TestCreateAppointmentNoBarberSelected(t *testing.T) {
	f := newAppointmentFixture(t)
	f.settings.settings.MultipleBarbersEnabled = true

	_, err := f.svc.Create(context.Background(), defaultDTO())
	assert.ErrorIs(t, err, ErrNoBarberSelected)
}

func TestCreateAppointmentUnknownBarber(t *testing.T) {
	f := newAppointmentFixture(t)
	f.settings.settings.MultipleBarbersEnabled = true

	dto := defaultDTO()
	barberID := int64(99)
	dto.BarberID = &barberID

	_, err := f.svc.Create(context.Background(), dto)
	assert.Error(t, err)
}

func TestCreateAppointmentInactiveBarber(t *testing.T) {
	f := newAppointmentFixture(t)
	f.settings.settings.MultipleBarbersEnabled = true

	dto := defaultDTO()
	barberID := int64(2)
	dto.BarberID = &barberID

	_, err := f.svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, ErrBarberInactive)
}

func TestCreateAppointmentPastDate(t *testing.T) {
	f := newAppointmentFixture(t)

	dto := defaultDTO()
	dto.Date = "2026-09-05"

	_, err := f.svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateAppointmentSlotUnavailable(t *testing.T) {
	f := newAppointmentFixture(t)
	f.override.blocked = []domain.BlockedTime{{
		Date:  monday,
		Slots: []domain.TimeLabel{domain.LabelFromHour(9)},
	}}

	_, err := f.svc.Create(context.Background(), defaultDTO())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateAppointmentTakenSlot(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)

	dto := defaultDTO()
	dto.ClientName = "Пётр Иванов"
	dto.ClientPhone = "+79167654321"

	_, err = f.svc.Create(context.Background(), dto)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateAppointmentRaceConflict(t *testing.T) {
	f := newAppointmentFixture(t)
	// Слот прошёл проверку доступности, но вставка упёрлась в уникальный
	// индекс: так выглядит гонка двух одновременных бронирований.
	f.appts.createErr = repository.ErrSlotTaken

	_, err := f.svc.Create(context.Background(), defaultDTO())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateAppointmentInvalidInput(t *testing.T) {
	f := newAppointmentFixture(t)

	dto := defaultDTO()
	dto.Date = "07.09.2026"
	_, err := f.svc.Create(context.Background(), dto)
	assert.Error(t, err)

	dto = defaultDTO()
	dto.Time = "25:00"
	_, err = f.svc.Create(context.Background(), dto)
	assert.Error(t, err)
}

func TestCancelAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	appointment, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(context.Background(), appointment.ID))

	cancelled, err := f.svc.GetByID(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled())
	require.NotNil(t, cancelled.CancelledAt)

	// Повторная отмена и отмена несуществующей записи проходят без ошибки.
	assert.NoError(t, f.svc.Cancel(context.Background(), appointment.ID))
	assert.NoError(t, f.svc.Cancel(context.Background(), 777))
}

func TestCancelFreesSlot(t *testing.T) {
	f := newAppointmentFixture(t)

	appointment, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(context.Background(), appointment.ID))

	again, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)
	assert.NotEqual(t, appointment.ID, again.ID)
}

func TestListAppointments(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.svc.Create(context.Background(), defaultDTO())
	require.NoError(t, err)

	dto := defaultDTO()
	dto.Time = "10:00"
	_, err = f.svc.Create(context.Background(), dto)
	require.NoError(t, err)

	list, total, err := f.svc.List(context.Background(), domain.AppointmentFilter{Date: &monday, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)
}
