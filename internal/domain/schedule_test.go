package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hourRange(startHour, endHour int) *HourRange {
	return &HourRange{Start: LabelFromHour(startHour), End: LabelFromHour(endHour)}
}

func TestHourRangeLabels(t *testing.T) {
	// Полуинтервал: конец не входит.
	labels := hourRange(7, 12).Labels()
	assert.Len(t, labels, 5)
	assert.Equal(t, "07:00", labels[0].Format24())
	assert.Equal(t, "11:00", labels[4].Format24())

	assert.Len(t, hourRange(9, 10).Labels(), 1)
	assert.Empty(t, hourRange(9, 9).Labels())
}

func TestHourRangeIsValid(t *testing.T) {
	assert.True(t, hourRange(7, 12).IsValid())
	assert.False(t, hourRange(12, 7).IsValid())
	assert.False(t, hourRange(9, 9).IsValid())
}

func TestWeeklyHoursSlotLabels(t *testing.T) {
	hours := &WeeklyHours{
		DayOfWeek: 1,
		IsOpen:    true,
		Morning:   hourRange(7, 12),
		Afternoon: hourRange(15, 21),
	}

	labels := hours.SlotLabels()
	assert.Len(t, labels, 11)
	assert.Equal(t, "07:00", labels[0].Format24())
	assert.Equal(t, "11:00", labels[4].Format24())
	assert.Equal(t, "15:00", labels[5].Format24())
	assert.Equal(t, "20:00", labels[10].Format24())
}

func TestWeeklyHoursSlotLabelsClosed(t *testing.T) {
	closed := &WeeklyHours{DayOfWeek: 0, IsOpen: false, Morning: hourRange(10, 15)}
	assert.Empty(t, closed.SlotLabels())

	var absent *WeeklyHours
	assert.Empty(t, absent.SlotLabels())
}

func TestWeeklyHoursSlotLabelsPartial(t *testing.T) {
	// Только утренний интервал: короткий день без перерыва.
	sunday := &WeeklyHours{DayOfWeek: 0, IsOpen: true, Morning: hourRange(10, 15)}
	labels := sunday.SlotLabels()
	assert.Len(t, labels, 5)

	// Открытый день без интервалов — ноль слотов, не ошибка.
	empty := &WeeklyHours{DayOfWeek: 2, IsOpen: true}
	assert.Empty(t, empty.SlotLabels())
}

func TestBarberScheduleSlotLabels(t *testing.T) {
	schedule := &BarberSchedule{
		BarberID:    1,
		DayOfWeek:   1,
		IsAvailable: true,
		Morning:     hourRange(10, 13),
	}
	assert.Len(t, schedule.SlotLabels(), 3)

	unavailable := &BarberSchedule{BarberID: 1, DayOfWeek: 1, IsAvailable: false, Morning: hourRange(10, 13)}
	assert.Empty(t, unavailable.SlotLabels())

	var absent *BarberSchedule
	assert.Empty(t, absent.SlotLabels())
}

func TestOverrideAppliesTo(t *testing.T) {
	barberID := int64(2)

	general := Holiday{Date: NewDate(2026, 3, 16)}
	scoped := Holiday{Date: NewDate(2026, 3, 16), BarberID: &barberID}

	// Общий выходной действует на всех.
	assert.True(t, general.AppliesTo(GeneralScope()))
	assert.True(t, general.AppliesTo(BarberScope(1)))

	// Персональный — только на своего мастера; общий вид его не видит.
	assert.True(t, scoped.AppliesTo(BarberScope(2)))
	assert.False(t, scoped.AppliesTo(BarberScope(1)))
	assert.False(t, scoped.AppliesTo(GeneralScope()))

	blocked := BlockedTime{Date: NewDate(2026, 3, 16), BarberID: &barberID, Slots: []TimeLabel{LabelFromHour(9)}}
	assert.True(t, blocked.AppliesTo(BarberScope(2)))
	assert.False(t, blocked.AppliesTo(GeneralScope()))
}
