package domain

import (
	"time"
)

// HourRange — полуинтервал [Start, End): сам конец никогда не бронируется,
// окончание в 12:00 означает, что последний бронируемый час — 11:00.
type HourRange struct {
	Start TimeLabel `json:"start"`
	End   TimeLabel `json:"end"`
}

func (r HourRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Labels возвращает по одной метке на каждый целый час полуинтервала.
func (r HourRange) Labels() []TimeLabel {
	var labels []TimeLabel
	for minute := r.Start.MinuteOfDay(); minute < r.End.MinuteOfDay(); minute += 60 {
		label, err := LabelFromMinutes(minute)
		if err != nil {
			break
		}
		labels = append(labels, label)
	}
	return labels
}

// WeeklyHours — часы работы заведения для одного дня недели
// (0 = воскресенье … 6 = суббота).
type WeeklyHours struct {
	ID        int64      `json:"id"`
	DayOfWeek int        `json:"day_of_week"`
	IsOpen    bool       `json:"is_open"`
	Morning   *HourRange `json:"morning,omitempty"`
	Afternoon *HourRange `json:"afternoon,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SlotLabels — номинальные слоты дня в хронологическом порядке: сначала
// утренний интервал, затем дневной. Открытый день без интервалов — валидное
// состояние с нулём слотов.
func (w *WeeklyHours) SlotLabels() []TimeLabel {
	if w == nil || !w.IsOpen {
		return nil
	}

	var labels []TimeLabel
	if w.Morning != nil && w.Morning.IsValid() {
		labels = append(labels, w.Morning.Labels()...)
	}
	if w.Afternoon != nil && w.Afternoon.IsValid() {
		labels = append(labels, w.Afternoon.Labels()...)
	}
	return labels
}

// BarberSchedule — индивидуальное расписание мастера на день недели.
// Отсутствие записи означает наследование общих часов заведения.
type BarberSchedule struct {
	ID          int64      `json:"id"`
	BarberID    int64      `json:"barber_id"`
	DayOfWeek   int        `json:"day_of_week"`
	IsAvailable bool       `json:"is_available"`
	Morning     *HourRange `json:"morning,omitempty"`
	Afternoon   *HourRange `json:"afternoon,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SlotLabels — слоты мастера по его индивидуальному расписанию.
func (b *BarberSchedule) SlotLabels() []TimeLabel {
	if b == nil || !b.IsAvailable {
		return nil
	}

	var labels []TimeLabel
	if b.Morning != nil && b.Morning.IsValid() {
		labels = append(labels, b.Morning.Labels()...)
	}
	if b.Afternoon != nil && b.Afternoon.IsValid() {
		labels = append(labels, b.Afternoon.Labels()...)
	}
	return labels
}

type UpdateWeeklyHoursDTO struct {
	IsOpen         bool    `json:"is_open"`
	MorningStart   *string `json:"morning_start,omitempty"`
	MorningEnd     *string `json:"morning_end,omitempty"`
	AfternoonStart *string `json:"afternoon_start,omitempty"`
	AfternoonEnd   *string `json:"afternoon_end,omitempty"`
}

type UpsertBarberScheduleDTO struct {
	DayOfWeek      int     `json:"day_of_week" binding:"min=0,max=6"`
	IsAvailable    bool    `json:"is_available"`
	MorningStart   *string `json:"morning_start,omitempty"`
	MorningEnd     *string `json:"morning_end,omitempty"`
	AfternoonStart *string `json:"afternoon_start,omitempty"`
	AfternoonEnd   *string `json:"afternoon_end,omitempty"`
}
