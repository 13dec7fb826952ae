package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TimeLabel — слот времени внутри дня. Каноническое представление —
// минута дня (0–1439): сравнение и сортировка всегда идут по ней,
// строка ("3:00 PM" или "15:00") существует только на границе API.
type TimeLabel struct {
	minuteOfDay int
}

const minutesPerDay = 24 * 60

func LabelFromMinutes(minuteOfDay int) (TimeLabel, error) {
	if minuteOfDay < 0 || minuteOfDay >= minutesPerDay {
		return TimeLabel{}, fmt.Errorf("минута дня %d вне диапазона 0–1439", minuteOfDay)
	}
	return TimeLabel{minuteOfDay: minuteOfDay}, nil
}

func LabelFromHour(hour24 int) TimeLabel {
	return TimeLabel{minuteOfDay: hour24 * 60}
}

// ParseTimeLabel принимает и 24-часовой формат ("15:00"), и 12-часовой
// ("3:00 PM"). Преобразование тотально в обе стороны для целых часов.
func ParseTimeLabel(s string) (TimeLabel, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return TimeLabel{}, fmt.Errorf("пустая метка времени")
	}

	upper := strings.ToUpper(trimmed)
	var meridiem string
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		upper = strings.TrimSpace(strings.TrimSuffix(upper, meridiem))
	}

	var hour, minute int
	if _, err := fmt.Sscanf(upper, "%d:%d", &hour, &minute); err != nil {
		return TimeLabel{}, fmt.Errorf("неверный формат метки времени %q", s)
	}
	if minute < 0 || minute > 59 {
		return TimeLabel{}, fmt.Errorf("неверные минуты в метке времени %q", s)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return TimeLabel{}, fmt.Errorf("неверный час в метке времени %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return TimeLabel{}, fmt.Errorf("неверный час в метке времени %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return TimeLabel{}, fmt.Errorf("неверный час в метке времени %q", s)
		}
	}

	return TimeLabel{minuteOfDay: hour*60 + minute}, nil
}

func (l TimeLabel) MinuteOfDay() int {
	return l.minuteOfDay
}

func (l TimeLabel) Hour() int {
	return l.minuteOfDay / 60
}

// Equal — два слота совпадают тогда и только тогда, когда равны минуты дня.
func (l TimeLabel) Equal(other TimeLabel) bool {
	return l.minuteOfDay == other.minuteOfDay
}

func (l TimeLabel) Before(other TimeLabel) bool {
	return l.minuteOfDay < other.minuteOfDay
}

// String — отображаемый 12-часовой вид: "7:00 AM", "3:00 PM".
func (l TimeLabel) String() string {
	hour := l.minuteOfDay / 60
	minute := l.minuteOfDay % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, meridiem)
}

// Format24 — канонический 24-часовой вид для хранения: "07:00", "15:00".
func (l TimeLabel) Format24() string {
	return fmt.Sprintf("%02d:%02d", l.minuteOfDay/60, l.minuteOfDay%60)
}

func (l TimeLabel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *TimeLabel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeLabel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ContainsLabel — принадлежность слота набору, по минуте дня.
func ContainsLabel(labels []TimeLabel, label TimeLabel) bool {
	for _, l := range labels {
		if l.Equal(label) {
			return true
		}
	}
	return false
}

// ParseTimeLabels разбирает список меток, отбрасывая пустые строки.
func ParseTimeLabels(raw []string) ([]TimeLabel, error) {
	labels := make([]TimeLabel, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}
		label, err := ParseTimeLabel(s)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}
