package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date представляет календарную дату без времени и часового пояса.
// Дата всегда строится из компонентов (год, месяц, день), а не из
// эпохальной метки времени: дата, сохранённая как полночь UTC, не должна
// превращаться в предыдущий день при отрицательном смещении пояса.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf берет компоненты даты в часовом поясе самого значения t.
// Для time.Now() это локальный день, для значений из БД (полночь UTC) —
// именно тот день, который записан.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("неверный формат даты %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Equal — структурное сравнение: один и тот же день тогда и только тогда,
// когда совпадают все три компонента.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// IsFuture — строго позже дня today (только дата, без времени).
func (d Date) IsFuture(today Date) bool {
	return today.Before(d)
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// At возвращает момент времени в указанном поясе, соответствующий
// дате d и минуте дня слота. Единственное место, где дата снова
// становится time.Time — проверка ограничения ранней записи.
func (d Date) At(minuteOfDay int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, minuteOfDay/60, minuteOfDay%60, 0, 0, loc)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scope определяет контекст запроса доступности: общий вид (любой мастер)
// или конкретный мастер. Явный тип вместо "nil означает общий".
type Scope struct {
	barberID *int64
}

func GeneralScope() Scope {
	return Scope{}
}

func BarberScope(barberID int64) Scope {
	id := barberID
	return Scope{barberID: &id}
}

// ScopeFor строит Scope из опционального ID мастера (nil — общий вид).
func ScopeFor(barberID *int64) Scope {
	if barberID == nil {
		return GeneralScope()
	}
	return BarberScope(*barberID)
}

func (s Scope) IsGeneral() bool {
	return s.barberID == nil
}

// Barber возвращает ID мастера и признак того, что область — конкретный мастер.
func (s Scope) Barber() (int64, bool) {
	if s.barberID == nil {
		return 0, false
	}
	return *s.barberID, true
}

func (s Scope) String() string {
	if s.barberID == nil {
		return "general"
	}
	return fmt.Sprintf("barber:%d", *s.barberID)
}
