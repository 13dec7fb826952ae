package domain

import (
	"time"
)

// appliesToScope — общее правило области для праздников и блокировок:
// запись без мастера действует на всех и на общий вид; запись, привязанная
// к мастеру, действует только на запросы именно этого мастера. Общий вид
// привязанные записи не видит.
func appliesToScope(barberID *int64, scope Scope) bool {
	if barberID == nil {
		return true
	}
	queried, ok := scope.Barber()
	return ok && queried == *barberID
}

// Holiday — выходной день, общий или персональный для мастера.
type Holiday struct {
	ID          int64     `json:"id"`
	Date        Date      `json:"date"`
	Description string    `json:"description"`
	BarberID    *int64    `json:"barber_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *Holiday) AppliesTo(scope Scope) bool {
	return appliesToScope(h.BarberID, scope)
}

// BlockedTime — разовая блокировка части дня (встреча, перерыв) поверх
// номинального расписания. Область действия — как у Holiday.
type BlockedTime struct {
	ID        int64       `json:"id"`
	Date      Date        `json:"date"`
	Slots     []TimeLabel `json:"time_slots"`
	Reason    string      `json:"reason"`
	BarberID  *int64      `json:"barber_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func (b *BlockedTime) AppliesTo(scope Scope) bool {
	return appliesToScope(b.BarberID, scope)
}

type CreateHolidayDTO struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	BarberID    *int64 `json:"barber_id,omitempty"`
}

type CreateBlockedTimeDTO struct {
	Date      string   `json:"date" binding:"required"`
	TimeSlots []string `json:"time_slots" binding:"required,min=1"`
	Reason    string   `json:"reason" binding:"required"`
	BarberID  *int64   `json:"barber_id,omitempty"`
}
