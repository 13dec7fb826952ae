package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"barberia/internal/domain"
)

type Repositories struct {
	User        UserRepository
	Auth        AuthRepository
	Barber      BarberRepository
	Appointment AppointmentRepository
	Schedule    ScheduleRepository
	Override    OverrideRepository
	Settings    SettingsRepository
	Service     ServiceRepository
	Review      ReviewRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Auth:        NewAuthRepository(db),
		Barber:      NewBarberRepository(db),
		Appointment: NewAppointmentRepository(db),
		Schedule:    NewScheduleRepository(db),
		Override:    NewOverrideRepository(db),
		Settings:    NewSettingsRepository(db),
		Service:     NewServiceRepository(db),
		Review:      NewReviewRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role domain.UserRole) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) error
}

type BarberRepository interface {
	Create(ctx context.Context, dto domain.CreateBarberDTO, accessKeyHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	Update(ctx context.Context, id int64, dto domain.UpdateBarberDTO) error
	UpdatePhoto(ctx context.Context, id int64, photoURL string) error
	UpdateAccessKey(ctx context.Context, id int64, accessKeyHash string) error
	List(ctx context.Context, onlyActive bool) ([]domain.Barber, error)
}

type AppointmentRepository interface {
	// Create вставляет запись в транзакции с повторной проверкой занятости;
	// занятый слот возвращается как ErrSlotTaken.
	Create(ctx context.Context, appointment domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, cancelledAt time.Time) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	// ListActiveByDate возвращает все неотменённые записи на дату,
	// по всем мастерам; фильтрация по области — дело вызывающего.
	ListActiveByDate(ctx context.Context, date domain.Date) ([]domain.Appointment, error)
	ExistsActiveByPhone(ctx context.Context, clientPhone string) (bool, error)
}

type ScheduleRepository interface {
	// GetBusinessHours возвращает (nil, nil), когда для дня недели нет
	// строки: отсутствие часов — валидное состояние, а не ошибка.
	GetBusinessHours(ctx context.Context, dayOfWeek int) (*domain.WeeklyHours, error)
	ListBusinessHours(ctx context.Context) ([]domain.WeeklyHours, error)
	UpsertBusinessHours(ctx context.Context, dayOfWeek int, hours domain.UpdateWeeklyHoursDTO) error
	// GetBarberSchedule аналогично возвращает (nil, nil) при отсутствии
	// переопределения: мастер наследует общие часы.
	GetBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) (*domain.BarberSchedule, error)
	ListBarberSchedules(ctx context.Context, barberID int64) ([]domain.BarberSchedule, error)
	UpsertBarberSchedule(ctx context.Context, barberID int64, dto domain.UpsertBarberScheduleDTO) error
	DeleteBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) error
}

type OverrideRepository interface {
	CreateHoliday(ctx context.Context, dto domain.CreateHolidayDTO, date domain.Date) (int64, error)
	DeleteHoliday(ctx context.Context, id int64) error
	ListHolidays(ctx context.Context, from, to *domain.Date) ([]domain.Holiday, error)
	ListHolidaysByDate(ctx context.Context, date domain.Date) ([]domain.Holiday, error)
	CreateBlockedTime(ctx context.Context, date domain.Date, slots []domain.TimeLabel, reason string, barberID *int64) (int64, error)
	DeleteBlockedTime(ctx context.Context, id int64) error
	ListBlockedTimes(ctx context.Context, from, to *domain.Date) ([]domain.BlockedTime, error)
	ListBlockedTimesByDate(ctx context.Context, date domain.Date) ([]domain.BlockedTime, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	Update(ctx context.Context, dto domain.UpdateSettingsDTO) error
}

type ServiceRepository interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error
	List(ctx context.Context, onlyActive bool) ([]domain.Service, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error)
	// AverageRating считает средний рейтинг по одобренным отзывам;
	// nil barberID — по всему заведению.
	AverageRating(ctx context.Context, barberID *int64) (float64, error)
}
