package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"barberia/config"
	"barberia/internal/domain"
	"barberia/internal/repository"
	"barberia/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	Auth         AuthService
	Barber       BarberService
	Availability AvailabilityService
	Appointment  AppointmentService
	Schedule     ScheduleService
	Override     OverrideService
	Settings     SettingsService
	Catalog      CatalogService
	Review       ReviewService
}

func NewServices(deps Deps) *Services {
	availability := NewAvailabilityService(
		deps.Repos.Schedule,
		deps.Repos.Override,
		deps.Repos.Appointment,
		deps.Repos.Settings,
		deps.Logger,
	)

	return &Services{
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Barber:       NewBarberService(deps.Repos.Barber, deps.FileStorage, deps.Logger),
		Availability: availability,
		Appointment:  NewAppointmentService(deps.Repos.Appointment, deps.Repos.Barber, deps.Repos.Settings, availability, deps.Logger),
		Schedule:     NewScheduleService(deps.Repos.Schedule, deps.Repos.Barber, deps.Logger),
		Override:     NewOverrideService(deps.Repos.Override, deps.Repos.Barber, deps.Logger),
		Settings:     NewSettingsService(deps.Repos.Settings, deps.Repos.Barber, deps.Logger),
		Catalog:      NewCatalogService(deps.Repos.Service, deps.Logger),
		Review:       NewReviewService(deps.Repos.Review, deps.Repos.Appointment, deps.Repos.Settings, deps.Logger),
	}
}

// AvailabilityService — движок доступности: чистые вычисления над данными,
// без побочных эффектов. Любая ошибка чтения прерывает вычисление —
// недоступность по ошибке безопаснее ложной доступности.
type AvailabilityService interface {
	// NominalHours — номинальные слоты дня без учёта переопределений и записей.
	NominalHours(ctx context.Context, date domain.Date, scope domain.Scope) ([]domain.TimeLabel, error)
	// IsAvailable — можно ли забронировать слот в данной области.
	IsAvailable(ctx context.Context, date domain.Date, label domain.TimeLabel, scope domain.Scope) (bool, error)
	// DayAvailability — карта доступности всех номинальных слотов дня.
	DayAvailability(ctx context.Context, date domain.Date, scope domain.Scope) ([]domain.SlotStatus, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
}

type BarberService interface {
	// Create возвращает мастера и одноразовый ключ доступа в открытом виде;
	// в БД хранится только хеш.
	Create(ctx context.Context, dto domain.CreateBarberDTO) (*domain.Barber, string, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	Update(ctx context.Context, id int64, dto domain.UpdateBarberDTO) error
	List(ctx context.Context, onlyActive bool) ([]domain.Barber, error)
	UploadPhoto(ctx context.Context, id int64, photo []byte, filename string) (string, error)
	RegenerateAccessKey(ctx context.Context, id int64) (string, error)
	VerifyAccessKey(ctx context.Context, accessKey string) (*domain.Barber, error)
}

type ScheduleService interface {
	ListBusinessHours(ctx context.Context) ([]domain.WeeklyHours, error)
	UpdateBusinessHours(ctx context.Context, dayOfWeek int, dto domain.UpdateWeeklyHoursDTO) error
	ListBarberSchedules(ctx context.Context, barberID int64) ([]domain.BarberSchedule, error)
	UpsertBarberSchedule(ctx context.Context, barberID int64, dto domain.UpsertBarberScheduleDTO) error
	DeleteBarberSchedule(ctx context.Context, barberID int64, dayOfWeek int) error
}

type OverrideService interface {
	CreateHoliday(ctx context.Context, dto domain.CreateHolidayDTO) (int64, error)
	DeleteHoliday(ctx context.Context, id int64) error
	ListHolidays(ctx context.Context, from, to *domain.Date) ([]domain.Holiday, error)
	CreateBlockedTime(ctx context.Context, dto domain.CreateBlockedTimeDTO) (int64, error)
	DeleteBlockedTime(ctx context.Context, id int64) error
	ListBlockedTimes(ctx context.Context, from, to *domain.Date) ([]domain.BlockedTime, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	Update(ctx context.Context, dto domain.UpdateSettingsDTO) (*domain.AdminSettings, error)
}

type CatalogService interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error
	List(ctx context.Context, onlyActive bool) ([]domain.Service, error)
}

type ReviewService interface {
	Create(ctx context.Context, dto domain.CreateReviewDTO) (int64, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error)
	AverageRating(ctx context.Context, barberID *int64) (float64, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

// nowFunc позволяет подменять часы в тестах; единственная точка, где
// движок доступности читает настоящее время.
type nowFunc func() time.Time
