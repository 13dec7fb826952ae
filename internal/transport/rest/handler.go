package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberia/config"
	"barberia/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		availability := api.Group("/availability")
		{
			availability.GET("/slots", h.getDayAvailability)
			availability.GET("/check", h.checkSlot)
			availability.GET("/hours", h.getNominalHours)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("/", h.createAppointment)

			admin := appointments.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.GET("/", h.getAppointments)
				admin.GET("/:id", h.getAppointmentByID)
				admin.DELETE("/:id", h.cancelAppointment)
			}
		}

		barbers := api.Group("/barbers")
		{
			barbers.GET("/", h.getBarbers)
			barbers.GET("/:id", h.getBarberByID)
			barbers.POST("/verify-key", h.verifyBarberAccessKey)

			admin := barbers.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createBarber)
				admin.PUT("/:id", h.updateBarber)
				admin.POST("/:id/photo", h.uploadBarberPhoto)
				admin.POST("/:id/access-key", h.regenerateBarberAccessKey)
			}
		}

		schedule := api.Group("/schedule")
		{
			schedule.GET("/business-hours", h.getBusinessHours)
			schedule.GET("/barbers/:id", h.getBarberSchedules)

			admin := schedule.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.PUT("/business-hours/:day", h.updateBusinessHours)
				admin.PUT("/barbers/:id", h.upsertBarberSchedule)
				admin.DELETE("/barbers/:id/:day", h.deleteBarberSchedule)
			}
		}

		holidays := api.Group("/holidays")
		{
			holidays.GET("/", h.getHolidays)

			admin := holidays.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createHoliday)
				admin.DELETE("/:id", h.deleteHoliday)
			}
		}

		blockedTimes := api.Group("/blocked-times")
		{
			blockedTimes.GET("/", h.getBlockedTimes)

			admin := blockedTimes.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createBlockedTime)
				admin.DELETE("/:id", h.deleteBlockedTime)
			}
		}

		settings := api.Group("/settings")
		{
			settings.GET("/", h.getSettings)
			settings.PUT("/", h.authMiddleware(), h.adminMiddleware(), h.updateSettings)
		}

		services := api.Group("/services")
		{
			services.GET("/", h.getServices)

			admin := services.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createService)
				admin.GET("/:id", h.getServiceByID)
				admin.PUT("/:id", h.updateService)
			}
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/", h.getReviews)
			reviews.POST("/", h.createReview)
			reviews.GET("/rating", h.getAverageRating)

			admin := reviews.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/:id/approve", h.approveReview)
				admin.DELETE("/:id", h.rejectReview)
			}
		}
	}
}
