package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

// @Summary Часы работы заведения
// @Description Возвращает недельное расписание: по одной строке на день недели
// @Tags Расписание
// @Produce json
// @Success 200 {array} domain.WeeklyHours "Часы работы"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /schedule/business-hours [get]
func (h *Handler) getBusinessHours(c *gin.Context) {
	hours, err := h.services.Schedule.ListBusinessHours(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения часов работы", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, hours)
}

// @Summary Обновить часы работы дня недели
// @Tags Расписание
// @Accept json
// @Produce json
// @Param day path int true "День недели: 0 = воскресенье … 6 = суббота"
// @Param input body domain.UpdateWeeklyHoursDTO true "Часы работы"
// @Success 200 {object} messageResponseType "Часы работы обновлены"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /schedule/business-hours/{day} [put]
func (h *Handler) updateBusinessHours(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		badRequestResponse(c, "неверный формат дня недели")
		return
	}

	var req domain.UpdateWeeklyHoursDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Schedule.UpdateBusinessHours(c.Request.Context(), day, req); err != nil {
		h.logger.Warn("ошибка обновления часов работы", zap.Int("day", day), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "часы работы обновлены")
}

// @Summary Индивидуальные расписания мастера
// @Description Возвращает переопределения мастера; дни без переопределения наследуют общие часы
// @Tags Расписание
// @Produce json
// @Param id path int true "ID мастера"
// @Success 200 {array} domain.BarberSchedule "Расписания мастера"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /schedule/barbers/{id} [get]
func (h *Handler) getBarberSchedules(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	schedules, err := h.services.Schedule.ListBarberSchedules(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "мастер не найден")
			return
		}
		h.logger.Error("ошибка получения расписаний мастера", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, schedules)
}

// @Summary Задать расписание мастера на день недели
// @Tags Расписание
// @Accept json
// @Produce json
// @Param id path int true "ID мастера"
// @Param input body domain.UpsertBarberScheduleDTO true "Расписание"
// @Success 200 {object} messageResponseType "Расписание сохранено"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /schedule/barbers/{id} [put]
func (h *Handler) upsertBarberSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpsertBarberScheduleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Schedule.UpsertBarberSchedule(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "мастер не найден")
			return
		}
		h.logger.Warn("ошибка сохранения расписания мастера", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "расписание сохранено")
}

// @Summary Удалить расписание мастера на день недели
// @Description После удаления мастер снова наследует общие часы заведения
// @Tags Расписание
// @Produce json
// @Param id path int true "ID мастера"
// @Param day path int true "День недели: 0 = воскресенье … 6 = суббота"
// @Success 200 {object} messageResponseType "Расписание удалено"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 404 {object} errorResponseBody "Расписание не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /schedule/barbers/{id}/{day} [delete]
func (h *Handler) deleteBarberSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		badRequestResponse(c, "неверный формат дня недели")
		return
	}

	if err := h.services.Schedule.DeleteBarberSchedule(c.Request.Context(), id, day); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "расписание не найдено")
			return
		}
		h.logger.Error("ошибка удаления расписания мастера", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "расписание удалено")
}
