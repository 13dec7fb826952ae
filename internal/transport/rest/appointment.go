package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
	"barberia/internal/service"
)

// @Summary Создать запись
// @Description Создает запись на выбранные дату и время с повторной проверкой доступности слота
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Данные записи"
// @Success 201 {object} domain.Appointment "Созданная запись"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или слот недоступен"
// @Failure 409 {object} errorResponseBody "Слот занят конкурирующей записью"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotTaken):
			conflictResponse(c, err.Error())
		case errors.Is(err, service.ErrSlotUnavailable),
			errors.Is(err, service.ErrNoBarberSelected),
			errors.Is(err, service.ErrPastDate),
			errors.Is(err, service.ErrBarberInactive):
			badRequestResponse(c, err.Error())
		default:
			h.logger.Error("ошибка создания записи", zap.Error(err))
			internalServerErrorResponse(c)
		}
		return
	}

	createdResponse(c, appointment)
}

// @Summary Получить запись по ID
// @Tags Записи
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} domain.Appointment "Данные записи"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "запись не найдена")
			return
		}
		h.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Отменить запись
// @Description Мягкая отмена: запись остаётся в истории, слот снова доступен. Повторная отмена не считается ошибкой
// @Tags Записи
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType "Запись отменена"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "запись не найдена")
			return
		}
		h.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "запись отменена")
}

// @Summary Список записей
// @Description Возвращает записи с фильтрацией по дате, мастеру и телефону клиента
// @Tags Записи
// @Produce json
// @Param date query string false "Дата в формате YYYY-MM-DD"
// @Param barber_id query int false "ID мастера"
// @Param client_phone query string false "Телефон клиента"
// @Param include_cancelled query bool false "Включать отменённые записи"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Записи"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	var filter domain.AppointmentFilter

	if raw := c.Query("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			badRequestResponse(c, "неверный формат даты, ожидается YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат ID мастера")
			return
		}
		filter.BarberID = &id
	}
	if phone := c.Query("client_phone"); phone != "" {
		filter.ClientPhone = &phone
	}
	filter.IncludeCancelled = c.Query("include_cancelled") == "true"
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка записей", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	paginatedSuccessResponse(c, appointments, total, filter.Limit, filter.Offset)
}
