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

// parseRangeQuery — необязательный диапазон дат from/to для списков
// выходных и блокировок.
func parseRangeQuery(c *gin.Context) (from, to *domain.Date, ok bool) {
	if raw := c.Query("from"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			badRequestResponse(c, "неверный формат даты from")
			return nil, nil, false
		}
		from = &date
	}
	if raw := c.Query("to"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			badRequestResponse(c, "неверный формат даты to")
			return nil, nil, false
		}
		to = &date
	}
	return from, to, true
}

// @Summary Список выходных
// @Tags Выходные и блокировки
// @Produce json
// @Param from query string false "Начало диапазона, YYYY-MM-DD"
// @Param to query string false "Конец диапазона, YYYY-MM-DD"
// @Success 200 {array} domain.Holiday "Выходные"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /holidays [get]
func (h *Handler) getHolidays(c *gin.Context) {
	from, to, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	holidays, err := h.services.Override.ListHolidays(c.Request.Context(), from, to)
	if err != nil {
		h.logger.Error("ошибка получения выходных", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, holidays)
}

// @Summary Создать выходной
// @Description Выходной без мастера действует на всех; с мастером — только на его записи
// @Tags Выходные и блокировки
// @Accept json
// @Produce json
// @Param input body domain.CreateHolidayDTO true "Данные выходного"
// @Success 201 {object} map[string]interface{} "ID выходного"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /holidays [post]
func (h *Handler) createHoliday(c *gin.Context) {
	var req domain.CreateHolidayDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Override.CreateHoliday(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("ошибка создания выходного", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Удалить выходной
// @Tags Выходные и блокировки
// @Produce json
// @Param id path int true "ID выходного"
// @Success 200 {object} messageResponseType "Выходной удалён"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Выходной не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /holidays/{id} [delete]
func (h *Handler) deleteHoliday(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Override.DeleteHoliday(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "выходной не найден")
			return
		}
		h.logger.Error("ошибка удаления выходного", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "выходной удалён")
}

// @Summary Список блокировок времени
// @Tags Выходные и блокировки
// @Produce json
// @Param from query string false "Начало диапазона, YYYY-MM-DD"
// @Param to query string false "Конец диапазона, YYYY-MM-DD"
// @Success 200 {array} domain.BlockedTime "Блокировки"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /blocked-times [get]
func (h *Handler) getBlockedTimes(c *gin.Context) {
	from, to, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	blocked, err := h.services.Override.ListBlockedTimes(c.Request.Context(), from, to)
	if err != nil {
		h.logger.Error("ошибка получения блокировок", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, blocked)
}

// @Summary Создать блокировку времени
// @Description Блокирует отдельные слоты дня поверх номинального расписания
// @Tags Выходные и блокировки
// @Accept json
// @Produce json
// @Param input body domain.CreateBlockedTimeDTO true "Данные блокировки"
// @Success 201 {object} map[string]interface{} "ID блокировки"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /blocked-times [post]
func (h *Handler) createBlockedTime(c *gin.Context) {
	var req domain.CreateBlockedTimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Override.CreateBlockedTime(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("ошибка создания блокировки", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Удалить блокировку времени
// @Tags Выходные и блокировки
// @Produce json
// @Param id path int true "ID блокировки"
// @Success 200 {object} messageResponseType "Блокировка удалена"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Блокировка не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /blocked-times/{id} [delete]
func (h *Handler) deleteBlockedTime(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Override.DeleteBlockedTime(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "блокировка не найдена")
			return
		}
		h.logger.Error("ошибка удаления блокировки", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "блокировка удалена")
}
