package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberia/internal/domain"
)

// parseScopeQuery — область запроса из параметра barber_id: без параметра
// запрос общий, с параметром — про конкретного мастера.
func parseScopeQuery(c *gin.Context) (domain.Scope, bool) {
	raw := c.Query("barber_id")
	if raw == "" {
		return domain.GeneralScope(), true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID мастера")
		return domain.Scope{}, false
	}
	return domain.BarberScope(id), true
}

func parseDateQuery(c *gin.Context) (domain.Date, bool) {
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		badRequestResponse(c, "неверный формат даты, ожидается YYYY-MM-DD")
		return domain.Date{}, false
	}
	return date, true
}

// @Summary Карта доступности дня
// @Description Возвращает все номинальные слоты даты с признаком доступности каждого
// @Tags Доступность
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Param barber_id query int false "ID мастера; без параметра — общий вид"
// @Success 200 {array} domain.SlotStatus "Слоты дня"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /availability/slots [get]
func (h *Handler) getDayAvailability(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}
	scope, ok := parseScopeQuery(c)
	if !ok {
		return
	}

	slots, err := h.services.Availability.DayAvailability(c.Request.Context(), date, scope)
	if err != nil {
		h.logger.Error("ошибка получения карты доступности",
			zap.String("date", date.String()), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Проверить доступность слота
// @Description Проверяет, можно ли забронировать конкретный слот
// @Tags Доступность
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Param time query string true "Время слота, например 15:00 или 3:00 PM"
// @Param barber_id query int false "ID мастера; без параметра — общий вид"
// @Success 200 {object} map[string]bool "Признак доступности"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /availability/check [get]
func (h *Handler) checkSlot(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}
	label, err := domain.ParseTimeLabel(c.Query("time"))
	if err != nil {
		badRequestResponse(c, "неверный формат времени")
		return
	}
	scope, ok := parseScopeQuery(c)
	if !ok {
		return
	}

	available, err := h.services.Availability.IsAvailable(c.Request.Context(), date, label, scope)
	if err != nil {
		h.logger.Error("ошибка проверки доступности слота",
			zap.String("date", date.String()), zap.String("time", label.Format24()), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"available": available})
}

// @Summary Номинальные слоты дня
// @Description Возвращает слоты расписания без учёта выходных, блокировок и занятости
// @Tags Доступность
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Param barber_id query int false "ID мастера; без параметра — общий вид"
// @Success 200 {array} domain.TimeLabel "Слоты расписания"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /availability/hours [get]
func (h *Handler) getNominalHours(c *gin.Context) {
	date, ok := parseDateQuery(c)
	if !ok {
		return
	}
	scope, ok := parseScopeQuery(c)
	if !ok {
		return
	}

	labels, err := h.services.Availability.NominalHours(c.Request.Context(), date, scope)
	if err != nil {
		h.logger.Error("ошибка получения номинальных слотов",
			zap.String("date", date.String()), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, labels)
}
