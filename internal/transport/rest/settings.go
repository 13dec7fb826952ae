package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberia/internal/domain"
)

// @Summary Настройки заведения
// @Tags Настройки
// @Produce json
// @Success 200 {object} domain.AdminSettings "Текущие настройки"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения настроек", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Обновить настройки заведения
// @Description Частичное обновление: переданные поля меняются, остальные сохраняются
// @Tags Настройки
// @Accept json
// @Produce json
// @Param input body domain.UpdateSettingsDTO true "Изменяемые поля"
// @Success 200 {object} domain.AdminSettings "Обновлённые настройки"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /settings [put]
func (h *Handler) updateSettings(c *gin.Context) {
	var req domain.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	settings, err := h.services.Settings.Update(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("ошибка обновления настроек", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, settings)
}
