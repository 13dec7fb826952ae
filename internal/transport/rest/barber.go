package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

const maxPhotoSize = 5 << 20

// @Summary Список мастеров
// @Tags Мастера
// @Produce json
// @Param only_active query bool false "Только активные мастера (по умолчанию true)"
// @Success 200 {array} domain.Barber "Мастера"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /barbers [get]
func (h *Handler) getBarbers(c *gin.Context) {
	onlyActive := c.DefaultQuery("only_active", "true") == "true"

	barbers, err := h.services.Barber.List(c.Request.Context(), onlyActive)
	if err != nil {
		h.logger.Error("ошибка получения списка мастеров", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, barbers)
}

// @Summary Получить мастера по ID
// @Tags Мастера
// @Produce json
// @Param id path int true "ID мастера"
// @Success 200 {object} domain.Barber "Данные мастера"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /barbers/{id} [get]
func (h *Handler) getBarberByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	barber, err := h.services.Barber.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "мастер не найден")
			return
		}
		h.logger.Error("ошибка получения мастера", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, barber)
}

// @Summary Создать мастера
// @Description Создает мастера и возвращает одноразовый ключ доступа в открытом виде
// @Tags Мастера
// @Accept json
// @Produce json
// @Param input body domain.CreateBarberDTO true "Данные мастера"
// @Success 201 {object} map[string]interface{} "Мастер и ключ доступа"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /barbers [post]
func (h *Handler) createBarber(c *gin.Context) {
	var req domain.CreateBarberDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	barber, accessKey, err := h.services.Barber.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("ошибка создания мастера", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{
		"barber":     barber,
		"access_key": accessKey,
	})
}

// @Summary Обновить мастера
// @Tags Мастера
// @Accept json
// @Produce json
// @Param id path int true "ID мастера"
// @Param input body domain.UpdateBarberDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Мастер обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /barbers/{id} [put]
func (h *Handler) updateBarber(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpdateBarberDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Barber.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "мастер не найден")
			return
		}
		h.logger.Error("ошибка обновления мастера", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "мастер обновлён")
}

// @Summary Загрузить фотографию мастера
// @Tags Мастера
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID мастера"
// @Param photo formData file true "Файл изображения"
// @Success 200 {object} map[string]string "URL фотографии"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /barbers/{id}/photo [post]
func (h *Handler) uploadBarberPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "файл не найден в запросе")
		return
	}
	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "файл слишком большой, максимум 5 МБ")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequestResponse(c, "ошибка чтения файла")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequestResponse(c, "ошибка чтения файла")
		return
	}

	photoURL, err := h.services.Barber.UploadPhoto(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "мастер не найден")
			return
		}
		h.logger.Error("ошибка загрузки фотографии", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, "ошибка загрузки фотографии")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"photo_url": photoURL})
}

// @Summary Перевыпустить ключ доступа мастера
// @Description Выпускает новый ключ доступа; старый перестаёт действовать немедленно
// @Tags Мастера
// @Produce json
// @Param id path int true "ID мастера"
// @Success 200 {object} map[string]string "Новый ключ доступа"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /barbers/{id}/access-key [post]
func (h *Handler) regenerateBarberAccessKey(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	accessKey, err := h.services.Barber.RegenerateAccessKey(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "мастер не найден")
			return
		}
		h.logger.Error("ошибка перевыпуска ключа доступа", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"access_key": accessKey})
}

// @Summary Войти по ключу доступа мастера
// @Description Проверяет ключ доступа и возвращает мастера, которому он принадлежит
// @Tags Мастера
// @Accept json
// @Produce json
// @Param input body domain.VerifyAccessKeyDTO true "Ключ доступа"
// @Success 200 {object} domain.Barber "Мастер"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Недействительный ключ доступа"
// @Router /barbers/verify-key [post]
func (h *Handler) verifyBarberAccessKey(c *gin.Context) {
	var req domain.VerifyAccessKeyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	barber, err := h.services.Barber.VerifyAccessKey(c.Request.Context(), req.AccessKey)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "недействительный ключ доступа")
		return
	}

	successResponse(c, http.StatusOK, barber)
}
