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

// @Summary Список отзывов
// @Description Публично возвращаются только одобренные отзывы; администратор видит все
// @Tags Отзывы
// @Produce json
// @Param barber_id query int false "ID мастера"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Отзывы"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /reviews [get]
func (h *Handler) getReviews(c *gin.Context) {
	var filter domain.ReviewFilter
	filter.OnlyApproved = true

	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат ID мастера")
			return
		}
		filter.BarberID = &id
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, total, err := h.services.Review.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка отзывов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	paginatedSuccessResponse(c, reviews, total, filter.Limit, filter.Offset)
}

// @Summary Оставить отзыв
// @Description Отзыв попадает в очередь модерации и публикуется после одобрения
// @Tags Отзывы
// @Accept json
// @Produce json
// @Param input body domain.CreateReviewDTO true "Данные отзыва"
// @Success 201 {object} map[string]interface{} "ID отзыва"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или приём отзывов отключен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /reviews [post]
func (h *Handler) createReview(c *gin.Context) {
	var req domain.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Review.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrReviewsDisabled) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Warn("ошибка создания отзыва", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Средний рейтинг
// @Tags Отзывы
// @Produce json
// @Param barber_id query int false "ID мастера; без параметра — по всему заведению"
// @Success 200 {object} map[string]float64 "Средний рейтинг"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /reviews/rating [get]
func (h *Handler) getAverageRating(c *gin.Context) {
	var barberID *int64
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат ID мастера")
			return
		}
		barberID = &id
	}

	rating, err := h.services.Review.AverageRating(c.Request.Context(), barberID)
	if err != nil {
		h.logger.Error("ошибка получения среднего рейтинга", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"rating": rating})
}

// @Summary Одобрить отзыв
// @Tags Отзывы
// @Produce json
// @Param id path int true "ID отзыва"
// @Success 200 {object} messageResponseType "Отзыв одобрен"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /reviews/{id}/approve [post]
func (h *Handler) approveReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Review.Approve(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "отзыв не найден")
			return
		}
		h.logger.Error("ошибка одобрения отзыва", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "отзыв одобрен")
}

// @Summary Отклонить отзыв
// @Description Отклонённый отзыв удаляется безвозвратно
// @Tags Отзывы
// @Produce json
// @Param id path int true "ID отзыва"
// @Success 200 {object} messageResponseType "Отзыв отклонён"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Отзыв не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /reviews/{id} [delete]
func (h *Handler) rejectReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Review.Reject(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFoundResponse(c, "отзыв не найден")
			return
		}
		h.logger.Error("ошибка отклонения отзыва", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "отзыв отклонён")
}
