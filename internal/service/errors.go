package service

import "errors"

var (
	// ErrSlotTaken — слот заняли между проверкой и вставкой; повтор той же
	// брони бессмыслен, клиенту нужно выбрать другое время.
	ErrSlotTaken = errors.New("выбранное время уже занято")

	// ErrSlotUnavailable — слот не прошёл проверку доступности
	// (выходной, блокировка, ограничение ранней записи или занятость).
	ErrSlotUnavailable = errors.New("выбранное время недоступно")

	// ErrNoBarberSelected — включён режим нескольких мастеров, но ни мастер
	// в заявке, ни мастер по умолчанию не заданы.
	ErrNoBarberSelected = errors.New("не выбран мастер для записи")

	// ErrPastDate — запись на прошедшую дату.
	ErrPastDate = errors.New("нельзя записаться на прошедшую дату")

	// ErrBarberInactive — мастер деактивирован и не принимает записи.
	ErrBarberInactive = errors.New("мастер не принимает записи")

	// ErrReviewsDisabled — приём отзывов выключен в настройках.
	ErrReviewsDisabled = errors.New("приём отзывов отключен")
)
