package repository

import "errors"

var (
	// ErrNotFound — запрошенная запись отсутствует.
	ErrNotFound = errors.New("запись не найдена")

	// ErrSlotTaken — уникальный индекс (дата, время, мастер) среди
	// неотменённых записей отклонил вставку: слот заняли параллельно.
	ErrSlotTaken = errors.New("слот уже занят")

	// ErrDuplicate — нарушение прочих ограничений уникальности
	// (например, второй общий праздник на ту же дату).
	ErrDuplicate = errors.New("запись уже существует")
)
