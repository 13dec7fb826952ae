package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
	"barberia/internal/storage"
	"barberia/pkg/auth"
	"barberia/pkg/validator"
)

type BarberServiceImpl struct {
	barberRepo  repository.BarberRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewBarberService(barberRepo repository.BarberRepository, fileStorage storage.FileStorage, logger *zap.Logger) *BarberServiceImpl {
	return &BarberServiceImpl{
		barberRepo:  barberRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *BarberServiceImpl) Create(ctx context.Context, dto domain.CreateBarberDTO) (*domain.Barber, string, error) {
	if !validator.ValidatePhone(dto.Phone) {
		return nil, "", errors.New("некорректный номер телефона")
	}
	dto.Phone = validator.FormatPhone(dto.Phone)

	accessKey, err := auth.GenerateAccessKey()
	if err != nil {
		s.logger.Error("ошибка генерации ключа доступа", zap.Error(err))
		return nil, "", fmt.Errorf("ошибка создания мастера: %w", err)
	}

	accessKeyHash, err := auth.HashPassword(accessKey)
	if err != nil {
		s.logger.Error("ошибка хеширования ключа доступа", zap.Error(err))
		return nil, "", fmt.Errorf("ошибка создания мастера: %w", err)
	}

	id, err := s.barberRepo.Create(ctx, dto, accessKeyHash)
	if err != nil {
		s.logger.Error("ошибка создания мастера", zap.Error(err))
		return nil, "", fmt.Errorf("ошибка создания мастера: %w", err)
	}

	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка получения мастера: %w", err)
	}

	s.logger.Info("мастер создан", zap.Int64("id", id), zap.String("name", barber.Name))

	return barber, accessKey, nil
}

func (s *BarberServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения мастера", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения мастера: %w", err)
	}
	return barber, nil
}

func (s *BarberServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateBarberDTO) error {
	if dto.Phone != nil {
		if !validator.ValidatePhone(*dto.Phone) {
			return errors.New("некорректный номер телефона")
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	if err := s.barberRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка обновления мастера", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления мастера: %w", err)
	}
	return nil
}

func (s *BarberServiceImpl) List(ctx context.Context, onlyActive bool) ([]domain.Barber, error) {
	barbers, err := s.barberRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ошибка получения списка мастеров", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка мастеров: %w", err)
	}
	return barbers, nil
}

func (s *BarberServiceImpl) UploadPhoto(ctx context.Context, id int64, photo []byte, filename string) (string, error) {
	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("ошибка получения мастера: %w", err)
	}

	photoURL, err := s.fileStorage.UploadFile(ctx, photo, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки фотографии", zap.Int64("barberId", id), zap.Error(err))
		return "", fmt.Errorf("ошибка загрузки фотографии: %w", err)
	}

	if err := s.barberRepo.UpdatePhoto(ctx, id, photoURL); err != nil {
		s.logger.Error("ошибка сохранения фотографии", zap.Int64("barberId", id), zap.Error(err))
		return "", fmt.Errorf("ошибка сохранения фотографии: %w", err)
	}

	// Старую фотографию убираем после успешной замены; неудача — не повод
	// откатывать загрузку.
	if barber.PhotoURL != nil && *barber.PhotoURL != photoURL {
		if err := s.fileStorage.DeleteFile(ctx, *barber.PhotoURL); err != nil {
			s.logger.Warn("ошибка удаления старой фотографии", zap.Int64("barberId", id), zap.Error(err))
		}
	}

	return photoURL, nil
}

// RegenerateAccessKey выпускает новый ключ доступа взамен старого.
// Прежний ключ перестаёт действовать немедленно.
func (s *BarberServiceImpl) RegenerateAccessKey(ctx context.Context, id int64) (string, error) {
	if _, err := s.barberRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("ошибка получения мастера: %w", err)
	}

	accessKey, err := auth.GenerateAccessKey()
	if err != nil {
		s.logger.Error("ошибка генерации ключа доступа", zap.Error(err))
		return "", fmt.Errorf("ошибка обновления ключа доступа: %w", err)
	}

	accessKeyHash, err := auth.HashPassword(accessKey)
	if err != nil {
		s.logger.Error("ошибка хеширования ключа доступа", zap.Error(err))
		return "", fmt.Errorf("ошибка обновления ключа доступа: %w", err)
	}

	if err := s.barberRepo.UpdateAccessKey(ctx, id, accessKeyHash); err != nil {
		s.logger.Error("ошибка сохранения ключа доступа", zap.Int64("barberId", id), zap.Error(err))
		return "", fmt.Errorf("ошибка обновления ключа доступа: %w", err)
	}

	s.logger.Info("ключ доступа мастера обновлён", zap.Int64("barberId", id))

	return accessKey, nil
}

// VerifyAccessKey проверяет ключ перебором активных мастеров: мастеров
// единицы, а ключ не содержит идентификатора.
func (s *BarberServiceImpl) VerifyAccessKey(ctx context.Context, accessKey string) (*domain.Barber, error) {
	barbers, err := s.barberRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ошибка получения списка мастеров", zap.Error(err))
		return nil, fmt.Errorf("ошибка проверки ключа доступа: %w", err)
	}

	for i := range barbers {
		ok, err := auth.VerifyPassword(accessKey, barbers[i].AccessKeyHash)
		if err != nil {
			continue
		}
		if ok {
			return &barbers[i], nil
		}
	}

	return nil, errors.New("недействительный ключ доступа")
}
