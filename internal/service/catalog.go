package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barberia/internal/domain"
	"barberia/internal/repository"
)

// CatalogServiceImpl управляет каталогом услуг барбершопа.
type CatalogServiceImpl struct {
	serviceRepo repository.ServiceRepository
	logger      *zap.Logger
}

func NewCatalogService(serviceRepo repository.ServiceRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (s *CatalogServiceImpl) Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error) {
	id, err := s.serviceRepo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания услуги", zap.String("name", dto.Name), zap.Error(err))
		return 0, fmt.Errorf("ошибка создания услуги: %w", err)
	}

	s.logger.Info("услуга создана", zap.Int64("id", id), zap.String("name", dto.Name))
	return id, nil
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка получения услуги", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error {
	if err := s.serviceRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка обновления услуги", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления услуги: %w", err)
	}
	return nil
}

func (s *CatalogServiceImpl) List(ctx context.Context, onlyActive bool) ([]domain.Service, error) {
	services, err := s.serviceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ошибка получения списка услуг", zap.Error(err))
		return nil, fmt.Errorf("ошибка получения списка услуг: %w", err)
	}
	return services, nil
}
