package services

import (
	"context"

	"tienda-backend/models"
)

type ConfigurationRepository interface {
	GetAll(ctx context.Context) ([]models.Configuration, error)
	GetByKey(ctx context.Context, key string) (*models.Configuration, error)
	Set(ctx context.Context, key, value string) (*models.Configuration, error)
}

type ConfigurationService struct {
	configuration ConfigurationRepository
}

func NewConfigurationService(configuration ConfigurationRepository) *ConfigurationService {
	return &ConfigurationService{configuration: configuration}
}

// List is public: the storefront needs the whatsapp_number key without auth.
func (s *ConfigurationService) List(ctx context.Context) ([]models.Configuration, error) {
	return s.configuration.GetAll(ctx)
}

func (s *ConfigurationService) Set(ctx context.Context, key, value string) (*models.Configuration, error) {
	return s.configuration.Set(ctx, key, value)
}
