package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tienda-backend/config"
	"tienda-backend/models"
)

type ConfigurationRepository struct{}

func NewConfigurationRepository() *ConfigurationRepository {
	return &ConfigurationRepository{}
}

func (r *ConfigurationRepository) GetAll(ctx context.Context) ([]models.Configuration, error) {
	rows, err := config.DB.Query(ctx, `SELECT id, key, value FROM configuration`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Configuration{}
	for rows.Next() {
		var entry models.Configuration
		if err := rows.Scan(&entry.ID, &entry.Key, &entry.Value); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *ConfigurationRepository) GetByKey(ctx context.Context, key string) (*models.Configuration, error) {
	entry := &models.Configuration{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, key, value FROM configuration WHERE key = $1`, key,
	).Scan(&entry.ID, &entry.Key, &entry.Value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Set upserts atomically; two concurrent writers of the same key cannot race
// into a duplicate row.
func (r *ConfigurationRepository) Set(ctx context.Context, key, value string) (*models.Configuration, error) {
	entry := &models.Configuration{}
	err := config.DB.QueryRow(ctx, `
		INSERT INTO configuration (id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, key, value
	`, uuid.NewString(), key, value,
	).Scan(&entry.ID, &entry.Key, &entry.Value)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
