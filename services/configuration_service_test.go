package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-backend/models"
)

// mockConfigurationRepo mirrors the ON CONFLICT upsert contract: one row per
// key, id stable across value updates.
type mockConfigurationRepo struct {
	seq     int
	entries map[string]*models.Configuration
}

func newMockConfigurationRepo() *mockConfigurationRepo {
	return &mockConfigurationRepo{entries: map[string]*models.Configuration{}}
}

func (m *mockConfigurationRepo) GetAll(context.Context) ([]models.Configuration, error) {
	out := []models.Configuration{}
	for _, entry := range m.entries {
		out = append(out, *entry)
	}
	return out, nil
}

func (m *mockConfigurationRepo) GetByKey(_ context.Context, key string) (*models.Configuration, error) {
	return m.entries[key], nil
}

func (m *mockConfigurationRepo) Set(_ context.Context, key, value string) (*models.Configuration, error) {
	if existing, ok := m.entries[key]; ok {
		existing.Value = value
		return existing, nil
	}
	m.seq++
	entry := &models.Configuration{ID: "c" + strconv.Itoa(m.seq), Key: key, Value: value}
	m.entries[key] = entry
	return entry, nil
}

func TestConfigurationSetCreatesThenUpdates(t *testing.T) {
	repo := newMockConfigurationRepo()
	svc := NewConfigurationService(repo)
	ctx := context.Background()

	created, err := svc.Set(ctx, "whatsapp_number", "+54 9 11 1234-5678")
	require.NoError(t, err)
	assert.Equal(t, "+54 9 11 1234-5678", created.Value)

	updated, err := svc.Set(ctx, "whatsapp_number", "+54 9 11 9999-0000")
	require.NoError(t, err)
	assert.Equal(t, "+54 9 11 9999-0000", updated.Value)
	assert.Equal(t, created.ID, updated.ID, "updating must not mint a new row")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "no two rows may share a key")
	assert.Equal(t, "+54 9 11 9999-0000", all[0].Value)
}
