package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-backend/models"
)

type mockProductRepo struct {
	seq      int
	products map[string]*models.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: map[string]*models.Product{}}
}

func (m *mockProductRepo) GetAll(context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	m.seq++
	product.ID = "p" + strconv.Itoa(m.seq)
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, id string, product *models.Product) (*models.Product, error) {
	if _, ok := m.products[id]; !ok {
		return nil, nil
	}
	product.ID = id
	m.products[id] = product
	return product, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

func productRequest() models.ProductRequest {
	stock := 3
	return models.ProductRequest{
		Name:        "Remera",
		Description: "Remera lisa",
		Price:       "10.00",
		Images:      []string{"https://example.com/remera.jpg"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Negro"},
		Category:    "remeras",
		Stock:       &stock,
	}
}

func TestProductServiceCreate(t *testing.T) {
	svc := NewProductService(newMockProductRepo())

	product, err := svc.Create(context.Background(), productRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Remera", product.Name)
	assert.Equal(t, 3, product.Stock)
	assert.Equal(t, []string{"S", "M", "L"}, product.Sizes)
}

func TestProductServiceUpdateUnknownID(t *testing.T) {
	svc := NewProductService(newMockProductRepo())

	product, err := svc.Update(context.Background(), "missing", productRequest())
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductServiceDeleteTwice(t *testing.T) {
	svc := NewProductService(newMockProductRepo())
	ctx := context.Background()

	product, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
