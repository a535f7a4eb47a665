package services

import (
	"context"

	"tienda-backend/models"
)

type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ProductService struct {
	products ProductRepository
}

func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	product := productFromRequest(req)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update is a full replacement; returns (nil, nil) when the id is unknown.
func (s *ProductService) Update(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	return s.products.Update(ctx, id, productFromRequest(req))
}

func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	return s.products.Delete(ctx, id)
}

func productFromRequest(req models.ProductRequest) *models.Product {
	return &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		Category:    req.Category,
		Stock:       *req.Stock,
		Featured:    req.Featured,
	}
}
