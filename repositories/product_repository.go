package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tienda-backend/config"
	"tienda-backend/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, price::text, images, sizes, colors, category, stock, featured`

func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := config.DB.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.Images, &p.Sizes, &p.Colors,
			&p.Category, &p.Stock, &p.Featured,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByID returns (nil, nil) when no product has the given id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := config.DB.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Images, &p.Sizes, &p.Colors,
		&p.Category, &p.Stock, &p.Featured,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = uuid.NewString()

	// price comes back through ::text so "10.5" is stored and returned as "10.50"
	return config.DB.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price, images, sizes, colors, category, stock, featured)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
		RETURNING price::text
	`,
		product.ID, product.Name, product.Description, product.Price,
		product.Images, product.Sizes, product.Colors,
		product.Category, product.Stock, product.Featured,
	).Scan(&product.Price)
}

// Update replaces every mutable field. Returns (nil, nil) when the id is unknown.
func (r *ProductRepository) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	err := config.DB.QueryRow(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3::numeric, images = $4, sizes = $5,
		    colors = $6, category = $7, stock = $8, featured = $9
		WHERE id = $10
		RETURNING price::text
	`,
		product.Name, product.Description, product.Price,
		product.Images, product.Sizes, product.Colors,
		product.Category, product.Stock, product.Featured, id,
	).Scan(&product.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	product.ID = id
	return product, nil
}

// Delete reports whether a row was actually removed.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
