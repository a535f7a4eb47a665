package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tienda-backend/config"
	"tienda-backend/models"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, username, password, role FROM admins WHERE id = $1`, id,
	).Scan(&admin.ID, &admin.Username, &admin.Password, &admin.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, username, password, role FROM admins WHERE username = $1`, username,
	).Scan(&admin.ID, &admin.Username, &admin.Password, &admin.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = uuid.NewString()
	if admin.Role == "" {
		admin.Role = "ADMIN"
	}

	_, err := config.DB.Exec(ctx,
		`INSERT INTO admins (id, username, password, role) VALUES ($1, $2, $3, $4)`,
		admin.ID, admin.Username, admin.Password, admin.Role,
	)
	return err
}
