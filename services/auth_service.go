package services

import (
	"context"
	"errors"

	"tienda-backend/models"
	"tienda-backend/utils"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so a caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
)

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type AuthService struct {
	admins   AdminRepository
	sessions *SessionStore
}

func NewAuthService(admins AdminRepository, sessions *SessionStore) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
	}
}

// Login verifies credentials and, on success, opens a session bound to the
// admin's identity. The returned session id goes into the cookie.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.AdminPublic, string, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(admin.Password, password)
	if err != nil || !valid {
		return nil, "", ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}

	return &models.AdminPublic{ID: admin.ID, Username: admin.Username}, sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(ctx, sessionID)
}

// Me resolves a session-bound admin id back to its public identity. The admin
// row may have been removed since the session was opened.
func (s *AuthService) Me(ctx context.Context, adminID string) (*models.AdminPublic, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return &models.AdminPublic{ID: admin.ID, Username: admin.Username}, nil
}
