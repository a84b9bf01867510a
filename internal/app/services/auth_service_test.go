package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/auth"
)

type fakeUserStore struct {
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.User, error)
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.ErrUserNotFound
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "sd13academy.com",
	})
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	return &models.User{
		ID:       "user-1",
		Email:    "admin@sd13academy.com",
		Password: hashed,
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := adminUser(t, "ChangeMe123!")
	var askedEmail string
	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			askedEmail = email
			return user, nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "  Admin@SD13Academy.COM ",
		Password: "ChangeMe123!",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if askedEmail != "admin@sd13academy.com" {
		t.Errorf("email not normalized before lookup: %q", askedEmail)
	}
	if resp.Token == "" || resp.ExpiresIn != 3600 {
		t.Errorf("unexpected token response: %+v", resp)
	}
	if resp.User == nil || resp.User.ID != "user-1" {
		t.Error("response should carry the user")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := adminUser(t, "ChangeMe123!")
	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@sd13academy.com",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@sd13academy.com",
		Password: "whatever",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	user := adminUser(t, "ChangeMe123!")
	store := &fakeUserStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.User, error) {
			if id != "user-1" {
				return nil, apperrors.ErrUserNotFound
			}
			return user, nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	got, err := svc.GetProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Email != "admin@sd13academy.com" {
		t.Errorf("unexpected profile: %+v", got)
	}

	if _, err := svc.GetProfile(context.Background(), "missing"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
