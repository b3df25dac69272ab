package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"finsight/internal/config"
	"finsight/internal/domain"
	"finsight/internal/service"
	"finsight/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "finsight-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{
		ID:       tenantID,
		Name:     "Acme Traders",
		Slug:     "acme",
		IsActive: true,
	}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "user@acme.test",
		PasswordHash: hashPassword("password123"),
		FullName:     "Test User",
		Role:         domain.RoleMember,
		IsActive:     true,
	}

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "user@acme.test").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "user@acme.test",
		Password:   "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	tenantRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "user@acme.test",
		PasswordHash: hashPassword("correct-password"),
		IsActive:     true,
	}

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "user@acme.test").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "user@acme.test",
		Password:   "wrong-password",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownTenantMapsToInvalidCredentials(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantRepo.On("GetBySlug", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	result, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "ghost",
		Email:      "user@acme.test",
		Password:   "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveTenant(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenant := &domain.Tenant{ID: uuid.New(), Slug: "acme", IsActive: false}
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "user@acme.test",
		Password:   "password123",
	})

	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "user@acme.test",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "user@acme.test").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "user@acme.test",
		Password:   "password123",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	// Refresh token carries the refresh audience, not access
	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}
