package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// CredentialStore is the slice of the employee repository auth needs.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*employee.Employee, error)
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// RoleResolver turns a role id into the role name carried in tokens and
// checked by the authorization layer.
type RoleResolver interface {
	RoleName(ctx context.Context, roleID string) (string, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, employeeID string) (*AuthResponse, error)
}

type service struct {
	store CredentialStore
	roles RoleResolver
}

func NewService(store CredentialStore, roles RoleResolver) Service {
	return &service{store: store, roles: roles}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	empl, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if empl.EmploymentStatus == employee.EmploymentTerminated {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	roleName := s.resolveRole(ctx, empl)

	accessToken, err := generateToken(empl.ID.String(), roleName, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(empl.ID.String(), roleName, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		EmployeeID: empl.ID.String(),
		FullName:   empl.FullName,
		Email:      empl.Email,
		Role:       roleName,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	empl, err := s.store.FindByID(ctx, employeeID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}
	roleName := s.resolveRole(ctx, empl)

	newAccessToken, err := generateToken(empl.ID.String(), roleName, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := generateToken(empl.ID.String(), roleName, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		EmployeeID: empl.ID.String(),
		FullName:   empl.FullName,
		Email:      empl.Email,
		Role:       roleName,
	}, nil
}

func (s *service) GetMe(ctx context.Context, employeeID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	empl, err := s.store.FindByID(ctx, employeeID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	return &AuthResponse{
		EmployeeID: empl.ID.String(),
		FullName:   empl.FullName,
		Email:      empl.Email,
		Role:       s.resolveRole(ctx, empl),
	}, nil
}

func (s *service) resolveRole(ctx context.Context, empl *employee.Employee) string {
	if empl.RoleID == nil || s.roles == nil {
		return ""
	}
	name, err := s.roles.RoleName(ctx, empl.RoleID.String())
	if err != nil {
		return ""
	}
	return name
}

func generateToken(employeeID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"role":        role,
		"exp":         time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
