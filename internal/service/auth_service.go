package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/config"
	"github.com/bobkin2-dev/projectbeheer/internal/middleware"
	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService struct {
	employeeRepo *repository.EmployeeRepository
	cfg          config.JWTConfig
}

func NewAuthService(employeeRepo *repository.EmployeeRepository, cfg config.JWTConfig) *AuthService {
	return &AuthService{employeeRepo: employeeRepo, cfg: cfg}
}

// IssueToken creates an access token for an active employee.
func (s *AuthService) IssueToken(ctx context.Context, employeeID string) (string, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return "", fmt.Errorf("medewerker niet gevonden: %w", err)
	}
	if !employee.Actief {
		return "", fmt.Errorf("medewerker %s is niet actief", employee.Naam)
	}

	now := time.Now()
	expire := s.cfg.AccessTokenExpire
	if expire == 0 {
		expire = 24 * time.Hour
	}

	claims := middleware.JWTClaims{
		EmployeeID: employee.ID,
		Name:       employee.Naam,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employee.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token ondertekenen mislukt: %w", err)
	}
	return signed, nil
}
