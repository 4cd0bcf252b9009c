package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/numbering"
	"gstbill/internal/port"
)

// Claims is the JWT payload carried in the session cookie.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	CompanyID uuid.UUID `json:"cid"`
	jwt.RegisteredClaims
}

// RegisterInput carries the fields for account registration. Registration
// creates the company profile and its first user in one step.
type RegisterInput struct {
	CompanyName string `json:"companyName" binding:"required"`
	State       string `json:"state"`
	StateCode   string `json:"code"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is returned on successful registration or login. The token is
// set as an HTTP-only cookie by the handler; it is never part of the JSON body.
type AuthResult struct {
	User    *domain.User
	Company *domain.Company
	Token   string
}

// AuthService handles registration, login, and session token validation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	users     port.UserRepository
	companies port.CompanyRepository
	cfg       config.JWTConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(users port.UserRepository, companies port.CompanyRepository, cfg config.JWTConfig) AuthService {
	return &authService{users: users, companies: companies, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("authService.Register: %w", err)
	}

	company := &domain.Company{
		Name:          strings.TrimSpace(input.CompanyName),
		State:         input.State,
		StateCode:     input.StateCode,
		InvoicePrefix: numbering.Acronym(input.CompanyName),
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("authService.Register: create company: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("authService.Register: hash password: %w", err)
	}

	user := &domain.User{
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("authService.Register: create user: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("authService.Register: %w", err)
	}
	return &AuthResult{User: user, Company: company, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	company, err := s.companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("authService.Login: load company: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("authService.Login: %w", err)
	}
	return &AuthResult{User: user, Company: company, Token: token}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) generateToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
