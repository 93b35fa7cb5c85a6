package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	userrepo "github.com/sundialapp/sundial-backend/internal/data/repos/user"
	types "github.com/sundialapp/sundial-backend/internal/domain"
	apperrors "github.com/sundialapp/sundial-backend/internal/pkg/errors"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName, timeZone string) (*types.User, string, error)
	Login(ctx context.Context, email, password string) (*types.User, string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}

type authService struct {
	log       *logger.Logger
	users     userrepo.UserRepo
	secretKey []byte
	tokenTTL  time.Duration
}

func NewAuthService(baseLog *logger.Logger, users userrepo.UserRepo, secretKey string, tokenTTL time.Duration) AuthService {
	return &authService{
		log:       baseLog.With("service", "AuthService"),
		users:     users,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, email, password, firstName, lastName, timeZone string) (*types.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidArgument)
	}

	exists, err := s.users.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, "", fmt.Errorf("%w: email is already in use", apperrors.ErrInvalidArgument)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &types.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		TimeZone:  strings.TrimSpace(timeZone),
	}
	created, err := s.users.Create(ctx, nil, []*types.User{u})
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(created[0].ID)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("user registered", "user_id", created[0].ID)
	return created[0], token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*types.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.users.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		return nil, "", apperrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *authService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	return userID, nil
}
