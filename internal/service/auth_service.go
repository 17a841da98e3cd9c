package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/logger"
	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/validation"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLastLoginAt(ctx context.Context, id uuid.UUID) error
}

// AuthService инкапсулирует аутентификацию администраторов.
// Единственный уровень доступа: «аутентифицирован или нет».
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// LoginInput содержит данные для входа.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult возвращает итог авторизации.
type AuthResult struct {
	User      *models.User
	TokenPair *TokenPair
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Login проверяет учётные данные и возвращает токены.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, fmt.Errorf("auth service: неверный email или пароль")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("auth service: неверный email или пароль")
	}

	// Время последнего входа обновляем best-effort, вход не прерываем.
	if err := s.repo.UpdateLastLoginAt(ctx, user.ID); err != nil {
		logger.WithComponent("auth").WithField("user_id", user.ID).
			Warnf("не удалось обновить last_login_at: %v", err)
	}

	tokenPair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// Refresh выпускает новую пару токенов по refresh токену.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokenManager.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("auth service: невалидный refresh токен")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("auth service: невалидный refresh токен")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// EnsureAdmin создаёт администратора, если его ещё нет.
// Используется при старте в development для первичной настройки.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (*models.User, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("auth service: пароль администратора должен быть не менее 8 символов")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if existing, err := s.repo.GetByEmail(ctx, email); err == nil {
		return existing, nil
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(passHash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
