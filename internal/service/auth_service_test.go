package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository"
)

// mockAuthRepository реализует AuthRepository для тестов.
type mockAuthRepository struct {
	usersByEmail map[string]*models.User
	usersByID    map[uuid.UUID]*models.User
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		usersByEmail: make(map[string]*models.User),
		usersByID:    make(map[uuid.UUID]*models.User),
	}
}

func (m *mockAuthRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.usersByEmail[user.Email] = user
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockAuthRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := m.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := m.usersByID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) UpdateLastLoginAt(ctx context.Context, id uuid.UUID) error {
	if user, ok := m.usersByID[id]; ok {
		now := time.Now()
		user.LastLoginAt = &now
	}
	return nil
}

func addAdmin(repo *mockAuthRepository, email, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	repo.usersByEmail[user.Email] = user
	repo.usersByID[user.ID] = user
	return user
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockAuthRepository()
	tokenManager := NewTokenManager("access", "refresh", time.Minute, time.Hour)
	service := NewAuthService(repo, tokenManager)
	admin := addAdmin(repo, "admin@example.com", "password123")

	ctx := context.Background()
	res, err := service.Login(ctx, LoginInput{
		Email:    "admin@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login вернул ошибку: %v", err)
	}

	if res.TokenPair.AccessToken == "" || res.TokenPair.RefreshToken == "" {
		t.Fatalf("ожидалась пара токенов")
	}

	userID, email, err := tokenManager.ParseAccess(res.TokenPair.AccessToken)
	if err != nil {
		t.Fatalf("access токен не парсится: %v", err)
	}
	if userID != admin.ID || email != admin.Email {
		t.Fatalf("в токене не те клеймы: %s %s", userID, email)
	}

	if admin.LastLoginAt == nil {
		t.Fatalf("время последнего входа должно обновляться")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newMockAuthRepository()
	service := NewAuthService(repo, NewTokenManager("a", "r", time.Minute, time.Hour))
	addAdmin(repo, "admin@example.com", "password123")

	ctx := context.Background()
	if _, err := service.Login(ctx, LoginInput{
		Email:    "admin@example.com",
		Password: "wrong",
	}); err == nil {
		t.Fatalf("неверный пароль должен отклоняться")
	}

	if _, err := service.Login(ctx, LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	}); err == nil {
		t.Fatalf("незнакомый email должен отклоняться")
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newMockAuthRepository()
	tokenManager := NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	service := NewAuthService(repo, tokenManager)
	admin := addAdmin(repo, "admin@example.com", "password123")

	tokenPair, err := tokenManager.GeneratePair(admin)
	if err != nil {
		t.Fatalf("не удалось сгенерировать токены: %v", err)
	}

	res, err := service.Refresh(context.Background(), tokenPair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh вернул ошибку: %v", err)
	}
	if res.TokenPair.AccessToken == "" {
		t.Fatalf("ожидался новый access токен")
	}
	if res.User.ID != admin.ID {
		t.Fatalf("refresh вернул не того пользователя")
	}

	if _, err := service.Refresh(context.Background(), "garbage"); err == nil {
		t.Fatalf("мусорный refresh токен должен отклоняться")
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	repo := newMockAuthRepository()
	service := NewAuthService(repo, NewTokenManager("a", "r", time.Minute, time.Hour))
	ctx := context.Background()

	user, err := service.EnsureAdmin(ctx, "Admin@Example.com", "password123")
	if err != nil {
		t.Fatalf("ensure вернул ошибку: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Fatalf("email должен нормализоваться, получили %s", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("пароль должен храниться bcrypt-хэшем")
	}

	// Повторный вызов идемпотентен.
	again, err := service.EnsureAdmin(ctx, "admin@example.com", "password123")
	if err != nil {
		t.Fatalf("повторный ensure вернул ошибку: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("повторный ensure должен вернуть существующего администратора")
	}

	if _, err := service.EnsureAdmin(ctx, "short@example.com", "1234567"); err == nil {
		t.Fatalf("короткий пароль должен отклоняться")
	}
}
