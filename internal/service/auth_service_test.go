package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kolnlaviste/HireLink/internal/config"
	"github.com/kolnlaviste/HireLink/internal/domain"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		users = append(users, *user)
	}
	return users, nil
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 24,
			BcryptCost:    bcrypt.MinCost,
		},
	}
	return NewAuthService(cfg, AuthDependencies{UserRepo: repo})
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DomainError", err)
	}
	return de.Code
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Alice", "a@x.com", "pw123", domain.RoleEmployer)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("registered user has no id")
	}

	loggedIn, token, _, err := svc.Login(ctx, "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login user id = %q, want %q", loggedIn.ID, user.ID)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.IdentityID != user.ID {
		t.Errorf("token identity = %q, want %q", claims.IdentityID, user.ID)
	}
	if claims.Role != domain.RoleEmployer {
		t.Errorf("token role = %q, want %q", claims.Role, domain.RoleEmployer)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     domain.Role
	}{
		{"missing name", "", "a@x.com", "pw123", domain.RoleJobseeker},
		{"missing email", "Alice", "", "pw123", domain.RoleJobseeker},
		{"missing password", "Alice", "a@x.com", "", domain.RoleJobseeker},
		{"missing role", "Alice", "a@x.com", "pw123", ""},
		{"unknown role", "Alice", "a@x.com", "pw123", "WIZARD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Register(ctx, tt.userName, tt.email, tt.password, tt.role)
			if code := domainCode(t, err); code != "VALIDATION_FAILED" {
				t.Errorf("code = %q, want VALIDATION_FAILED", code)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "a@x.com", "pw123", domain.RoleJobseeker); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, _, _, err := svc.Register(ctx, "Alice Again", "a@x.com", "pw456", domain.RoleJobseeker)
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Errorf("code = %q, want CONFLICT", code)
	}
}

func TestRegisterDoesNotStorePlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, _, _, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123", domain.RoleJobseeker)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	stored := repo.byID[user.ID]
	if stored.PasswordHash == "pw123" {
		t.Fatal("plaintext password stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")); err != nil {
		t.Errorf("stored hash does not verify the password: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "a@x.com", "pw123", domain.RoleJobseeker); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, token, _, err := svc.Login(ctx, "a@x.com", "wrong")
	if code := domainCode(t, err); code != "AUTHENTICATION_FAILED" {
		t.Errorf("code = %q, want AUTHENTICATION_FAILED", code)
	}
	if token != "" {
		t.Error("token issued for wrong password")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, _, _, err := svc.Login(context.Background(), "nobody@x.com", "pw123")
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, _, _, err := svc.Login(context.Background(), "", "pw123")
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Errorf("code = %q, want VALIDATION_FAILED", code)
	}
	_, _, _, err = svc.Login(context.Background(), "a@x.com", "")
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Errorf("code = %q, want VALIDATION_FAILED", code)
	}
}
