package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// fakeUserRepo implements domain.UserRepository backed by a map keyed by email.
type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.users[user.Email]; exists {
		return domain.NewAppError(domain.CodeAlreadyExists, "email already registered", nil)
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return &domain.PageResult[domain.User]{}, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ string) error       { return nil }

func newTestAuthService(t *testing.T, repo domain.UserRepository) Service {
	t.Helper()
	tokens := NewTokenService("0123456789abcdef0123456789abcdef")
	return NewService(tokens, repo, time.Hour)
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &domain.User{
		BaseModel:    domain.BaseModel{ID: "user-1"},
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
	}
	repo.users[email] = user
	return user
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "correct-horse")
	svc := newTestAuthService(t, repo)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a token")
		}
		if resp.ExpiresAt <= time.Now().Unix() {
			t.Errorf("ExpiresAt = %d, want in the future", resp.ExpiresAt)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin@example.com", "wrong-password")
		if !domain.IsUnauthorized(err) {
			t.Errorf("error = %v, want unauthorized", err)
		}
	})

	t.Run("unknown email is indistinguishable", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
		if !domain.IsUnauthorized(err) {
			t.Errorf("error = %v, want unauthorized", err)
		}
	})
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", userName: "Admin", email: "admin@example.com", password: "long-enough"},
		{name: "trims name and email", userName: "  Admin  ", email: "  admin2@example.com  ", password: "long-enough"},
		{name: "empty name", userName: "   ", email: "a@example.com", password: "long-enough", wantErr: true},
		{name: "invalid email", userName: "Admin", email: "not-an-email", password: "long-enough", wantErr: true},
		{name: "short password", userName: "Admin", email: "a@example.com", password: "short", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := newTestAuthService(t, repo)

			user, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if tt.wantErr {
				if !domain.IsValidation(err) {
					t.Errorf("error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if user.PasswordHash == tt.password {
				t.Error("password stored unhashed")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)); err != nil {
				t.Errorf("stored hash does not verify: %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "correct-horse")
	svc := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), "Admin", "admin@example.com", "long-enough")
	if !domain.IsAlreadyExists(err) {
		t.Errorf("error = %v, want already exists", err)
	}
}
