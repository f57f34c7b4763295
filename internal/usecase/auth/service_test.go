package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resume-match/internal/domain/user"
)

type mockUserRepo struct {
	byEmail map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return errors.New("duplicate key")
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func TestRegister_Success(t *testing.T) {
	svc := NewService(newMockUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Jane@Example.COM ",
		Name:     "Jane",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Email: "jane@example.com", Name: "Jane", Password: "correct horse"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email: "jane@example.com", Name: "Jane", Password: "correct horse",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Name != "Jane" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
