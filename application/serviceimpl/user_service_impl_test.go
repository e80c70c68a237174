package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/utils"
)

const testJWTSecret = "unit-test-secret"

func newUserService(repo *fakeUserRepo) services.UserService {
	return NewUserService(repo, testJWTSecret, time.Hour)
}

func TestRegisterHashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "  Alice  ",
		Email:    " Alice@Example.COM ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, want lowercased trimmed value", user.Email)
	}
	if user.Name != "Alice" {
		t.Errorf("Name = %q, want trimmed value", user.Name)
	}
	if user.Password == "secret123" || user.Password == "" {
		t.Error("password was not hashed")
	}
	if user.NightlyReminders {
		t.Error("nightly reminders should default to off")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	// Case-insensitive duplicate.
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Other",
		Email:    "ALICE@example.com",
		Password: "different",
	})
	if !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("second Register() error = %v, want ErrEmailTaken", err)
	}
}

// blindUserRepo never sees existing emails on lookup, so inserts hit
// the unique constraint the way two concurrent registrations would.
type blindUserRepo struct {
	*fakeUserRepo
}

func (r *blindUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}

func TestRegisterDuplicateLosingTheRace(t *testing.T) {
	repo := &blindUserRepo{fakeUserRepo: newFakeUserRepo()}
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	// The pre-check misses, the insert violates the unique index.
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("racing Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginReturnsValidToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("Login returned user %v, want %v", user.ID, registered.ID)
	}

	userCtx, err := utils.ValidateToken(token, testJWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if userCtx.ID != registered.ID {
		t.Errorf("token carries user %v, want %v", userCtx.ID, registered.ID)
	}
	if userCtx.Email != "alice@example.com" {
		t.Errorf("token email = %q", userCtx.Email)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	_, _, wrongPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})

	if !errors.Is(unknownErr, services.ErrInvalidCredentials) {
		t.Errorf("unknown email: error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPassErr, services.ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Errorf("failure messages differ: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestSetNightlyReminders(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	updated, err := svc.SetNightlyReminders(context.Background(), user.ID, true)
	if err != nil {
		t.Fatalf("SetNightlyReminders() error = %v", err)
	}
	if !updated.NightlyReminders {
		t.Error("opt-in was not persisted")
	}

	optedIn, err := repo.ListReminderOptIn(context.Background())
	if err != nil {
		t.Fatalf("ListReminderOptIn() error = %v", err)
	}
	if len(optedIn) != 1 || optedIn[0].ID != user.ID {
		t.Errorf("opted-in list = %v, want just the toggled user", optedIn)
	}
}
