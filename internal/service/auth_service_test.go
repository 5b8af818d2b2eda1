package service

import (
	"errors"
	"testing"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/pkg/jwt"
	"go.uber.org/zap"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newMemUserStore()
	mailer := &fakeMailer{}
	svc := NewAuthService(users, mailer, jwt.NewService("test-secret"), zap.NewNop())

	resp, err := svc.Register(&models.RegisterRequest{
		FullName: "Jordan",
		Email:    "jordan@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Token == "" {
		t.Error("registration must return a token")
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning: %q", resp.Warning)
	}
	if resp.User.Password == "hunter22" {
		t.Error("password must be stored hashed")
	}
	if len(mailer.welcomes) != 1 {
		t.Errorf("welcome emails sent = %d, want 1", len(mailer.welcomes))
	}

	login, err := svc.Login(&models.LoginRequest{Email: "jordan@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Token == "" {
		t.Error("login must return a token")
	}

	if _, err := svc.Login(&models.LoginRequest{Email: "jordan@example.com", Password: "wrong"}); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newMemUserStore()
	svc := NewAuthService(users, &fakeMailer{}, jwt.NewService("test-secret"), zap.NewNop())

	req := &models.RegisterRequest{FullName: "A", Email: "a@example.com", Password: "secret1"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRegisterWelcomeEmailFailureIsNonFatal(t *testing.T) {
	users := newMemUserStore()
	mailer := &fakeMailer{welcomeErr: errors.New("smtp down")}
	svc := NewAuthService(users, mailer, jwt.NewService("test-secret"), zap.NewNop())

	resp, err := svc.Register(&models.RegisterRequest{
		FullName: "B",
		Email:    "b@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Warning == "" {
		t.Error("failed welcome email must surface as a warning")
	}
	if resp.Token == "" {
		t.Error("account creation must still succeed")
	}
}
