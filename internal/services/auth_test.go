package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/sundialapp/sundial-backend/internal/pkg/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	log := testLogger(t)
	svc := NewAuthService(log, nil, "test-secret", time.Hour).(*authService)

	userID := uuid.New()
	token, err := svc.issueToken(userID)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	got, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if got != userID {
		t.Fatalf("ParseToken = %s, want %s", got, userID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	log := testLogger(t)
	issuer := NewAuthService(log, nil, "secret-a", time.Hour).(*authService)
	verifier := NewAuthService(log, nil, "secret-b", time.Hour)

	token, err := issuer.issueToken(uuid.New())
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	log := testLogger(t)
	svc := NewAuthService(log, nil, "test-secret", time.Hour)
	if _, err := svc.ParseToken("not.a.token"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
