package services

import (
	"context"
	"testing"
	"time"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/middleware"
)

func seedUser(t *testing.T, store *fakeUserStore, tokens *middleware.TokenService, username, password string, active bool) string {
	t.Helper()
	svc := newUserService(store, nil, tokens)
	u, _, err := svc.Create(context.Background(), "", CreateUserInput{
		Username: username,
		Password: password,
		IsActive: &active,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	tokens := middleware.NewTokenService("s", time.Hour)
	seedUser(t, store, tokens, "admin", "secret1", true)
	auth := NewAuthService(store, tokens, 6)

	token, u, err := auth.Login(context.Background(), "admin", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.PasswordHash != "" {
		t.Error("login response must be sanitized")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims.UserID != u.ID || claims.Username != "admin" {
		t.Fatalf("claims do not match user: %+v", claims)
	}
}

func TestLoginFailures(t *testing.T) {
	store := newFakeUserStore()
	tokens := middleware.NewTokenService("s", time.Hour)
	seedUser(t, store, tokens, "admin", "secret1", true)
	auth := NewAuthService(store, tokens, 6)

	_, _, err := auth.Login(context.Background(), "", "secret1")
	if apperr.CodeOf(err) != "MISSING_CREDENTIALS" {
		t.Fatalf("expected MISSING_CREDENTIALS, got %v", err)
	}

	// Unknown user and wrong password produce the same tagged error.
	_, _, err = auth.Login(context.Background(), "nobody", "secret1")
	if apperr.CodeOf(err) != "INVALID_CREDENTIALS" || apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("unknown user: got %v", err)
	}
	_, _, err = auth.Login(context.Background(), "admin", "wrong")
	if apperr.CodeOf(err) != "INVALID_CREDENTIALS" || apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("wrong password: got %v", err)
	}
}

func TestLoginDeactivated(t *testing.T) {
	store := newFakeUserStore()
	tokens := middleware.NewTokenService("s", time.Hour)
	seedUser(t, store, tokens, "frozen", "secret1", false)
	auth := NewAuthService(store, tokens, 6)

	_, _, err := auth.Login(context.Background(), "frozen", "secret1")
	if apperr.CodeOf(err) != "ACCOUNT_DEACTIVATED" {
		t.Fatalf("expected ACCOUNT_DEACTIVATED, got %v", err)
	}
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("expected Forbidden kind, got %v", apperr.KindOf(err))
	}

	// Deactivation wins even over a wrong password.
	_, _, err = auth.Login(context.Background(), "frozen", "wrong")
	if apperr.CodeOf(err) != "ACCOUNT_DEACTIVATED" {
		t.Fatalf("expected ACCOUNT_DEACTIVATED before the hash check, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	store := newFakeUserStore()
	tokens := middleware.NewTokenService("s", time.Hour)
	id := seedUser(t, store, tokens, "admin", "secret1", true)
	auth := NewAuthService(store, tokens, 6)

	if err := auth.ChangePassword(context.Background(), id, "", "newsecret"); apperr.CodeOf(err) != "MISSING_FIELDS" {
		t.Fatalf("expected MISSING_FIELDS, got %v", err)
	}
	if err := auth.ChangePassword(context.Background(), id, "secret1", "short"); apperr.CodeOf(err) != "PASSWORD_TOO_SHORT" {
		t.Fatalf("expected PASSWORD_TOO_SHORT, got %v", err)
	}
	if err := auth.ChangePassword(context.Background(), id, "wrong", "newsecret"); apperr.CodeOf(err) != "INVALID_CREDENTIALS" {
		t.Fatalf("expected INVALID_CREDENTIALS, got %v", err)
	}

	if err := auth.ChangePassword(context.Background(), id, "secret1", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, _, err := auth.Login(context.Background(), "admin", "secret1"); apperr.CodeOf(err) != "INVALID_CREDENTIALS" {
		t.Fatalf("old password must no longer work, got %v", err)
	}
	if _, _, err := auth.Login(context.Background(), "admin", "newsecret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestRefresh(t *testing.T) {
	tokens := middleware.NewTokenService("s", time.Hour)
	auth := NewAuthService(newFakeUserStore(), tokens, 6)

	token, err := auth.Refresh("64f1a2b3c4d5e6f708091a0b", "admin")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f708091a0b" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSetupStatus(t *testing.T) {
	store := newFakeUserStore()
	tokens := middleware.NewTokenService("s", time.Hour)
	auth := NewAuthService(store, tokens, 6)

	required, count, err := auth.SetupStatus(context.Background())
	if err != nil {
		t.Fatalf("SetupStatus: %v", err)
	}
	if !required || count != 0 {
		t.Fatalf("empty store: required=%v count=%d", required, count)
	}

	seedUser(t, store, tokens, "admin", "secret1", true)
	required, count, err = auth.SetupStatus(context.Background())
	if err != nil {
		t.Fatalf("SetupStatus: %v", err)
	}
	if required || count != 1 {
		t.Fatalf("after first user: required=%v count=%d", required, count)
	}
}
