package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type fakeUserFinder struct {
	users map[string]*model.User
}

func (f *fakeUserFinder) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "user not found")
	}
	return u, nil
}

func runGuard(t *testing.T, guard *AccessGuard, authHeader string) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *Identity
	handler := guard.Require()(func(c echo.Context) error {
		seen = GetIdentity(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, seen
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestRequireNoToken(t *testing.T) {
	guard := NewAccessGuard(NewTokenService("s", time.Hour), &fakeUserFinder{})

	rec, _ := runGuard(t, guard, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeEnvelope(t, rec); body["code"] != "NO_TOKEN" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}

func TestRequireInvalidToken(t *testing.T) {
	guard := NewAccessGuard(NewTokenService("s", time.Hour), &fakeUserFinder{})

	rec, _ := runGuard(t, guard, "Bearer garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeEnvelope(t, rec); body["code"] != "INVALID_TOKEN" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}

func TestRequireExpiredToken(t *testing.T) {
	guard := NewAccessGuard(NewTokenService("s", time.Hour), &fakeUserFinder{})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "64f1a2b3c4d5e6f708091a0b",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("s"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, _ := runGuard(t, guard, "Bearer "+signed)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeEnvelope(t, rec); body["code"] != "TOKEN_EXPIRED" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}

func TestRequireUserNotFound(t *testing.T) {
	tokens := NewTokenService("s", time.Hour)
	guard := NewAccessGuard(tokens, &fakeUserFinder{users: map[string]*model.User{}})

	token, err := tokens.Issue("64f1a2b3c4d5e6f708091a0b", "gone")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec, _ := runGuard(t, guard, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeEnvelope(t, rec); body["code"] != "USER_NOT_FOUND" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}

func TestRequireInactiveUser(t *testing.T) {
	tokens := NewTokenService("s", time.Hour)
	finder := &fakeUserFinder{users: map[string]*model.User{
		"64f1a2b3c4d5e6f708091a0b": {ID: "64f1a2b3c4d5e6f708091a0b", Username: "frozen", IsActive: false},
	}}
	guard := NewAccessGuard(tokens, finder)

	token, err := tokens.Issue("64f1a2b3c4d5e6f708091a0b", "frozen")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec, _ := runGuard(t, guard, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeEnvelope(t, rec); body["code"] != "USER_INACTIVE" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}

func TestRequireAttachesIdentity(t *testing.T) {
	tokens := NewTokenService("s", time.Hour)
	roleID := "64f1a2b3c4d5e6f708091a0c"
	finder := &fakeUserFinder{users: map[string]*model.User{
		"64f1a2b3c4d5e6f708091a0b": {
			ID:        "64f1a2b3c4d5e6f708091a0b",
			Username:  "admin",
			FirstName: "Ada",
			LastName:  "Admin",
			RoleID:    &roleID,
			IsActive:  true,
		},
	}}
	guard := NewAccessGuard(tokens, finder)

	token, err := tokens.Issue("64f1a2b3c4d5e6f708091a0b", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec, identity := runGuard(t, guard, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if identity == nil {
		t.Fatal("identity not attached")
	}
	if identity.Username != "admin" || identity.RoleID == nil || *identity.RoleID != roleID {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestBearerToken(t *testing.T) {
	e := echo.New()
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"", "", false},
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		got, ok := BearerToken(c)
		if got != tc.want || ok != tc.ok {
			t.Errorf("header %q: got (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}
