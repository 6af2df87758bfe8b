package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/ids"
	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// memUserStore is an in-memory services.UserStore for wiring the HTTP
// surface without a database.
type memUserStore struct {
	users map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*model.User{}}
}

func (m *memUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = ids.New()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "user not found")
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "user not found")
}

func (m *memUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserStore) Update(_ context.Context, u *model.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "user not found")
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return apperr.New(apperr.NotFound, "NOT_FOUND", "user not found")
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) Count(_ context.Context) (int, error) {
	return len(m.users), nil
}

func (m *memUserStore) UsernameExists(_ context.Context, username, excludeID string) (bool, error) {
	for id, u := range m.users {
		if id != excludeID && u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memRoleGetter struct{}

func (memRoleGetter) GetByID(context.Context, string) (*model.Role, error) {
	return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "role not found")
}

type memAssessorGetter struct{}

func (memAssessorGetter) GetByID(context.Context, string) (*model.Assessor, error) {
	return nil, apperr.New(apperr.NotFound, "NOT_FOUND", "assessor not found")
}

type testServer struct {
	echo  *echo.Echo
	store *memUserStore
}

// newTestServer wires the auth and user routes over in-memory storage,
// mirroring the route registration in main.
func newTestServer() *testServer {
	store := newMemUserStore()
	tokens := middleware.NewTokenService("test-secret", time.Hour)
	guard := middleware.NewAccessGuard(tokens, store)

	userSvc := services.NewUserService(store, memRoleGetter{}, memAssessorGetter{}, tokens)
	authSvc := services.NewAuthService(store, tokens, 6)

	e := echo.New()
	registerAuthRoutes(e.Group("/auth"), authSvc, guard)
	registerUserRoutes(e.Group("/user"), userSvc, guard)
	return &testServer{echo: e, store: store}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) post(path, token, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, path, token, body)
}

func (s *testServer) get(path, token string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, path, token, "")
}
