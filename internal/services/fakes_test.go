package services

import (
	"context"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/ids"
	"OrgRegistryAPI/internal/model"
)

// In-memory stores standing in for the pgx repositories. They mirror
// the repositories' error contract: missing rows come back as tagged
// NotFound errors.

func errNotFound() error {
	return apperr.New(apperr.NotFound, "NOT_FOUND", "record not found")
}

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = ids.New()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFound()
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound()
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, u *model.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return errNotFound()
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return errNotFound()
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return errNotFound()
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUserStore) UsernameExists(_ context.Context, username, excludeID string) (bool, error) {
	for id, u := range f.users {
		if id != excludeID && u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CountByRole(_ context.Context, roleID string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.RoleID != nil && *u.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

func userWithRole(username, roleID string) *model.User {
	return &model.User{ID: ids.New(), Username: username, RoleID: &roleID, IsActive: true}
}

type fakeRoleStore struct {
	roles map[string]*model.Role
}

func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{roles: map[string]*model.Role{}}
}

func (f *fakeRoleStore) Create(_ context.Context, role *model.Role) error {
	role.ID = ids.New()
	cp := *role
	f.roles[role.ID] = &cp
	return nil
}

func (f *fakeRoleStore) GetByID(_ context.Context, id string) (*model.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, errNotFound()
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoleStore) List(_ context.Context) ([]model.Role, error) {
	out := make([]model.Role, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoleStore) Update(_ context.Context, role *model.Role) error {
	if _, ok := f.roles[role.ID]; !ok {
		return errNotFound()
	}
	cp := *role
	f.roles[role.ID] = &cp
	return nil
}

func (f *fakeRoleStore) Delete(_ context.Context, id string) error {
	if _, ok := f.roles[id]; !ok {
		return errNotFound()
	}
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleStore) CodeExists(_ context.Context, code, excludeID string) (bool, error) {
	for id, r := range f.roles {
		if id != excludeID && r.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeAreaStore struct {
	areas map[string]*model.Area
}

func newFakeAreaStore() *fakeAreaStore {
	return &fakeAreaStore{areas: map[string]*model.Area{}}
}

func (f *fakeAreaStore) Create(_ context.Context, area *model.Area) error {
	area.ID = ids.New()
	cp := *area
	f.areas[area.ID] = &cp
	return nil
}

func (f *fakeAreaStore) GetByID(_ context.Context, id string) (*model.Area, error) {
	a, ok := f.areas[id]
	if !ok {
		return nil, errNotFound()
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAreaStore) List(_ context.Context) ([]model.Area, error) {
	out := make([]model.Area, 0, len(f.areas))
	for _, a := range f.areas {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAreaStore) Update(_ context.Context, area *model.Area) error {
	if _, ok := f.areas[area.ID]; !ok {
		return errNotFound()
	}
	cp := *area
	f.areas[area.ID] = &cp
	return nil
}

func (f *fakeAreaStore) Delete(_ context.Context, id string) error {
	if _, ok := f.areas[id]; !ok {
		return errNotFound()
	}
	delete(f.areas, id)
	return nil
}

func (f *fakeAreaStore) NameExists(_ context.Context, name, excludeID string) (bool, error) {
	for id, a := range f.areas {
		if id != excludeID && a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeCountryStore struct {
	countries map[string]*model.Country
}

func newFakeCountryStore() *fakeCountryStore {
	return &fakeCountryStore{countries: map[string]*model.Country{}}
}

func (f *fakeCountryStore) Create(_ context.Context, c *model.Country) error {
	c.ID = ids.New()
	cp := *c
	f.countries[c.ID] = &cp
	return nil
}

func (f *fakeCountryStore) GetByID(_ context.Context, id string) (*model.Country, error) {
	c, ok := f.countries[id]
	if !ok {
		return nil, errNotFound()
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCountryStore) List(_ context.Context) ([]model.Country, error) {
	out := make([]model.Country, 0, len(f.countries))
	for _, c := range f.countries {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCountryStore) Update(_ context.Context, c *model.Country) error {
	if _, ok := f.countries[c.ID]; !ok {
		return errNotFound()
	}
	cp := *c
	f.countries[c.ID] = &cp
	return nil
}

func (f *fakeCountryStore) Delete(_ context.Context, id string) error {
	if _, ok := f.countries[id]; !ok {
		return errNotFound()
	}
	delete(f.countries, id)
	return nil
}

func (f *fakeCountryStore) CodeExists(_ context.Context, code, excludeID string) (bool, error) {
	for id, c := range f.countries {
		if id != excludeID && c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// fakeCountryCounter implements CountryRefCounter with a fixed count
// per area.
type fakeCountryCounter struct {
	counts map[string]int
}

func (f *fakeCountryCounter) CountByArea(_ context.Context, areaID string) (int, error) {
	return f.counts[areaID], nil
}

type fakeAssessorGetter struct {
	assessors map[string]*model.Assessor
}

func (f *fakeAssessorGetter) GetByID(_ context.Context, id string) (*model.Assessor, error) {
	a, ok := f.assessors[id]
	if !ok {
		return nil, errNotFound()
	}
	cp := *a
	return &cp, nil
}
