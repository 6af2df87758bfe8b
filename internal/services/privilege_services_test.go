package services

import (
	"context"
	"testing"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/ids"
	"OrgRegistryAPI/internal/model"
)

type fakePrivilegeStore struct {
	privileges  map[string]*model.Privilege
	assignments map[string]string // assignment id -> userID|privilegeID
}

func newFakePrivilegeStore() *fakePrivilegeStore {
	return &fakePrivilegeStore{
		privileges:  map[string]*model.Privilege{},
		assignments: map[string]string{},
	}
}

func (f *fakePrivilegeStore) Create(_ context.Context, p *model.Privilege) error {
	p.ID = ids.New()
	cp := *p
	f.privileges[p.ID] = &cp
	return nil
}

func (f *fakePrivilegeStore) GetByID(_ context.Context, id string) (*model.Privilege, error) {
	p, ok := f.privileges[id]
	if !ok {
		return nil, errNotFound()
	}
	cp := *p
	return &cp, nil
}

func (f *fakePrivilegeStore) List(_ context.Context) ([]model.Privilege, error) {
	out := make([]model.Privilege, 0, len(f.privileges))
	for _, p := range f.privileges {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePrivilegeStore) Update(_ context.Context, p *model.Privilege) error {
	if _, ok := f.privileges[p.ID]; !ok {
		return errNotFound()
	}
	cp := *p
	f.privileges[p.ID] = &cp
	return nil
}

func (f *fakePrivilegeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.privileges[id]; !ok {
		return errNotFound()
	}
	delete(f.privileges, id)
	return nil
}

func (f *fakePrivilegeStore) Assign(_ context.Context, up *model.UserPrivilege) error {
	key := up.UserID + "|" + up.PrivilegeID
	for id, v := range f.assignments {
		if v == key {
			up.ID = id
			return nil
		}
	}
	up.ID = ids.New()
	f.assignments[up.ID] = key
	return nil
}

func (f *fakePrivilegeStore) Unassign(_ context.Context, userID, privilegeID string) error {
	key := userID + "|" + privilegeID
	for id, v := range f.assignments {
		if v == key {
			delete(f.assignments, id)
			return nil
		}
	}
	return errNotFound()
}

func (f *fakePrivilegeStore) ListByUser(_ context.Context, userID string) ([]model.Privilege, error) {
	var out []model.Privilege
	for _, v := range f.assignments {
		for pid, p := range f.privileges {
			if v == userID+"|"+pid {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func TestPrivilegeCreateValidation(t *testing.T) {
	svc := NewPrivilegeService(newFakePrivilegeStore(), newFakeUserStore())

	if _, err := svc.Create(context.Background(), &model.Privilege{Code: "", Name: "x"}); apperr.CodeOf(err) != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &model.Privilege{Code: "x", Name: ""}); apperr.CodeOf(err) != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	p, err := svc.Create(context.Background(), &model.Privilege{Code: " manage_users ", Name: " Manage users "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Code != "manage_users" || p.Name != "Manage users" {
		t.Fatalf("fields not trimmed: %+v", p)
	}
}

func TestPrivilegeAssign(t *testing.T) {
	store := newFakePrivilegeStore()
	users := newFakeUserStore()
	svc := NewPrivilegeService(store, users)

	user := userWithRole("admin", ids.New())
	users.users[user.ID] = user

	p, err := svc.Create(context.Background(), &model.Privilege{Code: "manage_users", Name: "Manage users"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Both sides must exist.
	if _, err := svc.Assign(context.Background(), "64f1a2b3c4d5e6f708091a0c", p.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("unknown user: expected NotFound, got %v", err)
	}
	if _, err := svc.Assign(context.Background(), user.ID, "64f1a2b3c4d5e6f708091a0c"); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("unknown privilege: expected NotFound, got %v", err)
	}

	up, err := svc.Assign(context.Background(), user.ID, p.ID)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if up.ID == "" {
		t.Error("assignment must get an id")
	}

	// Re-assigning is idempotent.
	if _, err := svc.Assign(context.Background(), user.ID, p.ID); err != nil {
		t.Fatalf("re-Assign: %v", err)
	}

	got, err := svc.ListForUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(got) != 1 || got[0].Code != "manage_users" {
		t.Fatalf("unexpected privileges: %+v", got)
	}

	if err := svc.Unassign(context.Background(), user.ID, p.ID); err != nil {
		t.Fatalf("Unassign: %v", err)
	}
	got, err = svc.ListForUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("assignment not removed: %+v", got)
	}
}
