package services

import (
	"context"
	"strings"
	"testing"

	"OrgRegistryAPI/internal/apperr"
)

func TestAreaCreate(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore(), &fakeCountryCounter{})

	area, err := svc.Create(context.Background(), "  Europe ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if area.Name != "Europe" {
		t.Errorf("name not trimmed: %q", area.Name)
	}

	if _, err := svc.Create(context.Background(), ""); apperr.CodeOf(err) != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR for empty name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), strings.Repeat("x", 101)); apperr.CodeOf(err) != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR for long name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), " Europe "); apperr.CodeOf(err) != "AREA_EXISTS" {
		t.Fatalf("expected AREA_EXISTS for duplicate, got %v", err)
	}
}

func TestAreaUpdate(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore(), &fakeCountryCounter{})

	a, err := svc.Create(context.Background(), "Europe")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Asia"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(context.Background(), a.ID, "Europe"); err != nil {
		t.Fatalf("self-update: %v", err)
	}
	if _, err := svc.Update(context.Background(), a.ID, "Asia"); apperr.CodeOf(err) != "AREA_EXISTS" {
		t.Fatalf("expected AREA_EXISTS, got %v", err)
	}
}

func TestAreaDeleteBlockedByCountries(t *testing.T) {
	store := newFakeAreaStore()
	counter := &fakeCountryCounter{counts: map[string]int{}}
	svc := NewAreaService(store, counter)

	area, err := svc.Create(context.Background(), "Europe")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	counter.counts[area.ID] = 3

	err = svc.Delete(context.Background(), area.ID)
	if apperr.CodeOf(err) != "REFERENCED_BY_COUNTRIES" || apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("expected REFERENCED_BY_COUNTRIES forbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), area.ID); err != nil {
		t.Fatalf("area should still exist: %v", err)
	}

	counter.counts[area.ID] = 0
	if err := svc.Delete(context.Background(), area.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), area.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
}
