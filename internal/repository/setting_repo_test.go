package repository

import "testing"

func TestSettingUpsertAndDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	if got := repo.GetOrDefault("hero_title", "기본값"); got != "기본값" {
		t.Errorf("missing key: got %q, want default", got)
	}
	if err := repo.Set("hero_title", "건강한 구독"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set("hero_title", "건강한 구독 생활"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.Get("hero_title")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "건강한 구독 생활" {
		t.Errorf("got %q, want upserted value", got)
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d settings, want 1 (upsert must not duplicate)", len(all))
	}
}

func TestSettingSeedDefaultsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	defaults := map[string]string{"contact_phone": "02-0000-0000"}
	if err := repo.SeedDefaults(defaults); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.Set("contact_phone", "02-1234-5678"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Second seed must not clobber the edited value.
	if err := repo.SeedDefaults(defaults); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if got := repo.GetOrDefault("contact_phone", ""); got != "02-1234-5678" {
		t.Errorf("got %q, want edited value preserved", got)
	}
}
