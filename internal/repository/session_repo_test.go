package repository

import (
	"testing"
	"time"

	"nuvita/internal/models"
)

func TestSessionLookupAndDestroy(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)

	sess := &models.AdminSession{
		Token:      "tok-live",
		AdminID:    1,
		AdminEmail: "admin@nuvita.kr",
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	if err := repo.Create(sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByToken("tok-live")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AdminEmail != "admin@nuvita.kr" {
		t.Errorf("got email %q", got.AdminEmail)
	}
	if err := repo.DeleteByToken("tok-live"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByToken("tok-live"); err == nil {
		t.Error("session resolvable after delete")
	}
}

func TestExpiredSessionIsRejectedAndPurged(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)

	if err := repo.Create(&models.AdminSession{
		Token:      "tok-stale",
		AdminID:    1,
		AdminEmail: "admin@nuvita.kr",
		ExpiresAt:  time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.GetByToken("tok-stale"); err == nil {
		t.Fatal("expired session resolved")
	}
	// The stale row must be gone, not just rejected.
	var count int64
	db.Model(&models.AdminSession{}).Where("token = ?", "tok-stale").Count(&count)
	if count != 0 {
		t.Errorf("stale row still present: count=%d", count)
	}
}

func TestDeleteByAdminRevokesAllSessions(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)

	for _, tok := range []string{"a", "b", "c"} {
		if err := repo.Create(&models.AdminSession{
			Token:      tok,
			AdminID:    7,
			AdminEmail: "staff@nuvita.kr",
			ExpiresAt:  time.Now().Add(time.Hour),
		}); err != nil {
			t.Fatalf("create %s: %v", tok, err)
		}
	}
	if err := repo.DeleteByAdmin(7); err != nil {
		t.Fatalf("delete by admin: %v", err)
	}
	var count int64
	db.Model(&models.AdminSession{}).Where("admin_id = ?", 7).Count(&count)
	if count != 0 {
		t.Errorf("sessions remain after revoke: %d", count)
	}
}
