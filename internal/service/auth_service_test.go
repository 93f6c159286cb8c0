package service

import (
	"testing"
	"time"

	"nuvita/internal/models"
)

func TestLoginLogoutLifecycle(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, err := svc.CreateAdmin("staff@nuvita.kr", "스태프", "password123"); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if _, _, err := svc.Login("staff@nuvita.kr", "wrong-password"); err != ErrInvalidCreds {
		t.Errorf("wrong password: got %v, want ErrInvalidCreds", err)
	}
	if _, _, err := svc.Login("nobody@nuvita.kr", "password123"); err != ErrInvalidCreds {
		t.Errorf("unknown email: got %v, want ErrInvalidCreds", err)
	}

	admin, token, err := svc.Login("staff@nuvita.kr", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("empty session token")
	}
	sess, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if sess.AdminID != admin.ID || sess.AdminEmail != "staff@nuvita.kr" {
		t.Errorf("session identity mismatch: %+v", sess)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(token); err == nil {
		t.Error("token still valid after logout")
	}
}

func TestExpiredSessionNotAuthenticated(t *testing.T) {
	svc, db := newAuthService(t)

	if err := db.Create(&models.AdminSession{
		Token:      "tok-expired",
		AdminID:    1,
		AdminEmail: "staff@nuvita.kr",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Authenticate("tok-expired"); err == nil {
		t.Error("expired session authenticated")
	}
}

func TestPasswordHashNeverPlaintext(t *testing.T) {
	svc, db := newAuthService(t)

	if _, err := svc.CreateAdmin("staff@nuvita.kr", "스태프", "password123"); err != nil {
		t.Fatal(err)
	}
	var a models.Admin
	if err := db.Where("email = ?", "staff@nuvita.kr").First(&a).Error; err != nil {
		t.Fatal(err)
	}
	if a.PasswordHash == "password123" || len(a.PasswordHash) < 50 {
		t.Errorf("password not stored as bcrypt hash: %q", a.PasswordHash)
	}
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, err := svc.CreateAdmin("staff@nuvita.kr", "스태프", "password123"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateAdmin("staff@nuvita.kr", "사칭", "password456"); err != ErrEmailExists {
		t.Errorf("got %v, want ErrEmailExists", err)
	}
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, err := svc.CreateAdmin("staff@nuvita.kr", "스태프", "password123"); err != nil {
		t.Fatal(err)
	}
	_, token, err := svc.Login("staff@nuvita.kr", "password123")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.ChangePassword("staff@nuvita.kr", "wrong", "newpassword1"); err != ErrInvalidCreds {
		t.Errorf("wrong current password: got %v, want ErrInvalidCreds", err)
	}
	if err := svc.ChangePassword("staff@nuvita.kr", "password123", "newpassword1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Authenticate(token); err == nil {
		t.Error("old session survived password change")
	}
	if _, _, err := svc.Login("staff@nuvita.kr", "newpassword1"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}

func TestDeleteAdminRules(t *testing.T) {
	svc, db := newAuthService(t)

	// seed the super admin row and a regular admin
	super, err := svc.CreateAdmin("super@nuvita.kr", "관리자", "super-secret-pw")
	if err != nil {
		t.Fatal(err)
	}
	staff, err := svc.CreateAdmin("staff@nuvita.kr", "스태프", "password123")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteAdmin("staff@nuvita.kr", super.ID); err != ErrSuperAdminOnly {
		t.Errorf("non-super caller: got %v, want ErrSuperAdminOnly", err)
	}
	if err := svc.DeleteAdmin("super@nuvita.kr", super.ID); err != ErrCannotDeleteSuper {
		t.Errorf("deleting super admin: got %v, want ErrCannotDeleteSuper", err)
	}
	if err := svc.DeleteAdmin("super@nuvita.kr", staff.ID); err != nil {
		t.Fatalf("super deletes staff: %v", err)
	}
	var count int64
	db.Model(&models.Admin{}).Where("email = ?", "staff@nuvita.kr").Count(&count)
	if count != 0 {
		t.Error("staff admin still present")
	}
	if err := svc.DeleteAdmin("super@nuvita.kr", staff.ID); err != ErrAdminNotFound {
		t.Errorf("double delete: got %v, want ErrAdminNotFound", err)
	}
}
