package middleware

import (
	"net/http"

	"nuvita/config"
	"nuvita/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionRequired resolves the admin session cookie and sets admin identity
// in the context. No cookie or a dead session is a 401.
func SessionRequired(cfg *config.SessionConfig, authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "로그인이 필요합니다"})
			return
		}
		sess, err := authSvc.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "세션이 만료되었습니다"})
			return
		}
		c.Set("admin_id", sess.AdminID)
		c.Set("admin_email", sess.AdminEmail)
		c.Set("session_token", token)
		c.Next()
	}
}

// SuperAdminRequired checks that the authenticated admin is the designated
// super admin. Must run after SessionRequired.
func SuperAdminRequired(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get("admin_email")
		if !exists || !authSvc.IsSuperAdmin(email.(string)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "최고 관리자만 가능합니다"})
			return
		}
		c.Next()
	}
}

// GetAdminID returns the authenticated admin ID (after SessionRequired).
func GetAdminID(c *gin.Context) uint {
	v, _ := c.Get("admin_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}

// GetAdminEmail returns the authenticated admin email (after SessionRequired).
func GetAdminEmail(c *gin.Context) string {
	v, _ := c.Get("admin_email")
	if v == nil {
		return ""
	}
	return v.(string)
}
