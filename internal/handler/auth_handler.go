package handler

import (
	"log"
	"net/http"

	"nuvita/config"
	"nuvita/internal/middleware"
	"nuvita/internal/models"
	"nuvita/internal/repository"
	"nuvita/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg       *config.Config
	svc       *service.AuthService
	auditRepo *repository.AuditLogRepository
}

func NewAuthHandler(cfg *config.Config, svc *service.AuthService, auditRepo *repository.AuditLogRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, svc: svc, auditRepo: auditRepo}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "이메일과 비밀번호를 입력해주세요"})
		return
	}
	admin, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCreds {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[auth] login failed: email=%s err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "로그인에 실패했습니다"})
		return
	}
	h.setSessionCookie(c, token, int(h.cfg.Session.TTL.Seconds()))
	h.auditLog(&admin.ID, "login", admin.Email, c)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": admin})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Session.CookieName)
	if err == nil && token != "" {
		if sess, err := h.svc.Authenticate(token); err == nil {
			h.auditLog(&sess.AdminID, "logout", sess.AdminEmail, c)
		}
		_ = h.svc.Logout(token)
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Status reports whether the caller holds a live admin session. Never 401s;
// the landing page polls it to decide whether to show the CMS entry.
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"authenticated": false}})
		return
	}
	sess, err := h.svc.Authenticate(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"authenticated": false}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"authenticated":  true,
		"email":          sess.AdminEmail,
		"is_super_admin": h.svc.IsSuperAdmin(sess.AdminEmail),
	}})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "새 비밀번호는 8자 이상이어야 합니다"})
		return
	}
	email := middleware.GetAdminEmail(c)
	if err := h.svc.ChangePassword(email, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case service.ErrInvalidCreds:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "현재 비밀번호가 올바르지 않습니다"})
		case service.ErrAdminNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("[auth] change password failed: email=%s err=%v", email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "비밀번호 변경에 실패했습니다"})
		}
		return
	}
	// all sessions were revoked, including this one
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "비밀번호가 변경되었습니다. 다시 로그인해주세요"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.CookieName, token, maxAge, "/", "", h.cfg.Session.Secure, true)
}

func (h *AuthHandler) auditLog(adminID *uint, action, detail string, c *gin.Context) {
	if h.auditRepo == nil {
		return
	}
	_ = h.auditRepo.Create(&models.AuditLog{
		AdminID: adminID,
		Action:  action,
		Detail:  detail,
		IP:      c.ClientIP(),
	})
}
