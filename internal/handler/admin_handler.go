package handler

import (
	"fmt"
	"log"
	"net/http"

	"nuvita/internal/middleware"
	"nuvita/internal/models"
	"nuvita/internal/repository"
	"nuvita/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler manages the admin directory. Deletion sits behind the
// super-admin gate in the router; the service re-checks regardless.
type AdminHandler struct {
	svc       *service.AuthService
	auditRepo *repository.AuditLogRepository
}

func NewAdminHandler(svc *service.AuthService, auditRepo *repository.AuditLogRepository) *AdminHandler {
	return &AdminHandler{svc: svc, auditRepo: auditRepo}
}

func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.svc.ListAdmins()
	if err != nil {
		log.Printf("[admin] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "관리자 목록 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": admins})
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	a, err := h.svc.CreateAdmin(req.Email, req.Name, req.Password)
	if err != nil {
		if err == service.ErrEmailExists {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[admin] create failed: email=%s err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "관리자 생성에 실패했습니다"})
		return
	}
	h.auditLog(c, "admin_create", "created "+a.Email)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": a})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	caller := middleware.GetAdminEmail(c)
	if err := h.svc.DeleteAdmin(caller, id); err != nil {
		switch err {
		case service.ErrSuperAdminOnly, service.ErrCannotDeleteSuper:
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
		case service.ErrAdminNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("[admin] delete failed: id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "관리자 삭제에 실패했습니다"})
		}
		return
	}
	h.auditLog(c, "admin_delete", fmt.Sprintf("deleted admin id=%d", id))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) auditLog(c *gin.Context, action, detail string) {
	if h.auditRepo == nil {
		return
	}
	adminID := middleware.GetAdminID(c)
	_ = h.auditRepo.Create(&models.AuditLog{
		AdminID: &adminID,
		Action:  action,
		Detail:  detail,
		IP:      c.ClientIP(),
	})
}
