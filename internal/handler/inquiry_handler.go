package handler

import (
	"log"
	"net/http"
	"strconv"

	"nuvita/internal/models"
	"nuvita/internal/repository"
	"nuvita/internal/service"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryRepo *repository.InquiryRepository
	notifySvc   *service.NotifyService
}

func NewInquiryHandler(inquiryRepo *repository.InquiryRepository, notifySvc *service.NotifyService) *InquiryHandler {
	return &InquiryHandler{inquiryRepo: inquiryRepo, notifySvc: notifySvc}
}

type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"max=2000"`
}

// Create is the public contact form. The webhook notification is fired
// after the row is stored and never blocks or fails the response.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "이름과 연락처를 입력해주세요"})
		return
	}
	in := &models.Inquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.inquiryRepo.Create(in); err != nil {
		log.Printf("[inquiry] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "문의 접수에 실패했습니다"})
		return
	}
	if h.notifySvc != nil {
		h.notifySvc.NotifyAsync(in)
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "문의가 접수되었습니다"})
}

func (h *InquiryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	unhandledOnly := c.Query("unhandled") == "true"
	list, total, err := h.inquiryRepo.List(unhandledOnly, page, limit)
	if err != nil {
		log.Printf("[inquiry] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "문의 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"inquiries": list, "total": total, "page": page, "limit": limit}})
}

type MarkHandledRequest struct {
	Handled *bool `json:"handled" binding:"required"`
}

func (h *InquiryHandler) MarkHandled(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req MarkHandledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "handled 값이 필요합니다"})
		return
	}
	if err := h.inquiryRepo.MarkHandled(id, *req.Handled); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "문의를 찾을 수 없습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
