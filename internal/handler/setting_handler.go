package handler

import (
	"log"
	"net/http"

	"nuvita/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	settingRepo *repository.SettingRepository
}

func NewSettingHandler(settingRepo *repository.SettingRepository) *SettingHandler {
	return &SettingHandler{settingRepo: settingRepo}
}

// List is public: the landing page reads its copy and contact channels here.
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingRepo.GetAll()
	if err != nil {
		log.Printf("[settings] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "설정 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

type SetSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *SettingHandler) Set(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "설정 키가 필요합니다"})
		return
	}
	var req SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "설정 값이 필요합니다"})
		return
	}
	if err := h.settingRepo.Set(key, req.Value); err != nil {
		log.Printf("[settings] set failed: key=%s err=%v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "설정 저장에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
