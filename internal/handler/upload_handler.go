package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"nuvita/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadImage lets an admin upload a package image. A failure here never
// touches catalog state; image hosting is an external collaborator.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "이미지 업로드가 설정되지 않았습니다"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "파일이 필요합니다"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "파일을 읽을 수 없습니다"})
		return
	}
	defer f.Close()

	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	publicID := "pkg_" + hex.EncodeToString(buf)

	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, "nuvita/packages", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "업로드에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"url": url, "thumbnail_url": thumb}})
}
