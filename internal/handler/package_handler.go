package handler

import (
	"log"
	"net/http"
	"strconv"

	"nuvita/internal/models"
	"nuvita/internal/service"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	svc *service.CatalogService
}

func NewPackageHandler(svc *service.CatalogService) *PackageHandler {
	return &PackageHandler{svc: svc}
}

// List is public: the landing page renders the whole catalog from it.
func (h *PackageHandler) List(c *gin.Context) {
	packages, err := h.svc.ListPackages()
	if err != nil {
		log.Printf("[catalog] list packages failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "패키지 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": packages})
}

func (h *PackageHandler) ListByTheme(c *gin.Context) {
	packages, err := h.svc.ListPackagesByTheme(c.Param("theme"))
	if err != nil {
		log.Printf("[catalog] list by theme failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "패키지 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": packages})
}

func (h *PackageHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetPackage(id)
	if err != nil {
		if err == service.ErrPackageNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] get package failed: id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "패키지 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// ListProducts is public: products of one package in display order.
func (h *PackageHandler) ListProducts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	products, err := h.svc.ListProducts(id)
	if err != nil {
		if err == service.ErrPackageNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] list products failed: package=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "구성품 조회에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// Totals exposes the live pricing computation for one package.
func (h *PackageHandler) Totals(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	totals, err := h.svc.Totals(id)
	if err != nil {
		if err == service.ErrPackageNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] totals failed: package=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "가격 계산에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": totals})
}

type CreatePackageRequest struct {
	Theme       string `json:"theme" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=standard premium"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (h *PackageHandler) Create(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	p := &models.Package{
		Theme:       req.Theme,
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.svc.CreatePackage(p); err != nil {
		if err == service.ErrPackageExists {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] create package failed: theme=%s type=%s err=%v", req.Theme, req.Type, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "패키지 생성에 실패했습니다"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}

type UpdatePackageRequest struct {
	Theme       *string `json:"theme"`
	Type        *string `json:"type" binding:"omitempty,oneof=standard premium"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (h *PackageHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	p, err := h.svc.UpdatePackage(id, service.PackageUpdate{
		Theme:       req.Theme,
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch err {
		case service.ErrPackageNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case service.ErrPackageExists:
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("[catalog] update package failed: id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "패키지 수정에 실패했습니다"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (h *PackageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePackage(id); err != nil {
		if err == service.ErrPackageNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] delete package failed: id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "패키지 삭제에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseID reads a positive integer path param or writes a 400.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 ID입니다"})
		return 0, false
	}
	return uint(id), true
}
