package handler

import (
	"log"
	"net/http"

	"nuvita/internal/models"
	"nuvita/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.CatalogService
}

func NewProductHandler(svc *service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type CreateProductRequest struct {
	PackageID          uint   `json:"package_id" binding:"required"`
	ProductName        string `json:"product_name" binding:"required"`
	ProductDescription string `json:"product_description"`
	Price              string `json:"price" binding:"required"`
	PointValue         int    `json:"point_value" binding:"omitempty,min=0"`
	Quantity           int    `json:"quantity" binding:"omitempty,min=1"`
	SortOrder          int    `json:"sort_order"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	p := &models.PackageProduct{
		PackageID:          req.PackageID,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		Price:              req.Price,
		PointValue:         req.PointValue,
		Quantity:           req.Quantity,
		SortOrder:          req.SortOrder,
	}
	if err := h.svc.CreateProduct(p); err != nil {
		if err == service.ErrPackageNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] create product failed: package=%d err=%v", req.PackageID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "구성품 추가에 실패했습니다"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}

type UpdateProductRequest struct {
	ProductName        *string `json:"product_name"`
	ProductDescription *string `json:"product_description"`
	Price              *string `json:"price"`
	PointValue         *int    `json:"point_value" binding:"omitempty,min=0"`
	Quantity           *int    `json:"quantity"`
	SortOrder          *int    `json:"sort_order"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	p, err := h.svc.UpdateProduct(id, service.ProductUpdate{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		Price:              req.Price,
		PointValue:         req.PointValue,
		Quantity:           req.Quantity,
		SortOrder:          req.SortOrder,
	})
	if err != nil {
		switch err {
		case service.ErrProductNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case service.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("[catalog] update product failed: id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "구성품 수정에 실패했습니다"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

type UpdateQuantityRequest struct {
	// Explicit value required: omitting quantity is a 400, not a no-op.
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *ProductHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "quantity 값이 필요합니다"})
		return
	}
	p, err := h.svc.UpdateProductQuantity(id, *req.Quantity)
	if err != nil {
		switch err {
		case service.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case service.ErrProductNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		default:
			log.Printf("[catalog] update quantity failed: id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "수량 변경에 실패했습니다"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(id); err != nil {
		if err == service.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Printf("[catalog] delete product failed: id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "구성품 삭제에 실패했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
