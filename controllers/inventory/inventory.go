package inventoryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
)

type CreateOfferingInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"min=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

type UpdateOfferingInput struct {
	Quantity int             `json:"quantity" binding:"min=0"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return id, true
}

func offeringParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("offeringID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offering id"})
		return 0, false
	}
	return uint(id), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPriceLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// POST /seller/offerings
func CreateOffering(svc *service.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input CreateOfferingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		off, err := svc.CreateOffering(c.Request.Context(), userID, input.ProductID, input.Quantity, input.Price)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, off)
	}
}

// GET /seller/offerings
func GetSellerOfferings(svc *service.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offs, err := svc.ListBySeller(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, offs)
	}
}

// GET /offerings/:offeringID/available
func GetAvailable(svc *service.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		qty, err := svc.GetAvailable(c.Request.Context(), offeringID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"offering_id": offeringID, "available": qty})
	}
}

// PUT /seller/offerings/:offeringID
func UpdateOffering(svc *service.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		var input UpdateOfferingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := svc.UpdateOffering(c.Request.Context(), userID, offeringID, input.Quantity, input.Price); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offering updated"})
	}
}

// DELETE /seller/offerings/:offeringID
func DeleteOffering(svc *service.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		if err := svc.DeleteOffering(c.Request.Context(), userID, offeringID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offering deleted"})
	}
}
