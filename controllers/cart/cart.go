package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
)

type AddToCartInput struct {
	OfferingID uint `json:"offering_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
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
	case errors.Is(err, models.ErrInsufficientInventory),
		errors.Is(err, models.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GET /cart
func GetCart(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		lines, err := svc.ListActive(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// GET /cart/saved
func GetSaved(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		lines, err := svc.ListSaved(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// GET /cart/summary
func GetCartSummary(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		total, items, err := svc.Summary(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_price": total, "total_items": items})
	}
}

// POST /cart/items
func AddToCart(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := svc.AddToCart(c.Request.Context(), userID, input.OfferingID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
	}
}

// PUT /cart/items/:offeringID
func SetQuantity(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := svc.SetQuantity(c.Request.Context(), userID, offeringID, input.Quantity); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
	}
}

// DELETE /cart/items/:offeringID
func DeleteCartItem(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		if err := svc.Remove(c.Request.Context(), userID, offeringID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// POST /cart/items/:offeringID/save
func SaveForLater(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		if err := svc.SaveForLater(c.Request.Context(), userID, offeringID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item saved for later"})
	}
}

// POST /cart/items/:offeringID/activate
func MoveToCart(svc *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		offeringID, ok := offeringParam(c)
		if !ok {
			return
		}
		if err := svc.MoveToCart(c.Request.Context(), userID, offeringID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item moved to cart"})
	}
}
