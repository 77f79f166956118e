package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
)

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

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrInsufficientInventory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// POST /checkout
func CheckoutHandler(checkout *service.CheckoutService, fulfillment *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, err := checkout.Checkout(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		order, err := fulfillment.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		broadcastOrderEvent(orderEvent{Event: "order_placed", Order: order})
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetUserOrders(svc *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orders, err := svc.ListOrdersByBuyer(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
//
// Visible to the buyer and to any seller with a line on the order; everyone
// else gets a 404 rather than a hint the order exists.
func GetOrderByID(svc *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := uintParam(c, "orderID")
		if !ok {
			return
		}
		order, err := svc.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if !orderVisibleTo(order, userID) {
			c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func orderVisibleTo(order *models.Order, userID uint) bool {
	if order.BuyerID == userID {
		return true
	}
	for _, l := range order.Lines {
		if l.SellerID == userID {
			return true
		}
	}
	return false
}

// GET /seller/orders
func GetSellerOrders(svc *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orders, err := svc.ListOrdersBySeller(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:orderID/lines/:offeringID/fulfill
//
// Only the seller who owns the line may fulfill it. Repeating the call is
// harmless: the response says whether this request changed anything.
func MarkLineFulfilled(svc *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := uintParam(c, "orderID")
		if !ok {
			return
		}
		offeringID, ok := uintParam(c, "offeringID")
		if !ok {
			return
		}
		order, err := svc.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if !lineOwnedBy(order, offeringID, userID) {
			c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
			return
		}
		changed, err := svc.MarkLineFulfilled(c.Request.Context(), orderID, offeringID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		order, err = svc.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if changed {
			broadcastOrderEvent(orderEvent{Event: "line_fulfilled", Order: order})
		}
		c.JSON(http.StatusOK, gin.H{"changed": changed, "order_status": order.Status})
	}
}

func lineOwnedBy(order *models.Order, offeringID, userID uint) bool {
	for _, l := range order.Lines {
		if l.OfferingID == offeringID && l.SellerID == userID {
			return true
		}
	}
	return false
}
