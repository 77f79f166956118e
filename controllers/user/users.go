package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
)

type AmountInput struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
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

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GET /user
func GetUser(svc *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		user, err := svc.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /user/balance
func GetBalance(svc *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		balance, err := svc.Balance(c.Request.Context(), userID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}

// POST /user/balance/topup
func TopUp(svc *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input AmountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		balance, err := svc.TopUp(c.Request.Context(), userID, input.Amount)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}

// POST /user/balance/withdraw
//
// Without a body the entire balance is withdrawn.
func Withdraw(svc *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input AmountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			withdrawn, err := svc.WithdrawAll(c.Request.Context(), userID)
			if err != nil {
				c.JSON(statusFor(err), gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"withdrawn": withdrawn, "balance": decimal.Zero})
			return
		}
		balance, err := svc.Withdraw(c.Request.Context(), userID, input.Amount)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"withdrawn": input.Amount, "balance": balance})
	}
}
