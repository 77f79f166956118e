package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/zaxiang/Mini-Amazon/controllers/user"
	"github.com/zaxiang/Mini-Amazon/middleware"
	"github.com/zaxiang/Mini-Amazon/service"
)

// SetupUserRoutes registers the "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, svc *service.Registry) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(svc.Ledger)) // GET /user/

		userGroup.GET("/balance", userControllers.GetBalance(svc.Ledger))           // GET /user/balance
		userGroup.POST("/balance/topup", userControllers.TopUp(svc.Ledger))         // POST /user/balance/topup
		userGroup.POST("/balance/withdraw", userControllers.Withdraw(svc.Ledger))   // POST /user/balance/withdraw
	}
}
