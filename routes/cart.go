package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/zaxiang/Mini-Amazon/controllers/cart"
	"github.com/zaxiang/Mini-Amazon/middleware"
	"github.com/zaxiang/Mini-Amazon/service"
)

// SetupCartRoutes registers the "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, svc *service.Registry) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(svc.Cart))            // GET /cart
		cartGroup.GET("/saved", cartControllers.GetSaved(svc.Cart))      // GET /cart/saved
		cartGroup.GET("/summary", cartControllers.GetCartSummary(svc.Cart)) // GET /cart/summary

		cartGroup.POST("/items", cartControllers.AddToCart(svc.Cart))                          // POST /cart/items
		cartGroup.PUT("/items/:offeringID", cartControllers.SetQuantity(svc.Cart))             // PUT /cart/items/:offeringID
		cartGroup.DELETE("/items/:offeringID", cartControllers.DeleteCartItem(svc.Cart))       // DELETE /cart/items/:offeringID
		cartGroup.POST("/items/:offeringID/save", cartControllers.SaveForLater(svc.Cart))      // POST /cart/items/:offeringID/save
		cartGroup.POST("/items/:offeringID/activate", cartControllers.MoveToCart(svc.Cart))    // POST /cart/items/:offeringID/activate
	}
}
