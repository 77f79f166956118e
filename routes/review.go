package routes

import (
	"github.com/gin-gonic/gin"

	reviewControllers "github.com/zaxiang/Mini-Amazon/controllers/review"
	"github.com/zaxiang/Mini-Amazon/middleware"
	"github.com/zaxiang/Mini-Amazon/service"
)

func SetupReviewRoutes(r *gin.Engine, svc *service.Registry) {
	// Public read endpoints.
	r.GET("/offerings/:offeringID/reviews", reviewControllers.GetOfferingReviews(svc.Review))
	r.GET("/sellers/:sellerID/feedback", reviewControllers.GetSellerFeedback(svc.Review))

	reviews := r.Group("/reviews")
	reviews.Use(middleware.ValidateToken)
	{
		reviews.POST("/", reviewControllers.AddReview(svc.Review))                  // POST /reviews
		reviews.PUT("/:reviewID", reviewControllers.UpdateReview(svc.Review))       // PUT /reviews/:reviewID
		reviews.DELETE("/:reviewID", reviewControllers.DeleteReview(svc.Review))    // DELETE /reviews/:reviewID
		reviews.POST("/:reviewID/upvote", reviewControllers.UpvoteReview(svc.Review)) // POST /reviews/:reviewID/upvote
	}

	feedback := r.Group("/feedback")
	feedback.Use(middleware.ValidateToken)
	{
		feedback.POST("/", reviewControllers.AddFeedback(svc.Review))                     // POST /feedback
		feedback.PUT("/:feedbackID", reviewControllers.UpdateFeedback(svc.Review))        // PUT /feedback/:feedbackID
		feedback.DELETE("/:feedbackID", reviewControllers.DeleteFeedback(svc.Review))     // DELETE /feedback/:feedbackID
		feedback.POST("/:feedbackID/upvote", reviewControllers.UpvoteFeedback(svc.Review)) // POST /feedback/:feedbackID/upvote
	}
}
