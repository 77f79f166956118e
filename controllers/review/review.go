package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/service"
)

type AddReviewInput struct {
	OfferingID uint   `json:"offering_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Body       string `json:"body"`
}

type AddFeedbackInput struct {
	SellerID uint   `json:"seller_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Body     string `json:"body"`
}

type RatingInput struct {
	Rating int    `json:"rating" binding:"required"`
	Body   string `json:"body"`
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
	case errors.Is(err, models.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAlreadyReviewed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// POST /reviews
func AddReview(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input AddReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review, err := svc.AddReview(c.Request.Context(), userID, input.OfferingID, input.Rating, input.Body)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// PUT /reviews/:reviewID
func UpdateReview(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		reviewID, ok := uintParam(c, "reviewID")
		if !ok {
			return
		}
		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := svc.UpdateReview(c.Request.Context(), userID, reviewID, input.Rating, input.Body); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
	}
}

// DELETE /reviews/:reviewID
func DeleteReview(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		reviewID, ok := uintParam(c, "reviewID")
		if !ok {
			return
		}
		if err := svc.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}

// GET /offerings/:offeringID/reviews
func GetOfferingReviews(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offeringID, ok := uintParam(c, "offeringID")
		if !ok {
			return
		}
		reviews, err := svc.ListByOffering(c.Request.Context(), offeringID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /reviews/:reviewID/upvote
func UpvoteReview(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		reviewID, ok := uintParam(c, "reviewID")
		if !ok {
			return
		}
		added, err := svc.UpvoteReview(c.Request.Context(), userID, reviewID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"counted": added})
	}
}

// POST /feedback
func AddFeedback(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input AddFeedbackInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		feedback, err := svc.AddFeedback(c.Request.Context(), userID, input.SellerID, input.Rating, input.Body)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, feedback)
	}
}

// PUT /feedback/:feedbackID
func UpdateFeedback(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		feedbackID, ok := uintParam(c, "feedbackID")
		if !ok {
			return
		}
		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := svc.UpdateFeedback(c.Request.Context(), userID, feedbackID, input.Rating, input.Body); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Feedback updated"})
	}
}

// DELETE /feedback/:feedbackID
func DeleteFeedback(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		feedbackID, ok := uintParam(c, "feedbackID")
		if !ok {
			return
		}
		if err := svc.DeleteFeedback(c.Request.Context(), userID, feedbackID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
	}
}

// GET /sellers/:sellerID/feedback
func GetSellerFeedback(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := uintParam(c, "sellerID")
		if !ok {
			return
		}
		feedback, err := svc.ListBySeller(c.Request.Context(), sellerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, feedback)
	}
}

// POST /feedback/:feedbackID/upvote
func UpvoteFeedback(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		feedbackID, ok := uintParam(c, "feedbackID")
		if !ok {
			return
		}
		added, err := svc.UpvoteFeedback(c.Request.Context(), userID, feedbackID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"counted": added})
	}
}
