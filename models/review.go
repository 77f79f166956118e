package models

import "time"

// Review rates a specific offering. One review per (user, offering).
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_review_user_offering" json:"user_id"`
	OfferingID uint      `gorm:"uniqueIndex:idx_review_user_offering" json:"offering_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Body       string    `json:"body"`
	Upvotes    int       `gorm:"not null;default:0" json:"upvotes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewUpvote records which users upvoted which review, so each user
// counts at most once.
type ReviewUpvote struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ReviewID uint `gorm:"uniqueIndex:idx_review_upvote" json:"review_id"`
	UserID   uint `gorm:"uniqueIndex:idx_review_upvote" json:"user_id"`
}

// Feedback rates a seller rather than a single offering.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_feedback_user_seller" json:"user_id"`
	SellerID  uint      `gorm:"uniqueIndex:idx_feedback_user_seller" json:"seller_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Body      string    `json:"body"`
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FeedbackUpvote struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FeedbackID uint `gorm:"uniqueIndex:idx_feedback_upvote" json:"feedback_id"`
	UserID     uint `gorm:"uniqueIndex:idx_feedback_upvote" json:"user_id"`
}
