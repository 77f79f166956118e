package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (s *GormStore) CreateReview(ctx context.Context, r *models.Review) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *GormStore) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var r models.Review
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *GormStore) GetReviewByUserAndOffering(ctx context.Context, userID, offeringID uint) (*models.Review, error) {
	var r models.Review
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND offering_id = ?", userID, offeringID).
		First(&r).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *GormStore) UpdateReview(ctx context.Context, id uint, rating int, body string) error {
	return s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "body": body}).Error
}

func (s *GormStore) DeleteReview(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewUpvote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, "id = ?", id).Error
	})
}

func (s *GormStore) ListReviewsByOffering(ctx context.Context, offeringID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Where("offering_id = ?", offeringID).
		Order("upvotes DESC, created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) AddReviewUpvote(ctx context.Context, reviewID, userID uint) (bool, error) {
	var existing models.ReviewUpvote
	err := s.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.ReviewUpvote{ReviewID: reviewID, UserID: userID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).
			Where("id = ?", reviewID).
			Update("upvotes", gorm.Expr("upvotes + 1")).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *GormStore) GetFeedback(ctx context.Context, id uint) (*models.Feedback, error) {
	var f models.Feedback
	if err := s.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (s *GormStore) GetFeedbackByUserAndSeller(ctx context.Context, userID, sellerID uint) (*models.Feedback, error) {
	var f models.Feedback
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND seller_id = ?", userID, sellerID).
		First(&f).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (s *GormStore) UpdateFeedback(ctx context.Context, id uint, rating int, body string) error {
	return s.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "body": body}).Error
}

func (s *GormStore) DeleteFeedback(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", id).Delete(&models.FeedbackUpvote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feedback{}, "id = ?", id).Error
	})
}

func (s *GormStore) ListFeedbackBySeller(ctx context.Context, sellerID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("upvotes DESC, created_at DESC").
		Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *GormStore) AddFeedbackUpvote(ctx context.Context, feedbackID, userID uint) (bool, error) {
	var existing models.FeedbackUpvote
	err := s.db.WithContext(ctx).
		Where("feedback_id = ? AND user_id = ?", feedbackID, userID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.FeedbackUpvote{FeedbackID: feedbackID, UserID: userID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Feedback{}).
			Where("id = ?", feedbackID).
			Update("upvotes", gorm.Expr("upvotes + 1")).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
