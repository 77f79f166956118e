package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zaxiang/Mini-Amazon/models"
	"github.com/zaxiang/Mini-Amazon/store"
)

// ReviewService handles offering reviews and seller feedback, both with
// one-vote-per-user upvoting.
type ReviewService struct {
	store store.Store
	log   *zap.Logger
}

func NewReviewService(st store.Store, log *zap.Logger) *ReviewService {
	return &ReviewService{store: st, log: log}
}

func validRating(rating int) bool { return rating >= 1 && rating <= 5 }

func (s *ReviewService) AddReview(ctx context.Context, userID, offeringID uint, rating int, body string) (*models.Review, error) {
	if !validRating(rating) {
		return nil, models.ErrInvalidRating
	}
	if _, err := s.store.GetOffering(ctx, offeringID); err != nil {
		return nil, err
	}
	_, err := s.store.GetReviewByUserAndOffering(ctx, userID, offeringID)
	if err == nil {
		return nil, models.ErrAlreadyReviewed
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	r := &models.Review{
		UserID:     userID,
		OfferingID: offeringID,
		Rating:     rating,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	if err := s.store.CreateReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uint, rating int, body string) error {
	if !validRating(rating) {
		return models.ErrInvalidRating
	}
	r, err := s.store.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if r.UserID != userID {
		return models.ErrNotFound
	}
	return s.store.UpdateReview(ctx, reviewID, rating, body)
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uint) error {
	r, err := s.store.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if r.UserID != userID {
		return models.ErrNotFound
	}
	return s.store.DeleteReview(ctx, reviewID)
}

func (s *ReviewService) ListByOffering(ctx context.Context, offeringID uint) ([]models.Review, error) {
	return s.store.ListReviewsByOffering(ctx, offeringID)
}

// UpvoteReview counts each user at most once; a repeat vote returns false.
func (s *ReviewService) UpvoteReview(ctx context.Context, userID, reviewID uint) (bool, error) {
	var added bool
	err := s.store.Transact(ctx, func(tx store.Store) error {
		var err error
		added, err = tx.AddReviewUpvote(ctx, reviewID, userID)
		return err
	})
	return added, err
}

func (s *ReviewService) AddFeedback(ctx context.Context, userID, sellerID uint, rating int, body string) (*models.Feedback, error) {
	if !validRating(rating) {
		return nil, models.ErrInvalidRating
	}
	if _, err := s.store.GetUser(ctx, sellerID); err != nil {
		return nil, err
	}
	_, err := s.store.GetFeedbackByUserAndSeller(ctx, userID, sellerID)
	if err == nil {
		return nil, models.ErrAlreadyReviewed
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	f := &models.Feedback{
		UserID:    userID,
		SellerID:  sellerID,
		Rating:    rating,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateFeedback(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ReviewService) UpdateFeedback(ctx context.Context, userID, feedbackID uint, rating int, body string) error {
	if !validRating(rating) {
		return models.ErrInvalidRating
	}
	f, err := s.store.GetFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	if f.UserID != userID {
		return models.ErrNotFound
	}
	return s.store.UpdateFeedback(ctx, feedbackID, rating, body)
}

func (s *ReviewService) DeleteFeedback(ctx context.Context, userID, feedbackID uint) error {
	f, err := s.store.GetFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	if f.UserID != userID {
		return models.ErrNotFound
	}
	return s.store.DeleteFeedback(ctx, feedbackID)
}

func (s *ReviewService) ListBySeller(ctx context.Context, sellerID uint) ([]models.Feedback, error) {
	return s.store.ListFeedbackBySeller(ctx, sellerID)
}

func (s *ReviewService) UpvoteFeedback(ctx context.Context, userID, feedbackID uint) (bool, error) {
	var added bool
	err := s.store.Transact(ctx, func(tx store.Store) error {
		var err error
		added, err = tx.AddFeedbackUpvote(ctx, feedbackID, userID)
		return err
	})
	return added, err
}
