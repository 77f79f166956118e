package memstore

import (
	"context"
	"sort"

	"github.com/zaxiang/Mini-Amazon/models"
)

func (t *memTx) CreateReview(ctx context.Context, r *models.Review) error {
	for _, existing := range t.st.reviews {
		if existing.UserID == r.UserID && existing.OfferingID == r.OfferingID {
			return models.ErrAlreadyReviewed
		}
	}
	if r.ID == 0 {
		r.ID = t.st.nextID()
	}
	cp := *r
	t.st.reviews[r.ID] = &cp
	return nil
}

func (t *memTx) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	r, ok := t.st.reviews[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (t *memTx) GetReviewByUserAndOffering(ctx context.Context, userID, offeringID uint) (*models.Review, error) {
	for _, r := range t.st.reviews {
		if r.UserID == userID && r.OfferingID == offeringID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (t *memTx) UpdateReview(ctx context.Context, id uint, rating int, body string) error {
	if r, ok := t.st.reviews[id]; ok {
		r.Rating = rating
		r.Body = body
	}
	return nil
}

func (t *memTx) DeleteReview(ctx context.Context, id uint) error {
	delete(t.st.reviews, id)
	delete(t.st.reviewVotes, id)
	return nil
}

func (t *memTx) ListReviewsByOffering(ctx context.Context, offeringID uint) ([]models.Review, error) {
	var out []models.Review
	for _, r := range t.st.reviews {
		if r.OfferingID == offeringID {
			out = append(out, *r)
		}
	}
	sortByVotes(out, func(r models.Review) (int, int64, uint) {
		return r.Upvotes, r.CreatedAt.UnixNano(), r.ID
	})
	return out, nil
}

func (t *memTx) AddReviewUpvote(ctx context.Context, reviewID, userID uint) (bool, error) {
	r, ok := t.st.reviews[reviewID]
	if !ok {
		return false, models.ErrNotFound
	}
	if t.st.reviewVotes[reviewID][userID] {
		return false, nil
	}
	if t.st.reviewVotes[reviewID] == nil {
		t.st.reviewVotes[reviewID] = make(map[uint]bool)
	}
	t.st.reviewVotes[reviewID][userID] = true
	r.Upvotes++
	return true, nil
}

func (t *memTx) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	for _, existing := range t.st.feedbacks {
		if existing.UserID == f.UserID && existing.SellerID == f.SellerID {
			return models.ErrAlreadyReviewed
		}
	}
	if f.ID == 0 {
		f.ID = t.st.nextID()
	}
	cp := *f
	t.st.feedbacks[f.ID] = &cp
	return nil
}

func (t *memTx) GetFeedback(ctx context.Context, id uint) (*models.Feedback, error) {
	f, ok := t.st.feedbacks[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (t *memTx) GetFeedbackByUserAndSeller(ctx context.Context, userID, sellerID uint) (*models.Feedback, error) {
	for _, f := range t.st.feedbacks {
		if f.UserID == userID && f.SellerID == sellerID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (t *memTx) UpdateFeedback(ctx context.Context, id uint, rating int, body string) error {
	if f, ok := t.st.feedbacks[id]; ok {
		f.Rating = rating
		f.Body = body
	}
	return nil
}

func (t *memTx) DeleteFeedback(ctx context.Context, id uint) error {
	delete(t.st.feedbacks, id)
	delete(t.st.feedbackVotes, id)
	return nil
}

func (t *memTx) ListFeedbackBySeller(ctx context.Context, sellerID uint) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range t.st.feedbacks {
		if f.SellerID == sellerID {
			out = append(out, *f)
		}
	}
	sortByVotes(out, func(f models.Feedback) (int, int64, uint) {
		return f.Upvotes, f.CreatedAt.UnixNano(), f.ID
	})
	return out, nil
}

func (t *memTx) AddFeedbackUpvote(ctx context.Context, feedbackID, userID uint) (bool, error) {
	f, ok := t.st.feedbacks[feedbackID]
	if !ok {
		return false, models.ErrNotFound
	}
	if t.st.feedbackVotes[feedbackID][userID] {
		return false, nil
	}
	if t.st.feedbackVotes[feedbackID] == nil {
		t.st.feedbackVotes[feedbackID] = make(map[uint]bool)
	}
	t.st.feedbackVotes[feedbackID][userID] = true
	f.Upvotes++
	return true, nil
}

// sortByVotes orders by upvotes desc, then newest, then id.
func sortByVotes[T any](s []T, key func(T) (upvotes int, createdNano int64, id uint)) {
	sort.Slice(s, func(i, j int) bool {
		ui, ci, ii := key(s[i])
		uj, cj, ij := key(s[j])
		if ui != uj {
			return ui > uj
		}
		if ci != cj {
			return ci > cj
		}
		return ii < ij
	})
}

func (m *MemStore) CreateReview(ctx context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateReview(ctx, r)
}

func (m *MemStore) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetReview(ctx, id)
}

func (m *MemStore) GetReviewByUserAndOffering(ctx context.Context, userID, offeringID uint) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetReviewByUserAndOffering(ctx, userID, offeringID)
}

func (m *MemStore) UpdateReview(ctx context.Context, id uint, rating int, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().UpdateReview(ctx, id, rating, body)
}

func (m *MemStore) DeleteReview(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().DeleteReview(ctx, id)
}

func (m *MemStore) ListReviewsByOffering(ctx context.Context, offeringID uint) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().ListReviewsByOffering(ctx, offeringID)
}

func (m *MemStore) AddReviewUpvote(ctx context.Context, reviewID, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().AddReviewUpvote(ctx, reviewID, userID)
}

func (m *MemStore) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().CreateFeedback(ctx, f)
}

func (m *MemStore) GetFeedback(ctx context.Context, id uint) (*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetFeedback(ctx, id)
}

func (m *MemStore) GetFeedbackByUserAndSeller(ctx context.Context, userID, sellerID uint) (*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().GetFeedbackByUserAndSeller(ctx, userID, sellerID)
}

func (m *MemStore) UpdateFeedback(ctx context.Context, id uint, rating int, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().UpdateFeedback(ctx, id, rating, body)
}

func (m *MemStore) DeleteFeedback(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().DeleteFeedback(ctx, id)
}

func (m *MemStore) ListFeedbackBySeller(ctx context.Context, sellerID uint) ([]models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().ListFeedbackBySeller(ctx, sellerID)
}

func (m *MemStore) AddFeedbackUpvote(ctx context.Context, feedbackID, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx().AddFeedbackUpvote(ctx, feedbackID, userID)
}
