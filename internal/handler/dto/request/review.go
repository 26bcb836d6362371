package request

import (
	domreview "storeslot/internal/domain/review"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Content       string    `json:"content" binding:"required,min=10,max=500"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateReviewRequest replaces content and rating wholesale; there is no
// partial patch on reviews.
type UpdateReviewRequest struct {
	Content string `json:"content" binding:"required,min=10,max=500"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

func (r *CreateReviewRequest) ToDomain() (domreview.Content, domreview.Rating, error) {
	return toContentAndRating(r.Content, r.Rating)
}

func (r *UpdateReviewRequest) ToDomain() (domreview.Content, domreview.Rating, error) {
	return toContentAndRating(r.Content, r.Rating)
}

func toContentAndRating(content string, rating int) (domreview.Content, domreview.Rating, error) {
	c, err := domreview.NewContent(content)
	if err != nil {
		return domreview.Content{}, domreview.Rating{}, err
	}
	rt, err := domreview.NewRating(rating)
	if err != nil {
		return domreview.Content{}, domreview.Rating{}, err
	}
	return c, rt, nil
}
