//go:build unit || e2e

package builder

import (
	"time"

	domreview "storeslot/internal/domain/review"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/usecase/commands"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	UserName      string
	StoreID       uuid.UUID
	StoreName     string
	ReservationID uuid.UUID
	Content       string
	Rating        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		UserName:      "Taro Yamada",
		StoreID:       uuid.New(),
		StoreName:     "Ramen Kaminari",
		ReservationID: uuid.New(),
		Content:       "Great food and friendly staff, would come back.",
		Rating:        5,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	b.UserID = userID
	return b
}

func (b *ReviewBuilder) WithReservationID(reservationID uuid.UUID) *ReviewBuilder {
	b.ReservationID = reservationID
	return b
}

func (b *ReviewBuilder) WithContent(content string) *ReviewBuilder {
	b.Content = content
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	b.Rating = 1
	b.Content = "Cold food and a long wait, disappointing."
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	content, err := domreview.NewContent(b.Content)
	if err != nil {
		return nil, err
	}
	rating, err := domreview.NewRating(b.Rating)
	if err != nil {
		return nil, err
	}
	return domreview.ReconstructReview(
		b.ID, b.UserID, b.StoreID, b.ReservationID,
		content, rating, b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *ReviewBuilder) BuildRecord(storeOwnerID uuid.UUID) (*commands.ReviewRecord, error) {
	rev, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	return &commands.ReviewRecord{
		Review:       rev,
		StoreOwnerID: storeOwnerID,
	}, nil
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReservationID: b.ReservationID,
		Content:       b.Content,
		Rating:        b.Rating,
	}
}

func (b *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Content: b.Content,
		Rating:  b.Rating,
	}
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        b.ID,
		StoreID:   b.StoreID,
		StoreName: b.StoreName,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Content:   b.Content,
		Rating:    int32(b.Rating),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
