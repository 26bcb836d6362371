package response

import (
	"time"

	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	StoreName string    `json:"storeName"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	Rating    int32     `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        rm.ID,
		StoreID:   rm.StoreID,
		StoreName: rm.StoreName,
		UserID:    rm.UserID,
		UserName:  rm.UserName,
		Content:   rm.Content,
		Rating:    rm.Rating,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromReviewViews(rms []*queries.ReviewView) []*ReviewResponse {
	out := make([]*ReviewResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReviewView(rm)
	}
	return out
}
