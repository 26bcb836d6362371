package response

import (
	"time"

	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromStoreView(rm *queries.StoreView) *StoreResponse {
	return &StoreResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		Name:        rm.Name,
		Location:    rm.Location,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromStoreViews(rms []*queries.StoreView) []*StoreResponse {
	out := make([]*StoreResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromStoreView(rm)
	}
	return out
}
