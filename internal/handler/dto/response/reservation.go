package response

import (
	"time"

	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	StoreID         uuid.UUID `json:"storeId"`
	StoreName       string    `json:"storeName"`
	UserID          uuid.UUID `json:"userId"`
	UserName        string    `json:"userName"`
	ReservationTime time.Time `json:"reservationTime"`
	Status          string    `json:"status"`
	Used            bool      `json:"used"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		StoreID:         rm.StoreID,
		StoreName:       rm.StoreName,
		UserID:          rm.UserID,
		UserName:        rm.UserName,
		ReservationTime: rm.ReservationTime,
		Status:          rm.Status,
		Used:            rm.Used,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}
