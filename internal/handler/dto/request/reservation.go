package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	StoreID         uuid.UUID `json:"store_id" binding:"required"`
	ReservationTime time.Time `json:"reservation_time" binding:"required"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
