//go:build unit || e2e

package builder

import (
	"time"

	domreservation "storeslot/internal/domain/reservation"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/usecase/commands"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime is the reference "now" shared by reservation tests; slots
// default to one hour later, safely inside the future.
var BaseTime = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  string
	StoreID   uuid.UUID
	StoreName string
	Slot      time.Time
	Status    domreservation.Status
	Used      bool
	Version   int32
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Taro Yamada",
		StoreID:   uuid.New(),
		StoreName: "Ramen Kaminari",
		Slot:      BaseTime.Add(time.Hour),
		Status:    domreservation.StatusPending,
		Used:      false,
		Version:   1,
		CreatedAt: BaseTime,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithStoreID(storeID uuid.UUID) *ReservationBuilder {
	b.StoreID = storeID
	return b
}

func (b *ReservationBuilder) WithSlot(slot time.Time) *ReservationBuilder {
	b.Slot = slot
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithUsed(used bool) *ReservationBuilder {
	b.Used = used
	return b
}

func (b *ReservationBuilder) AsApproved() *ReservationBuilder {
	b.Status = domreservation.StatusApproved
	return b
}

func (b *ReservationBuilder) AsCompleted() *ReservationBuilder {
	b.Status = domreservation.StatusCompleted
	b.Used = true
	return b
}

func (b *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	return domreservation.ReconstructReservation(
		b.ID, b.UserID, b.StoreID,
		domreservation.ReconstructSlotTime(b.Slot),
		b.Status, b.Used, b.Version, b.CreatedAt,
	)
}

// BuildRecord pairs the reservation with a store owner, mirroring what
// the write repository returns.
func (b *ReservationBuilder) BuildRecord(storeOwnerID uuid.UUID) *commands.ReservationRecord {
	return &commands.ReservationRecord{
		Reservation:  b.BuildDomain(),
		StoreOwnerID: storeOwnerID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		StoreID:         b.StoreID,
		ReservationTime: b.Slot,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		StoreID:         b.StoreID,
		StoreName:       b.StoreName,
		UserID:          b.UserID,
		UserName:        b.UserName,
		ReservationTime: b.Slot,
		Status:          b.Status.String(),
		Used:            b.Used,
		CreatedAt:       b.CreatedAt,
	}
}
