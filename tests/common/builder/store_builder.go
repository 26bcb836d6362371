//go:build unit || e2e

package builder

import (
	"time"

	domstore "storeslot/internal/domain/store"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Location    string
	Description string
	CreatedAt   time.Time
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Ramen Kaminari",
		Location:    "2-1-1 Dogenzaka, Shibuya",
		Description: "Counter seats only, rich tonkotsu broth.",
		CreatedAt:   time.Now(),
	}
}

func (b *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(b)
	return b
}

func (b *StoreBuilder) WithOwnerID(ownerID uuid.UUID) *StoreBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *StoreBuilder) WithName(name string) *StoreBuilder {
	b.Name = name
	return b
}

func (b *StoreBuilder) BuildDomain() *domstore.Store {
	return domstore.ReconstructStore(b.ID, b.OwnerID, b.Name, b.Location, b.Description, b.CreatedAt)
}

func (b *StoreBuilder) BuildCreateRequestDTO() reqdto.CreateStoreRequest {
	return reqdto.CreateStoreRequest{
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
	}
}

func (b *StoreBuilder) BuildUpdateRequestDTO() reqdto.UpdateStoreRequest {
	return reqdto.UpdateStoreRequest{
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
	}
}

func (b *StoreBuilder) BuildView() *queries.StoreView {
	return &queries.StoreView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}
