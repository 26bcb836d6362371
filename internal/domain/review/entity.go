package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrContentTooShort = errors.New("review content must be at least 10 characters")
	ErrContentTooLong  = errors.New("review content must be at most 500 characters")
)

// Review is feedback tied to exactly one used reservation. Author,
// store, and reservation references are immutable; content and rating
// are editable by the author.
type Review struct {
	id            uuid.UUID
	userID        uuid.UUID
	storeID       uuid.UUID
	reservationID uuid.UUID
	content       Content
	rating        Rating
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(userID, storeID, reservationID uuid.UUID, content Content, rating Rating) *Review {
	return &Review{
		id:            uuid.New(),
		userID:        userID,
		storeID:       storeID,
		reservationID: reservationID,
		content:       content,
		rating:        rating,
	}
}

func ReconstructReview(
	id, userID, storeID, reservationID uuid.UUID,
	content Content,
	rating Rating,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:            id,
		userID:        userID,
		storeID:       storeID,
		reservationID: reservationID,
		content:       content,
		rating:        rating,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) Edit(content Content, rating Rating) {
	r.content = content
	r.rating = rating
}

func (r *Review) IsAuthoredBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// CanBeDeletedBy permits deletion by the author or by the owner of the
// reviewed store.
func (r *Review) CanBeDeletedBy(userID, storeOwnerID uuid.UUID) bool {
	return r.userID == userID || storeOwnerID == userID
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) StoreID() uuid.UUID       { return r.storeID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Content() Content         { return r.content }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
