package repository

import (
	"context"
	"time"

	"storeslot/internal/domain/review"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, user_id, store_id, reservation_id, content, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, query,
		rev.ID(),
		rev.UserID(),
		rev.StoreID(),
		rev.ReservationID(),
		rev.Content().String(),
		rev.Rating().Value(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return rev.ID(), nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ReviewRecord, error) {
	const query = `
		SELECT v.id, v.user_id, v.store_id, v.reservation_id, v.content, v.rating, v.created_at, v.updated_at,
		       s.owner_id
		FROM reviews v
		JOIN stores s ON s.id = v.store_id
		WHERE v.id = $1
	`

	var (
		revID         uuid.UUID
		userID        uuid.UUID
		storeID       uuid.UUID
		reservationID uuid.UUID
		content       string
		rating        int
		createdAt     time.Time
		updatedAt     time.Time
		storeOwnerID  uuid.UUID
	)

	err := dbtx.QueryRow(ctx, query, id).Scan(
		&revID, &userID, &storeID, &reservationID, &content, &rating, &createdAt, &updatedAt, &storeOwnerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}

	contentVO, err := review.NewContent(content)
	if err != nil {
		return nil, infra.WrapRepoErr("stored review content is invalid", err)
	}
	ratingVO, err := review.NewRating(rating)
	if err != nil {
		return nil, infra.WrapRepoErr("stored review rating is invalid", err)
	}

	entity := review.ReconstructReview(revID, userID, storeID, reservationID, contentVO, ratingVO, createdAt, updatedAt)

	return &commands.ReviewRecord{
		Review:       entity,
		StoreOwnerID: storeOwnerID,
	}, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	const query = `
		UPDATE reviews
		SET content = $2, rating = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, rev.ID(), rev.Content().String(), rev.Rating().Value())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM reviews WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
