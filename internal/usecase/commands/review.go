package commands

import (
	"context"

	"storeslot/internal/domain/review"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/pkg/errs"
	"storeslot/internal/usecase/queries"
	"storeslot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound     = errs.New("review not found")
	ErrReviewAccessDenied = errs.New("review access denied")
	ErrReservationNotUsed = errs.New("reservation has not been used yet")
)

type ReviewCommands interface {
	CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, userID uuid.UUID) (*queries.ReviewView, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req reqdto.UpdateReviewRequest, userID uuid.UUID) (*queries.ReviewView, error)
	DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) error
}

type reviewCommandsImpl struct {
	runner          shared.TxRunner
	reviewRepo      ReviewRepository
	reservationRepo ReservationRepository
	reviewQueries   queries.ReviewQueries
}

func NewReviewCommands(
	runner shared.TxRunner,
	reviewRepo ReviewRepository,
	reservationRepo ReservationRepository,
	reviewQueries queries.ReviewQueries,
) ReviewCommands {
	return &reviewCommandsImpl{
		runner:          runner,
		reviewRepo:      reviewRepo,
		reservationRepo: reservationRepo,
		reviewQueries:   reviewQueries,
	}
}

// CreateReview admits a review only through a consumed reservation: the
// reservation must exist, must have been used, and must belong to the
// author.
func (u *reviewCommandsImpl) CreateReview(
	ctx context.Context,
	req reqdto.CreateReviewRequest,
	userID uuid.UUID,
) (*queries.ReviewView, error) {
	content, rating, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var reviewID uuid.UUID
	err = u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		record, err := u.reservationRepo.FindByID(ctx, tx, req.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !record.Reservation.Used() {
			return ErrReservationNotUsed
		}
		if !record.Reservation.IsHeldBy(userID) {
			return ErrReviewAccessDenied
		}

		rev := review.NewReview(userID, record.Reservation.StoreID(), req.ReservationID, content, rating)
		reviewID, err = u.reviewRepo.Create(ctx, tx, rev)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, reviewID)
}

func (u *reviewCommandsImpl) UpdateReview(
	ctx context.Context,
	reviewID uuid.UUID,
	req reqdto.UpdateReviewRequest,
	userID uuid.UUID,
) (*queries.ReviewView, error) {
	content, rating, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		record, err := u.findRecord(ctx, tx, reviewID)
		if err != nil {
			return err
		}

		if !record.Review.IsAuthoredBy(userID) {
			return ErrReviewAccessDenied
		}

		record.Review.Edit(content, rating)
		if err := u.reviewRepo.Update(ctx, tx, record.Review); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, reviewID)
}

// DeleteReview is allowed for the author and for the owner of the
// reviewed store.
func (u *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID, userID uuid.UUID) error {
	return u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		record, err := u.findRecord(ctx, tx, reviewID)
		if err != nil {
			return err
		}

		if !record.Review.CanBeDeletedBy(userID, record.StoreOwnerID) {
			return ErrReviewAccessDenied
		}

		if err := u.reviewRepo.Delete(ctx, tx, reviewID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *reviewCommandsImpl) findRecord(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) (*ReviewRecord, error) {
	record, err := u.reviewRepo.FindByID(ctx, tx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return record, nil
}

func (u *reviewCommandsImpl) readBack(ctx context.Context, reviewID uuid.UUID) (*queries.ReviewView, error) {
	view, err := u.reviewQueries.GetByID(ctx, reviewID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
