package commands

import (
	"context"
	"errors"

	"storeslot/internal/domain/reservation"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/metrics"
	"storeslot/internal/pkg/clock"
	"storeslot/internal/pkg/errs"
	"storeslot/internal/usecase/queries"
	"storeslot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationAccessDenied = errs.New("reservation access denied")
	ErrReservationInPast       = errs.New("reservation time is in the past")
	ErrInvalidReservationTime  = errs.New("reservation time is not on the half-hour grid")
	ErrInvalidStatus           = errs.New("invalid reservation status")
	ErrStatusConflict          = errs.New("reservation status conflict")
	ErrAlreadyUsed             = errs.New("reservation already used")
	ErrNotApproved             = errs.New("reservation not approved")
	ErrUsageWindowClosed       = errs.New("reservation not yet in its usage window")
	ErrVersionConflict         = errs.New("reservation was modified concurrently")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	ChangeStatus(ctx context.Context, reservationID uuid.UUID, req reqdto.UpdateReservationStatusRequest, actorID uuid.UUID) (*queries.ReservationView, error)
	MarkUsed(ctx context.Context, reservationID uuid.UUID, actorID uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	runner             shared.TxRunner
	reservationRepo    ReservationRepository
	storeRepo          StoreRepository
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationCommands(
	runner shared.TxRunner,
	reservationRepo ReservationRepository,
	storeRepo StoreRepository,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		runner:             runner,
		reservationRepo:    reservationRepo,
		storeRepo:          storeRepo,
		reservationQueries: reservationQueries,
		clock:              clock,
	}
}

func (u *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	// The slot is validated before the store lookup; a past or off-grid
	// time is reported even when the store does not exist.
	res, err := reservation.NewReservation(userID, req.StoreID, req.ReservationTime, u.clock.Now())
	if err != nil {
		return nil, markSlotError(err)
	}

	var reservationID uuid.UUID

	err = u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := u.storeRepo.FindByID(ctx, tx, req.StoreID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStoreNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		reservationID, err = u.reservationRepo.Create(ctx, tx, res)
		if err != nil {
			// The store can disappear between the existence check and
			// the insert; the FK violation closes that race.
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrStoreNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveReservationTransition(reservation.StatusPending.String())
	return u.readBack(ctx, reservationID)
}

func (u *reservationCommandsImpl) ChangeStatus(
	ctx context.Context,
	reservationID uuid.UUID,
	req reqdto.UpdateReservationStatusRequest,
	actorID uuid.UUID,
) (*queries.ReservationView, error) {
	next, err := reservation.NewStatus(req.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	err = u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		record, err := u.findRecordForOwner(ctx, tx, reservationID, actorID)
		if err != nil {
			return err
		}

		if err := record.Reservation.ChangeStatus(next); err != nil {
			if errors.Is(err, reservation.ErrStatusConflict) {
				return errs.Mark(err, ErrStatusConflict)
			}
			return errs.Mark(err, ErrInvalidStatus)
		}

		return u.persistState(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveReservationTransition(next.String())
	return u.readBack(ctx, reservationID)
}

func (u *reservationCommandsImpl) MarkUsed(
	ctx context.Context,
	reservationID uuid.UUID,
	actorID uuid.UUID,
) (*queries.ReservationView, error) {
	err := u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		record, err := u.findRecordForOwner(ctx, tx, reservationID, actorID)
		if err != nil {
			return err
		}

		if err := record.Reservation.MarkUsed(u.clock.Now()); err != nil {
			return markUsageError(err)
		}

		return u.persistState(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveReservationTransition(reservation.StatusCompleted.String())
	return u.readBack(ctx, reservationID)
}

// findRecordForOwner loads the reservation and enforces that the actor
// owns the reservation's store. Both status changes and usage are store
// staff operations.
func (u *reservationCommandsImpl) findRecordForOwner(
	ctx context.Context,
	tx db.DBTX,
	reservationID, actorID uuid.UUID,
) (*ReservationRecord, error) {
	record, err := u.reservationRepo.FindByID(ctx, tx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if record.StoreOwnerID != actorID {
		return nil, ErrReservationAccessDenied
	}
	return record, nil
}

func (u *reservationCommandsImpl) persistState(ctx context.Context, tx db.DBTX, record *ReservationRecord) error {
	if err := u.reservationRepo.UpdateState(ctx, tx, record.Reservation); err != nil {
		if infra.IsKind(err, infra.KindVersionConflict) {
			return errs.Mark(err, ErrVersionConflict)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// readBack returns the projection after commit so callers see exactly
// what the read side will serve.
func (u *reservationCommandsImpl) readBack(ctx context.Context, reservationID uuid.UUID) (*queries.ReservationView, error) {
	view, err := u.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func markSlotError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrSlotInPast):
		return errs.Mark(err, ErrReservationInPast)
	case errors.Is(err, reservation.ErrSlotOffGrid):
		return errs.Mark(err, ErrInvalidReservationTime)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func markUsageError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrAlreadyUsed):
		return errs.Mark(err, ErrAlreadyUsed)
	case errors.Is(err, reservation.ErrNotApproved):
		return errs.Mark(err, ErrNotApproved)
	case errors.Is(err, reservation.ErrUsageWindowClosed):
		return errs.Mark(err, ErrUsageWindowClosed)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
