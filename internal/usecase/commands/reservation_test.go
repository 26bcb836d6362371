//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storeslot/internal/domain/reservation"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/pkg/clock"
	"storeslot/internal/usecase/commands"
	"storeslot/tests/common/builder"
	"storeslot/tests/common/testutil"
	commandsmock "storeslot/tests/mock/commands"
	queriesmock "storeslot/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	reservationRepo    *commandsmock.MockReservationRepository
	storeRepo          *commandsmock.MockStoreRepository
	reservationQueries *queriesmock.MockReservationQueries
	clock              *clock.FakeClock
	commands           commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.storeRepo = commandsmock.NewMockStoreRepository(s.ctrl)
	s.reservationQueries = queriesmock.NewMockReservationQueries(s.ctrl)
	s.clock = clock.NewFakeClock(builder.BaseTime)
	s.commands = commands.NewReservationCommands(
		testutil.StubTxRunner{},
		s.reservationRepo,
		s.storeRepo,
		s.reservationQueries,
		s.clock,
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("success returns the stored view", func() {
		b := builder.NewReservationBuilder().WithUserID(userID)
		req := b.BuildCreateRequestDTO()
		view := b.BuildView()

		s.storeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.StoreID).
			Return(builder.NewStoreBuilder().BuildDomain(), nil)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
				s.Equal(userID, res.UserID())
				s.Equal(reservation.StatusPending, res.Status())
				return res.ID(), nil
			})
		s.reservationQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := s.commands.CreateReservation(ctx, req, userID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("unknown store", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		s.storeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.StoreID).
			Return(nil, notFoundErr())

		_, err := s.commands.CreateReservation(ctx, req, userID)
		s.ErrorIs(err, commands.ErrStoreNotFound)
	})

	s.Run("slot in the past", func() {
		req := builder.NewReservationBuilder().
			WithSlot(builder.BaseTime.Add(-time.Hour)).
			BuildCreateRequestDTO()

		_, err := s.commands.CreateReservation(ctx, req, userID)
		s.ErrorIs(err, commands.ErrReservationInPast)
	})

	s.Run("slot off the half-hour grid", func() {
		req := builder.NewReservationBuilder().
			WithSlot(builder.BaseTime.Add(75 * time.Minute)).
			BuildCreateRequestDTO()

		_, err := s.commands.CreateReservation(ctx, req, userID)
		s.ErrorIs(err, commands.ErrInvalidReservationTime)
	})

	s.Run("past slot wins over an unknown store", func() {
		req := builder.NewReservationBuilder().
			WithSlot(builder.BaseTime.Add(-time.Hour)).
			BuildCreateRequestDTO()

		// The slot is rejected before the store is ever looked up.
		s.storeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands.CreateReservation(ctx, req, userID)
		s.ErrorIs(err, commands.ErrReservationInPast)
	})

	s.Run("store deleted between check and insert", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		s.storeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.StoreID).
			Return(builder.NewStoreBuilder().BuildDomain(), nil)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("fk", nil, infra.KindForeignKeyViolated))

		_, err := s.commands.CreateReservation(ctx, req, userID)
		s.ErrorIs(err, commands.ErrStoreNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestChangeStatus() {
	ctx := context.Background()
	ownerID := uuid.New()
	approve := reqdto.UpdateReservationStatusRequest{Status: "APPROVED"}

	s.Run("success approves a pending reservation", func() {
		b := builder.NewReservationBuilder()
		record := b.BuildRecord(ownerID)
		view := b.AsApproved().BuildView()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)
		s.reservationRepo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), record.Reservation).
			DoAndReturn(func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
				s.Equal(reservation.StatusApproved, res.Status())
				return nil
			})
		s.reservationQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

		got, err := s.commands.ChangeStatus(ctx, b.ID, approve, ownerID)
		s.NoError(err)
		s.Equal("APPROVED", got.Status)
	})

	s.Run("unknown status value", func() {
		_, err := s.commands.ChangeStatus(ctx, uuid.New(), reqdto.UpdateReservationStatusRequest{Status: "CANCELLED"}, ownerID)
		s.ErrorIs(err, commands.ErrInvalidStatus)
	})

	s.Run("reservation not found", func() {
		id := uuid.New()
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.ChangeStatus(ctx, id, approve, ownerID)
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("actor does not own the store", func() {
		b := builder.NewReservationBuilder()
		record := b.BuildRecord(uuid.New())

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		_, err := s.commands.ChangeStatus(ctx, b.ID, approve, ownerID)
		s.ErrorIs(err, commands.ErrReservationAccessDenied)
	})

	s.Run("approved cannot revert to pending", func() {
		b := builder.NewReservationBuilder().AsApproved()
		record := b.BuildRecord(ownerID)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		_, err := s.commands.ChangeStatus(ctx, b.ID, reqdto.UpdateReservationStatusRequest{Status: "PENDING"}, ownerID)
		s.ErrorIs(err, commands.ErrStatusConflict)
	})

	s.Run("concurrent update loses", func() {
		b := builder.NewReservationBuilder()
		record := b.BuildRecord(ownerID)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)
		s.reservationRepo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), record.Reservation).
			Return(infra.WrapRepoErr("stale version", nil, infra.KindVersionConflict))

		_, err := s.commands.ChangeStatus(ctx, b.ID, approve, ownerID)
		s.ErrorIs(err, commands.ErrVersionConflict)
	})
}

func (s *ReservationCommandsTestSuite) TestMarkUsed() {
	ctx := context.Background()
	ownerID := uuid.New()

	s.Run("success inside the usage window", func() {
		b := builder.NewReservationBuilder().AsApproved() // slot at 10:00
		record := b.BuildRecord(ownerID)
		view := b.AsCompleted().BuildView()

		s.clock.Set(b.Slot.Add(-8 * time.Minute)) // 09:52

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)
		s.reservationRepo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), record.Reservation).
			DoAndReturn(func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
				s.True(res.Used())
				s.Equal(reservation.StatusCompleted, res.Status())
				return nil
			})
		s.reservationQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

		got, err := s.commands.MarkUsed(ctx, b.ID, ownerID)
		s.NoError(err)
		s.True(got.Used)
		s.Equal("COMPLETED", got.Status)
	})

	s.Run("too early", func() {
		b := builder.NewReservationBuilder().AsApproved()
		record := b.BuildRecord(ownerID)

		s.clock.Set(b.Slot.Add(-11 * time.Minute))

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		_, err := s.commands.MarkUsed(ctx, b.ID, ownerID)
		s.ErrorIs(err, commands.ErrUsageWindowClosed)
	})

	s.Run("already used", func() {
		b := builder.NewReservationBuilder().AsCompleted()
		record := b.BuildRecord(ownerID)

		s.clock.Set(b.Slot)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		_, err := s.commands.MarkUsed(ctx, b.ID, ownerID)
		s.ErrorIs(err, commands.ErrAlreadyUsed)
	})

	s.Run("not approved", func() {
		b := builder.NewReservationBuilder() // still pending
		record := b.BuildRecord(ownerID)

		s.clock.Set(b.Slot)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		_, err := s.commands.MarkUsed(ctx, b.ID, ownerID)
		s.ErrorIs(err, commands.ErrNotApproved)
	})

	s.Run("actor does not own the store", func() {
		b := builder.NewReservationBuilder().AsApproved()
		record := b.BuildRecord(uuid.New())

		s.clock.Set(b.Slot)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		_, err := s.commands.MarkUsed(ctx, b.ID, ownerID)
		s.ErrorIs(err, commands.ErrReservationAccessDenied)
	})
}
