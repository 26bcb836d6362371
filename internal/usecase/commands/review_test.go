//go:build unit

package commands_test

import (
	"context"
	"testing"

	"storeslot/internal/domain/review"
	"storeslot/internal/infra/db"
	"storeslot/internal/usecase/commands"
	"storeslot/tests/common/builder"
	"storeslot/tests/common/testutil"
	commandsmock "storeslot/tests/mock/commands"
	queriesmock "storeslot/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	reviewRepo      *commandsmock.MockReviewRepository
	reservationRepo *commandsmock.MockReservationRepository
	reviewQueries   *queriesmock.MockReviewQueries
	commands        commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reviewRepo = commandsmock.NewMockReviewRepository(s.ctrl)
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.reviewQueries = queriesmock.NewMockReviewQueries(s.ctrl)
	s.commands = commands.NewReviewCommands(
		testutil.StubTxRunner{},
		s.reviewRepo,
		s.reservationRepo,
		s.reviewQueries,
	)
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) TestCreateReview() {
	ctx := context.Background()
	authorID := uuid.New()

	s.Run("success from a used reservation", func() {
		resv := builder.NewReservationBuilder().WithUserID(authorID).AsCompleted()
		b := builder.NewReviewBuilder().WithUserID(authorID).WithReservationID(resv.ID)
		req := b.BuildCreateRequestDTO()
		view := b.BuildView()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), resv.ID).
			Return(resv.BuildRecord(uuid.New()), nil)
		s.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
				s.Equal(authorID, rev.UserID())
				s.Equal(resv.StoreID, rev.StoreID())
				s.Equal(resv.ID, rev.ReservationID())
				return rev.ID(), nil
			})
		s.reviewQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := s.commands.CreateReview(ctx, req, authorID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("reservation not found", func() {
		req := builder.NewReviewBuilder().BuildCreateRequestDTO()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), req.ReservationID).
			Return(nil, notFoundErr())

		_, err := s.commands.CreateReview(ctx, req, authorID)
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("reservation not yet used", func() {
		resv := builder.NewReservationBuilder().WithUserID(authorID).AsApproved()
		req := builder.NewReviewBuilder().WithReservationID(resv.ID).BuildCreateRequestDTO()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), resv.ID).
			Return(resv.BuildRecord(uuid.New()), nil)

		_, err := s.commands.CreateReview(ctx, req, authorID)
		s.ErrorIs(err, commands.ErrReservationNotUsed)
	})

	s.Run("reservation held by someone else", func() {
		resv := builder.NewReservationBuilder().AsCompleted()
		req := builder.NewReviewBuilder().WithReservationID(resv.ID).BuildCreateRequestDTO()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), resv.ID).
			Return(resv.BuildRecord(uuid.New()), nil)

		_, err := s.commands.CreateReview(ctx, req, authorID)
		s.ErrorIs(err, commands.ErrReviewAccessDenied)
	})

	s.Run("content below minimum length", func() {
		req := builder.NewReviewBuilder().WithContent("too short").BuildCreateRequestDTO()

		_, err := s.commands.CreateReview(ctx, req, authorID)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}

func (s *ReviewCommandsTestSuite) TestUpdateReview() {
	ctx := context.Background()
	authorID := uuid.New()

	s.Run("author rewrites the review", func() {
		b := builder.NewReviewBuilder().WithUserID(authorID)
		record, err := b.BuildRecord(uuid.New())
		s.Require().NoError(err)

		updated := builder.NewReviewBuilder().
			WithUserID(authorID).
			WithContent("Second visit was even better than the first.").
			WithRating(4)
		req := updated.BuildUpdateRequestDTO()
		view := updated.BuildView()

		s.reviewRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)
		s.reviewRepo.EXPECT().Update(gomock.Any(), gomock.Any(), record.Review).
			DoAndReturn(func(_ context.Context, _ db.DBTX, rev *review.Review) error {
				s.Equal("Second visit was even better than the first.", rev.Content().String())
				s.Equal(4, rev.Rating().Value())
				return nil
			})
		s.reviewQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

		got, err := s.commands.UpdateReview(ctx, b.ID, req, authorID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("only the author may update", func() {
		b := builder.NewReviewBuilder()
		storeOwnerID := uuid.New()
		record, err := b.BuildRecord(storeOwnerID)
		s.Require().NoError(err)

		s.reviewRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		// Even the store owner cannot edit someone else's review.
		_, err = s.commands.UpdateReview(ctx, b.ID, b.BuildUpdateRequestDTO(), storeOwnerID)
		s.ErrorIs(err, commands.ErrReviewAccessDenied)
	})

	s.Run("review not found", func() {
		id := uuid.New()
		s.reviewRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.UpdateReview(ctx, id, builder.NewReviewBuilder().BuildUpdateRequestDTO(), authorID)
		s.ErrorIs(err, commands.ErrReviewNotFound)
	})
}

func (s *ReviewCommandsTestSuite) TestDeleteReview() {
	ctx := context.Background()
	authorID := uuid.New()
	storeOwnerID := uuid.New()

	s.Run("author deletes own review", func() {
		b := builder.NewReviewBuilder().WithUserID(authorID)
		record, err := b.BuildRecord(storeOwnerID)
		s.Require().NoError(err)

		s.reviewRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)
		s.reviewRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)

		s.NoError(s.commands.DeleteReview(ctx, b.ID, authorID))
	})

	s.Run("store owner deletes a review on their store", func() {
		b := builder.NewReviewBuilder().WithUserID(authorID)
		record, err := b.BuildRecord(storeOwnerID)
		s.Require().NoError(err)

		s.reviewRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)
		s.reviewRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(nil)

		s.NoError(s.commands.DeleteReview(ctx, b.ID, storeOwnerID))
	})

	s.Run("third party cannot delete", func() {
		b := builder.NewReviewBuilder().WithUserID(authorID)
		record, err := b.BuildRecord(storeOwnerID)
		s.Require().NoError(err)

		s.reviewRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(record, nil)

		err = s.commands.DeleteReview(ctx, b.ID, uuid.New())
		s.ErrorIs(err, commands.ErrReviewAccessDenied)
	})
}
