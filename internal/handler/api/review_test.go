//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"storeslot/internal/domain/user"
	"storeslot/internal/handler/api"
	resdto "storeslot/internal/handler/dto/response"
	"storeslot/internal/usecase/commands"
	"storeslot/internal/usecase/queries"
	"storeslot/tests/common/builder"
	"storeslot/tests/common/httptest"
	"storeslot/tests/common/testutil"
	commandsmock "storeslot/tests/mock/commands"
	queriesmock "storeslot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/api/reviews", authMiddleware, s.handler.CreateReview)
	s.router.GET("/api/reviews/me", authMiddleware, s.handler.ListMyReviews)
	s.router.PUT("/api/reviews/:id", authMiddleware, s.handler.UpdateReview)
	s.router.DELETE("/api/reviews/:id", authMiddleware, s.handler.DeleteReview)
	s.router.GET("/api/stores/:id/reviews", s.handler.ListStoreReviews)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type reviewTestCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreateReview() {
	url := "/api/reviews"
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.Content, resp.Content)
	})

	s.Run("validation boundaries", func() {
		bound := []reviewTestCase{
			{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
			{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "content length OK (10 chars)", mutate: testutil.Field("content", strings.Repeat("a", 10)), expectCode: http.StatusCreated},
			{name: "content length invalid (9 chars)", mutate: testutil.Field("content", strings.Repeat("a", 9)), expectCode: http.StatusBadRequest},
			{name: "content length OK (500 chars)", mutate: testutil.Field("content", strings.Repeat("a", 500)), expectCode: http.StatusCreated},
			{name: "content length invalid (501 chars)", mutate: testutil.Field("content", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		}

		missing := []reviewTestCase{
			{name: "missing field: reservation_id", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: content", mutate: testutil.Field("content", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]reviewTestCase{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
							Return(returnView, nil).Times(1)
					}
					body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "reservation not found", err: commands.ErrReservationNotFound, expectCode: http.StatusNotFound, expectMsg: "Reservation not found"},
			{name: "reservation not used", err: commands.ErrReservationNotUsed, expectCode: http.StatusConflict, expectMsg: "not been used"},
			{name: "not the reservation holder", err: commands.ErrReviewAccessDenied, expectCode: http.StatusForbidden, expectMsg: "Access denied"},
			{name: "domain validation", err: commands.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity, expectMsg: "Invalid review data"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("unauthenticated: returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdateReview() {
	reviewID := uuid.New()
	url := "/api/reviews/" + reviewID.String()
	reqBody := builder.NewReviewBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns the updated view", func() {
		view := builder.NewReviewBuilder().WithRating(4).BuildView()
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var resp resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int32(4), resp.Rating)
	})

	s.Run("not the author: returns 403", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(nil, commands.ErrReviewAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("review not found: returns 404", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(nil, commands.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})

	s.Run("invalid review id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reviews/abc", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *ReviewHandlerTestSuite) TestDeleteReview() {
	reviewID := uuid.New()
	url := "/api/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("neither author nor store owner: returns 403", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID).
			Return(commands.ErrReviewAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReviewHandlerTestSuite) TestListStoreReviews() {
	storeID := uuid.New()
	url := "/api/stores/" + storeID.String() + "/reviews"

	s.Run("success: public listing without auth", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().BuildView(),
			builder.NewReviewBuilder().AsPoorRating().BuildView(),
		}
		s.mockQueries.EXPECT().ListByStore(gomock.Any(), storeID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("store not found: returns 404", func() {
		s.mockQueries.EXPECT().ListByStore(gomock.Any(), storeID).
			Return(nil, queries.ErrStoreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Store not found")
	})
}

func (s *ReviewHandlerTestSuite) TestListMyReviews() {
	url := "/api/reviews/me"

	s.Run("success: returns the caller's reviews", func() {
		views := []*queries.ReviewView{builder.NewReviewBuilder().WithUserID(s.actorID).BuildView()}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})
}
