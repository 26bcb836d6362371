//go:build e2e

package e2e

import (
	"net/http"
	"testing"
	"time"

	resdto "storeslot/internal/handler/dto/response"
	"storeslot/tests/common/httptest"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationFlowSuite struct {
	SharedSuite
}

func TestReservationFlowSuite(t *testing.T) {
	suite.Run(t, new(ReservationFlowSuite))
}

func (s *ReservationFlowSuite) registerAndLogin(name, phone, password string) string {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/users", map[string]any{
		"name":         name,
		"phone_number": phone,
		"password":     password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return s.login(phone, password)
}

func (s *ReservationFlowSuite) login(phone, password string) string {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/users/login", map[string]any{
		"phone_number": phone,
		"password":     password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp resdto.LoginResponse
	httptest.DecodeResponseBody(t, rec.Body, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// becomePartner upgrades the account and logs in again, since the role
// is baked into the token at login time.
func (s *ReservationFlowSuite) becomePartner(token, phone, password string) string {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/users/partner", nil, token)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	return s.login(phone, password)
}

func (s *ReservationFlowSuite) createStore(token string) resdto.StoreResponse {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores", map[string]any{
		"name":        "Ramen Kaminari",
		"location":    "2-1-1 Dogenzaka, Shibuya",
		"description": "Counter seats only, rich tonkotsu broth.",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp resdto.StoreResponse
	httptest.DecodeResponseBody(t, rec.Body, &resp)
	return resp
}

func (s *ReservationFlowSuite) TestReservationLifecycle() {
	t := s.T()

	base := time.Now().UTC().Truncate(time.Hour)
	slot := base.Add(time.Hour)
	s.Clock.Set(base)

	customerToken := s.registerAndLogin("Taro Yamada", "09011112222", "password123")
	partnerToken := s.registerAndLogin("Hanako Suzuki", "09033334444", "password456")
	partnerToken = s.becomePartner(partnerToken, "09033334444", "password456")

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/me", nil, partnerToken)
	var me resdto.UserResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &me)
	require.Equal(t, "PARTNER", me.Role)

	store := s.createStore(partnerToken)

	// Customer books a slot one hour out.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
		"store_id":         store.ID,
		"reservation_time": slot.Format(time.RFC3339),
	}, customerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var reservation resdto.ReservationResponse
	httptest.DecodeResponseBody(t, rec.Body, &reservation)
	require.Equal(t, "PENDING", reservation.Status)
	require.False(t, reservation.Used)

	statusURL := "/api/reservations/" + reservation.ID.String() + "/status"
	useURL := "/api/reservations/" + reservation.ID.String() + "/use"

	// The customer does not own the store, so they cannot approve.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL, map[string]any{"status": "APPROVED"}, customerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Access denied")

	// The store owner approves.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL, map[string]any{"status": "APPROVED"}, partnerToken)
	var approved resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &approved)
	require.Equal(t, "APPROVED", approved.Status)

	// An hour before the slot the usage window is still closed.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, useURL, nil, partnerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "10 minutes before")

	// Five minutes before the slot it opens.
	s.Clock.Set(slot.Add(-5 * time.Minute))
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, useURL, nil, partnerToken)
	var used resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &used)
	require.True(t, used.Used)
	require.Equal(t, "COMPLETED", used.Status)

	// A second use is rejected.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, useURL, nil, partnerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already used")

	// The holder reviews the visit.
	reviewBody := map[string]any{
		"reservation_id": reservation.ID,
		"content":        "Great food and friendly staff, would come back.",
		"rating":         5,
	}
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", reviewBody, customerToken)
	var review resdto.ReviewResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &review)
	require.Equal(t, store.ID, review.StoreID)

	// The store owner held no reservation, so they cannot review.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", reviewBody, partnerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Access denied")

	// The review is publicly visible on the store.
	rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/stores/"+store.ID.String()+"/reviews", nil, "")
	var reviews []resdto.ReviewResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &reviews)
	require.Len(t, reviews, 1)
	require.Equal(t, review.ID, reviews[0].ID)
}

func (s *ReservationFlowSuite) TestReviewRequiresUsedReservation() {
	t := s.T()

	base := time.Now().UTC().Truncate(time.Hour)
	s.Clock.Set(base)

	customerToken := s.registerAndLogin("Taro Yamada", "09055556666", "password123")
	partnerToken := s.registerAndLogin("Hanako Suzuki", "09077778888", "password456")
	partnerToken = s.becomePartner(partnerToken, "09077778888", "password456")
	store := s.createStore(partnerToken)

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
		"store_id":         store.ID,
		"reservation_time": base.Add(time.Hour).Format(time.RFC3339),
	}, customerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var reservation resdto.ReservationResponse
	httptest.DecodeResponseBody(t, rec.Body, &reservation)

	// Approved but never used: the review gate stays shut.
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		"/api/reservations/"+reservation.ID.String()+"/status",
		map[string]any{"status": "APPROVED"}, partnerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", map[string]any{
		"reservation_id": reservation.ID,
		"content":        "Great food and friendly staff, would come back.",
		"rating":         5,
	}, customerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "not been used")
}

func (s *ReservationFlowSuite) TestPastAndOffGridSlotsAreRejected() {
	t := s.T()

	base := time.Now().UTC().Truncate(time.Hour)
	s.Clock.Set(base)

	customerToken := s.registerAndLogin("Taro Yamada", "09099990000", "password123")
	partnerToken := s.registerAndLogin("Hanako Suzuki", "08011112222", "password456")
	partnerToken = s.becomePartner(partnerToken, "08011112222", "password456")
	store := s.createStore(partnerToken)

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
		"store_id":         store.ID,
		"reservation_time": base.Add(-time.Hour).Format(time.RFC3339),
	}, customerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "in the past")

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
		"store_id":         store.ID,
		"reservation_time": base.Add(75 * time.Minute).Format(time.RFC3339),
	}, customerToken)
	httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "half-hour boundary")
}
