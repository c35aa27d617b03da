//go:build e2e

package match_test

import (
	"fmt"
	"net/http"
	"testing"

	"tripmatch/internal/handler/dto/response"
	"tripmatch/tests/common/builder"
	"tripmatch/tests/common/dbtest"
	"tripmatch/tests/common/httptest"
	"tripmatch/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	matchURL   = "/api/trips/match"
	groupsURL  = "/api/groups"
	groupURL   = "/api/groups/%s"
	pendingURL = "/api/pending"
)

type MatchSuite struct {
	e2e.SharedSuite
}

func TestMatchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MatchSuite))
}

func (s *MatchSuite) submit(userID string, b *builder.TripBuilder) response.MatchResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, matchURL,
		b.ForUser(userID).BuildMatchRequestDTO(), s.Token(userID))

	var resp response.MatchResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
	return resp
}

// =============================================================================
// TestMatch - forming groups over the API
// =============================================================================

func (s *MatchSuite) TestMatch() {
	s.Run("Fourth compatible submission forms a group", func() {
		t := s.T()
		b := builder.NewTripBuilder()

		for _, u := range []string{"A", "B", "C"} {
			resp := s.submit(u, b)
			require.Equal(t, "enqueued", resp.Outcome)
			require.NotEmpty(t, resp.PendingID)
		}

		resp := s.submit("D", b)
		require.Equal(t, "formed", resp.Outcome)
		require.NotEmpty(t, resp.GroupID)
		if diff := cmp.Diff([]string{"D", "A", "B", "C"}, resp.Members); diff != "" {
			t.Errorf("members mismatch (-want +got):\n%s", diff)
		}

		for _, u := range []string{"A", "B", "C", "D"} {
			require.Zero(t, dbtest.CountPending(t, s.DB, u), "user %s still pending", u)
			require.Equal(t, 1, dbtest.CountGroupsFor(t, s.DB, u))
		}
	})

	s.Run("Criteria are normalized before matching", func() {
		t := s.T()

		s.submit("A", builder.NewTripBuilder())
		s.submit("B", builder.NewTripBuilder().With(func(b *builder.TripBuilder) { b.Destination = "  LISBON " }))
		s.submit("C", builder.NewTripBuilder().With(func(b *builder.TripBuilder) { b.Interest = "Hiking" }))
		resp := s.submit("D", builder.NewTripBuilder())

		require.Equal(t, "formed", resp.Outcome)
	})

	s.Run("Different weeks never share a pool", func() {
		t := s.T()
		later := builder.NewTripBuilder().With(func(b *builder.TripBuilder) {
			b.WeekStartDate = "2026-06-08"
			b.WeekEndDate = "2026-06-14"
		})

		s.submit("A", builder.NewTripBuilder())
		s.submit("B", builder.NewTripBuilder())
		s.submit("C", later)
		resp := s.submit("D", builder.NewTripBuilder())

		require.Equal(t, "enqueued", resp.Outcome)
	})

	s.Run("Duplicate pending submission is rejected", func() {
		t := s.T()
		s.submit("A", builder.NewTripBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, matchURL,
			builder.NewTripBuilder().ForUser("A").BuildMatchRequestDTO(), s.Token("A"))
		httptest.AssertErrorCode(t, w, http.StatusConflict, "duplicate_submission")
		require.Equal(t, 1, dbtest.CountPending(t, s.DB, "A"))
	})

	s.Run("Invalid range is rejected before storage", func() {
		t := s.T()
		req := builder.NewTripBuilder().ForUser("A").With(func(b *builder.TripBuilder) {
			b.WeekStartDate = "2026-06-07"
			b.WeekEndDate = "2026-06-01"
		}).BuildMatchRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, matchURL, req, s.Token("A"))
		body := httptest.AssertErrorCode(t, w, http.StatusBadRequest, "validation_error")
		require.Equal(t, "invalid_range", body.Detail.Reason)
		require.Zero(t, dbtest.CountPending(t, s.DB, "A"))
	})

	s.Run("Token subject must match uid", func() {
		t := s.T()
		req := builder.NewTripBuilder().ForUser("A").BuildMatchRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, matchURL, req, s.Token("B"))
		httptest.AssertErrorCode(t, w, http.StatusForbidden, "identity_mismatch")
	})

	s.Run("Expired token is unauthenticated", func() {
		t := s.T()
		req := builder.NewTripBuilder().ForUser("A").BuildMatchRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, matchURL, req, s.JWT.CreateExpiredToken(t, "A"))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConcurrentMatch - racing submitters against one pool
// =============================================================================

func (s *MatchSuite) TestConcurrentMatch() {
	t := s.T()
	const users = 24

	var g errgroup.Group
	for i := range users {
		userID := fmt.Sprintf("racer-%02d", i)
		token := s.Token(userID)
		g.Go(func() error {
			for {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, matchURL,
					builder.NewTripBuilder().ForUser(userID).BuildMatchRequestDTO(), token)
				switch w.Code {
				case http.StatusCreated:
					return nil
				case http.StatusServiceUnavailable:
					continue
				default:
					return fmt.Errorf("%s: unexpected status %d: %s", userID, w.Code, w.Body.String())
				}
			}
		})
	}
	require.NoError(t, g.Wait())

	var groups, pending int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM travel_groups").Scan(&groups))
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM pending_entries").Scan(&pending))
	require.Equal(t, users/4, groups)
	require.Zero(t, pending)

	for i := range users {
		require.Equal(t, 1, dbtest.CountGroupsFor(t, s.DB, fmt.Sprintf("racer-%02d", i)))
	}
}

// =============================================================================
// TestGroups - reading formed groups back
// =============================================================================

func (s *MatchSuite) TestGroups() {
	s.Run("Members list and fetch their group", func() {
		t := s.T()
		b := builder.NewTripBuilder()
		for _, u := range []string{"A", "B", "C"} {
			s.submit(u, b)
		}
		formed := s.submit("D", b)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, groupsURL, nil, s.Token("B"))
		var list struct {
			Groups     []response.GroupResponse `json:"groups"`
			NextCursor string                   `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Groups, 1)

		want := response.GroupResponse{
			ID:            formed.GroupID,
			WeekStartDate: "2026-06-01",
			WeekEndDate:   "2026-06-07",
			Destination:   "Lisbon",
			Interest:      "hiking",
			Members:       []string{"D", "A", "B", "C"},
		}
		if diff := cmp.Diff(want, list.Groups[0], cmpopts.IgnoreFields(response.GroupResponse{}, "CreatedAt")); diff != "" {
			t.Errorf("group mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(groupURL, formed.GroupID), nil, s.Token("C"))
		var got response.GroupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, formed.GroupID, got.ID)
	})

	s.Run("Outsiders cannot see the group", func() {
		t := s.T()
		b := builder.NewTripBuilder()
		var formed response.MatchResponse
		for _, u := range []string{"A", "B", "C", "D"} {
			formed = s.submit(u, b)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(groupURL, formed.GroupID), nil, s.Token("E"))
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "not_found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, groupsURL, nil, s.Token("E"))
		var list struct {
			Groups []response.GroupResponse `json:"groups"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Empty(t, list.Groups)
	})

	s.Run("Pending lists only the caller's entries", func() {
		t := s.T()
		s.submit("A", builder.NewTripBuilder())
		s.submit("A", builder.NewTripBuilder().With(func(b *builder.TripBuilder) { b.Destination = "Porto" }))
		s.submit("B", builder.NewTripBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, s.Token("A"))
		var list struct {
			Pending []response.PendingResponse `json:"pending"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Pending, 2)
		require.Equal(t, "Lisbon", list.Pending[0].Destination)
		require.Equal(t, "Porto", list.Pending[1].Destination)
	})
}
