//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tripmatch/internal/infra"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/queries"
	"tripmatch/tests/common/builder"
	queriesmock "tripmatch/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GroupQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockGroupReadStore
	queries queries.GroupQueries
}

func (s *GroupQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockGroupReadStore(s.ctrl)
	s.queries = queries.NewGroupQueries(s.store)
}

func (s *GroupQueriesTestSuite) TestGetForMember() {
	view := builder.NewTripBuilder().BuildGroupView("D", "A", "B", "C")

	s.Run("member sees the group", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetForMember(context.Background(), view.ID, "B")
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("non-member gets not found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetForMember(context.Background(), view.ID, "Z")
		s.True(errs.Is(err, queries.ErrGroupNotFound), err)
	})

	s.Run("missing group", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "group not found", nil))

		_, err := s.queries.GetForMember(context.Background(), id, "A")
		s.True(errs.Is(err, queries.ErrGroupNotFound), err)
	})

	s.Run("store failure", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.NewRepoErr(infra.KindDBFailure, "boom", nil))

		_, err := s.queries.GetForMember(context.Background(), id, "A")
		s.True(errs.Is(err, queries.ErrGroupQueryFailed), err)
		s.False(errs.Is(err, queries.ErrGroupNotFound))
	})
}

func (s *GroupQueriesTestSuite) TestListForMemberPaging() {
	b := builder.NewTripBuilder()
	views := make([]*queries.GroupView, 3)
	for i := range views {
		views[i] = b.With(func(b *builder.TripBuilder) {
			b.CreatedAt = time.Date(2026, 5, 3-i, 10, 0, 0, 0, time.UTC)
		}).BuildGroupView("A", "B", "C", "D")
	}

	s.store.EXPECT().FindByMemberFirstPage(gomock.Any(), "A", int32(3)).Return(views, nil)

	page, next, err := s.queries.ListForMember(context.Background(), "A", nil, 2)
	s.Require().NoError(err)
	s.Len(page, 2)
	s.Require().NotNil(next)

	at, id, err := queries.DecodeAfterCursor(next.After)
	s.Require().NoError(err)
	s.True(views[1].CreatedAt.Equal(at))
	s.Equal(views[1].ID, id)

	s.store.EXPECT().FindByMemberKeyset(gomock.Any(), "A", at, id, int32(3)).Return(views[2:], nil)

	page, next, err = s.queries.ListForMember(context.Background(), "A", next, 2)
	s.Require().NoError(err)
	s.Len(page, 1)
	s.Nil(next)
}

func (s *GroupQueriesTestSuite) TestListForMemberLimits() {
	s.store.EXPECT().FindByMemberFirstPage(gomock.Any(), "A", int32(queries.DefaultListLimit+1)).Return(nil, nil)
	_, _, err := s.queries.ListForMember(context.Background(), "A", &queries.Cursor{}, 0)
	s.NoError(err)

	s.store.EXPECT().FindByMemberFirstPage(gomock.Any(), "A", int32(queries.MaxListLimit+1)).Return(nil, nil)
	_, _, err = s.queries.ListForMember(context.Background(), "A", nil, 10_000)
	s.NoError(err)
}

func (s *GroupQueriesTestSuite) TestListForMemberBadCursor() {
	_, _, err := s.queries.ListForMember(context.Background(), "A", &queries.Cursor{After: "not-a-cursor"}, 5)
	s.True(errs.Is(err, queries.ErrInvalidCursor), err)
}

func TestGroupQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(GroupQueriesTestSuite))
}

func TestPendingQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPendingReadStore(ctrl)
	q := queries.NewPendingQueries(store)

	view := builder.NewTripBuilder().ForUser("A").BuildPendingView()
	store.EXPECT().FindByUser(gomock.Any(), "A").Return([]*queries.PendingView{view}, nil)
	store.EXPECT().FindByUser(gomock.Any(), "B").Return(nil, infra.NewRepoErr(infra.KindDBFailure, "boom", nil))

	got, err := q.ListForUser(context.Background(), "A")
	if err != nil || len(got) != 1 || got[0] != view {
		t.Fatalf("ListForUser(A) = %v, %v", got, err)
	}
	if _, err := q.ListForUser(context.Background(), "B"); !errs.Is(err, queries.ErrPendingQueryFailed) {
		t.Fatalf("expected ErrPendingQueryFailed, got %v", err)
	}
}
