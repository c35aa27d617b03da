//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra/memstore"
	"tripmatch/internal/infra/sqlitestore"
	"tripmatch/internal/pkg/clock"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/commands"
	"tripmatch/internal/usecase/queries"
	"tripmatch/internal/usecase/shared"
	"tripmatch/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

var t0 = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

// storage is what both backends offer the matcher tests.
type storage interface {
	shared.UnitOfWork
	queries.GroupReadStore
	queries.PendingReadStore
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []commands.GroupFormedEvent
}

func (p *recordingPublisher) PublishGroupFormed(_ context.Context, evt commands.GroupFormedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Events() []commands.GroupFormedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]commands.GroupFormedEvent(nil), p.events...)
}

type MatchTestSuite struct {
	suite.Suite
	newStore  func(t *testing.T, policy shared.RetryPolicy) storage
	store     storage
	publisher *recordingPublisher
	uc        commands.MatchCommands
}

func (s *MatchTestSuite) SetupTest() {
	policy := shared.RetryPolicy{MaxRetries: 50, BaseDelay: time.Microsecond}
	s.store = s.newStore(s.T(), policy)
	s.publisher = &recordingPublisher{}
	s.uc = commands.NewMatchUseCase(
		s.store,
		clock.NewSteppingClock(t0, time.Millisecond),
		commands.MatchSettings{GroupSize: trip.DefaultGroupSize, Timeout: 30 * time.Second},
		s.publisher,
		nil,
	)
}

func (s *MatchTestSuite) submit(b *builder.TripBuilder) (*commands.MatchResult, error) {
	return s.uc.Match(context.Background(), b.BuildPrincipal(), b.BuildValid())
}

// submitUntilSettled retries transient conflicts the way a client would.
func (s *MatchTestSuite) submitUntilSettled(ctx context.Context, b *builder.TripBuilder) (*commands.MatchResult, error) {
	for {
		res, err := s.uc.Match(ctx, b.BuildPrincipal(), b.BuildValid())
		if errs.Is(err, commands.ErrTransientConflict) {
			continue
		}
		return res, err
	}
}

func (s *MatchTestSuite) pendingFor(userID string) []*queries.PendingView {
	views, err := s.store.FindByUser(context.Background(), userID)
	s.Require().NoError(err)
	return views
}

func (s *MatchTestSuite) TestLisbonFourthSubmissionFormsGroup() {
	for _, uid := range []string{"A", "B", "C"} {
		res, err := s.submit(builder.NewTripBuilder().ForUser(uid))
		s.Require().NoError(err)
		s.Equal(commands.OutcomeEnqueued, res.Outcome)
		s.NotNil(res.Pending)
		s.Nil(res.Group)
	}

	res, err := s.submit(builder.NewTripBuilder().ForUser("D"))
	s.Require().NoError(err)
	s.Require().Equal(commands.OutcomeFormed, res.Outcome)
	s.Equal([]string{"D", "A", "B", "C"}, res.Group.Members())
	s.Equal("Lisbon", res.Group.Criteria().Destination())

	for _, uid := range []string{"A", "B", "C", "D"} {
		s.Empty(s.pendingFor(uid), "pending left for %s", uid)
	}

	stored, err := s.store.FindByID(context.Background(), res.Group.ID())
	s.Require().NoError(err)
	s.Equal([]string{"D", "A", "B", "C"}, stored.Members)

	events := s.publisher.Events()
	s.Require().Len(events, 1)
	s.Equal(res.Group.ID(), events[0].GroupID)
	s.Equal("2026-06-01", events[0].WeekStartDate)
}

func (s *MatchTestSuite) TestFifthSubmissionStartsNewPool() {
	for _, uid := range []string{"A", "B", "C", "D"} {
		_, err := s.submit(builder.NewTripBuilder().ForUser(uid))
		s.Require().NoError(err)
	}

	res, err := s.submit(builder.NewTripBuilder().ForUser("E"))
	s.Require().NoError(err)
	s.Equal(commands.OutcomeEnqueued, res.Outcome)
	s.Len(s.pendingFor("E"), 1)
}

func (s *MatchTestSuite) TestDuplicateSubmissionRejected() {
	_, err := s.submit(builder.NewTripBuilder().ForUser("A"))
	s.Require().NoError(err)

	// same criteria after normalization
	_, err = s.submit(builder.NewTripBuilder().ForUser("A").With(func(b *builder.TripBuilder) {
		b.Destination = "  LISBON "
	}))
	s.True(errs.Is(err, commands.ErrDuplicateSubmission), err)
	s.Len(s.pendingFor("A"), 1)
}

func (s *MatchTestSuite) TestSameUserCanWaitInDifferentPools() {
	_, err := s.submit(builder.NewTripBuilder().ForUser("A"))
	s.Require().NoError(err)

	res, err := s.submit(builder.NewTripBuilder().ForUser("A").With(func(b *builder.TripBuilder) {
		b.Destination = "Porto"
	}))
	s.Require().NoError(err)
	s.Equal(commands.OutcomeEnqueued, res.Outcome)
	s.Len(s.pendingFor("A"), 2)
}

func (s *MatchTestSuite) TestDifferentDatesNeverMatch() {
	for i, uid := range []string{"A", "B", "C", "D"} {
		b := builder.NewTripBuilder().ForUser(uid).With(func(b *builder.TripBuilder) {
			b.WeekEndDate = fmt.Sprintf("2026-06-%02d", 7+i)
		})
		res, err := s.submit(b)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeEnqueued, res.Outcome, uid)
	}
}

func (s *MatchTestSuite) TestPoolNeverReachesGroupSize() {
	for i := 0; i < 3; i++ {
		_, err := s.submit(builder.NewTripBuilder().ForUser(fmt.Sprintf("u%d", i)))
		s.Require().NoError(err)
	}
	fp := builder.NewTripBuilder().BuildValid().Criteria().Fingerprint()

	var peers []*trip.PendingEntry
	err := s.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		peers, err = tx.Pending().FindCompatible(ctx, fp, "", 10)
		return err
	})
	s.Require().NoError(err)
	s.Len(peers, 3)
	s.Equal([]string{"u0", "u1", "u2"}, []string{peers[0].UserID(), peers[1].UserID(), peers[2].UserID()})
}

func (s *MatchTestSuite) TestIdentityChecks() {
	b := builder.NewTripBuilder().ForUser("A")

	_, err := s.uc.Match(context.Background(), builder.NewTripBuilder().ForUser("B").BuildPrincipal(), b.BuildValid())
	s.True(errs.Is(err, commands.ErrIdentityMismatch), err)

	_, err = s.uc.Match(context.Background(), b.BuildPrincipal(), trip.ValidSubmission{})
	s.True(errs.Is(err, trip.ErrValidation), err)

	s.Empty(s.pendingFor("A"))
}

// a pool can hold more than groupSize-1 entries when it was filled outside the
// matcher; only the oldest peers are taken and the rest keep waiting
func (s *MatchTestSuite) TestOverfullPoolTakesOldestPeers() {
	seeded := t0.Add(-time.Hour)
	err := s.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for i := range 5 {
			entry := builder.NewTripBuilder().ForUser(fmt.Sprintf("u%d", i)).With(func(b *builder.TripBuilder) {
				b.CreatedAt = seeded.Add(time.Duration(i) * time.Second)
			}).BuildPendingEntry()
			if err := tx.Pending().Insert(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	res, err := s.submit(builder.NewTripBuilder().ForUser("X"))
	s.Require().NoError(err)
	s.Require().Equal(commands.OutcomeFormed, res.Outcome)
	s.Equal([]string{"X", "u0", "u1", "u2"}, res.Group.Members())

	for _, uid := range []string{"u0", "u1", "u2", "X"} {
		s.Empty(s.pendingFor(uid), "pending left for %s", uid)
	}
	for _, uid := range []string{"u3", "u4"} {
		s.Len(s.pendingFor(uid), 1, "%s should still wait", uid)
	}
}

func (s *MatchTestSuite) TestPrincipalSubjectWhitespaceIgnored() {
	principal, err := identity.NewPrincipal("  A ")
	s.Require().NoError(err)

	res, err := s.uc.Match(context.Background(), principal, builder.NewTripBuilder().ForUser("A").BuildValid())
	s.Require().NoError(err)
	s.Equal(commands.OutcomeEnqueued, res.Outcome)
	s.Len(s.pendingFor("A"), 1)
}

func (s *MatchTestSuite) TestConcurrentSubmissionsFormDisjointGroups() {
	const groups = 6
	users := groups * int(trip.DefaultGroupSize)

	var (
		mu     sync.Mutex
		formed []*trip.Group
	)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < users; i++ {
		b := builder.NewTripBuilder().ForUser(fmt.Sprintf("user-%02d", i))
		g.Go(func() error {
			res, err := s.submitUntilSettled(ctx, b)
			if err != nil {
				return err
			}
			if res.Outcome == commands.OutcomeFormed {
				mu.Lock()
				formed = append(formed, res.Group)
				mu.Unlock()
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Len(formed, groups)
	seen := make(map[string]int)
	for _, grp := range formed {
		s.Len(grp.Members(), int(trip.DefaultGroupSize))
		for _, m := range grp.Members() {
			seen[m]++
		}
	}
	s.Len(seen, users)
	for uid, n := range seen {
		s.Equal(1, n, "user %s placed in %d groups", uid, n)
		s.Empty(s.pendingFor(uid))
	}
	s.Len(s.publisher.Events(), groups)
}

func TestMatchMemory(t *testing.T) {
	suite.Run(t, &MatchTestSuite{
		newStore: func(_ *testing.T, policy shared.RetryPolicy) storage {
			return memstore.New(trip.DefaultGroupSize, policy)
		},
	})
}

func TestMatchSQLite(t *testing.T) {
	suite.Run(t, &MatchTestSuite{
		newStore: func(t *testing.T, policy shared.RetryPolicy) storage {
			store, err := sqlitestore.Open(context.Background(), t.TempDir()+"/match.db", trip.DefaultGroupSize, policy)
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, store.Close()) })
			return store
		},
	})
}

func TestMatch_SmallestGroup(t *testing.T) {
	size, err := trip.NewGroupSize(2)
	require.NoError(t, err)
	store := memstore.New(size, shared.DefaultRetryPolicy())
	uc := commands.NewMatchUseCase(store, clock.NewRealClock(), commands.MatchSettings{GroupSize: size}, nil, nil)

	a := builder.NewTripBuilder().ForUser("A")
	res, err := uc.Match(context.Background(), a.BuildPrincipal(), a.BuildValid())
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeEnqueued, res.Outcome)

	b := builder.NewTripBuilder().ForUser("B")
	res, err = uc.Match(context.Background(), b.BuildPrincipal(), b.BuildValid())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Group.Members())
	assert.Equal(t, 1, store.GroupCount())
}
