//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/repository"
	"tripmatch/internal/infra/repository/converter"
	"tripmatch/internal/pkg/pgconv"
	"tripmatch/tests/common/builder"
	repositorymock "tripmatch/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPendingRepository_FindCompatible(t *testing.T) {
	ctx := context.Background()
	entry := builder.NewTripBuilder().ForUser("A").BuildPendingEntry()
	fp := entry.Fingerprint()

	testCases := []struct {
		name       string
		limit      int
		setupMock  func(*repositorymock.MockPendingWriteQueries, query.DBTX)
		wantUsers  []string
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:  "success: rows converted to domain entries",
			limit: 3,
			setupMock: func(m *repositorymock.MockPendingWriteQueries, db query.DBTX) {
				row := pendingRow(entry)
				m.EXPECT().FindCompatiblePending(ctx, db, query.FindCompatiblePendingParams{
					Fingerprint: fp.String(), ExcludeUserID: "D", Limit: 3,
				}).Return([]query.PendingEntryRow{row}, nil)
			},
			wantUsers: []string{"A"},
		},
		{
			name:      "success: zero limit skips the query",
			limit:     0,
			setupMock: func(*repositorymock.MockPendingWriteQueries, query.DBTX) {},
		},
		{
			name:  "error: serialization failure is classified",
			limit: 3,
			setupMock: func(m *repositorymock.MockPendingWriteQueries, db query.DBTX) {
				m.EXPECT().FindCompatiblePending(ctx, db, gomock.Any()).
					Return(nil, &pgconn.PgError{Code: "40001", Message: "could not serialize access"})
			},
			expectKind: infra.KindSerialization,
		},
		{
			name:  "error: corrupt row",
			limit: 3,
			setupMock: func(m *repositorymock.MockPendingWriteQueries, db query.DBTX) {
				row := pendingRow(entry)
				row.Destination = ""
				m.EXPECT().FindCompatiblePending(ctx, db, gomock.Any()).Return([]query.PendingEntryRow{row}, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPendingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPendingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			got, err := repo.FindCompatible(ctx, fp, "D", tc.limit)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			users := make([]string, 0, len(got))
			for _, e := range got {
				users = append(users, e.UserID())
			}
			assert.Equal(t, len(tc.wantUsers), len(users))
			if len(tc.wantUsers) > 0 {
				assert.Equal(t, tc.wantUsers, users)
				assert.Equal(t, entry.ID(), got[0].ID())
				assert.True(t, entry.CreatedAt().Equal(got[0].CreatedAt()))
			}
		})
	}
}

func TestPendingRepository_Insert(t *testing.T) {
	ctx := context.Background()
	entry := builder.NewTripBuilder().ForUser("A").BuildPendingEntry()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: entry inserted"},
		{
			name:       "error: unique violation is a duplicate",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database failure",
			returnErr:  errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPendingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPendingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().InsertPending(ctx, mockDB, converter.PendingToInsertParams(entry)).Return(tc.returnErr)

			err := repo.Insert(ctx, entry)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPendingRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	testCases := []struct {
		name       string
		ids        []uuid.UUID
		setupMock  func(*repositorymock.MockPendingWriteQueries, query.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: duplicates collapsed before delete",
			ids:  []uuid.UUID{a, b, a},
			setupMock: func(m *repositorymock.MockPendingWriteQueries, db query.DBTX) {
				m.EXPECT().DeletePendingByIDs(ctx, db, []pgtype.UUID{pgconv.UUIDToPgtype(a), pgconv.UUIDToPgtype(b)}).Return(int64(2), nil)
			},
		},
		{
			name:      "success: nothing to delete",
			ids:       nil,
			setupMock: func(*repositorymock.MockPendingWriteQueries, query.DBTX) {},
		},
		{
			name: "error: an entry vanished",
			ids:  []uuid.UUID{a, b},
			setupMock: func(m *repositorymock.MockPendingWriteQueries, db query.DBTX) {
				m.EXPECT().DeletePendingByIDs(ctx, db, gomock.Any()).Return(int64(1), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: no rows reported as not found",
			ids:  []uuid.UUID{a},
			setupMock: func(m *repositorymock.MockPendingWriteQueries, db query.DBTX) {
				m.EXPECT().DeletePendingByIDs(ctx, db, gomock.Any()).Return(int64(0), pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPendingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPendingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			err := repo.DeleteAll(ctx, tc.ids)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGroupRepository_Create(t *testing.T) {
	ctx := context.Background()
	group := builder.NewTripBuilder().BuildGroup("D", "A", "B", "C")

	testCases := []struct {
		name      string
		group     *trip.Group
		setupMock func(*repositorymock.MockGroupWriteQueries, query.DBTX)
		check     func(*testing.T, error)
	}{
		{
			name:  "success: group and members inserted",
			group: group,
			setupMock: func(m *repositorymock.MockGroupWriteQueries, db query.DBTX) {
				gomock.InOrder(
					m.EXPECT().InsertGroup(ctx, db, converter.GroupToInsertParams(group)).Return(nil),
					m.EXPECT().InsertGroupMembers(ctx, db, pgconv.UUIDToPgtype(group.ID()), []string{"D", "A", "B", "C"}).Return(int64(4), nil),
				)
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:      "error: wrong size never reaches the database",
			group:     builder.NewTripBuilder().BuildGroup("A", "B"),
			setupMock: func(*repositorymock.MockGroupWriteQueries, query.DBTX) {},
			check:     func(t *testing.T, err error) { assert.ErrorIs(t, err, trip.ErrInvalidGroup) },
		},
		{
			name:  "error: partial member insert",
			group: group,
			setupMock: func(m *repositorymock.MockGroupWriteQueries, db query.DBTX) {
				m.EXPECT().InsertGroup(ctx, db, gomock.Any()).Return(nil)
				m.EXPECT().InsertGroupMembers(ctx, db, gomock.Any(), gomock.Any()).Return(int64(3), nil)
			},
			check: func(t *testing.T, err error) { assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err) },
		},
		{
			name:  "error: member already grouped",
			group: group,
			setupMock: func(m *repositorymock.MockGroupWriteQueries, db query.DBTX) {
				m.EXPECT().InsertGroup(ctx, db, gomock.Any()).Return(nil)
				m.EXPECT().InsertGroupMembers(ctx, db, gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505"})
			},
			check: func(t *testing.T, err error) { assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "got %v", err) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGroupWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewGroupRepository(mockQueries, mockDB, trip.DefaultGroupSize)
			tc.setupMock(mockQueries, mockDB)

			tc.check(t, repo.Create(ctx, tc.group))
		})
	}
}

func pendingRow(e *trip.PendingEntry) query.PendingEntryRow {
	p := converter.PendingToInsertParams(e)
	return query.PendingEntryRow{
		ID:            p.ID,
		UserID:        p.UserID,
		Fingerprint:   p.Fingerprint,
		WeekStartDate: p.WeekStartDate,
		WeekEndDate:   p.WeekEndDate,
		Destination:   p.Destination,
		Interest:      p.Interest,
		CreatedAt:     p.CreatedAt,
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
