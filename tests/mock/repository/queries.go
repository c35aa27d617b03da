// Package repositorymock holds gomock doubles for internal/infra/repository.
package repositorymock

import (
	"context"
	"reflect"

	"tripmatch/internal/infra/query"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"
)

// MockPendingWriteQueries is a mock of the repository.PendingWriteQueries interface.
type MockPendingWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPendingWriteQueriesMockRecorder
	isgomock struct{}
}

// MockPendingWriteQueriesMockRecorder is the mock recorder for MockPendingWriteQueries.
type MockPendingWriteQueriesMockRecorder struct {
	mock *MockPendingWriteQueries
}

// NewMockPendingWriteQueries creates a new mock instance.
func NewMockPendingWriteQueries(ctrl *gomock.Controller) *MockPendingWriteQueries {
	mock := &MockPendingWriteQueries{ctrl: ctrl}
	mock.recorder = &MockPendingWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPendingWriteQueries) EXPECT() *MockPendingWriteQueriesMockRecorder {
	return m.recorder
}

// FindCompatiblePending mocks base method.
func (m *MockPendingWriteQueries) FindCompatiblePending(ctx context.Context, db query.DBTX, arg query.FindCompatiblePendingParams) ([]query.PendingEntryRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindCompatiblePending", ctx, db, arg)
	ret0, _ := ret[0].([]query.PendingEntryRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindCompatiblePending indicates an expected call of FindCompatiblePending.
func (mr *MockPendingWriteQueriesMockRecorder) FindCompatiblePending(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindCompatiblePending", reflect.TypeOf((*MockPendingWriteQueries)(nil).FindCompatiblePending), ctx, db, arg)
}

// ExistsPendingForUser mocks base method.
func (m *MockPendingWriteQueries) ExistsPendingForUser(ctx context.Context, db query.DBTX, userID string, fingerprint string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExistsPendingForUser", ctx, db, userID, fingerprint)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExistsPendingForUser indicates an expected call of ExistsPendingForUser.
func (mr *MockPendingWriteQueriesMockRecorder) ExistsPendingForUser(ctx, db, userID, fingerprint any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExistsPendingForUser", reflect.TypeOf((*MockPendingWriteQueries)(nil).ExistsPendingForUser), ctx, db, userID, fingerprint)
}

// InsertPending mocks base method.
func (m *MockPendingWriteQueries) InsertPending(ctx context.Context, db query.DBTX, arg query.InsertPendingParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertPending", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertPending indicates an expected call of InsertPending.
func (mr *MockPendingWriteQueriesMockRecorder) InsertPending(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertPending", reflect.TypeOf((*MockPendingWriteQueries)(nil).InsertPending), ctx, db, arg)
}

// DeletePendingByIDs mocks base method.
func (m *MockPendingWriteQueries) DeletePendingByIDs(ctx context.Context, db query.DBTX, ids []pgtype.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePendingByIDs", ctx, db, ids)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeletePendingByIDs indicates an expected call of DeletePendingByIDs.
func (mr *MockPendingWriteQueriesMockRecorder) DeletePendingByIDs(ctx, db, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePendingByIDs", reflect.TypeOf((*MockPendingWriteQueries)(nil).DeletePendingByIDs), ctx, db, ids)
}

// MockGroupWriteQueries is a mock of the repository.GroupWriteQueries interface.
type MockGroupWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockGroupWriteQueriesMockRecorder
	isgomock struct{}
}

// MockGroupWriteQueriesMockRecorder is the mock recorder for MockGroupWriteQueries.
type MockGroupWriteQueriesMockRecorder struct {
	mock *MockGroupWriteQueries
}

// NewMockGroupWriteQueries creates a new mock instance.
func NewMockGroupWriteQueries(ctrl *gomock.Controller) *MockGroupWriteQueries {
	mock := &MockGroupWriteQueries{ctrl: ctrl}
	mock.recorder = &MockGroupWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGroupWriteQueries) EXPECT() *MockGroupWriteQueriesMockRecorder {
	return m.recorder
}

// InsertGroup mocks base method.
func (m *MockGroupWriteQueries) InsertGroup(ctx context.Context, db query.DBTX, arg query.InsertGroupParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertGroup", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertGroup indicates an expected call of InsertGroup.
func (mr *MockGroupWriteQueriesMockRecorder) InsertGroup(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertGroup", reflect.TypeOf((*MockGroupWriteQueries)(nil).InsertGroup), ctx, db, arg)
}

// InsertGroupMembers mocks base method.
func (m *MockGroupWriteQueries) InsertGroupMembers(ctx context.Context, db query.DBTX, groupID pgtype.UUID, members []string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertGroupMembers", ctx, db, groupID, members)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertGroupMembers indicates an expected call of InsertGroupMembers.
func (mr *MockGroupWriteQueriesMockRecorder) InsertGroupMembers(ctx, db, groupID, members any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertGroupMembers", reflect.TypeOf((*MockGroupWriteQueries)(nil).InsertGroupMembers), ctx, db, groupID, members)
}
