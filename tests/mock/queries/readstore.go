package queriesmock

import (
	"context"
	"reflect"
	"time"

	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockGroupReadStore is a mock of the queries.GroupReadStore interface.
type MockGroupReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockGroupReadStoreMockRecorder
	isgomock struct{}
}

// MockGroupReadStoreMockRecorder is the mock recorder for MockGroupReadStore.
type MockGroupReadStoreMockRecorder struct {
	mock *MockGroupReadStore
}

// NewMockGroupReadStore creates a new mock instance.
func NewMockGroupReadStore(ctrl *gomock.Controller) *MockGroupReadStore {
	mock := &MockGroupReadStore{ctrl: ctrl}
	mock.recorder = &MockGroupReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGroupReadStore) EXPECT() *MockGroupReadStoreMockRecorder {
	return m.recorder
}

// FindByID mocks base method.
func (m *MockGroupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroupView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.GroupView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockGroupReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockGroupReadStore)(nil).FindByID), ctx, id)
}

// FindByMemberFirstPage mocks base method.
func (m *MockGroupReadStore) FindByMemberFirstPage(ctx context.Context, userID string, limit int32) ([]*queries.GroupView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByMemberFirstPage", ctx, userID, limit)
	ret0, _ := ret[0].([]*queries.GroupView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByMemberFirstPage indicates an expected call of FindByMemberFirstPage.
func (mr *MockGroupReadStoreMockRecorder) FindByMemberFirstPage(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByMemberFirstPage", reflect.TypeOf((*MockGroupReadStore)(nil).FindByMemberFirstPage), ctx, userID, limit)
}

// FindByMemberKeyset mocks base method.
func (m *MockGroupReadStore) FindByMemberKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GroupView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByMemberKeyset", ctx, userID, lastCreatedAt, lastID, limit)
	ret0, _ := ret[0].([]*queries.GroupView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByMemberKeyset indicates an expected call of FindByMemberKeyset.
func (mr *MockGroupReadStoreMockRecorder) FindByMemberKeyset(ctx, userID, lastCreatedAt, lastID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByMemberKeyset", reflect.TypeOf((*MockGroupReadStore)(nil).FindByMemberKeyset), ctx, userID, lastCreatedAt, lastID, limit)
}

// MockPendingReadStore is a mock of the queries.PendingReadStore interface.
type MockPendingReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockPendingReadStoreMockRecorder
	isgomock struct{}
}

// MockPendingReadStoreMockRecorder is the mock recorder for MockPendingReadStore.
type MockPendingReadStoreMockRecorder struct {
	mock *MockPendingReadStore
}

// NewMockPendingReadStore creates a new mock instance.
func NewMockPendingReadStore(ctrl *gomock.Controller) *MockPendingReadStore {
	mock := &MockPendingReadStore{ctrl: ctrl}
	mock.recorder = &MockPendingReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPendingReadStore) EXPECT() *MockPendingReadStoreMockRecorder {
	return m.recorder
}

// FindByUser mocks base method.
func (m *MockPendingReadStore) FindByUser(ctx context.Context, userID string) ([]*queries.PendingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByUser", ctx, userID)
	ret0, _ := ret[0].([]*queries.PendingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByUser indicates an expected call of FindByUser.
func (mr *MockPendingReadStoreMockRecorder) FindByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByUser", reflect.TypeOf((*MockPendingReadStore)(nil).FindByUser), ctx, userID)
}
