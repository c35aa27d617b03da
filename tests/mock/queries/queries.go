// Package queriesmock holds gomock doubles for internal/usecase/queries.
package queriesmock

import (
	"context"
	"reflect"

	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockGroupQueries is a mock of the queries.GroupQueries interface.
type MockGroupQueries struct {
	ctrl     *gomock.Controller
	recorder *MockGroupQueriesMockRecorder
	isgomock struct{}
}

// MockGroupQueriesMockRecorder is the mock recorder for MockGroupQueries.
type MockGroupQueriesMockRecorder struct {
	mock *MockGroupQueries
}

// NewMockGroupQueries creates a new mock instance.
func NewMockGroupQueries(ctrl *gomock.Controller) *MockGroupQueries {
	mock := &MockGroupQueries{ctrl: ctrl}
	mock.recorder = &MockGroupQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGroupQueries) EXPECT() *MockGroupQueriesMockRecorder {
	return m.recorder
}

// GetForMember mocks base method.
func (m *MockGroupQueries) GetForMember(ctx context.Context, groupID uuid.UUID, userID string) (*queries.GroupView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForMember", ctx, groupID, userID)
	ret0, _ := ret[0].(*queries.GroupView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForMember indicates an expected call of GetForMember.
func (mr *MockGroupQueriesMockRecorder) GetForMember(ctx, groupID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForMember", reflect.TypeOf((*MockGroupQueries)(nil).GetForMember), ctx, groupID, userID)
}

// ListForMember mocks base method.
func (m *MockGroupQueries) ListForMember(ctx context.Context, userID string, cursor *queries.Cursor, limit int) ([]*queries.GroupView, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForMember", ctx, userID, cursor, limit)
	ret0, _ := ret[0].([]*queries.GroupView)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListForMember indicates an expected call of ListForMember.
func (mr *MockGroupQueriesMockRecorder) ListForMember(ctx, userID, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForMember", reflect.TypeOf((*MockGroupQueries)(nil).ListForMember), ctx, userID, cursor, limit)
}

// MockPendingQueries is a mock of the queries.PendingQueries interface.
type MockPendingQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPendingQueriesMockRecorder
	isgomock struct{}
}

// MockPendingQueriesMockRecorder is the mock recorder for MockPendingQueries.
type MockPendingQueriesMockRecorder struct {
	mock *MockPendingQueries
}

// NewMockPendingQueries creates a new mock instance.
func NewMockPendingQueries(ctrl *gomock.Controller) *MockPendingQueries {
	mock := &MockPendingQueries{ctrl: ctrl}
	mock.recorder = &MockPendingQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPendingQueries) EXPECT() *MockPendingQueriesMockRecorder {
	return m.recorder
}

// ListForUser mocks base method.
func (m *MockPendingQueries) ListForUser(ctx context.Context, userID string) ([]*queries.PendingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForUser", ctx, userID)
	ret0, _ := ret[0].([]*queries.PendingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListForUser indicates an expected call of ListForUser.
func (mr *MockPendingQueriesMockRecorder) ListForUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForUser", reflect.TypeOf((*MockPendingQueries)(nil).ListForUser), ctx, userID)
}
