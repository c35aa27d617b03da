// Package sharedmock holds gomock doubles for internal/usecase/shared.
package sharedmock

import (
	"context"
	"reflect"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockUnitOfWork is a mock of the shared.UnitOfWork interface.
type MockUnitOfWork struct {
	ctrl     *gomock.Controller
	recorder *MockUnitOfWorkMockRecorder
	isgomock struct{}
}

// MockUnitOfWorkMockRecorder is the mock recorder for MockUnitOfWork.
type MockUnitOfWorkMockRecorder struct {
	mock *MockUnitOfWork
}

// NewMockUnitOfWork creates a new mock instance.
func NewMockUnitOfWork(ctrl *gomock.Controller) *MockUnitOfWork {
	mock := &MockUnitOfWork{ctrl: ctrl}
	mock.recorder = &MockUnitOfWorkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkMockRecorder {
	return m.recorder
}

// Within mocks base method.
func (m *MockUnitOfWork) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Within", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Within indicates an expected call of Within.
func (mr *MockUnitOfWorkMockRecorder) Within(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Within", reflect.TypeOf((*MockUnitOfWork)(nil).Within), ctx, fn)
}

// Ping mocks base method.
func (m *MockUnitOfWork) Ping(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ping", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Ping indicates an expected call of Ping.
func (mr *MockUnitOfWorkMockRecorder) Ping(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ping", reflect.TypeOf((*MockUnitOfWork)(nil).Ping), ctx)
}

// MockTx is a mock of the shared.Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// Pending mocks base method.
func (m *MockTx) Pending() shared.PendingPool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pending")
	ret0, _ := ret[0].(shared.PendingPool)
	return ret0
}

// Pending indicates an expected call of Pending.
func (mr *MockTxMockRecorder) Pending() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pending", reflect.TypeOf((*MockTx)(nil).Pending))
}

// Groups mocks base method.
func (m *MockTx) Groups() shared.GroupStore {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Groups")
	ret0, _ := ret[0].(shared.GroupStore)
	return ret0
}

// Groups indicates an expected call of Groups.
func (mr *MockTxMockRecorder) Groups() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Groups", reflect.TypeOf((*MockTx)(nil).Groups))
}

// MockPendingPool is a mock of the shared.PendingPool interface.
type MockPendingPool struct {
	ctrl     *gomock.Controller
	recorder *MockPendingPoolMockRecorder
	isgomock struct{}
}

// MockPendingPoolMockRecorder is the mock recorder for MockPendingPool.
type MockPendingPoolMockRecorder struct {
	mock *MockPendingPool
}

// NewMockPendingPool creates a new mock instance.
func NewMockPendingPool(ctrl *gomock.Controller) *MockPendingPool {
	mock := &MockPendingPool{ctrl: ctrl}
	mock.recorder = &MockPendingPoolMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPendingPool) EXPECT() *MockPendingPoolMockRecorder {
	return m.recorder
}

// FindCompatible mocks base method.
func (m *MockPendingPool) FindCompatible(ctx context.Context, fp trip.Fingerprint, excludeUserID string, limit int) ([]*trip.PendingEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindCompatible", ctx, fp, excludeUserID, limit)
	ret0, _ := ret[0].([]*trip.PendingEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindCompatible indicates an expected call of FindCompatible.
func (mr *MockPendingPoolMockRecorder) FindCompatible(ctx, fp, excludeUserID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindCompatible", reflect.TypeOf((*MockPendingPool)(nil).FindCompatible), ctx, fp, excludeUserID, limit)
}

// HasPending mocks base method.
func (m *MockPendingPool) HasPending(ctx context.Context, userID string, fp trip.Fingerprint) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasPending", ctx, userID, fp)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasPending indicates an expected call of HasPending.
func (mr *MockPendingPoolMockRecorder) HasPending(ctx, userID, fp any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasPending", reflect.TypeOf((*MockPendingPool)(nil).HasPending), ctx, userID, fp)
}

// Insert mocks base method.
func (m *MockPendingPool) Insert(ctx context.Context, entry *trip.PendingEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockPendingPoolMockRecorder) Insert(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockPendingPool)(nil).Insert), ctx, entry)
}

// DeleteAll mocks base method.
func (m *MockPendingPool) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAll", ctx, ids)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAll indicates an expected call of DeleteAll.
func (mr *MockPendingPoolMockRecorder) DeleteAll(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAll", reflect.TypeOf((*MockPendingPool)(nil).DeleteAll), ctx, ids)
}

// MockGroupStore is a mock of the shared.GroupStore interface.
type MockGroupStore struct {
	ctrl     *gomock.Controller
	recorder *MockGroupStoreMockRecorder
	isgomock struct{}
}

// MockGroupStoreMockRecorder is the mock recorder for MockGroupStore.
type MockGroupStoreMockRecorder struct {
	mock *MockGroupStore
}

// NewMockGroupStore creates a new mock instance.
func NewMockGroupStore(ctrl *gomock.Controller) *MockGroupStore {
	mock := &MockGroupStore{ctrl: ctrl}
	mock.recorder = &MockGroupStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGroupStore) EXPECT() *MockGroupStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockGroupStore) Create(ctx context.Context, group *trip.Group) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, group)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockGroupStoreMockRecorder) Create(ctx, group any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockGroupStore)(nil).Create), ctx, group)
}
