// Package commandsmock holds gomock doubles for internal/usecase/commands.
package commandsmock

import (
	"context"
	"reflect"
	"time"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/usecase/commands"

	"go.uber.org/mock/gomock"
)

// MockMatchCommands is a mock of the commands.MatchCommands interface.
type MockMatchCommands struct {
	ctrl     *gomock.Controller
	recorder *MockMatchCommandsMockRecorder
	isgomock struct{}
}

// MockMatchCommandsMockRecorder is the mock recorder for MockMatchCommands.
type MockMatchCommandsMockRecorder struct {
	mock *MockMatchCommands
}

// NewMockMatchCommands creates a new mock instance.
func NewMockMatchCommands(ctrl *gomock.Controller) *MockMatchCommands {
	mock := &MockMatchCommands{ctrl: ctrl}
	mock.recorder = &MockMatchCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMatchCommands) EXPECT() *MockMatchCommandsMockRecorder {
	return m.recorder
}

// Match mocks base method.
func (m *MockMatchCommands) Match(ctx context.Context, principal identity.Principal, sub trip.ValidSubmission) (*commands.MatchResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Match", ctx, principal, sub)
	ret0, _ := ret[0].(*commands.MatchResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Match indicates an expected call of Match.
func (mr *MockMatchCommandsMockRecorder) Match(ctx, principal, sub any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Match", reflect.TypeOf((*MockMatchCommands)(nil).Match), ctx, principal, sub)
}

// MockGroupPublisher is a mock of the commands.GroupPublisher interface.
type MockGroupPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockGroupPublisherMockRecorder
	isgomock struct{}
}

// MockGroupPublisherMockRecorder is the mock recorder for MockGroupPublisher.
type MockGroupPublisherMockRecorder struct {
	mock *MockGroupPublisher
}

// NewMockGroupPublisher creates a new mock instance.
func NewMockGroupPublisher(ctrl *gomock.Controller) *MockGroupPublisher {
	mock := &MockGroupPublisher{ctrl: ctrl}
	mock.recorder = &MockGroupPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGroupPublisher) EXPECT() *MockGroupPublisherMockRecorder {
	return m.recorder
}

// PublishGroupFormed mocks base method.
func (m *MockGroupPublisher) PublishGroupFormed(ctx context.Context, evt commands.GroupFormedEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishGroupFormed", ctx, evt)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishGroupFormed indicates an expected call of PublishGroupFormed.
func (mr *MockGroupPublisherMockRecorder) PublishGroupFormed(ctx, evt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishGroupFormed", reflect.TypeOf((*MockGroupPublisher)(nil).PublishGroupFormed), ctx, evt)
}

// MockMatchRecorder is a mock of the commands.MatchRecorder interface.
type MockMatchRecorder struct {
	ctrl     *gomock.Controller
	recorder *MockMatchRecorderMockRecorder
	isgomock struct{}
}

// MockMatchRecorderMockRecorder is the mock recorder for MockMatchRecorder.
type MockMatchRecorderMockRecorder struct {
	mock *MockMatchRecorder
}

// NewMockMatchRecorder creates a new mock instance.
func NewMockMatchRecorder(ctrl *gomock.Controller) *MockMatchRecorder {
	mock := &MockMatchRecorder{ctrl: ctrl}
	mock.recorder = &MockMatchRecorderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMatchRecorder) EXPECT() *MockMatchRecorderMockRecorder {
	return m.recorder
}

// RecordMatch mocks base method.
func (m *MockMatchRecorder) RecordMatch(outcome string, elapsed time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordMatch", outcome, elapsed)
}

// RecordMatch indicates an expected call of RecordMatch.
func (mr *MockMatchRecorderMockRecorder) RecordMatch(outcome, elapsed any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordMatch", reflect.TypeOf((*MockMatchRecorder)(nil).RecordMatch), outcome, elapsed)
}
