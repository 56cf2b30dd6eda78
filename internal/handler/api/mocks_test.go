//go:build unit

package api_test

import (
	"context"
	"reflect"

	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// Mocks generated with mockgen -source and trimmed to the interfaces these
// suites exercise.

type MockAuthUsecase struct {
	ctrl     *gomock.Controller
	recorder *MockAuthUsecaseMockRecorder
}

type MockAuthUsecaseMockRecorder struct {
	mock *MockAuthUsecase
}

func NewMockAuthUsecase(ctrl *gomock.Controller) *MockAuthUsecase {
	mock := &MockAuthUsecase{ctrl: ctrl}
	mock.recorder = &MockAuthUsecaseMockRecorder{mock}
	return mock
}

func (m *MockAuthUsecase) EXPECT() *MockAuthUsecaseMockRecorder {
	return m.recorder
}

func (m *MockAuthUsecase) Register(ctx context.Context, input commands.RegisterInput) (*commands.AuthResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", ctx, input)
	ret0, _ := ret[0].(*commands.AuthResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuthUsecaseMockRecorder) Register(ctx, input any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthUsecase)(nil).Register), ctx, input)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input commands.LoginInput) (*commands.AuthResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, input)
	ret0, _ := ret[0].(*commands.AuthResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuthUsecaseMockRecorder) Login(ctx, input any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthUsecase)(nil).Login), ctx, input)
}

type MockUserQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUserQueriesMockRecorder
}

type MockUserQueriesMockRecorder struct {
	mock *MockUserQueries
}

func NewMockUserQueries(ctrl *gomock.Controller) *MockUserQueries {
	mock := &MockUserQueries{ctrl: ctrl}
	mock.recorder = &MockUserQueriesMockRecorder{mock}
	return mock
}

func (m *MockUserQueries) EXPECT() *MockUserQueriesMockRecorder {
	return m.recorder
}

func (m *MockUserQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrentUser", ctx, userID)
	ret0, _ := ret[0].(*queries.AuthorizedUserView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockUserQueriesMockRecorder) GetCurrentUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrentUser", reflect.TypeOf((*MockUserQueries)(nil).GetCurrentUser), ctx, userID)
}

type MockReservationUsecase struct {
	ctrl     *gomock.Controller
	recorder *MockReservationUsecaseMockRecorder
}

type MockReservationUsecaseMockRecorder struct {
	mock *MockReservationUsecase
}

func NewMockReservationUsecase(ctrl *gomock.Controller) *MockReservationUsecase {
	mock := &MockReservationUsecase{ctrl: ctrl}
	mock.recorder = &MockReservationUsecaseMockRecorder{mock}
	return mock
}

func (m *MockReservationUsecase) EXPECT() *MockReservationUsecaseMockRecorder {
	return m.recorder
}

func (m *MockReservationUsecase) Create(ctx context.Context, userID uuid.UUID, input commands.CreateReservationInput) (*queries.ReservationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, userID, input)
	ret0, _ := ret[0].(*queries.ReservationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReservationUsecaseMockRecorder) Create(ctx, userID, input any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReservationUsecase)(nil).Create), ctx, userID, input)
}

func (m *MockReservationUsecase) Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*commands.RefundResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, userID, reservationID)
	ret0, _ := ret[0].(*commands.RefundResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReservationUsecaseMockRecorder) Cancel(ctx, userID, reservationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockReservationUsecase)(nil).Cancel), ctx, userID, reservationID)
}

type MockReservationQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReservationQueriesMockRecorder
}

type MockReservationQueriesMockRecorder struct {
	mock *MockReservationQueries
}

func NewMockReservationQueries(ctrl *gomock.Controller) *MockReservationQueries {
	mock := &MockReservationQueries{ctrl: ctrl}
	mock.recorder = &MockReservationQueriesMockRecorder{mock}
	return mock
}

func (m *MockReservationQueries) EXPECT() *MockReservationQueriesMockRecorder {
	return m.recorder
}

func (m *MockReservationQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID)
	ret0, _ := ret[0].([]*queries.ReservationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReservationQueriesMockRecorder) ListByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockReservationQueries)(nil).ListByUser), ctx, userID)
}

type MockPaymentUsecase struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentUsecaseMockRecorder
}

type MockPaymentUsecaseMockRecorder struct {
	mock *MockPaymentUsecase
}

func NewMockPaymentUsecase(ctrl *gomock.Controller) *MockPaymentUsecase {
	mock := &MockPaymentUsecase{ctrl: ctrl}
	mock.recorder = &MockPaymentUsecaseMockRecorder{mock}
	return mock
}

func (m *MockPaymentUsecase) EXPECT() *MockPaymentUsecaseMockRecorder {
	return m.recorder
}

func (m *MockPaymentUsecase) CreateIntent(ctx context.Context, userID uuid.UUID, userEmail string, items []commands.LineInput) (*commands.PaymentIntentResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIntent", ctx, userID, userEmail, items)
	ret0, _ := ret[0].(*commands.PaymentIntentResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentUsecaseMockRecorder) CreateIntent(ctx, userID, userEmail, items any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIntent", reflect.TypeOf((*MockPaymentUsecase)(nil).CreateIntent), ctx, userID, userEmail, items)
}

func (m *MockPaymentUsecase) RefundByIntentID(ctx context.Context, userID uuid.UUID, paymentIntentID string) (*commands.RefundResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefundByIntentID", ctx, userID, paymentIntentID)
	ret0, _ := ret[0].(*commands.RefundResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentUsecaseMockRecorder) RefundByIntentID(ctx, userID, paymentIntentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefundByIntentID", reflect.TypeOf((*MockPaymentUsecase)(nil).RefundByIntentID), ctx, userID, paymentIntentID)
}
