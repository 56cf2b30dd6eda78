//go:build unit

package commands_test

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/user"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error) {
	args := m.Called(ctx, tx, r)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReservationRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) MarkRefunded(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	var view *queries.AuthorizedUserView
	if v := args.Get(0); v != nil {
		view = v.(*queries.AuthorizedUserView)
	}
	return view, args.String(1), args.Error(2)
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	var view *queries.AuthorizedUserView
	if v := args.Get(0); v != nil {
		view = v.(*queries.AuthorizedUserView)
	}
	return view, args.Error(1)
}

type MockMenuReadStore struct {
	mock.Mock
}

func (m *MockMenuReadStore) ListAvailable(ctx context.Context) ([]*queries.MenuView, error) {
	args := m.Called(ctx)
	var views []*queries.MenuView
	if v := args.Get(0); v != nil {
		views = v.([]*queries.MenuView)
	}
	return views, args.Error(1)
}

func (m *MockMenuReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.MenuView, error) {
	args := m.Called(ctx, ids)
	var views []*queries.MenuView
	if v := args.Get(0); v != nil {
		views = v.([]*queries.MenuView)
	}
	return views, args.Error(1)
}

type MockReservationReadStore struct {
	mock.Mock
}

func (m *MockReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	var view *queries.ReservationView
	if v := args.Get(0); v != nil {
		view = v.(*queries.ReservationView)
	}
	return view, args.Error(1)
}

func (m *MockReservationReadStore) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id, userID)
	var view *queries.ReservationView
	if v := args.Get(0); v != nil {
		view = v.(*queries.ReservationView)
	}
	return view, args.Error(1)
}

func (m *MockReservationReadStore) FindByIntentAndUser(ctx context.Context, paymentIntentID string, userID uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, paymentIntentID, userID)
	var view *queries.ReservationView
	if v := args.Get(0); v != nil {
		view = v.(*queries.ReservationView)
	}
	return view, args.Error(1)
}

func (m *MockReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	args := m.Called(ctx, userID)
	var views []*queries.ReservationView
	if v := args.Get(0); v != nil {
		views = v.([]*queries.ReservationView)
	}
	return views, args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, metadata)
	var intent *commands.PaymentIntent
	if v := args.Get(0); v != nil {
		intent = v.(*commands.PaymentIntent)
	}
	return intent, args.Error(1)
}

func (m *MockPaymentGateway) RetrieveIntent(ctx context.Context, id string) (*commands.PaymentIntent, error) {
	args := m.Called(ctx, id)
	var intent *commands.PaymentIntent
	if v := args.Get(0); v != nil {
		intent = v.(*commands.PaymentIntent)
	}
	return intent, args.Error(1)
}

func (m *MockPaymentGateway) CreateRefund(ctx context.Context, chargeID string, amount int64) (*commands.Refund, error) {
	args := m.Called(ctx, chargeID, amount)
	var refund *commands.Refund
	if v := args.Get(0); v != nil {
		refund = v.(*commands.Refund)
	}
	return refund, args.Error(1)
}

type MockReservationNotifier struct {
	mock.Mock
}

func (m *MockReservationNotifier) NotifyConfirmed(ctx context.Context, notice commands.ReservationNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockReservationNotifier) NotifyCancelled(ctx context.Context, notice commands.ReservationNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}
