package queries

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationQueryFailed = errs.New("reservation query failed")

type ReservationReadStore interface {
	// FindByID is system-level access (no owner filter), used for the
	// read-after-write response right after a commit.
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// FindByIDAndUser merges "absent" and "not owned" into a not-found kind.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*ReservationView, error)
	FindByIntentAndUser(ctx context.Context, paymentIntentID string, userID uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}
	return views, nil
}
