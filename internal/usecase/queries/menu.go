package queries

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMenuQueryFailed = errs.New("menu query failed")

type MenuReadStore interface {
	ListAvailable(ctx context.Context) ([]*MenuView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*MenuView, error)
}

type MenuQueries interface {
	ListAvailable(ctx context.Context) ([]*MenuView, error)
}

type menuQueriesImpl struct {
	readStore MenuReadStore
}

func NewMenuQueries(readStore MenuReadStore) MenuQueries {
	return &menuQueriesImpl{readStore: readStore}
}

func (q *menuQueriesImpl) ListAvailable(ctx context.Context) ([]*MenuView, error) {
	views, err := q.readStore.ListAvailable(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuQueryFailed)
	}
	return views, nil
}
