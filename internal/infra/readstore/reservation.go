package readstore

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/pgconv"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	pool db.DBTX
}

func NewReservationReadStore(pool db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationColumns = `
	r.id, r.user_id, r.reservation_date, r.reservation_time, r.number_of_people,
	r.special_requests, r.status, r.payment_intent_id, r.amount, r.payment_status, r.created_at
`

const findReservationByIDQuery = `
SELECT` + reservationColumns + `
FROM reservations r
WHERE r.id = $1
`

const findReservationByIDAndUserQuery = `
SELECT` + reservationColumns + `
FROM reservations r
WHERE r.id = $1 AND r.user_id = $2
`

const findReservationByIntentAndUserQuery = `
SELECT` + reservationColumns + `
FROM reservations r
WHERE r.payment_intent_id = $1 AND r.user_id = $2
`

const listReservationsByUserQuery = `
SELECT` + reservationColumns + `
FROM reservations r
WHERE r.user_id = $1
ORDER BY r.reservation_date DESC, r.reservation_time DESC
`

const listReservationItemsQuery = `
SELECT ri.menu_id, m.name, m.price, ri.quantity
FROM reservation_menu_items ri
JOIN menus m ON m.id = ri.menu_id
WHERE ri.reservation_id = $1
ORDER BY ri.created_at
`

func scanReservation(row interface{ Scan(dest ...any) error }) (*queries.ReservationView, error) {
	var (
		v         queries.ReservationView
		date      pgtype.Date
		timeOfDay pgtype.Time
		requests  pgtype.Text
		intentID  pgtype.Text
		amount    pgtype.Int4
	)
	err := row.Scan(
		&v.ID, &v.UserID, &date, &timeOfDay, &v.PartySize,
		&requests, &v.Status, &intentID, &amount, &v.PaymentStatus, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Date = pgconv.DateFromPgtype(date)
	v.Time = pgconv.ClockTimeFromPgtype(timeOfDay)
	v.SpecialRequests = pgconv.StringPtrFromPgtype(requests)
	v.PaymentIntentID = pgconv.StringPtrFromPgtype(intentID)
	v.Amount = pgconv.Int64PtrFromPgtype(amount)
	return &v, nil
}

func (s *ReservationReadStore) loadItems(ctx context.Context, reservationID uuid.UUID) ([]queries.ReservationItemView, error) {
	rows, err := s.pool.Query(ctx, listReservationItemsQuery, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]queries.ReservationItemView, 0)
	for rows.Next() {
		var it queries.ReservationItemView
		if err := rows.Scan(&it.MenuID, &it.MenuName, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *ReservationReadStore) findOne(ctx context.Context, query string, args ...any) (*queries.ReservationView, error) {
	view, err := scanReservation(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	items, err := s.loadItems(ctx, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation items", err)
	}
	view.Items = items
	return view, nil
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return s.findOne(ctx, findReservationByIDQuery, id)
}

func (s *ReservationReadStore) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*queries.ReservationView, error) {
	return s.findOne(ctx, findReservationByIDAndUserQuery, id, userID)
}

func (s *ReservationReadStore) FindByIntentAndUser(ctx context.Context, intentID string, userID uuid.UUID) (*queries.ReservationView, error) {
	return s.findOne(ctx, findReservationByIntentAndUserQuery, intentID, userID)
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.pool.Query(ctx, listReservationsByUserQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		v, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	for i := range views {
		items, err := s.loadItems(ctx, views[i].ID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load reservation items", err)
		}
		views[i].Items = items
	}
	return views, nil
}
