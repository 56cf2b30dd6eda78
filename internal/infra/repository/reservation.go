package repository

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"
	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	pool db.DBTX
}

func NewReservationRepository(pool db.DBTX) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const createReservationQuery = `
INSERT INTO reservations (
	id, user_id, reservation_date, reservation_time, number_of_people,
	special_requests, status, payment_intent_id, amount, payment_status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

const createReservationItemQuery = `
INSERT INTO reservation_menu_items (reservation_id, menu_id, quantity)
VALUES ($1, $2, $3)
`

// Create writes the reservation and its line items on the supplied tx. The
// caller owns the transaction boundary.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, entity *reservation.Reservation) (uuid.UUID, error) {
	var note *string
	if !entity.Note().IsEmpty() {
		v := entity.Note().Value()
		note = &v
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationQuery,
		entity.ID(),
		entity.UserID(),
		pgconv.DateToPgtype(entity.Date()),
		entity.TimeOfDay().Value(),
		entity.PartySize(),
		pgconv.StringPtrToPgtype(note),
		string(entity.Status()),
		pgconv.StringPtrToPgtype(entity.PaymentIntentID()),
		entity.Amount(),
		string(entity.PaymentStatus()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err, infra.KindFromPgError(err))
	}

	for _, line := range entity.Lines() {
		if _, err := tx.Exec(ctx, createReservationItemQuery, id, line.ItemID(), line.Quantity()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create reservation item", err, infra.KindFromPgError(err))
		}
	}

	return id, nil
}

const deleteReservationQuery = `
DELETE FROM reservations
WHERE id = $1 AND user_id = $2
`

// DeleteByIDAndUser removes the reservation only if the caller owns it.
// Line items go with it via cascade. The affected-row count disambiguates
// a successful delete from a miss without a prior read.
func (r *ReservationRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, deleteReservationQuery, id, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected(), nil
}

const markRefundedQuery = `
UPDATE reservations
SET payment_status = 'refunded'
WHERE id = $1
`

func (r *ReservationRepository) MarkRefunded(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, markRefundedQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation refunded", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
