package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/menu"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"
	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/clock"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPaymentIncomplete = errs.New("payment is not complete")
	ErrAmountMismatch    = errs.New("payment amount does not match order total")
	ErrReservationFailed = errs.New("failed to create reservation")
)

type CreateReservationInput struct {
	Date            time.Time
	Time            string
	PartySize       int32
	SpecialRequests string
	PaymentIntentID *string
	Items           []LineInput
}

type ReservationUsecase interface {
	// Create verifies the payment intent (when given) against a freshly
	// recomputed order total before anything is persisted, then writes the
	// reservation and its items atomically.
	Create(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error)
	// Cancel refunds a captured payment best-effort, then deletes the
	// reservation if the caller still owns it. The returned result is nil
	// when no refund was issued.
	Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*RefundResult, error)
}

type reservationUsecaseImpl struct {
	pool                 *pgxpool.Pool
	reservationRepo      ReservationRepository
	reservationReadStore queries.ReservationReadStore
	menuReadStore        queries.MenuReadStore
	userReadStore        queries.UserReadStore
	gateway              PaymentGateway
	notifier             ReservationNotifier
	clk                  clock.Clock
}

func NewReservationUsecase(
	pool *pgxpool.Pool,
	reservationRepo ReservationRepository,
	reservationReadStore queries.ReservationReadStore,
	menuReadStore queries.MenuReadStore,
	userReadStore queries.UserReadStore,
	gateway PaymentGateway,
	notifier ReservationNotifier,
	clk clock.Clock,
) ReservationUsecase {
	return &reservationUsecaseImpl{
		pool:                 pool,
		reservationRepo:      reservationRepo,
		reservationReadStore: reservationReadStore,
		menuReadStore:        menuReadStore,
		userReadStore:        userReadStore,
		gateway:              gateway,
		notifier:             notifier,
		clk:                  clk,
	}
}

func (u *reservationUsecaseImpl) Create(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error) {
	timeOfDay, err := reservation.NewTimeOfDay(input.Time)
	if err != nil {
		return nil, err
	}
	if beforeToday(input.Date, u.clk.Now()) {
		return nil, reservation.ErrDateInPast
	}
	note := reservation.NewNote(input.SpecialRequests)

	order, total, err := priceOrder(ctx, u.menuReadStore, input.Items)
	if err != nil {
		return nil, err
	}

	var capture *reservation.PaymentCapture
	if input.PaymentIntentID != nil {
		intent, err := u.gateway.RetrieveIntent(ctx, *input.PaymentIntentID)
		if err != nil {
			return nil, errs.Mark(err, ErrGatewayFailed)
		}
		if intent.Status != IntentStatusSucceeded {
			return nil, ErrPaymentIncomplete
		}
		// The intent was priced from the catalog at intent-creation time.
		// Reprice now and refuse to persist if the numbers diverged.
		if intent.Amount != total {
			return nil, ErrAmountMismatch
		}
		capture = &reservation.PaymentCapture{IntentID: intent.ID, Amount: intent.Amount}
	}

	entity, err := reservation.NewReservation(
		userID, input.Date, timeOfDay, input.PartySize, note, order.Lines(), capture,
	)
	if err != nil {
		return nil, err
	}

	id, err := shared.WithDefaultRetry(ctx, u.pool, func(tx pgx.Tx) (uuid.UUID, error) {
		return u.reservationRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, menu.ErrUnknownItem)
		}
		return nil, errs.Mark(err, ErrReservationFailed)
	}

	view, err := u.reservationReadStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationFailed)
	}

	u.notify(ctx, view, u.notifier.NotifyConfirmed)
	return view, nil
}

func (u *reservationUsecaseImpl) Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*RefundResult, error) {
	view, err := u.reservationReadStore.FindByIDAndUser(ctx, reservationID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}

	// Refund failures must not strand the diner with an uncancellable
	// reservation. Log and keep going.
	var refund *RefundResult
	if view.PaymentIntentID != nil && view.PaymentStatus == string(reservation.PaymentSucceeded) {
		refund, err = u.refundOnCancel(ctx, view)
		if err != nil {
			slog.Warn("refund on cancel failed",
				"reservation_id", view.ID,
				"payment_intent_id", *view.PaymentIntentID,
				"error", err)
		}
	}

	affected, err := u.reservationRepo.DeleteByIDAndUser(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Lost a race with another cancel for the same reservation.
		return nil, ErrReservationNotFound
	}

	u.notify(ctx, view, u.notifier.NotifyCancelled)
	return refund, nil
}

// beforeToday compares calendar dates, ignoring the time of day on now.
func beforeToday(date, now time.Time) bool {
	y, m, d := now.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return date.Before(startOfToday)
}

func (u *reservationUsecaseImpl) refundOnCancel(ctx context.Context, view *queries.ReservationView) (*RefundResult, error) {
	if view.Amount == nil {
		return nil, errs.New("captured reservation has no stored amount")
	}
	intent, err := u.gateway.RetrieveIntent(ctx, *view.PaymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}
	if intent.Status != IntentStatusSucceeded || intent.LatestChargeID == "" {
		return nil, ErrPaymentNotSucceeded
	}
	// Refund the amount captured at booking time, not whatever the gateway
	// reports now.
	ref, err := u.gateway.CreateRefund(ctx, intent.LatestChargeID, *view.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}
	return &RefundResult{RefundID: ref.ID, Amount: ref.Amount, Status: ref.Status}, nil
}

// notify delivers the notice before the response is written. A failed
// notification is logged and never changes the API response.
func (u *reservationUsecaseImpl) notify(ctx context.Context, view *queries.ReservationView, send func(context.Context, ReservationNotice) error) {
	notice := ReservationNotice{
		ReservationID: view.ID,
		Date:          view.Date.Format("2006-01-02"),
		Time:          view.Time,
		PartySize:     view.PartySize,
		Requests:      view.SpecialRequests,
		Items:         view.Items,
	}
	if userView, err := u.userReadStore.FindByID(ctx, view.UserID); err == nil {
		notice.UserName = userView.Name
		notice.UserEmail = userView.Email
	}

	if err := send(ctx, notice); err != nil {
		slog.Warn("reservation notification failed",
			"reservation_id", notice.ReservationID,
			"error", err)
	}
}
