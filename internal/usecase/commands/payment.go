package commands

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/menu"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"
	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrGatewayFailed       = errs.New("payment gateway request failed")
	ErrPaymentNotSucceeded = errs.New("payment has not succeeded")
	ErrAlreadyRefunded     = errs.New("payment already refunded")
	ErrReservationNotFound = errs.New("reservation not found")
)

type LineInput struct {
	MenuID   uuid.UUID
	Quantity int32
}

type PaymentIntentResult struct {
	PaymentIntentID string
	ClientSecret    string
	Amount          int64
}

type RefundResult struct {
	RefundID string
	Amount   int64
	Status   string
}

type PaymentUsecase interface {
	// CreateIntent prices the selected menu items server-side and opens a
	// payment intent for that exact amount. Client-supplied amounts are
	// never accepted.
	CreateIntent(ctx context.Context, userID uuid.UUID, userEmail string, items []LineInput) (*PaymentIntentResult, error)
	RefundByIntentID(ctx context.Context, userID uuid.UUID, paymentIntentID string) (*RefundResult, error)
}

type paymentUsecaseImpl struct {
	gateway              PaymentGateway
	menuReadStore        queries.MenuReadStore
	reservationReadStore queries.ReservationReadStore
	reservationRepo      ReservationRepository
	currency             string
}

func NewPaymentUsecase(
	gateway PaymentGateway,
	menuReadStore queries.MenuReadStore,
	reservationReadStore queries.ReservationReadStore,
	reservationRepo ReservationRepository,
	currency string,
) PaymentUsecase {
	return &paymentUsecaseImpl{
		gateway:              gateway,
		menuReadStore:        menuReadStore,
		reservationReadStore: reservationReadStore,
		reservationRepo:      reservationRepo,
		currency:             currency,
	}
}

// priceOrder resolves the order against the current catalog and returns the
// validated order with its total.
func priceOrder(ctx context.Context, menuReadStore queries.MenuReadStore, items []LineInput) (menu.Order, int64, error) {
	lines := make([]menu.OrderLine, 0, len(items))
	for _, it := range items {
		line, err := menu.NewOrderLine(it.MenuID, it.Quantity)
		if err != nil {
			return menu.Order{}, 0, err
		}
		lines = append(lines, line)
	}

	order, err := menu.NewOrder(lines)
	if err != nil {
		return menu.Order{}, 0, err
	}

	views, err := menuReadStore.FindByIDs(ctx, order.ItemIDs())
	if err != nil {
		return menu.Order{}, 0, err
	}
	catalog := make(map[uuid.UUID]menu.Item, len(views))
	for _, v := range views {
		catalog[v.ID] = menu.NewItem(v.ID, v.Name, v.Price, v.IsAvailable)
	}

	total, err := order.Total(catalog)
	if err != nil {
		return menu.Order{}, 0, err
	}
	return order, total, nil
}

func (u *paymentUsecaseImpl) CreateIntent(ctx context.Context, userID uuid.UUID, userEmail string, items []LineInput) (*PaymentIntentResult, error) {
	_, total, err := priceOrder(ctx, u.menuReadStore, items)
	if err != nil {
		return nil, err
	}

	intent, err := u.gateway.CreateIntent(ctx, total, u.currency, map[string]string{
		"user_id": userID.String(),
		"email":   userEmail,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}

	return &PaymentIntentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
	}, nil
}

func (u *paymentUsecaseImpl) RefundByIntentID(ctx context.Context, userID uuid.UUID, paymentIntentID string) (*RefundResult, error) {
	resv, err := u.reservationReadStore.FindByIntentAndUser(ctx, paymentIntentID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}

	// Refunds are not idempotent at the gateway; refuse a second attempt
	// outright instead of asking the gateway again.
	if resv.PaymentStatus == string(reservation.PaymentRefunded) {
		return nil, ErrAlreadyRefunded
	}

	intent, err := u.gateway.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}
	if intent.Status != IntentStatusSucceeded {
		return nil, ErrPaymentNotSucceeded
	}
	if intent.LatestChargeID == "" {
		return nil, errs.Mark(errs.New("payment intent has no charge"), ErrGatewayFailed)
	}

	refund, err := u.gateway.CreateRefund(ctx, intent.LatestChargeID, intent.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}

	if err := u.reservationRepo.MarkRefunded(ctx, resv.ID); err != nil {
		return nil, err
	}

	return &RefundResult{
		RefundID: refund.ID,
		Amount:   refund.Amount,
		Status:   refund.Status,
	}, nil
}
