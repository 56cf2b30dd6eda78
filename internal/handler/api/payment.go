package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Atsu2017-hub/web-ramen/internal/handler/dto/request"
	resdto "github.com/Atsu2017-hub/web-ramen/internal/handler/dto/response"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/httperr"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/middleware"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase commands.PaymentUsecase
	stripeCfg      config.StripeConfig
}

func NewPaymentHandler(paymentUseCase commands.PaymentUsecase, stripeCfg config.StripeConfig) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		stripeCfg:      stripeCfg,
	}
}

// @Summary Get publishable key
// @Description Return the gateway publishable key for client-side tokenization
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PublishableKeyResponse
// @Router /stripe/publishable-key [get]
func (h *PaymentHandler) PublishableKey(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.PublishableKeyResponse{
		PublishableKey: h.stripeCfg.PublishableKey,
	})
}

// @Summary Create a payment intent
// @Description Price the selected menu items server-side and open a payment intent
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentIntentRequest true "Selected menu items"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.paymentUseCase.CreateIntent(c.Request.Context(), userID, email, req.ToCommand())
	if err != nil {
		switch {
		case isValidationError(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid menu selection", nil)
		case errors.Is(err, commands.ErrGatewayFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentIntentResponse{
		ClientSecret:    result.ClientSecret,
		PaymentIntentID: result.PaymentIntentID,
		Amount:          result.Amount,
	})
}

// @Summary Refund a payment
// @Description Refund the full charge behind a payment intent owned by the caller
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param payment_intent_id path string true "Payment intent ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/refund/{payment_intent_id} [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	intentID := c.Param("payment_intent_id")
	if intentID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("empty payment intent id"), "Payment intent ID required", nil)
		return
	}

	result, err := h.paymentUseCase.RefundByIntentID(c.Request.Context(), userID, intentID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrAlreadyRefunded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already refunded", nil)
		case errors.Is(err, commands.ErrPaymentNotSucceeded):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment has not succeeded", nil)
		case errors.Is(err, commands.ErrGatewayFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RefundResponse{
		RefundID: result.RefundID,
		Amount:   result.Amount,
		Status:   result.Status,
	})
}
