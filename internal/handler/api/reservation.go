package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Atsu2017-hub/web-ramen/internal/handler/dto/request"
	resdto "github.com/Atsu2017-hub/web-ramen/internal/handler/dto/response"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/httperr"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/middleware"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase commands.ReservationUsecase
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(
	reservationUseCase commands.ReservationUsecase,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create a reservation
// @Description Create a reservation with menu items, verifying any attached payment
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation date", nil)
		return
	}

	view, err := h.reservationUseCase.Create(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentIncomplete):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment is not complete", nil)
		case errors.Is(err, commands.ErrAmountMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment amount does not match order total", nil)
		case isValidationError(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, commands.ErrGatewayFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the authenticated user's reservations, newest first
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservations", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel a reservation
// @Description Cancel an owned reservation, refunding any captured payment
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}

	refund, err := h.reservationUseCase.Cancel(c.Request.Context(), userID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	res := resdto.CancelReservationResponse{Message: "Reservation cancelled"}
	if refund != nil {
		res.Refund = &resdto.RefundResponse{
			RefundID: refund.RefundID,
			Amount:   refund.Amount,
			Status:   refund.Status,
		}
	}
	c.JSON(http.StatusOK, res)
}
