package handler

import (
	"net/http"
	"strconv"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	domainerr "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReservationHandler handles reservation-related HTTP requests
type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
	logger             coreport.Logger
}

// NewReservationHandler creates a new reservation handler instance
func NewReservationHandler(
	reservationUseCase usecase.ReservationUseCase,
	logger coreport.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
		logger:             logger,
	}
}

// Reserve handles the POST /reservations endpoint
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingFields),
			Message: "Missing data",
		})
		return
	}

	result, err := h.reservationUseCase.Reserve(c.Request.Context(), req.UserID, req.SlotID)
	if err != nil {
		h.logger.Error("Reservation failed", map[string]any{
			"userId": req.UserID,
			"slotId": req.SlotID,
			"error":  err.Error(),
		})
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.ReserveResponse{
		Reservation: dto.ReservationResponse{
			ID:     result.Reservation.ID,
			UserID: result.Reservation.UserID,
			SlotID: result.Reservation.SlotID,
		},
		Transaction: transactionToResponse(result.Transaction),
	})
}

// Cancel handles the DELETE /reservations/:reservationId endpoint
func (h *ReservationHandler) Cancel(c *gin.Context) {
	reservationIDParam := c.Param("reservationId")
	reservationID, err := strconv.ParseUint(reservationIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationUseCase.Cancel(c.Request.Context(), reservationID); err != nil {
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

func transactionToResponse(transaction *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:             transaction.ID,
		Reference:      transaction.Reference,
		UserID:         transaction.UserID,
		SlotID:         transaction.SlotID,
		Amount:         transaction.Amount(),
		ApplicationFee: transaction.ApplicationFee(),
		OwnerCredit:    transaction.OwnerCredit(),
	}
}
