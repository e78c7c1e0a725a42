package handler

import (
	"net/http"

	domainerr "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the read-only payment log
type TransactionHandler struct {
	reservationUseCase usecase.ReservationUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	reservationUseCase usecase.ReservationUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		reservationUseCase: reservationUseCase,
		logger:             logger,
	}
}

// List handles the GET /transactions endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.reservationUseCase.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
		})
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	response := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
	}
	for _, transaction := range transactions {
		response.Transactions = append(response.Transactions, transactionToResponse(transaction))
	}

	c.JSON(http.StatusOK, response)
}
