package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	domainerr "github.com/parkspot-io/parkspot-api/internal/domain/error"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/usecase"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SlotHandler handles slot-related HTTP requests
type SlotHandler struct {
	slotUseCase   usecase.SlotUseCase
	logger        coreport.Logger
	defaultRadius float64
}

// NewSlotHandler creates a new slot handler instance. defaultRadiusKm is used
// when no radius is given in the query.
func NewSlotHandler(
	slotUseCase usecase.SlotUseCase,
	logger coreport.Logger,
	defaultRadiusKm float64,
) *SlotHandler {
	return &SlotHandler{
		slotUseCase:   slotUseCase,
		logger:        logger,
		defaultRadius: defaultRadiusKm,
	}
}

// Create handles the POST /slots endpoint
func (h *SlotHandler) Create(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingFields),
			Message: "Missing data",
		})
		return
	}

	slot, err := h.slotUseCase.CreateSlot(c.Request.Context(), usecase.CreateSlotRequest{
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		h.logger.Error("Slot creation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, slotToResponse(slot))
}

// ListNear handles the GET /slots endpoint
func (h *SlotHandler) ListNear(c *gin.Context) {
	h.listNear(c, h.slotUseCase.ListNear)
}

// ListAvailableNear handles the GET /slots/available endpoint
func (h *SlotHandler) ListAvailableNear(c *gin.Context) {
	h.listNear(c, h.slotUseCase.ListAvailableNear)
}

func (h *SlotHandler) listNear(
	c *gin.Context,
	query func(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Slot, error),
) {
	lat, lon, ok := h.parseCoordinates(c)
	if !ok {
		return
	}

	radius := h.defaultRadius
	if radiusParam := c.Query("radius_km"); radiusParam != "" {
		parsed, err := strconv.ParseFloat(radiusParam, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid radius",
			})
			return
		}
		radius = parsed
	}

	slots, err := query(c.Request.Context(), lat, lon, radius)
	if err != nil {
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	response := dto.SlotListResponse{Slots: make([]dto.SlotResponse, 0, len(slots))}
	for _, slot := range slots {
		response.Slots = append(response.Slots, slotToResponse(slot))
	}

	c.JSON(http.StatusOK, response)
}

// parseCoordinates extracts lat/lon query parameters, writing the error
// response itself when they are missing or malformed
func (h *SlotHandler) parseCoordinates(c *gin.Context) (lat, lon float64, ok bool) {
	latParam := c.Query("lat")
	lonParam := c.Query("lon")
	if latParam == "" || lonParam == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingFields),
			Message: "Missing coordinates",
		})
		return 0, 0, false
	}

	lat, latErr := strconv.ParseFloat(latParam, 64)
	lon, lonErr := strconv.ParseFloat(lonParam, 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCoordinates),
			Message: "Invalid coordinates",
		})
		return 0, 0, false
	}

	return lat, lon, true
}

func slotToResponse(slot *entity.Slot) dto.SlotResponse {
	return dto.SlotResponse{
		ID:          slot.ID,
		Latitude:    slot.Latitude,
		Longitude:   slot.Longitude,
		Description: slot.Description,
		Status:      string(slot.Status),
		OwnerID:     slot.OwnerID,
	}
}
