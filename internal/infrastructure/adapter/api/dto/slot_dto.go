package dto

// CreateSlotRequest represents the API request for publishing a slot
type CreateSlotRequest struct {
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	Description string   `json:"description"`
	OwnerID     *uint64  `json:"ownerId"`
}

// SlotResponse represents a parking slot in API responses
type SlotResponse struct {
	ID          uint64  `json:"id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	OwnerID     *uint64 `json:"ownerId,omitempty"`
}

// SlotListResponse represents a list of slots around a point
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}
