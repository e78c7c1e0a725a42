package dto

// ReserveRequest represents the API request for reserving a slot
type ReserveRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
	SlotID uint64 `json:"slotId" binding:"required"`
}

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID     uint64 `json:"id"`
	UserID uint64 `json:"userId"`
	SlotID uint64 `json:"slotId"`
}

// ReserveResponse bundles the reservation and the payment it produced
type ReserveResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Transaction TransactionResponse `json:"transaction"`
}
