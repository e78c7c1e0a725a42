package dto

// RegisterRequest represents the API request for registering a user
type RegisterRequest struct {
	Identifier  string `json:"identifier" binding:"required"`
	Credential  string `json:"credential" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
}

// UserResponse represents a user in API responses.
// The credential is never echoed back.
type UserResponse struct {
	ID          uint64 `json:"id"`
	Identifier  string `json:"identifier"`
	PlateNumber string `json:"plateNumber"`
	Balance     string `json:"balance"`
}

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"`
}
