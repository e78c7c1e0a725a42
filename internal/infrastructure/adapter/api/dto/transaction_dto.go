package dto

// TransactionResponse represents a payment record in API responses
type TransactionResponse struct {
	ID             uint64 `json:"id"`
	Reference      string `json:"reference"`
	UserID         uint64 `json:"userId"`
	SlotID         uint64 `json:"slotId"`
	Amount         string `json:"amount"`
	ApplicationFee string `json:"applicationFee"`
	OwnerCredit    string `json:"ownerCredit"`
}

// TransactionListResponse represents the full payment log
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
