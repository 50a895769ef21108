package domain

// CashMovement is the outcome of a deposit or withdrawal.
type CashMovement struct {
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}

// TransferResult is the outcome of a transfer between two accounts.
type TransferResult struct {
	From        Account     `json:"from"`
	To          Account     `json:"to"`
	Transaction Transaction `json:"transaction"`
}

// OrderExecution is the outcome of a buy or sell. Holding is nil after a full liquidation.
type OrderExecution struct {
	Order       Order            `json:"order"`
	Transaction Transaction      `json:"transaction"`
	Account     Account          `json:"account"`
	Holding     *HoldingSnapshot `json:"holding"`
}
