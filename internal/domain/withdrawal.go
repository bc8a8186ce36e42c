package domain

type WithdrawalStatus string

const (
	// StatusPending is the only status in this design: requests are paid
	// out manually by the operator and the record is never reconciled.
	StatusPending WithdrawalStatus = "pending"
)

// WithdrawalRecord is one entry of the per-user withdrawal history,
// most recent first. Amount is the fixed two-decimal display string.
type WithdrawalRecord struct {
	ID      string           `json:"id"`
	Method  string           `json:"method"`
	Address string           `json:"address"`
	Amount  string           `json:"amount"`
	Time    string           `json:"time"`
	Status  WithdrawalStatus `json:"status"`
}
