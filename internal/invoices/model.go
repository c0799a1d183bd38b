package invoices

import "time"

// Invoice is a row in the invoices table.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// Summary is the list representation: id and company code only.
type Summary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// CompanySummary embeds the referenced company on the detail view.
type CompanySummary struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Detail is an invoice plus its referenced company. Company is nil when the
// referenced row is missing, never an error.
type Detail struct {
	Invoice
	Company *CompanySummary `json:"company"`
}

// NextPaidDate derives the paid_date for an update. Transitioning to paid
// stamps now, transitioning to unpaid clears the date, and an unchanged paid
// flag keeps the stored value exactly as is.
func NextPaidDate(currentPaid bool, currentPaidDate *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case !currentPaid && paid:
		return &now
	case currentPaid && !paid:
		return nil
	default:
		return currentPaidDate
	}
}
