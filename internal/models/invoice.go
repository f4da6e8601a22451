package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses. An invoice is either awaiting payment or settled;
// there are no other states and no enforced transition rules.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is a row in the invoices table. Amount is stored as an integer
// count of minor currency units (cents). ID and Date are assigned by the
// database on insert and are never written by the application.
type Invoice struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	Amount     int64     `json:"amount" db:"amount"`
	Status     string    `json:"status" db:"status"`
	Date       time.Time `json:"date" db:"date"`
}
