package models

import "github.com/google/uuid"

// Customer is the party an invoice bills. Invoices reference customers by
// id; the dashboard lists customers to populate the invoice form.
type Customer struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	ImageURL string    `json:"image_url" db:"image_url"`
}
