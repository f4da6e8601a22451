package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInCents(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
		fails  bool
	}{
		{name: "whole dollars", amount: "20", want: 2000},
		{name: "dollars and cents", amount: "19.99", want: 1999},
		{name: "trailing zeros", amount: "5.00", want: 500},
		{name: "fractional cent rounds half away from zero", amount: "19.999", want: 2000},
		{name: "half cent rounds up", amount: "0.005", want: 1},
		{name: "below half cent rounds down", amount: "0.004", want: 0},
		{name: "surrounding whitespace", amount: " 12.50 ", want: 1250},
		{name: "not a number", amount: "nineteen", fails: true},
		{name: "empty", amount: "", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := &InvoiceForm{CustomerID: "cust_1", Amount: tt.amount, Status: "pending"}
			got, err := form.AmountInCents()
			if tt.fails {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		form  InvoiceForm
		valid bool
	}{
		{name: "valid pending", form: InvoiceForm{CustomerID: "cust_1", Amount: "19.99", Status: "pending"}, valid: true},
		{name: "valid paid", form: InvoiceForm{CustomerID: "cust_1", Amount: "5.00", Status: "paid"}, valid: true},
		{name: "empty customer", form: InvoiceForm{CustomerID: "", Amount: "19.99", Status: "pending"}},
		{name: "missing amount", form: InvoiceForm{CustomerID: "cust_1", Amount: "", Status: "pending"}},
		{name: "unknown status", form: InvoiceForm{CustomerID: "cust_1", Amount: "19.99", Status: "shipped"}},
		{name: "empty status", form: InvoiceForm{CustomerID: "cust_1", Amount: "19.99", Status: ""}},
		{name: "status is case sensitive", form: InvoiceForm{CustomerID: "cust_1", Amount: "19.99", Status: "Paid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.form)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestFieldErrors(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&InvoiceForm{CustomerID: "", Amount: "19.99", Status: "shipped"})
	assert.Error(t, err)

	details := FieldErrors(err)
	assert.Contains(t, details, "CustomerID")
	assert.Contains(t, details, "Status")
	assert.NotContains(t, details, "Amount")
}
