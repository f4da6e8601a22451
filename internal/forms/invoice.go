package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidation marks form input that failed schema validation. Handlers
// map it to a 400 response before any persistence or cache side effect.
var ErrValidation = errors.New("validation failed")

// InvoiceForm is the shape shared by the create and update operations.
// The invoice id and date are never part of the form; the id arrives as a
// path parameter on update and the date is assigned by the database.
type InvoiceForm struct {
	CustomerID string `form:"customerId" validate:"required"`
	Amount     string `form:"amount" validate:"required"`
	Status     string `form:"status" validate:"required,oneof=pending paid"`
}

var cents = decimal.NewFromInt(100)

// AmountInCents parses the submitted amount and converts it to minor
// currency units, rounding half away from zero on the decimal
// representation: 19.99 -> 1999, 19.999 -> 2000.
func (f *InvoiceForm) AmountInCents() (int64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", ErrValidation, f.Amount)
	}
	return amount.Mul(cents).Round(0).IntPart(), nil
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}

// FieldErrors flattens a validation error into field -> constraint pairs
// for the error response body.
func FieldErrors(err error) map[string]string {
	details := map[string]string{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fmt.Sprintf("failed on the %q constraint", fe.Tag())
		}
	}
	return details
}
