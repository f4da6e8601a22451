package handlers

import (
	"net/http"

	"acmedash/internal/common"
	"acmedash/internal/repositories"

	"github.com/labstack/echo/v4"
)

// CustomerHandlers serves the customer list backing the invoice form
// dropdown.
type CustomerHandlers struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerHandlers(customerRepo repositories.CustomerRepository) *CustomerHandlers {
	return &CustomerHandlers{customerRepo: customerRepo}
}

// ListCustomers handles GET /dashboard/customers
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	customers, err := h.customerRepo.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list customers: "+err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
	})
}
