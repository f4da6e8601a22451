package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"acmedash/internal/common"
	"acmedash/internal/forms"
	"acmedash/internal/repositories"
	"acmedash/internal/services"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
)

const pdfBucket = "invoices"

// InvoiceHandlers handles the dashboard's invoice routes. Every mutation
// ends by redirecting the browser back to the invoice listing; the redirect
// is the terminal action and nothing runs after it.
type InvoiceHandlers struct {
	invoiceService services.InvoiceServiceInterface
	customerRepo   repositories.CustomerRepository
	storage        services.ObjectStorage
}

// NewInvoiceHandlers creates a new invoice handlers instance
func NewInvoiceHandlers(invoiceService services.InvoiceServiceInterface, customerRepo repositories.CustomerRepository, storage services.ObjectStorage) *InvoiceHandlers {
	return &InvoiceHandlers{
		invoiceService: invoiceService,
		customerRepo:   customerRepo,
		storage:        storage,
	}
}

// CreateInvoice handles POST /dashboard/invoices
func (h *InvoiceHandlers) CreateInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	var form forms.InvoiceForm
	if err := c.Bind(&form); err != nil {
		return common.SendClientError(c, "Invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return common.SendValidationError(c, forms.FieldErrors(err))
	}

	amountCents, err := form.AmountInCents()
	if err != nil {
		return common.SendValidationError(c, map[string]string{"amount": err.Error()})
	}

	if err := h.invoiceService.CreateInvoice(ctx, form.CustomerID, amountCents, form.Status); err != nil {
		return common.SendServerError(c, "Failed to create invoice: "+err.Error())
	}

	return c.Redirect(http.StatusSeeOther, services.InvoiceListingPath)
}

// UpdateInvoice handles POST /dashboard/invoices/:id
func (h *InvoiceHandlers) UpdateInvoice(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var form forms.InvoiceForm
	if err := c.Bind(&form); err != nil {
		return common.SendClientError(c, "Invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return common.SendValidationError(c, forms.FieldErrors(err))
	}

	amountCents, err := form.AmountInCents()
	if err != nil {
		return common.SendValidationError(c, map[string]string{"amount": err.Error()})
	}

	// An unknown id matches zero rows; the listing is refreshed and the
	// browser redirected either way.
	if _, err := h.invoiceService.UpdateInvoice(ctx, id, form.CustomerID, amountCents, form.Status); err != nil {
		return common.SendServerError(c, "Failed to update invoice: "+err.Error())
	}

	return c.Redirect(http.StatusSeeOther, services.InvoiceListingPath)
}

// DeleteInvoice handles POST /dashboard/invoices/:id/delete. The id is used
// only as a statement parameter; deleting an absent invoice is a no-op.
func (h *InvoiceHandlers) DeleteInvoice(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.invoiceService.DeleteInvoice(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete invoice: "+err.Error())
	}

	return c.Redirect(http.StatusSeeOther, services.InvoiceListingPath)
}

// ListInvoices handles GET /dashboard/invoices. Without paging parameters
// it serves the cached listing view; explicit paging bypasses the cache.
func (h *InvoiceHandlers) ListInvoices(c echo.Context) error {
	ctx := c.Request().Context()

	limitParam := c.QueryParam("limit")
	offsetParam := c.QueryParam("offset")

	if limitParam == "" && offsetParam == "" {
		payload, err := h.invoiceService.ListingJSON(ctx)
		if err != nil {
			return common.SendServerError(c, "Failed to list invoices: "+err.Error())
		}
		return c.JSONBlob(http.StatusOK, payload)
	}

	limit := 10
	offset := 0
	if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
		limit = l
	}
	if o, err := strconv.Atoi(offsetParam); err == nil && o >= 0 {
		offset = o
	}

	invoices, err := h.invoiceService.ListInvoices(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list invoices: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"invoices": invoices,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetInvoice handles GET /dashboard/invoices/:id
func (h *InvoiceHandlers) GetInvoice(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve invoice: "+err.Error())
	}
	if invoice == nil {
		return common.SendNotFoundError(c, "invoice")
	}

	return c.JSON(http.StatusOK, invoice)
}

// ExportInvoicePDF handles GET /dashboard/invoices/:id/pdf. The rendered
// PDF is archived in object storage and served through a presigned URL.
func (h *InvoiceHandlers) ExportInvoicePDF(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve invoice: "+err.Error())
	}
	if invoice == nil {
		return common.SendNotFoundError(c, "invoice")
	}

	customerName := invoice.CustomerID.String()
	if customer, err := h.customerRepo.GetByID(ctx, invoice.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}

	pdfBytes, err := renderInvoicePDF(invoice.ID.String(), customerName, invoice.Amount, invoice.Status, invoice.Date)
	if err != nil {
		return common.SendServerError(c, "Failed to generate PDF: "+err.Error())
	}

	objectName := fmt.Sprintf("%s.pdf", invoice.ID.String())
	if err := h.storage.UploadObject(ctx, pdfBucket, objectName, "application/pdf", bytes.NewReader(pdfBytes), int64(len(pdfBytes))); err != nil {
		return common.SendServerError(c, "Failed to upload PDF to storage: "+err.Error())
	}

	pdfURL, err := h.storage.GetPresignedURL(pdfBucket, objectName, 24*time.Hour)
	if err != nil {
		return common.SendServerError(c, "Failed to generate download URL: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pdf_url":    pdfURL,
		"expires_in": "24 hours",
	})
}

func renderInvoicePDF(invoiceID, customerName string, amountCents int64, status string, date time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(20, 20, 20)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, "ACME INVOICE")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice: %s", invoiceID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", date.Format("02-Jan-2006")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"Billed To", "Status", "Amount"}
	widths := []float64{90, 40, 40}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(widths[0], 8, customerName, "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[1], 8, status, "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[2], 8, fmt.Sprintf("$%.2f", float64(amountCents)/100), "1", 0, "R", false, 0, "")
	pdf.Ln(16)

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Cell(0, 5, "Thank you for your business!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
