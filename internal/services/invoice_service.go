package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"acmedash/internal/caching"
	"acmedash/internal/models"
	"acmedash/internal/repositories"
)

// InvoiceListingPath is the dashboard route whose rendered view is cached
// and invalidated by every invoice mutation.
const InvoiceListingPath = "/dashboard/invoices"

const (
	listingLimit   = 50
	listingViewTTL = 5 * time.Minute
)

// InvoiceServiceInterface defines the interface for the invoice service.
// The mutation methods run the persist-then-invalidate pipeline; Update and
// Delete report the affected row count so callers that care about missing
// ids can check it, though the dashboard handlers do not.
type InvoiceServiceInterface interface {
	CreateInvoice(ctx context.Context, customerID string, amountCents int64, status string) error
	UpdateInvoice(ctx context.Context, id, customerID string, amountCents int64, status string) (int64, error)
	DeleteInvoice(ctx context.Context, id string) (int64, error)
	GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int) ([]*models.Invoice, error)
	ListingJSON(ctx context.Context) ([]byte, error)
}

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	viewCache   caching.ViewCache
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, viewCache caching.ViewCache) InvoiceServiceInterface {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		viewCache:   viewCache,
	}
}

// CreateInvoice inserts one invoice row and marks the listing view stale.
func (s *invoiceService) CreateInvoice(ctx context.Context, customerID string, amountCents int64, status string) error {
	if err := s.invoiceRepo.Create(ctx, customerID, amountCents, status); err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	s.invalidateListing(ctx)
	return nil
}

// UpdateInvoice overwrites the row matching id. A missing id affects zero
// rows; the listing is invalidated either way.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id, customerID string, amountCents int64, status string) (int64, error) {
	rows, err := s.invoiceRepo.Update(ctx, id, customerID, amountCents, status)
	if err != nil {
		return 0, fmt.Errorf("update invoice: %w", err)
	}
	s.invalidateListing(ctx)
	return rows, nil
}

// DeleteInvoice removes the row matching id. Deleting an id that no longer
// exists affects zero rows and is not an error.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) (int64, error) {
	rows, err := s.invoiceRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete invoice: %w", err)
	}
	s.invalidateListing(ctx)
	return rows, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) ListInvoices(ctx context.Context, limit, offset int) ([]*models.Invoice, error) {
	return s.invoiceRepo.List(ctx, limit, offset)
}

// ListingJSON returns the rendered listing view, serving the cached copy
// when fresh and re-priming the cache otherwise.
func (s *invoiceService) ListingJSON(ctx context.Context) ([]byte, error) {
	cached, err := s.viewCache.GetView(ctx, InvoiceListingPath)
	if err != nil {
		log.Printf("Failed to read invoice listing view cache: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	invoices, err := s.invoiceRepo.List(ctx, listingLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("render invoice listing: %w", err)
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"invoices": invoices,
	})
	if err != nil {
		return nil, err
	}

	if cacheErr := s.viewCache.SetView(ctx, InvoiceListingPath, payload, listingViewTTL); cacheErr != nil {
		log.Printf("Failed to prime invoice listing view cache: %v", cacheErr)
	}
	return payload, nil
}

// invalidateListing marks the cached listing stale. A cache failure is
// logged and does not fail the mutation.
func (s *invoiceService) invalidateListing(ctx context.Context) {
	if cacheErr := s.viewCache.Invalidate(ctx, InvoiceListingPath); cacheErr != nil {
		log.Printf("Failed to invalidate invoice listing view: %v", cacheErr)
	}
}
