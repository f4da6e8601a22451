package jobs

import (
	"context"
	"log"
	"time"

	"acmedash/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// ViewRefresher re-renders the invoice listing on an interval so the
// dashboard stays warm after mutations invalidate the cached view.
type ViewRefresher struct {
	scheduler  gocron.Scheduler
	invoiceSvc services.InvoiceServiceInterface
}

func NewViewRefresher(invoiceSvc services.InvoiceServiceInterface, interval time.Duration) (*ViewRefresher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	r := &ViewRefresher{
		scheduler:  scheduler,
		invoiceSvc: invoiceSvc,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(r.refresh),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ViewRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ListingJSON re-primes the cache on a miss, so a run right after an
	// invalidation rebuilds the view before the next navigation needs it.
	if _, err := r.invoiceSvc.ListingJSON(ctx); err != nil {
		log.Printf("Failed to refresh invoice listing view: %v", err)
	}
}

func (r *ViewRefresher) Start() {
	log.Println("Starting invoice listing view refresher")
	r.scheduler.Start()
}

func (r *ViewRefresher) Stop() error {
	return r.scheduler.Shutdown()
}
