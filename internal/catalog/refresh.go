package catalog

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher re-fetches a URL-backed catalog on a cron schedule. A failed
// fetch keeps the previous snapshot; only a successful load swaps it.
type Refresher struct {
	loader *Loader
	store  *Store
	cron   *cron.Cron
}

func NewRefresher(loader *Loader, store *Store) *Refresher {
	return &Refresher{
		loader: loader,
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
	}
}

// Start registers the schedule and starts the cron runner.
func (r *Refresher) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, r.refresh)
	if err != nil {
		return err
	}

	r.cron.Start()
	log.Printf("[catalog] scheduled refresh registered (%s)", schedule)
	return nil
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := r.loader.Load(ctx)
	if err != nil {
		log.Printf("[catalog] scheduled refresh failed: %v", err)
		return
	}

	r.store.SetRecords(records)
	log.Printf("[catalog] refreshed %d records from %s", len(records), r.loader.Source())
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}
