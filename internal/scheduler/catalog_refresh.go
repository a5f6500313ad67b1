// Package scheduler re-imports the dataset on a cron schedule and swaps the
// catalog served to new requests.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/importers"
	"github.com/mrlokans/bookshelf/internal/metrics"
)

// Store is where refreshed datasets are written and read back from.
type Store interface {
	importers.Store
	LoadCatalog() (*catalog.Catalog, error)
}

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CatalogRefresher holds the catalog being served and replaces it after each
// successful scheduled import. A failed import keeps the previous catalog.
type CatalogRefresher struct {
	store     Store
	converter func() importers.Converter
	schedule  string

	current atomic.Pointer[catalog.Catalog]

	cron       *cron.Cron
	mu         sync.RWMutex
	isRunning  bool
	lastRun    time.Time
	lastErr    error
	cancelFunc context.CancelFunc
}

// NewCatalogRefresher starts serving initial. converter is called on every run
// so file-backed datasets are re-read.
func NewCatalogRefresher(store Store, converter func() importers.Converter, schedule string, initial *catalog.Catalog) *CatalogRefresher {
	r := &CatalogRefresher{
		store:     store,
		converter: converter,
		schedule:  schedule,
		cron:      cron.New(cron.WithParser(parser)),
	}
	r.current.Store(initial)
	return r
}

// Catalog returns the catalog to serve right now.
func (r *CatalogRefresher) Catalog() *catalog.Catalog {
	return r.current.Load()
}

// Start schedules refreshes. An empty schedule leaves the refresher idle.
func (r *CatalogRefresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return nil
	}

	if r.schedule == "" {
		log.Printf("Catalog refresh scheduler: disabled")
		return nil
	}

	if err := ValidateSchedule(r.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", r.schedule, err)
	}

	if _, err := r.cron.AddFunc(r.schedule, func() {
		if err := r.RunNow(); err != nil {
			log.Printf("Catalog refresh failed, keeping the current catalog: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule refresh job: %w", err)
	}

	var cancelCtx context.Context
	cancelCtx, r.cancelFunc = context.WithCancel(ctx)

	r.cron.Start()
	r.isRunning = true

	next, _ := NextRunTime(r.schedule)
	log.Printf("Catalog refresh scheduler: started with schedule '%s'. Next run: %v", r.schedule, next)

	go func() {
		<-cancelCtx.Done()
		r.Stop()
	}()

	return nil
}

// Stop waits for a running refresh to finish and stops scheduling new ones.
func (r *CatalogRefresher) Stop() {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return
	}
	r.isRunning = false
	cancel := r.cancelFunc
	r.cancelFunc = nil
	// A running job records its result under mu, so wait without holding it
	r.mu.Unlock()

	<-r.cron.Stop().Done()
	if cancel != nil {
		cancel()
	}

	log.Printf("Catalog refresh scheduler: stopped")
}

// RunNow imports the dataset, reloads it and swaps the served catalog.
func (r *CatalogRefresher) RunNow() error {
	err := r.refresh()

	r.mu.Lock()
	r.lastRun = time.Now()
	r.lastErr = err
	r.mu.Unlock()

	return err
}

func (r *CatalogRefresher) refresh() error {
	result, err := importers.NewPipeline(r.store).Import(r.converter())
	if err != nil {
		return err
	}

	cat, err := r.store.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load refreshed catalog: %w", err)
	}

	r.current.Store(cat)
	metrics.CatalogBooks.Set(float64(cat.Len()))
	log.Printf("Catalog refreshed from %s: %d books", result.Source, cat.Len())
	return nil
}

// IsRunning returns whether refreshes are scheduled.
func (r *CatalogRefresher) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

// LastRun returns when the last refresh ran and its error, if any.
func (r *CatalogRefresher) LastRun() (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRun, r.lastErr
}

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// NextRunTime returns when schedule fires next.
func NextRunTime(schedule string) (*time.Time, error) {
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(time.Now())
	return &next, nil
}
