package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name CatalogClient --filename catalogclient.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Resolver --filename resolver.go
//go:generate mockery --name Detector --filename detector.go

// CatalogClient fetches records from the source catalog.
type CatalogClient interface {
	FetchCategories(ctx context.Context) ([]models.SourceCategory, error)
	FetchProducts(ctx context.Context) ([]models.SourceProductResult, error)
	FetchProduct(ctx context.Context, sourceID string) (*models.SourceProduct, error)
}

// Storage is sync runs, local catalog and product changes storage.
type Storage interface {
	// StartRun claims a new running sync run; at most one run may be running.
	StartRun(ctx context.Context, trigger models.Trigger) (*models.SyncRun, error)
	// FinishRun moves a run to a terminal status with its final counts.
	FinishRun(ctx context.Context, run *models.SyncRun) error
	// ProductByExternalID returns the local counterpart of a source product.
	ProductByExternalID(ctx context.Context, externalID string) (*models.Product, error)
	// CreateProduct creates an inactive local product from a source product.
	CreateProduct(ctx context.Context, source *models.SourceProduct) (*models.Product, error)
	// SyncDetected reconciles one product's detected changes against its
	// pending rows; moot removal covers only the compared fields.
	SyncDetected(ctx context.Context, localProductID int, detected []models.ProductChange, compared []string) (created, updated, resolved int32, err error)
	// MappingBySourceID returns the mapping for one source category.
	MappingBySourceID(ctx context.Context, sourceCategoryID string) (*models.CategoryMapping, error)
}

// Resolver reconciles source categories against the local taxonomy.
type Resolver interface {
	Resolve(ctx context.Context, category models.SourceCategory) (*models.CategoryMapping, error)
}

// Detector computes field-level differences for one product. It also reports
// which fields it actually compared, so the store never treats a skipped
// field's pending change as moot.
type Detector interface {
	Detect(source *models.SourceProduct, local *models.Product, runID int, mappedCategoryID *int32) ([]models.ProductChange, []string, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Run detail stages.
const (
	stageRun      = "run"
	stageCategory = "category"
	stageFetch    = "fetch"
	stageValidate = "validate"
	stageDetect   = "detect"
	stagePersist  = "persist"
)

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer owns the sync run lifecycle: it claims the run, walks the source
// catalog, drives the resolver and detector, aggregates per-item outcomes
// and finalizes the run summary.
type Syncer struct {
	client     CatalogClient
	storage    Storage
	resolver   Resolver
	detector   Detector
	workers    int
	runTimeout time.Duration
	clock      Clock
}

// NewSyncer returns new Syncer processing products on a pool of workers.
func NewSyncer(
	client CatalogClient,
	storage Storage,
	resolver Resolver,
	detector Detector,
	workers int,
	ops ...Option,
) *Syncer {
	if workers < 1 {
		workers = 1
	}

	syn := &Syncer{
		client:   client,
		storage:  storage,
		resolver: resolver,
		detector: detector,
		workers:  workers,
		clock:    systemClock{},
	}

	for _, op := range ops {
		op(syn)
	}

	return syn
}

// Sync executes one full catalog synchronization run. Item failures are
// counted and recorded in the run detail without aborting the run; total
// catalog unavailability fails the run immediately.
func (s *Syncer) Sync(ctx context.Context, trigger models.Trigger) (*models.SyncRun, error) {
	run, err := s.storage.StartRun(ctx, trigger)
	if err != nil {
		return nil, fmt.Errorf("can't start sync run: %w", err)
	}

	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	progress := newRunProgress(run)

	categories, err := s.client.FetchCategories(ctx)
	if err != nil {
		return s.finishSync(ctx, progress, fmt.Errorf("can't fetch categories: %w", err))
	}

	mappings := s.resolveCategories(ctx, progress, categories)

	results, err := s.client.FetchProducts(ctx)
	if err != nil {
		return s.finishSync(ctx, progress, fmt.Errorf("can't fetch products: %w", err))
	}

	if err := s.processProducts(ctx, progress, mappings, results); err != nil {
		return s.finishSync(ctx, progress, fmt.Errorf("sync abandoned: %w", err))
	}

	return s.finishSync(ctx, progress, nil)
}

// SyncProduct executes one webhook-scoped run covering a single source
// product instead of a full catalog scan.
func (s *Syncer) SyncProduct(ctx context.Context, sourceID string) (*models.SyncRun, error) {
	run, err := s.storage.StartRun(ctx, models.TriggerWebhook)
	if err != nil {
		return nil, fmt.Errorf("can't start sync run: %w", err)
	}

	progress := newRunProgress(run)

	product, err := s.client.FetchProduct(ctx, sourceID)
	if err != nil {
		if platform.Unavailable(err) {
			return s.finishSync(ctx, progress, fmt.Errorf("can't fetch product: %w", err))
		}
		progress.fail(sourceID, stageFetch, err)
		return s.finishSync(ctx, progress, nil)
	}

	s.processProduct(ctx, progress, s.lookupMapping(ctx, progress, product.CategoryID), models.SourceProductResult{Product: *product})

	return s.finishSync(ctx, progress, nil)
}

// resolveCategories upserts the mapping of every source category and returns
// local category IDs keyed by source category ID. Mapping failures are
// item-level.
func (s *Syncer) resolveCategories(
	ctx context.Context,
	progress *runProgress,
	categories []models.SourceCategory,
) map[string]*int32 {
	mappings := make(map[string]*int32, len(categories))

	for ix := range categories {
		mapping, err := s.resolver.Resolve(ctx, categories[ix])
		if err != nil {
			progress.fail("", stageCategory, err)
			continue
		}
		mappings[mapping.SourceCategoryID] = mapping.LocalCategoryID
	}

	return mappings
}

// processProducts diffs every fetched product on a bounded worker pool.
// Run statistics are aggregated atomically; change writes are per-product, so
// no two workers ever touch the same change rows.
func (s *Syncer) processProducts(
	ctx context.Context,
	progress *runProgress,
	mappings map[string]*int32,
	results []models.SourceProductResult,
) error {
	errGroup, egCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(s.workers)

	for ix := range results {
		if egCtx.Err() != nil {
			break
		}

		result := results[ix]
		errGroup.Go(func() error {
			s.processProduct(egCtx, progress, mappings[result.Product.CategoryID], result)
			return egCtx.Err()
		})
	}

	return errGroup.Wait()
}

func (s *Syncer) processProduct(
	ctx context.Context,
	progress *runProgress,
	mappedCategoryID *int32,
	result models.SourceProductResult,
) {
	sourceID := result.Product.ID

	if result.Error != nil {
		progress.fail(sourceID, stageValidate, result.Error)
		return
	}

	local, err := s.storage.ProductByExternalID(ctx, sourceID)
	if errors.Is(err, platform.ErrNotFound) {
		// new product intake: created locally, inactive until published
		if _, err := s.storage.CreateProduct(ctx, &result.Product); err != nil {
			progress.fail(sourceID, stagePersist, err)
			return
		}
		progress.succeed()
		return
	}
	if err != nil {
		progress.fail(sourceID, stageFetch, err)
		return
	}

	changes, compared, err := s.detector.Detect(&result.Product, local, progress.run.ID, mappedCategoryID)
	if err != nil {
		progress.fail(sourceID, stageDetect, err)
		return
	}

	if _, _, _, err := s.storage.SyncDetected(ctx, local.ID, changes, compared); err != nil {
		progress.fail(sourceID, stagePersist, err)
		return
	}

	progress.succeed()
}

// lookupMapping returns the local category mapped to one source category.
// A missing mapping means unmapped; any other storage error is recorded as a
// category-stage item failure, same as a resolver failure in a full run.
func (s *Syncer) lookupMapping(ctx context.Context, progress *runProgress, sourceCategoryID string) *int32 {
	if sourceCategoryID == "" {
		return nil
	}

	mapping, err := s.storage.MappingBySourceID(ctx, sourceCategoryID)
	if errors.Is(err, platform.ErrNotFound) {
		return nil
	}
	if err != nil {
		progress.fail("", stageCategory, fmt.Errorf("can't look up category mapping: %w", err))
		return nil
	}

	return mapping.LocalCategoryID
}

// finishSync writes the run's terminal status and counts. The run row is
// finalized even when the run context is already dead.
func (s *Syncer) finishSync(ctx context.Context, progress *runProgress, status error) (*models.SyncRun, error) {
	run := progress.finalize(status)
	run.CompletedAt = s.clock.Now()

	err := s.storage.FinishRun(context.WithoutCancel(ctx), run)
	if err != nil && status == nil {
		return nil, fmt.Errorf("can't finish sync run: %w", err)
	}

	if err != nil && status != nil {
		return nil, fmt.Errorf("can't finish failed sync run: %w (fail reason: %w)", err, status)
	}

	if status != nil {
		return run, status
	}

	return run, nil
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}

// WithRunTimeout bounds the wall-clock time of one run. A run over the limit
// is abandoned with status failed and its partial counts preserved.
func WithRunTimeout(timeout time.Duration) Option {
	return func(s *Syncer) {
		s.runTimeout = timeout
	}
}

// runProgress aggregates per-item outcomes of one run. Counters are atomics
// and the detail log is guarded, so workers may report concurrently.
type runProgress struct {
	run *models.SyncRun

	succeeded atomic.Int32
	failed    atomic.Int32

	mu     sync.Mutex
	detail []models.RunDetailEntry
}

func newRunProgress(run *models.SyncRun) *runProgress {
	return &runProgress{
		run: run,
	}
}

func (p *runProgress) succeed() {
	p.succeeded.Add(1)
}

func (p *runProgress) fail(sourceProductID, stage string, err error) {
	p.failed.Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.detail = append(p.detail, models.RunDetailEntry{
		SourceProductID: sourceProductID,
		Stage:           stage,
		Message:         err.Error(),
	})
}

func (p *runProgress) finalize(status error) *models.SyncRun {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.run.ItemsSucceeded = p.succeeded.Load()
	p.run.ItemsFailed = p.failed.Load()
	p.run.Detail = p.detail
	p.run.Status = runStatus(p.run.ItemsSucceeded, p.run.ItemsFailed, status)

	if status != nil {
		p.run.Detail = append(p.run.Detail, models.RunDetailEntry{
			Stage:   stageRun,
			Message: status.Error(),
		})
	}

	return p.run
}

func runStatus(succeeded, failed int32, status error) models.RunStatus {
	switch {
	case status != nil:
		return models.RunFailed
	case failed == 0 && succeeded > 0:
		return models.RunSuccess
	case succeeded == 0 && failed > 0:
		return models.RunFailed
	default:
		return models.RunPartial
	}
}
