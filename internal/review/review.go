package review

import (
	"context"
	"fmt"

	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name ChangeStore --filename changestore.go

// ChangeStore persists product changes and the local fields they target.
type ChangeStore interface {
	// GetChange returns one change by ID or ErrNotFound.
	GetChange(ctx context.Context, id int) (*models.ProductChange, error)
	// ListChanges returns changes matching the filter.
	ListChanges(ctx context.Context, filter models.ChangeFilter) ([]models.ProductChange, error)
	// TransitionChange conditionally moves one change between statuses.
	TransitionChange(ctx context.Context, id int, from, to models.ChangeStatus, actor string) (*models.ProductChange, error)
	// ApplyChange atomically applies one pending change to the local catalog.
	ApplyChange(ctx context.Context, id int, actor string) (*models.ProductChange, error)
	// ProductByID returns one local product with its variants.
	ProductByID(ctx context.Context, id int) (*models.Product, error)
}

// Engine drives pending changes through operator review. Approving a change
// is the only path that writes detected values into the local catalog.
type Engine struct {
	store  ChangeStore
	logger *zerolog.Logger
}

// NewEngine returns new Engine.
func NewEngine(store ChangeStore, logger *zerolog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
	}
}

// Approve applies one pending change: the new value is written into the
// target local field and the change becomes applied, atomically. A change
// another actor already reviewed surfaces as ErrInvalidTransition.
func (e *Engine) Approve(ctx context.Context, changeID int, actor string) (*models.ProductChange, error) {
	applied, err := e.store.ApplyChange(ctx, changeID, actor)
	if err != nil {
		return nil, fmt.Errorf("can't approve change %d: %w", changeID, err)
	}

	e.logger.Info().
		Int("changeId", applied.ID).
		Int("productId", applied.LocalProductID).
		Str("field", applied.FieldName).
		Str("actor", actor).
		Msg("change approved and applied")

	return applied, nil
}

// Reject terminally rejects one pending change. No field write occurs.
func (e *Engine) Reject(ctx context.Context, changeID int, actor string) (*models.ProductChange, error) {
	rejected, err := e.store.TransitionChange(ctx, changeID, models.ChangePendingReview, models.ChangeRejected, actor)
	if err != nil {
		return nil, fmt.Errorf("can't reject change %d: %w", changeID, err)
	}

	e.logger.Info().
		Int("changeId", rejected.ID).
		Int("productId", rejected.LocalProductID).
		Str("field", rejected.FieldName).
		Str("actor", actor).
		Msg("change rejected")

	return rejected, nil
}

// GetChange returns one change by ID, whatever its status.
func (e *Engine) GetChange(ctx context.Context, changeID int) (*models.ProductChange, error) {
	change, err := e.store.GetChange(ctx, changeID)
	if err != nil {
		return nil, fmt.Errorf("can't get change %d: %w", changeID, err)
	}

	return change, nil
}

// ListPending returns the operator review queue, optionally narrowed by
// severity, change type or product.
func (e *Engine) ListPending(ctx context.Context, filter models.ChangeFilter) ([]models.ProductChange, error) {
	filter.Status = models.ChangePendingReview

	pending, err := e.store.ListChanges(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("can't list pending changes: %w", err)
	}

	return pending, nil
}

// Reconcile scans pending changes for local fields that already carry the
// pending new value. Such drift means an apply wrote the field but failed to
// finish the transition; it is logged as recoverable, never dropped.
// Returns the drifted changes.
func (e *Engine) Reconcile(ctx context.Context) ([]models.ProductChange, error) {
	pending, err := e.store.ListChanges(ctx, models.ChangeFilter{Status: models.ChangePendingReview})
	if err != nil {
		return nil, fmt.Errorf("can't list pending changes: %w", err)
	}

	var drifted []models.ProductChange
	products := make(map[int]*models.Product)

	for ix := range pending {
		change := &pending[ix]

		product, cached := products[change.LocalProductID]
		if !cached {
			product, err = e.store.ProductByID(ctx, change.LocalProductID)
			if err != nil {
				e.logger.Warn().
					Err(err).
					Int("changeId", change.ID).
					Int("productId", change.LocalProductID).
					Msg("can't load product for reconciliation")
				continue
			}
			products[change.LocalProductID] = product
		}

		localValue, comparable := models.LocalFieldValue(product, change.FieldName)
		if !comparable {
			continue
		}

		if !valuesMatch(change.NewValue, localValue) {
			continue
		}

		e.logger.Warn().
			Int("changeId", change.ID).
			Int("productId", change.LocalProductID).
			Str("field", change.FieldName).
			Msg("local field already carries pending value; change was applied but not transitioned")

		drifted = append(drifted, *change)
	}

	return drifted, nil
}

// valuesMatch compares a change value against a raw local field value using
// the same normalization the detector used to build the value.
func valuesMatch(value models.ChangeValue, localValue string) bool {
	if value.Kind == models.KindPrice {
		localPrice, err := models.ChangeValue{Kind: models.KindPrice, Text: localValue}.Price()
		if err != nil {
			return false
		}
		pendingPrice, err := value.Price()
		if err != nil {
			return false
		}
		return pendingPrice.Equal(localPrice)
	}

	return value.Text == localValue
}
