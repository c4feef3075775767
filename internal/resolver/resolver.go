package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/craftline/catalog-sync/internal/platform/models"
)

//go:generate mockery --name MappingStore --filename mappingstore.go

// MappingStore persists category mappings.
type MappingStore interface {
	// UpsertMapping inserts a mapping for a fresh source category or refreshes
	// the name of a known one. Local category assignments stay untouched.
	UpsertMapping(ctx context.Context, category models.SourceCategory) (*models.CategoryMapping, error)
	// ListMappings returns all known category mappings.
	ListMappings(ctx context.Context) ([]models.CategoryMapping, error)
}

// Resolver reconciles source catalog categories against the local taxonomy
// through the persisted mapping table. It creates unmapped entries and
// refreshes names; it never deletes mappings and never overwrites the
// operator's local category assignment.
type Resolver struct {
	store MappingStore
}

// NewResolver returns new Resolver.
func NewResolver(store MappingStore) *Resolver {
	return &Resolver{
		store: store,
	}
}

// Resolve upserts the mapping row for one source category and returns it.
// Resolving the same category twice produces no row changes.
func (r *Resolver) Resolve(ctx context.Context, category models.SourceCategory) (*models.CategoryMapping, error) {
	if strings.TrimSpace(category.ID) == "" {
		return nil, fmt.Errorf("source category has no id")
	}

	mapping, err := r.store.UpsertMapping(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("can't resolve category %q: %w", category.ID, err)
	}

	return mapping, nil
}

// Unmapped returns mappings still waiting for an operator to assign a local
// category.
func (r *Resolver) Unmapped(ctx context.Context) ([]models.CategoryMapping, error) {
	mappings, err := r.store.ListMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list category mappings: %w", err)
	}

	unmapped := make([]models.CategoryMapping, 0, len(mappings))
	for ix := range mappings {
		if mappings[ix].LocalCategoryID == nil {
			unmapped = append(unmapped, mappings[ix])
		}
	}

	return unmapped, nil
}
