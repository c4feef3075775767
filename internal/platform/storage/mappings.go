package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// UpsertMapping records one source category, keyed by its source ID. A fresh
// category gets an unmapped row; a known one only has its name refreshed.
// The local category assignment is operator-owned and never written here.
func (p Postgres) UpsertMapping(ctx context.Context, category models.SourceCategory) (*models.CategoryMapping, error) {
	newMapping := pgmodels.CategoryMapping{
		SourceCategoryID:   category.ID,
		SourceCategoryName: category.Name,
		IsActive:           true,
	}

	err := table.CategoryMapping.INSERT(
		table.CategoryMapping.SourceCategoryID,
		table.CategoryMapping.SourceCategoryName,
		table.CategoryMapping.IsActive,
	).
		MODEL(newMapping).
		ON_CONFLICT(table.CategoryMapping.SourceCategoryID).
		DO_UPDATE(
			pg.SET(
				table.CategoryMapping.SourceCategoryName.SET(table.CategoryMapping.EXCLUDED.SourceCategoryName),
			),
		).
		RETURNING(table.CategoryMapping.AllColumns).
		QueryContext(ctx, p.db, &newMapping)
	if err != nil {
		return nil, fmt.Errorf("can't upsert category mapping: %w", err)
	}

	return toAppMapping(&newMapping), nil
}

// MappingBySourceID returns the mapping for one source category or ErrNotFound.
func (p Postgres) MappingBySourceID(ctx context.Context, sourceCategoryID string) (*models.CategoryMapping, error) {
	var mapping pgmodels.CategoryMapping
	err := table.CategoryMapping.SELECT(table.CategoryMapping.AllColumns).
		WHERE(table.CategoryMapping.SourceCategoryID.EQ(pg.String(sourceCategoryID))).
		QueryContext(ctx, p.db, &mapping)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get category mapping: %w", err)
	}

	return toAppMapping(&mapping), nil
}

// ListMappings returns all known category mappings ordered by source name.
func (p Postgres) ListMappings(ctx context.Context) ([]models.CategoryMapping, error) {
	var mappings []pgmodels.CategoryMapping
	err := table.CategoryMapping.SELECT(table.CategoryMapping.AllColumns).
		WHERE(table.CategoryMapping.ID.IS_NOT_NULL()).
		ORDER_BY(table.CategoryMapping.SourceCategoryName.ASC()).
		QueryContext(ctx, p.db, &mappings)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list category mappings: %w", err)
	}

	result := make([]models.CategoryMapping, 0, len(mappings))
	for ix := range mappings {
		result = append(result, *toAppMapping(&mappings[ix]))
	}

	return result, nil
}
