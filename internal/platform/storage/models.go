package storage

import (
	"encoding/json"
	"fmt"

	"github.com/craftline/catalog-sync/internal/platform/models"

	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.SyncRun) (*pgmodels.SyncRun, error) {
	detail, err := json.Marshal(run.Detail)
	if err != nil {
		return nil, fmt.Errorf("can't marshal run detail: %w", err)
	}

	return &pgmodels.SyncRun{
		ID:             int32(run.ID),
		Trigger:        string(run.Trigger),
		Status:         string(run.Status),
		StartedAt:      run.StartedAt,
		CompletedAt:    run.CompletedAt,
		ItemsSucceeded: run.ItemsSucceeded,
		ItemsFailed:    run.ItemsFailed,
		Detail:         string(detail),
	}, nil
}

func toAppRun(run *pgmodels.SyncRun) (*models.SyncRun, error) {
	var detail []models.RunDetailEntry
	if run.Detail != "" {
		if err := json.Unmarshal([]byte(run.Detail), &detail); err != nil {
			return nil, fmt.Errorf("can't unmarshal run detail: %w", err)
		}
	}

	return &models.SyncRun{
		ID:             int(run.ID),
		Trigger:        models.Trigger(run.Trigger),
		Status:         models.RunStatus(run.Status),
		StartedAt:      run.StartedAt,
		CompletedAt:    run.CompletedAt,
		ItemsSucceeded: run.ItemsSucceeded,
		ItemsFailed:    run.ItemsFailed,
		Detail:         detail,
	}, nil
}

func toDBChange(change *models.ProductChange) *pgmodels.ProductChange {
	return &pgmodels.ProductChange{
		ID:               int32(change.ID),
		LocalProductID:   int32(change.LocalProductID),
		SourceProductID:  change.SourceProductID,
		FieldName:        change.FieldName,
		ChangeType:       string(change.ChangeType),
		Severity:         string(change.Severity),
		ValueKind:        string(change.OldValue.Kind),
		OldValue:         change.OldValue.Text,
		NewValue:         change.NewValue.Text,
		OriginatingRunID: int32(change.OriginatingRunID),
		Status:           string(change.Status),
		ReviewedBy:       change.ReviewedBy,
		ReviewedAt:       change.ReviewedAt,
		CreatedAt:        change.CreatedAt,
	}
}

func toAppChange(change *pgmodels.ProductChange) *models.ProductChange {
	kind := models.ValueKind(change.ValueKind)

	return &models.ProductChange{
		ID:               int(change.ID),
		LocalProductID:   int(change.LocalProductID),
		SourceProductID:  change.SourceProductID,
		FieldName:        change.FieldName,
		ChangeType:       models.ChangeType(change.ChangeType),
		Severity:         models.Severity(change.Severity),
		OldValue:         models.ChangeValue{Kind: kind, Text: change.OldValue},
		NewValue:         models.ChangeValue{Kind: kind, Text: change.NewValue},
		OriginatingRunID: int(change.OriginatingRunID),
		Status:           models.ChangeStatus(change.Status),
		ReviewedBy:       change.ReviewedBy,
		ReviewedAt:       change.ReviewedAt,
		CreatedAt:        change.CreatedAt,
	}
}

func toAppMapping(mapping *pgmodels.CategoryMapping) *models.CategoryMapping {
	return &models.CategoryMapping{
		ID:                 int(mapping.ID),
		SourceCategoryID:   mapping.SourceCategoryID,
		SourceCategoryName: mapping.SourceCategoryName,
		LocalCategoryID:    mapping.LocalCategoryID,
		IsActive:           mapping.IsActive,
		CreatedAt:          mapping.CreatedAt,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:           int32(product.ID),
		ExternalID:   product.ExternalID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Currency:     product.Currency,
		Availability: product.Availability,
		ImageURL:     product.ImageURL,
		CategoryID:   product.CategoryID,
		IsActive:     product.IsActive,
		CreatedAt:    product.CreatedAt,
	}
}

func toAppProduct(product *pgmodels.Product, variants []pgmodels.ProductVariant) *models.Product {
	appProduct := models.Product{
		ID:           int(product.ID),
		ExternalID:   product.ExternalID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Currency:     product.Currency,
		Availability: product.Availability,
		ImageURL:     product.ImageURL,
		CategoryID:   product.CategoryID,
		IsActive:     product.IsActive,
		CreatedAt:    product.CreatedAt,
	}

	for ix := range variants {
		appProduct.Variants = append(appProduct.Variants, models.ProductVariant{
			ID:           int(variants[ix].ID),
			ProductID:    int(variants[ix].ProductID),
			ExternalID:   variants[ix].ExternalID,
			Name:         variants[ix].Name,
			Price:        variants[ix].Price,
			Availability: variants[ix].Availability,
			ImageURL:     variants[ix].ImageURL,
			Color:        variants[ix].Color,
			Size:         variants[ix].Size,
		})
	}

	return &appProduct
}

// ToDBVariants converts source variants into postgres variant models.
func ToDBVariants(productID int32, variants []models.SourceVariant) []pgmodels.ProductVariant {
	if len(variants) == 0 {
		return []pgmodels.ProductVariant{}
	}

	dbVariants := make([]pgmodels.ProductVariant, 0, len(variants))
	for ix := range variants {
		dbVariants = append(dbVariants, pgmodels.ProductVariant{
			ProductID:    productID,
			ExternalID:   variants[ix].ID,
			Name:         variants[ix].Name,
			Price:        variants[ix].Price,
			Availability: variants[ix].Availability,
			ImageURL:     variants[ix].ImageURL,
			Color:        variants[ix].Color,
			Size:         variants[ix].Size,
		})
	}

	return dbVariants
}
