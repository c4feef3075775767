package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// ProductByExternalID returns one local product with its variants, matched by
// the stable source catalog identifier. It returns ErrNotFound when the
// product has no local counterpart yet.
func (p Postgres) ProductByExternalID(ctx context.Context, externalID string) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ExternalID.EQ(pg.String(externalID))).
		QueryContext(ctx, p.db, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get product: %w", err)
	}

	variants, err := getVariants(ctx, p.db, product.ID)
	if err != nil {
		return nil, fmt.Errorf("can't get product variants: %w", err)
	}

	return toAppProduct(&product, variants), nil
}

// ProductByID returns one local product with its variants by primary key.
func (p Postgres) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.EQ(pg.Int32(int32(id)))).
		QueryContext(ctx, p.db, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get product: %w", err)
	}

	variants, err := getVariants(ctx, p.db, product.ID)
	if err != nil {
		return nil, fmt.Errorf("can't get product variants: %w", err)
	}

	return toAppProduct(&product, variants), nil
}

// CreateProduct creates a local product with its variants from a source
// product. New products start inactive so they never reach the storefront
// before an operator publishes them.
func (p Postgres) CreateProduct(ctx context.Context, source *models.SourceProduct) (*models.Product, error) {
	var created *models.Product

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		localCategoryID, err := mappedCategoryID(ctx, tx, source.CategoryID)
		if err != nil {
			return err
		}

		newProduct := pgmodels.Product{
			ExternalID:   source.ID,
			Name:         source.Name,
			Description:  source.Description,
			Price:        source.Price,
			Currency:     source.Currency,
			Availability: source.Availability,
			ImageURL:     source.ImageURL,
			CategoryID:   localCategoryID,
			IsActive:     false,
		}

		err = table.Product.INSERT(table.Product.AllColumns.Except(table.Product.ID, table.Product.CreatedAt)).
			MODEL(newProduct).
			RETURNING(table.Product.AllColumns).
			QueryContext(ctx, tx, &newProduct)
		if err != nil {
			return fmt.Errorf("can't insert product into database: %w", err)
		}

		variants := ToDBVariants(newProduct.ID, source.Variants)
		if len(variants) > 0 {
			_, err = table.ProductVariant.INSERT(table.ProductVariant.AllColumns.Except(table.ProductVariant.ID)).
				MODELS(variants).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't insert product variants into database: %w", err)
			}
		}

		storedVariants, err := getVariants(ctx, tx, newProduct.ID)
		if err != nil {
			return fmt.Errorf("can't get inserted variants: %w", err)
		}

		created = toAppProduct(&newProduct, storedVariants)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't create product: %w", err)
	}

	return created, nil
}

// applyField writes an approved change's new value into the local catalog.
// Each apply is a single-field update of a single row.
func applyField(ctx context.Context, tx *sql.Tx, change *models.ProductChange) error {
	if variantID, field, ok := models.ParseVariantField(change.FieldName); ok {
		return applyVariantField(ctx, tx, change.LocalProductID, variantID, field, change.NewValue.Text)
	}

	if change.FieldName == models.FieldCategory {
		return applyCategory(ctx, tx, change.LocalProductID, change.NewValue.Text)
	}

	return applyProductField(ctx, tx, change.LocalProductID, change.FieldName, change.NewValue.Text)
}

func applyProductField(ctx context.Context, tx *sql.Tx, productID int, field, value string) error {
	column, err := productColumn(field)
	if err != nil {
		return err
	}

	result, err := table.Product.UPDATE().
		SET(column.SET(pg.String(value))).
		WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	return requireOneRow(result)
}

func applyVariantField(ctx context.Context, tx *sql.Tx, productID int, variantID, field, value string) error {
	column, err := variantColumn(field)
	if err != nil {
		return err
	}

	result, err := table.ProductVariant.UPDATE().
		SET(column.SET(pg.String(value))).
		WHERE(pg.AND(
			table.ProductVariant.ProductID.EQ(pg.Int32(int32(productID))),
			table.ProductVariant.ExternalID.EQ(pg.String(variantID)),
		)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	return requireOneRow(result)
}

// applyCategory moves the product to the local category mapped to the new
// source category. Unmapped categories can't be applied until an operator
// assigns them.
func applyCategory(ctx context.Context, tx *sql.Tx, productID int, sourceCategoryID string) error {
	localCategoryID, err := mappedCategoryID(ctx, tx, sourceCategoryID)
	if err != nil {
		return err
	}

	if localCategoryID == nil {
		return fmt.Errorf("source category %q is not mapped to a local category", sourceCategoryID)
	}

	result, err := table.Product.UPDATE().
		SET(table.Product.CategoryID.SET(pg.Int32(*localCategoryID))).
		WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	return requireOneRow(result)
}

func productColumn(field string) (pg.ColumnString, error) {
	switch field {
	case models.FieldName:
		return table.Product.Name, nil
	case models.FieldDescription:
		return table.Product.Description, nil
	case models.FieldPrice:
		return table.Product.Price, nil
	case models.FieldAvailability:
		return table.Product.Availability, nil
	case models.FieldImageURL:
		return table.Product.ImageURL, nil
	default:
		return nil, fmt.Errorf("product field %q is not writable", field)
	}
}

func variantColumn(field string) (pg.ColumnString, error) {
	switch field {
	case models.FieldName:
		return table.ProductVariant.Name, nil
	case models.FieldPrice:
		return table.ProductVariant.Price, nil
	case models.FieldAvailability:
		return table.ProductVariant.Availability, nil
	case models.FieldImageURL:
		return table.ProductVariant.ImageURL, nil
	case models.FieldColor:
		return table.ProductVariant.Color, nil
	case models.FieldSize:
		return table.ProductVariant.Size, nil
	default:
		return nil, fmt.Errorf("variant field %q is not writable", field)
	}
}

func mappedCategoryID(ctx context.Context, db qrm.DB, sourceCategoryID string) (*int32, error) {
	if sourceCategoryID == "" {
		return nil, nil
	}

	var mapping pgmodels.CategoryMapping
	err := table.CategoryMapping.SELECT(table.CategoryMapping.AllColumns).
		WHERE(table.CategoryMapping.SourceCategoryID.EQ(pg.String(sourceCategoryID))).
		QueryContext(ctx, db, &mapping)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can't get category mapping: %w", err)
	}

	return mapping.LocalCategoryID, nil
}

func getVariants(ctx context.Context, db qrm.Queryable, productID int32) ([]pgmodels.ProductVariant, error) {
	var variants []pgmodels.ProductVariant
	err := table.ProductVariant.SELECT(table.ProductVariant.AllColumns).
		WHERE(table.ProductVariant.ProductID.EQ(pg.Int32(productID))).
		ORDER_BY(table.ProductVariant.ID.ASC()).
		QueryContext(ctx, db, &variants)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	return variants, nil
}

func requireOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return platform.ErrNotFound
	}
	return nil
}
