package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// BeginTx begins DB transaction. Returns function to roll it back.
func BeginTx(t *testing.T, db *sql.DB) (*sql.Tx, func()) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatal("begin transaction", err)
	}

	rollback := func() {
		if err := tx.Rollback(); err != nil {
			t.Fatal("can't rollback transaction", err)
		}
	}

	return tx, rollback
}

// CleanupData removes all data from all tables.
func CleanupData(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, stmt := range []string{
		"DELETE FROM product_change",
		"DELETE FROM category_mapping",
		"DELETE FROM product_variant",
		"DELETE FROM product",
		"DELETE FROM sync_run",
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatal("can't cleanup data", err)
		}
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertVariants is a helper test function to insert product variants.
func InsertVariants(t *testing.T, exc qrm.Executable, variants ...pgmodels.ProductVariant) {
	t.Helper()

	if len(variants) == 0 {
		return
	}

	_, err := table.ProductVariant.INSERT(table.ProductVariant.AllColumns).MODELS(variants).Exec(exc)
	if err != nil {
		t.Fatal("can't insert product variants", err)
	}
}

// InsertRuns is a helper test function to insert sync runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.SyncRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.SyncRun.INSERT(table.SyncRun.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert sync runs", err)
	}
}

// InsertMappings is a helper test function to insert category mappings.
func InsertMappings(t *testing.T, exc qrm.Executable, mappings ...pgmodels.CategoryMapping) {
	t.Helper()

	if len(mappings) == 0 {
		return
	}

	_, err := table.CategoryMapping.INSERT(table.CategoryMapping.AllColumns).MODELS(mappings).Exec(exc)
	if err != nil {
		t.Fatal("can't insert category mappings", err)
	}
}

// InsertChanges is a helper test function to insert product changes.
func InsertChanges(t *testing.T, exc qrm.Executable, changes ...pgmodels.ProductChange) {
	t.Helper()

	if len(changes) == 0 {
		return
	}

	_, err := table.ProductChange.INSERT(table.ProductChange.AllColumns).MODELS(changes).Exec(exc)
	if err != nil {
		t.Fatal("can't insert product changes", err)
	}
}

// GetRuns is a helper test function to get all sync runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.SyncRun {
	t.Helper()

	runs := []pgmodels.SyncRun{}
	err := table.SyncRun.SELECT(table.SyncRun.AllColumns).
		WHERE(table.SyncRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get sync runs", err)
	}

	return runs
}

// GetChanges is a helper test function to get all product changes.
func GetChanges(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductChange {
	t.Helper()

	changes := []pgmodels.ProductChange{}
	err := table.ProductChange.SELECT(table.ProductChange.AllColumns).
		WHERE(table.ProductChange.ID.IS_NOT_NULL()).
		ORDER_BY(table.ProductChange.ID.ASC()).
		Query(queryable, &changes)
	if err != nil {
		t.Fatal("can't get product changes", err)
	}

	return changes
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProduct is a helper test function to get one product by ID.
func GetProduct(t *testing.T, queryable qrm.Queryable, id int32) pgmodels.Product {
	t.Helper()

	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.EQ(pg.Int32(id))).
		Query(queryable, &product)
	if err != nil {
		t.Fatal("can't get product", err)
	}

	return product
}

// GetMappings is a helper test function to get all category mappings.
func GetMappings(t *testing.T, queryable qrm.Queryable) []pgmodels.CategoryMapping {
	t.Helper()

	mappings := []pgmodels.CategoryMapping{}
	err := table.CategoryMapping.SELECT(table.CategoryMapping.AllColumns).
		WHERE(table.CategoryMapping.ID.IS_NOT_NULL()).
		Query(queryable, &mappings)
	if err != nil {
		t.Fatal("can't get category mappings", err)
	}

	return mappings
}
