package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/storage"
	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/craftline/catalog-sync/internal/platform/storage/storagetesting"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	run, err := pg.StartRun(context.TODO(), models.TriggerManual)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NotNil(run)
	s.NotZero(run.ID, "claimed run should have an ID")
	s.Equal(models.TriggerManual, run.Trigger)
	s.Equal(models.RunRunning, run.Status)
	s.Nil(run.CompletedAt, "running run shouldn't be completed")

	// a second claim while the first run is still running must lose
	_, err = pg.StartRun(context.TODO(), models.TriggerScheduled)
	s.Require().ErrorIs(err, platform.ErrAlreadyRunning, "only one run may be running")

	run.Status = models.RunSuccess
	run.CompletedAt = lo.ToPtr(time.Now().UTC())
	s.Require().NoError(pg.FinishRun(context.TODO(), run))

	next, err := pg.StartRun(context.TODO(), models.TriggerScheduled)
	s.Require().NoError(err, "finished run shouldn't block new claims")
	s.Equal(models.TriggerScheduled, next.Trigger)

	next.Status = models.RunFailed
	next.CompletedAt = lo.ToPtr(time.Now().UTC())
	s.Require().NoError(pg.FinishRun(context.TODO(), next))
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	run, err := pg.StartRun(context.TODO(), models.TriggerManual)
	s.Require().NoError(err, "shouldn't return any error")

	run.Status = models.RunPartial
	run.CompletedAt = lo.ToPtr(time.Now().UTC().Truncate(time.Microsecond))
	run.ItemsSucceeded = 9
	run.ItemsFailed = 1
	run.Detail = []models.RunDetailEntry{
		{SourceProductID: "prod-9", Stage: "validate", Message: "product \"prod-9\" has no price"},
	}

	s.Require().NoError(pg.FinishRun(context.TODO(), run), "shouldn't return any error")

	stored, err := pg.LastCompletedRun(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(run.ID, stored.ID)
	s.Equal(models.RunPartial, stored.Status)
	s.Equal(int32(9), stored.ItemsSucceeded)
	s.Equal(int32(1), stored.ItemsFailed)
	s.Equal(run.Detail, stored.Detail, "run detail should survive the round trip")

	// terminal runs are never mutated again
	run.Status = models.RunSuccess
	err = pg.FinishRun(context.TODO(), run)
	s.Require().ErrorContains(err, "is not running", "finished run shouldn't be finishable again")
}

func (s *PostgresTestSuite) TestIntegrationLastCompletedRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	_, err := pg.LastCompletedRun(context.TODO())
	s.Require().ErrorIs(err, platform.ErrNotFound, "no completed runs yet")

	storagetesting.InsertRuns(s.T(), s.DB,
		pgmodels.SyncRun{
			ID:          9001,
			Trigger:     string(models.TriggerManual),
			Status:      string(models.RunSuccess),
			StartedAt:   time.Now().UTC().Add(-2 * time.Hour),
			CompletedAt: lo.ToPtr(time.Now().UTC().Add(-2 * time.Hour)),
			Detail:      "[]",
		},
		pgmodels.SyncRun{
			ID:          9002,
			Trigger:     string(models.TriggerScheduled),
			Status:      string(models.RunFailed),
			StartedAt:   time.Now().UTC().Add(-time.Hour),
			CompletedAt: lo.ToPtr(time.Now().UTC().Add(-time.Hour)),
			Detail:      "[]",
		},
	)

	last, err := pg.LastCompletedRun(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(9002, last.ID, "should return the most recently completed run")
}

func (s *PostgresTestSuite) TestIntegrationSyncDetected() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB, fakeDBProduct(9100, "prod-1", "17.99"))
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101), fakeDBRun(9102))

	priceChange := models.ProductChange{
		LocalProductID:   9100,
		SourceProductID:  "prod-1",
		FieldName:        models.FieldPrice,
		ChangeType:       models.ChangeTypePrice,
		Severity:         models.SeverityCritical,
		OldValue:         models.ChangeValue{Kind: models.KindPrice, Text: "17.99"},
		NewValue:         models.ChangeValue{Kind: models.KindPrice, Text: "19.99"},
		OriginatingRunID: 9101,
		Status:           models.ChangePendingReview,
	}

	compared := []string{models.FieldPrice}

	// first detection creates a pending row
	created, updated, resolved, err := pg.SyncDetected(context.TODO(), 9100, []models.ProductChange{priceChange}, compared)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{1, 0, 0}, [3]int32{created, updated, resolved})

	// identical re-detection is suppressed
	created, updated, resolved, err = pg.SyncDetected(context.TODO(), 9100, []models.ProductChange{priceChange}, compared)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{0, 0, 0}, [3]int32{created, updated, resolved}, "re-running the same detection should change nothing")

	changes := storagetesting.GetChanges(s.T(), s.DB)
	s.Require().Len(changes, 1, "re-detection shouldn't duplicate pending rows")

	// the source moved again: the pending row absorbs the newer value
	movedAgain := priceChange
	movedAgain.NewValue = models.ChangeValue{Kind: models.KindPrice, Text: "21.49"}
	movedAgain.OriginatingRunID = 9102

	created, updated, resolved, err = pg.SyncDetected(context.TODO(), 9100, []models.ProductChange{movedAgain}, compared)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{0, 1, 0}, [3]int32{created, updated, resolved})

	changes = storagetesting.GetChanges(s.T(), s.DB)
	s.Require().Len(changes, 1)
	s.Equal("21.49", changes[0].NewValue, "pending row should carry the newest source value")
	s.Equal(int32(9102), changes[0].OriginatingRunID)

	// the source reverted: the pending change is moot and disappears
	created, updated, resolved, err = pg.SyncDetected(context.TODO(), 9100, nil, compared)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{0, 0, 1}, [3]int32{created, updated, resolved})
	s.Empty(storagetesting.GetChanges(s.T(), s.DB), "moot pending changes should be removed")
}

func (s *PostgresTestSuite) TestIntegrationSyncDetectedKeepsReviewedRows() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB, fakeDBProduct(9100, "prod-1", "17.99"))
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101))
	storagetesting.InsertChanges(s.T(), s.DB, pgmodels.ProductChange{
		ID:               9200,
		LocalProductID:   9100,
		SourceProductID:  "prod-1",
		FieldName:        models.FieldName,
		ChangeType:       string(models.ChangeTypeMetadata),
		Severity:         string(models.SeverityStandard),
		ValueKind:        string(models.KindText),
		OldValue:         "Alpine Jacket",
		NewValue:         "Alpine Parka",
		OriginatingRunID: 9101,
		Status:           string(models.ChangeRejected),
		CreatedAt:        time.Now().UTC(),
	})

	// only pending rows take part in reconciliation
	created, updated, resolved, err := pg.SyncDetected(context.TODO(), 9100, nil, []string{models.FieldName})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{0, 0, 0}, [3]int32{created, updated, resolved})
	s.Len(storagetesting.GetChanges(s.T(), s.DB), 1, "reviewed rows should never be touched")
}

func (s *PostgresTestSuite) TestIntegrationSyncDetectedKeepsUncomparedFields() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB, fakeDBProduct(9100, "prod-1", "17.99"))
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101))
	storagetesting.InsertChanges(s.T(), s.DB, fakeDBChange(9200, 9100, 9101, models.FieldCategory, "12", "40"))

	// a later run skipped the category, so its pending row isn't moot
	created, updated, resolved, err := pg.SyncDetected(context.TODO(), 9100, nil, []string{models.FieldPrice})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{0, 0, 0}, [3]int32{created, updated, resolved})
	s.Len(storagetesting.GetChanges(s.T(), s.DB), 1, "a pending change for an uncompared field should survive")

	// once the field is compared again with no difference, the row resolves
	created, updated, resolved, err = pg.SyncDetected(context.TODO(), 9100, nil, []string{models.FieldCategory})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([3]int32{0, 0, 1}, [3]int32{created, updated, resolved})
	s.Empty(storagetesting.GetChanges(s.T(), s.DB), "a compared field with no detected change is moot")
}

func (s *PostgresTestSuite) TestIntegrationTransitionChange() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB, fakeDBProduct(9100, "prod-1", "17.99"))
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101))
	storagetesting.InsertChanges(s.T(), s.DB, fakeDBChange(9200, 9100, 9101, models.FieldName, "Alpine Jacket", "Alpine Parka"))

	approved, err := pg.TransitionChange(context.TODO(), 9200, models.ChangePendingReview, models.ChangeApproved, "ops@example.com")
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.ChangeApproved, approved.Status)
	s.Equal(lo.ToPtr("ops@example.com"), approved.ReviewedBy)
	s.NotNil(approved.ReviewedAt, "review timestamp should be set")

	// the same transition can't happen twice
	_, err = pg.TransitionChange(context.TODO(), 9200, models.ChangePendingReview, models.ChangeApproved, "other@example.com")
	s.Require().ErrorIs(err, platform.ErrInvalidTransition, "second reviewer should lose the race")

	// approved changes may still be applied
	applied, err := pg.TransitionChange(context.TODO(), 9200, models.ChangeApproved, models.ChangeApplied, "ops@example.com")
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.ChangeApplied, applied.Status)

	// applied is terminal
	_, err = pg.TransitionChange(context.TODO(), 9200, models.ChangeApplied, models.ChangeRejected, "ops@example.com")
	s.Require().ErrorIs(err, platform.ErrInvalidTransition, "terminal statuses have no outgoing transitions")

	_, err = pg.TransitionChange(context.TODO(), 4242, models.ChangePendingReview, models.ChangeRejected, "ops@example.com")
	s.Require().ErrorIs(err, platform.ErrNotFound, "unknown change should surface as not found")
}

func (s *PostgresTestSuite) TestIntegrationApplyChange() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB, fakeDBProduct(9100, "prod-1", "17.99"))
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101))
	storagetesting.InsertChanges(s.T(), s.DB, pgmodels.ProductChange{
		ID:               9200,
		LocalProductID:   9100,
		SourceProductID:  "prod-1",
		FieldName:        models.FieldPrice,
		ChangeType:       string(models.ChangeTypePrice),
		Severity:         string(models.SeverityCritical),
		ValueKind:        string(models.KindPrice),
		OldValue:         "17.99",
		NewValue:         "19.99",
		OriginatingRunID: 9101,
		Status:           string(models.ChangePendingReview),
		CreatedAt:        time.Now().UTC(),
	})

	applied, err := pg.ApplyChange(context.TODO(), 9200, "ops@example.com")
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.ChangeApplied, applied.Status)

	product := storagetesting.GetProduct(s.T(), s.DB, 9100)
	s.Equal("19.99", product.Price, "apply should write the new value into the local field")

	// applied is terminal, re-applying must fail and not double write
	_, err = pg.ApplyChange(context.TODO(), 9200, "other@example.com")
	s.Require().ErrorIs(err, platform.ErrInvalidTransition)
}

func (s *PostgresTestSuite) TestIntegrationApplyVariantChange() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB, fakeDBProduct(9100, "prod-1", "17.99"))
	storagetesting.InsertVariants(s.T(), s.DB, pgmodels.ProductVariant{
		ID:           9300,
		ProductID:    9100,
		ExternalID:   "var-1",
		Name:         "Alpine Jacket M",
		Price:        "17.99",
		Availability: "in_stock",
	})
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101))
	storagetesting.InsertChanges(s.T(), s.DB, fakeDBChange(
		9200, 9100, 9101,
		models.VariantField("var-1", models.FieldAvailability),
		"in_stock", "out_of_stock",
	))

	_, err := pg.ApplyChange(context.TODO(), 9200, "ops@example.com")
	s.Require().NoError(err, "shouldn't return any error")

	local, err := pg.ProductByID(context.TODO(), 9100)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(local.Variants, 1)
	s.Equal("out_of_stock", local.Variants[0].Availability, "apply should write the variant field")
}

func (s *PostgresTestSuite) TestIntegrationUpsertMapping() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	mapping, err := pg.UpsertMapping(context.TODO(), models.SourceCategory{ID: "cat-1", Name: "Jackets"})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal("cat-1", mapping.SourceCategoryID)
	s.Equal("Jackets", mapping.SourceCategoryName)
	s.Nil(mapping.LocalCategoryID, "fresh mappings should be unmapped")

	// operator assigns a local category
	_, err = s.DB.Exec("UPDATE category_mapping SET local_category_id = 7 WHERE source_category_id = 'cat-1'")
	s.Require().NoError(err)

	// re-resolving refreshes the name but never the operator's assignment
	mapping, err = pg.UpsertMapping(context.TODO(), models.SourceCategory{ID: "cat-1", Name: "Outdoor Jackets"})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal("Outdoor Jackets", mapping.SourceCategoryName)
	s.Equal(lo.ToPtr(int32(7)), mapping.LocalCategoryID, "manual assignment should survive re-resolving")

	mappings := storagetesting.GetMappings(s.T(), s.DB)
	s.Len(mappings, 1, "upsert shouldn't duplicate mappings")
}

func (s *PostgresTestSuite) TestIntegrationCreateProduct() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertMappings(s.T(), s.DB, pgmodels.CategoryMapping{
		ID:                 9400,
		SourceCategoryID:   "cat-1",
		SourceCategoryName: "Jackets",
		LocalCategoryID:    lo.ToPtr(int32(7)),
		IsActive:           true,
		CreatedAt:          time.Now().UTC(),
	})

	_, err := pg.ProductByExternalID(context.TODO(), "prod-1")
	s.Require().ErrorIs(err, platform.ErrNotFound, "unknown product should surface as not found")

	created, err := pg.CreateProduct(context.TODO(), &models.SourceProduct{
		ID:           "prod-1",
		Name:         "Alpine Jacket",
		Description:  "Warm.",
		Price:        "199.90",
		Currency:     "EUR",
		Availability: "in_stock",
		CategoryID:   "cat-1",
		Variants: []models.SourceVariant{
			{ID: "var-1", Name: "Alpine Jacket M", Price: "199.90", Availability: "in_stock", Size: lo.ToPtr("M")},
		},
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.False(created.IsActive, "new products should stay inactive until published")
	s.Equal(lo.ToPtr(int32(7)), created.CategoryID, "mapped category should be assigned on intake")
	s.Require().Len(created.Variants, 1)
	s.Equal("var-1", created.Variants[0].ExternalID)

	stored, err := pg.ProductByExternalID(context.TODO(), "prod-1")
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(created.ID, stored.ID)
	s.Len(stored.Variants, 1)
}

func (s *PostgresTestSuite) TestIntegrationListChanges() {
	storagetesting.CleanupData(s.T(), s.DB)
	pg := storage.NewPostgres(s.DB)

	storagetesting.InsertProducts(s.T(), s.DB,
		fakeDBProduct(9100, "prod-1", "17.99"),
		fakeDBProduct(9110, "prod-2", "29.99"),
	)
	storagetesting.InsertRuns(s.T(), s.DB, fakeDBRun(9101))
	storagetesting.InsertChanges(s.T(), s.DB,
		fakeDBChange(9200, 9100, 9101, models.FieldName, "Alpine Jacket", "Alpine Parka"),
		fakeDBChange(9201, 9110, 9101, models.FieldDescription, "Warm.", "Very warm."),
	)

	all, err := pg.ListChanges(context.TODO(), models.ChangeFilter{})
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(all, 2)

	byProduct, err := pg.ListChanges(context.TODO(), models.ChangeFilter{LocalProductID: 9110})
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(byProduct, 1)
	s.Equal(9201, byProduct[0].ID)

	none, err := pg.ListChanges(context.TODO(), models.ChangeFilter{Severity: models.SeverityCritical})
	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(none)
}

func fakeDBProduct(id int32, externalID, price string) pgmodels.Product {
	return pgmodels.Product{
		ID:           id,
		ExternalID:   externalID,
		Name:         "Alpine Jacket",
		Description:  "Warm.",
		Price:        price,
		Currency:     "EUR",
		Availability: "in_stock",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

func fakeDBRun(id int32) pgmodels.SyncRun {
	completedAt := time.Now().UTC()
	return pgmodels.SyncRun{
		ID:          id,
		Trigger:     string(models.TriggerManual),
		Status:      string(models.RunSuccess),
		StartedAt:   completedAt.Add(-time.Minute),
		CompletedAt: &completedAt,
		Detail:      "[]",
	}
}

func fakeDBChange(id, productID, runID int32, field, oldValue, newValue string) pgmodels.ProductChange {
	return pgmodels.ProductChange{
		ID:               id,
		LocalProductID:   productID,
		SourceProductID:  "prod-1",
		FieldName:        field,
		ChangeType:       string(models.ChangeTypeMetadata),
		Severity:         string(models.SeverityStandard),
		ValueKind:        string(models.KindText),
		OldValue:         oldValue,
		NewValue:         newValue,
		OriginatingRunID: runID,
		Status:           string(models.ChangePendingReview),
		CreatedAt:        time.Now().UTC(),
	}
}
