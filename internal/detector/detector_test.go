package detector_test

import (
	"math/rand"
	"testing"

	"github.com/craftline/catalog-sync/internal/detector"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runID = rand.Intn(10000) + 1

func TestUnitDetectNoChanges(t *testing.T) {
	source := modelstesting.FakeSourceProduct()
	local := matchingProduct(source)

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, local.CategoryID)

	require.NoError(t, err, "shouldn't return any error")
	assert.Empty(t, changes, "identical products shouldn't produce any changes")
}

func TestUnitDetectPriceFormattingNoise(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Price = "17.90" })
	local := matchingProduct(source, func(p *models.Product) { p.Price = "17.9" })

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Empty(t, changes, "equal prices in different formats shouldn't produce any changes")
}

func TestUnitDetectPriceChange(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Price = "19.99" })
	local := matchingProduct(source, func(p *models.Product) { p.Price = "17.99" })

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, changes, 1, "should detect exactly one change")

	change := changes[0]
	assert.Equal(t, local.ID, change.LocalProductID)
	assert.Equal(t, source.ID, change.SourceProductID)
	assert.Equal(t, models.FieldPrice, change.FieldName)
	assert.Equal(t, models.ChangeTypePrice, change.ChangeType)
	assert.Equal(t, models.SeverityCritical, change.Severity, "price changes should be critical")
}

func TestUnitDetectPriceChangeValues(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Price = "19.99" })
	local := matchingProduct(source, func(p *models.Product) { p.Price = "17.99" })

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, changes, 1, "should detect exactly one change")

	change := changes[0]
	assert.Equal(t, models.ChangeValue{Kind: models.KindPrice, Text: "17.99"}, change.OldValue)
	assert.Equal(t, models.ChangeValue{Kind: models.KindPrice, Text: "19.99"}, change.NewValue)
	assert.Equal(t, runID, change.OriginatingRunID)
	assert.Equal(t, models.ChangePendingReview, change.Status, "detected changes should await review")
}

func TestUnitDetectMalformedPrice(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Price = "not a price" })
	local := matchingProduct(source, func(p *models.Product) { p.Price = "17.99" })

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.ErrorContains(t, err, "can't parse source price", "should return error about malformed price")
	assert.Nil(t, changes, "failed detection shouldn't return changes")
}

func TestUnitDetectAvailabilityChange(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Availability = "out_of_stock" })
	local := matchingProduct(source, func(p *models.Product) { p.Availability = "in_stock" })

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, changes, 1, "should detect exactly one change")

	change := changes[0]
	assert.Equal(t, models.FieldAvailability, change.FieldName)
	assert.Equal(t, models.ChangeTypeInventory, change.ChangeType)
	assert.Equal(t, models.SeverityCritical, change.Severity, "availability changes should be critical")
	assert.Equal(t, models.FlagValue("in_stock"), change.OldValue)
	assert.Equal(t, models.FlagValue("out_of_stock"), change.NewValue)
}

func TestUnitDetectTextSeverity(t *testing.T) {
	tests := []struct {
		name         string
		localName    string
		sourceName   string
		wantSeverity models.Severity
	}{
		{
			name:         "real rename is standard",
			localName:    "Alpine Jacket",
			sourceName:   "Alpine Parka",
			wantSeverity: models.SeverityStandard,
		},
		{
			name:         "case change only is minor",
			localName:    "Alpine Jacket",
			sourceName:   "ALPINE JACKET",
			wantSeverity: models.SeverityMinor,
		},
		{
			name:         "whitespace change only is minor",
			localName:    "Alpine Jacket",
			sourceName:   "Alpine  Jacket",
			wantSeverity: models.SeverityMinor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Name = tt.sourceName })
			local := matchingProduct(source, func(p *models.Product) { p.Name = tt.localName })

			changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

			require.NoError(t, err, "shouldn't return any error")
			require.Len(t, changes, 1, "should detect exactly one change")
			assert.Equal(t, models.FieldName, changes[0].FieldName)
			assert.Equal(t, tt.wantSeverity, changes[0].Severity)
		})
	}
}

func TestUnitDetectSurroundingWhitespaceIgnored(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Name = "  Alpine Jacket " })
	local := matchingProduct(source, func(p *models.Product) { p.Name = "Alpine Jacket" })

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Empty(t, changes, "values differing only in surrounding whitespace shouldn't produce changes")
}

func TestUnitDetectCategoryChange(t *testing.T) {
	t.Run("mapped category differs", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct()
		local := matchingProduct(source, func(p *models.Product) { p.CategoryID = lo.ToPtr(int32(7)) })

		changes, _, err := detector.NewDetector().Detect(&source, local, runID, lo.ToPtr(int32(12)))

		require.NoError(t, err, "shouldn't return any error")
		require.Len(t, changes, 1, "should detect exactly one change")

		change := changes[0]
		assert.Equal(t, models.FieldCategory, change.FieldName)
		assert.Equal(t, models.SeverityStandard, change.Severity)
		assert.Equal(t, models.TextValue("7"), change.OldValue)
		assert.Equal(t, models.TextValue(source.CategoryID), change.NewValue)
	})

	t.Run("unmapped category is skipped", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct()
		local := matchingProduct(source, func(p *models.Product) { p.CategoryID = lo.ToPtr(int32(7)) })

		changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

		require.NoError(t, err, "shouldn't return any error")
		assert.Empty(t, changes, "unmapped source category shouldn't produce changes")
	})

	t.Run("matching category is skipped", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct()
		local := matchingProduct(source, func(p *models.Product) { p.CategoryID = lo.ToPtr(int32(12)) })

		changes, _, err := detector.NewDetector().Detect(&source, local, runID, lo.ToPtr(int32(12)))

		require.NoError(t, err, "shouldn't return any error")
		assert.Empty(t, changes, "already assigned category shouldn't produce changes")
	})
}

func TestUnitDetectVariantChanges(t *testing.T) {
	sourceVariant := modelstesting.FakeSourceVariant(func(v *models.SourceVariant) { v.Price = "29.99" })
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) {
		p.Variants = []models.SourceVariant{sourceVariant}
	})
	local := matchingProduct(source, func(p *models.Product) {
		p.Variants[0].Price = "24.99"
	})

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, changes, 1, "should detect exactly one change")

	change := changes[0]
	assert.Equal(t, models.VariantField(sourceVariant.ID, models.FieldPrice), change.FieldName)
	assert.Equal(t, models.ChangeTypePrice, change.ChangeType)
	assert.Equal(t, models.SeverityCritical, change.Severity)
	assert.Equal(t, models.ChangeValue{Kind: models.KindPrice, Text: "24.99"}, change.OldValue)
	assert.Equal(t, models.ChangeValue{Kind: models.KindPrice, Text: "29.99"}, change.NewValue)
}

func TestUnitDetectUnknownSourceVariantSkipped(t *testing.T) {
	source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) {
		p.Variants = []models.SourceVariant{modelstesting.FakeSourceVariant()}
	})
	local := matchingProduct(source, func(p *models.Product) {
		p.Variants = nil
	})

	changes, _, err := detector.NewDetector().Detect(&source, local, runID, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Empty(t, changes, "source variants without local counterpart belong to intake, not diffing")
}

func TestUnitDetectComparedFields(t *testing.T) {
	t.Run("product fields are always compared", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct()
		local := matchingProduct(source)

		_, compared, err := detector.NewDetector().Detect(&source, local, runID, nil)

		require.NoError(t, err, "shouldn't return any error")
		assert.Contains(t, compared, models.FieldName)
		assert.Contains(t, compared, models.FieldDescription)
		assert.Contains(t, compared, models.FieldImageURL)
		assert.Contains(t, compared, models.FieldAvailability)
		assert.Contains(t, compared, models.FieldPrice)
	})

	t.Run("unresolved category is skipped, not compared", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct()
		local := matchingProduct(source, func(p *models.Product) { p.CategoryID = lo.ToPtr(int32(7)) })

		_, compared, err := detector.NewDetector().Detect(&source, local, runID, nil)

		require.NoError(t, err, "shouldn't return any error")
		assert.NotContains(t, compared, models.FieldCategory,
			"a category without a resolved mapping can't be diffed")
	})

	t.Run("mapped category is compared", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct()
		local := matchingProduct(source, func(p *models.Product) { p.CategoryID = lo.ToPtr(int32(12)) })

		_, compared, err := detector.NewDetector().Detect(&source, local, runID, lo.ToPtr(int32(12)))

		require.NoError(t, err, "shouldn't return any error")
		assert.Contains(t, compared, models.FieldCategory)
	})

	t.Run("matched variant fields are compared", func(t *testing.T) {
		sourceVariant := modelstesting.FakeSourceVariant()
		source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) {
			p.Variants = []models.SourceVariant{sourceVariant}
		})
		local := matchingProduct(source)

		_, compared, err := detector.NewDetector().Detect(&source, local, runID, nil)

		require.NoError(t, err, "shouldn't return any error")
		assert.Contains(t, compared, models.VariantField(sourceVariant.ID, models.FieldPrice))
		assert.Contains(t, compared, models.VariantField(sourceVariant.ID, models.FieldAvailability))
	})

	t.Run("vanished source variant is not compared", func(t *testing.T) {
		source := modelstesting.FakeSourceProduct(func(p *models.SourceProduct) { p.Variants = nil })
		local := matchingProduct(source, func(p *models.Product) {
			p.Variants = []models.ProductVariant{{ID: 1, ExternalID: "var-gone", Price: "9.99"}}
		})

		_, compared, err := detector.NewDetector().Detect(&source, local, runID, nil)

		require.NoError(t, err, "shouldn't return any error")
		assert.NotContains(t, compared, models.VariantField("var-gone", models.FieldPrice),
			"a variant missing from the source can't be diffed")
	})
}

// matchingProduct returns a local product mirroring the source product, so
// unmodified fields never produce changes.
func matchingProduct(source models.SourceProduct, ops ...func(p *models.Product)) *models.Product {
	variants := make([]models.ProductVariant, 0, len(source.Variants))
	for ix, sourceVariant := range source.Variants {
		variants = append(variants, models.ProductVariant{
			ID:           ix + 1,
			ExternalID:   sourceVariant.ID,
			Name:         sourceVariant.Name,
			Price:        sourceVariant.Price,
			Availability: sourceVariant.Availability,
			ImageURL:     sourceVariant.ImageURL,
			Color:        sourceVariant.Color,
			Size:         sourceVariant.Size,
		})
	}

	product := models.Product{
		ID:           rand.Intn(10000) + 1,
		ExternalID:   source.ID,
		Name:         source.Name,
		Description:  source.Description,
		Price:        source.Price,
		Currency:     source.Currency,
		Availability: source.Availability,
		ImageURL:     source.ImageURL,
		IsActive:     true,
		Variants:     variants,
	}

	for _, op := range ops {
		op(&product)
	}

	return &product
}
