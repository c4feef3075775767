package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakePrice returns a parsable fixed-point price string.
func FakePrice() string {
	return fmt.Sprintf("%d.%02d", rand.Intn(500)+1, rand.Intn(100))
}

// FakeProduct returns models.Product with fake data and random number of fake variants.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:           rand.Intn(10000) + 1,
		ExternalID:   faker.UUIDDigit(),
		Name:         faker.Word(),
		Description:  faker.Sentence(),
		Price:        FakePrice(),
		Currency:     "EUR",
		Availability: "in_stock",
		ImageURL:     faker.URL(),
		CategoryID:   lo.ToPtr(rand.Int31n(100) + 1),
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		Variants:     fakeVariants(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeVariant returns models.ProductVariant with fake data.
func FakeVariant(ops ...func(v *models.ProductVariant)) models.ProductVariant {
	variant := models.ProductVariant{
		ID:           rand.Intn(10000) + 1,
		ExternalID:   faker.UUIDDigit(),
		Name:         faker.Word(),
		Price:        FakePrice(),
		Availability: "in_stock",
		ImageURL:     faker.URL(),
		Color:        lo.ToPtr(faker.Word()),
		Size:         lo.ToPtr(faker.Word()),
	}

	for _, op := range ops {
		op(&variant)
	}

	return variant
}

// FakeSourceProduct returns models.SourceProduct with fake data.
func FakeSourceProduct(ops ...func(p *models.SourceProduct)) models.SourceProduct {
	product := models.SourceProduct{
		ID:           faker.UUIDDigit(),
		Name:         faker.Word(),
		Description:  faker.Sentence(),
		Price:        FakePrice(),
		Currency:     "EUR",
		Availability: "in_stock",
		ImageURL:     faker.URL(),
		CategoryID:   faker.UUIDDigit(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeSourceVariant returns models.SourceVariant with fake data.
func FakeSourceVariant(ops ...func(v *models.SourceVariant)) models.SourceVariant {
	variant := models.SourceVariant{
		ID:           faker.UUIDDigit(),
		Name:         faker.Word(),
		Price:        FakePrice(),
		Availability: "in_stock",
		ImageURL:     faker.URL(),
		Color:        lo.ToPtr(faker.Word()),
		Size:         lo.ToPtr(faker.Word()),
	}

	for _, op := range ops {
		op(&variant)
	}

	return variant
}

// FakeSourceCategory returns models.SourceCategory with fake data.
func FakeSourceCategory(ops ...func(c *models.SourceCategory)) models.SourceCategory {
	category := models.SourceCategory{
		ID:       faker.UUIDDigit(),
		Name:     faker.Word(),
		ParentID: lo.ToPtr(faker.UUIDDigit()),
	}

	for _, op := range ops {
		op(&category)
	}

	return category
}

// FakeMapping returns models.CategoryMapping with fake data.
func FakeMapping(ops ...func(m *models.CategoryMapping)) models.CategoryMapping {
	mapping := models.CategoryMapping{
		ID:                 rand.Intn(10000) + 1,
		SourceCategoryID:   faker.UUIDDigit(),
		SourceCategoryName: faker.Word(),
		LocalCategoryID:    lo.ToPtr(rand.Int31n(100) + 1),
		IsActive:           true,
		CreatedAt:          time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&mapping)
	}

	return mapping
}

// FakeChange returns pending models.ProductChange with fake data.
func FakeChange(ops ...func(c *models.ProductChange)) models.ProductChange {
	change := models.ProductChange{
		ID:               rand.Intn(10000) + 1,
		LocalProductID:   rand.Intn(10000) + 1,
		SourceProductID:  faker.UUIDDigit(),
		FieldName:        models.FieldName,
		ChangeType:       models.ChangeTypeMetadata,
		Severity:         models.SeverityStandard,
		OldValue:         models.TextValue(faker.Word()),
		NewValue:         models.TextValue(faker.Word()),
		OriginatingRunID: rand.Intn(10000) + 1,
		Status:           models.ChangePendingReview,
		CreatedAt:        time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&change)
	}

	return change
}

// FakeRun returns running models.SyncRun with fake data.
func FakeRun(ops ...func(r *models.SyncRun)) models.SyncRun {
	run := models.SyncRun{
		ID:        rand.Intn(10000) + 1,
		Trigger:   models.TriggerManual,
		Status:    models.RunRunning,
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&run)
	}

	return run
}

func fakeVariants() []models.ProductVariant {
	variantsLen := rand.Intn(3)
	variants := make([]models.ProductVariant, 0, variantsLen)
	for i := 0; i < variantsLen; i++ {
		variants = append(variants, FakeVariant())
	}

	return variants
}
