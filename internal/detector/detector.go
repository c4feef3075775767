package detector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/shopspring/decimal"
)

// Detector computes field-level differences between a source product and its
// local counterpart. Detection never writes anything: every difference is
// returned as a pending-review change for the change store to persist.
type Detector struct{}

// NewDetector returns new Detector.
func NewDetector() Detector {
	return Detector{}
}

// Detect compares a fixed list of fields of the source product against the
// local product and returns one pending change per differing field, together
// with the names of every field it could actually compare. Fields it had to
// skip (category while unmapped, source variants without a local counterpart)
// appear in neither list, so pending changes for them stay untouched.
// mappedCategoryID is the local category mapped to the source product's
// category, nil while unmapped. A malformed source value (unparsable price)
// fails the whole item.
func (d Detector) Detect(
	source *models.SourceProduct,
	local *models.Product,
	runID int,
	mappedCategoryID *int32,
) ([]models.ProductChange, []string, error) {
	var changes []models.ProductChange

	compared := []string{
		models.FieldName,
		models.FieldDescription,
		models.FieldImageURL,
		models.FieldAvailability,
		models.FieldPrice,
	}

	emit := func(fieldName string, changeType models.ChangeType, severity models.Severity, oldValue, newValue models.ChangeValue) {
		changes = append(changes, models.ProductChange{
			LocalProductID:   local.ID,
			SourceProductID:  source.ID,
			FieldName:        fieldName,
			ChangeType:       changeType,
			Severity:         severity,
			OldValue:         oldValue,
			NewValue:         newValue,
			OriginatingRunID: runID,
			Status:           models.ChangePendingReview,
		})
	}

	compareText(models.FieldName, models.ChangeTypeMetadata, local.Name, source.Name, emit)
	compareText(models.FieldDescription, models.ChangeTypeMetadata, local.Description, source.Description, emit)
	compareImage(models.FieldImageURL, local.ImageURL, source.ImageURL, emit)
	compareAvailability(models.FieldAvailability, local.Availability, source.Availability, emit)

	if err := comparePrice(models.FieldPrice, local.Price, source.Price, emit); err != nil {
		return nil, nil, err
	}

	if mappedCategoryID != nil {
		compared = append(compared, models.FieldCategory)
	}
	compareCategory(local, source, mappedCategoryID, emit)

	variantFields, err := compareVariants(local, source, emit)
	if err != nil {
		return nil, nil, err
	}
	compared = append(compared, variantFields...)

	return changes, compared, nil
}

type emitFunc func(fieldName string, changeType models.ChangeType, severity models.Severity, oldValue, newValue models.ChangeValue)

// compareText emits a metadata change for differing trimmed text. Differences
// that survive trimming but disappear under case folding and whitespace
// collapsing are formatting-only and classified minor.
func compareText(fieldName string, changeType models.ChangeType, localValue, sourceValue string, emit emitFunc) {
	oldText := strings.TrimSpace(localValue)
	newText := strings.TrimSpace(sourceValue)
	if oldText == newText {
		return
	}

	severity := models.SeverityStandard
	if strings.EqualFold(collapseSpaces(oldText), collapseSpaces(newText)) {
		severity = models.SeverityMinor
	}

	emit(fieldName, changeType, severity, models.TextValue(oldText), models.TextValue(newText))
}

func compareImage(fieldName string, localValue, sourceValue string, emit emitFunc) {
	oldText := strings.TrimSpace(localValue)
	newText := strings.TrimSpace(sourceValue)
	if oldText == newText {
		return
	}

	emit(fieldName, models.ChangeTypeImage, models.SeverityStandard, models.TextValue(oldText), models.TextValue(newText))
}

func compareAvailability(fieldName string, localValue, sourceValue string, emit emitFunc) {
	oldFlag := strings.TrimSpace(localValue)
	newFlag := strings.TrimSpace(sourceValue)
	if oldFlag == newFlag {
		return
	}

	emit(fieldName, models.ChangeTypeInventory, models.SeverityCritical, models.FlagValue(oldFlag), models.FlagValue(newFlag))
}

// comparePrice compares prices as fixed-point decimals so formatting noise
// ("19.9" vs "19.90") never produces a change.
func comparePrice(fieldName string, localValue, sourceValue string, emit emitFunc) error {
	oldPrice, err := decimal.NewFromString(strings.TrimSpace(localValue))
	if err != nil {
		return fmt.Errorf("can't parse local price %q: %w", localValue, err)
	}

	newPrice, err := decimal.NewFromString(strings.TrimSpace(sourceValue))
	if err != nil {
		return fmt.Errorf("can't parse source price %q: %w", sourceValue, err)
	}

	if oldPrice.Equal(newPrice) {
		return nil
	}

	emit(fieldName, models.ChangeTypePrice, models.SeverityCritical, models.PriceValue(oldPrice), models.PriceValue(newPrice))
	return nil
}

// compareCategory emits a change when the source category maps to a local
// category the product is not in yet. Unmapped source categories can't be
// compared and are left to the mapping review queue.
func compareCategory(local *models.Product, source *models.SourceProduct, mappedCategoryID *int32, emit emitFunc) {
	if mappedCategoryID == nil {
		return
	}
	if local.CategoryID != nil && *local.CategoryID == *mappedCategoryID {
		return
	}

	oldCategory := ""
	if local.CategoryID != nil {
		oldCategory = strconv.Itoa(int(*local.CategoryID))
	}

	emit(
		models.FieldCategory,
		models.ChangeTypeMetadata,
		models.SeverityStandard,
		models.TextValue(oldCategory),
		models.TextValue(source.CategoryID),
	)
}

// compareVariants diffs each source variant against the local variant with
// the same external ID and returns the variant field names it compared.
// Source variants without a local counterpart belong to the intake path and
// are skipped here.
func compareVariants(local *models.Product, source *models.SourceProduct, emit emitFunc) ([]string, error) {
	localByExternalID := make(map[string]*models.ProductVariant, len(local.Variants))
	for ix := range local.Variants {
		localByExternalID[local.Variants[ix].ExternalID] = &local.Variants[ix]
	}

	var compared []string

	for ix := range source.Variants {
		sourceVariant := &source.Variants[ix]
		localVariant, exists := localByExternalID[sourceVariant.ID]
		if !exists {
			continue
		}

		field := func(name string) string { return models.VariantField(sourceVariant.ID, name) }

		compared = append(compared,
			field(models.FieldName),
			field(models.FieldColor),
			field(models.FieldSize),
			field(models.FieldImageURL),
			field(models.FieldAvailability),
			field(models.FieldPrice),
		)

		compareText(field(models.FieldName), models.ChangeTypeVariant, localVariant.Name, sourceVariant.Name, emit)
		compareText(field(models.FieldColor), models.ChangeTypeVariant, deref(localVariant.Color), deref(sourceVariant.Color), emit)
		compareText(field(models.FieldSize), models.ChangeTypeVariant, deref(localVariant.Size), deref(sourceVariant.Size), emit)
		compareImage(field(models.FieldImageURL), localVariant.ImageURL, sourceVariant.ImageURL, emit)
		compareAvailability(field(models.FieldAvailability), localVariant.Availability, sourceVariant.Availability, emit)

		err := comparePrice(field(models.FieldPrice), localVariant.Price, sourceVariant.Price, emit)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", sourceVariant.ID, err)
		}
	}

	return compared, nil
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
