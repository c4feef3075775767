package models

import (
	"fmt"
	"strings"
)

// Product-level field names compared by the change detector and writable by
// the apply step. Variant fields use the "variant:<sourceVariantID>:<field>"
// form so pending-change uniqueness per (product, field) covers variants too.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldAvailability = "availability"
	FieldImageURL     = "image_url"
	FieldCategory     = "category"
	FieldColor        = "color"
	FieldSize         = "size"
)

const variantFieldPrefix = "variant:"

// VariantField builds the field name for one field of one source variant.
func VariantField(sourceVariantID, field string) string {
	return fmt.Sprintf("%s%s:%s", variantFieldPrefix, sourceVariantID, field)
}

// ParseVariantField splits a variant field name into source variant ID and
// field. It reports false for product-level field names.
func ParseVariantField(fieldName string) (sourceVariantID, field string, ok bool) {
	if !strings.HasPrefix(fieldName, variantFieldPrefix) {
		return "", "", false
	}

	parts := strings.SplitN(strings.TrimPrefix(fieldName, variantFieldPrefix), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}

// LocalFieldValue returns the current raw value of a comparable field on the
// local product. It reports false for unknown fields, for fields without a
// raw text form (category) and for variants the product does not carry.
func LocalFieldValue(product *Product, fieldName string) (string, bool) {
	if variantID, field, ok := ParseVariantField(fieldName); ok {
		for ix := range product.Variants {
			if product.Variants[ix].ExternalID != variantID {
				continue
			}
			return variantFieldValue(&product.Variants[ix], field)
		}
		return "", false
	}

	switch fieldName {
	case FieldName:
		return product.Name, true
	case FieldDescription:
		return product.Description, true
	case FieldPrice:
		return product.Price, true
	case FieldAvailability:
		return product.Availability, true
	case FieldImageURL:
		return product.ImageURL, true
	default:
		return "", false
	}
}

func variantFieldValue(variant *ProductVariant, field string) (string, bool) {
	switch field {
	case FieldName:
		return variant.Name, true
	case FieldPrice:
		return variant.Price, true
	case FieldAvailability:
		return variant.Availability, true
	case FieldImageURL:
		return variant.ImageURL, true
	case FieldColor:
		if variant.Color == nil {
			return "", true
		}
		return *variant.Color, true
	case FieldSize:
		if variant.Size == nil {
			return "", true
		}
		return *variant.Size, true
	default:
		return "", false
	}
}
