package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValueKind tags the payload type carried by a ChangeValue.
type ValueKind string

// Known value kinds.
const (
	KindPrice ValueKind = "price"
	KindFlag  ValueKind = "flag"
	KindText  ValueKind = "text"
)

// PriceScale is the fixed-point scale used for price values.
const PriceScale = 2

// ChangeValue is one side of a detected change. Values are heterogeneous
// (price, availability flag, free text), so the payload is a canonical text
// form tagged with its kind. Two values of the same kind are equal exactly
// when their canonical text forms are equal.
type ChangeValue struct {
	Kind ValueKind `json:"kind"`
	Text string    `json:"text"`
}

// PriceValue returns a price ChangeValue with canonical fixed-point text.
func PriceValue(price decimal.Decimal) ChangeValue {
	return ChangeValue{
		Kind: KindPrice,
		Text: price.StringFixed(PriceScale),
	}
}

// TextValue returns a text ChangeValue.
func TextValue(text string) ChangeValue {
	return ChangeValue{
		Kind: KindText,
		Text: text,
	}
}

// FlagValue returns a flag ChangeValue.
func FlagValue(flag string) ChangeValue {
	return ChangeValue{
		Kind: KindFlag,
		Text: flag,
	}
}

// Price returns the value parsed as a fixed-point decimal.
// It fails for non-price kinds.
func (v ChangeValue) Price() (decimal.Decimal, error) {
	if v.Kind != KindPrice {
		return decimal.Zero, fmt.Errorf("value kind is %q, not %q", v.Kind, KindPrice)
	}

	price, err := decimal.NewFromString(v.Text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't parse price value: %w", err)
	}

	return price, nil
}

// Equal reports whether both values carry the same kind and payload.
func (v ChangeValue) Equal(other ChangeValue) bool {
	return v.Kind == other.Kind && v.Text == other.Text
}
