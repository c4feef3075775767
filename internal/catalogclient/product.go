package catalogclient

import (
	"fmt"
	"strings"

	"github.com/craftline/catalog-sync/internal/platform/models"
)

type categoriesResponse struct {
	Result []category `json:"result"`
}

type productsResponse struct {
	Result []product `json:"result"`
}

type productResponse struct {
	Result product `json:"result"`
}

// category is the wire model for category records of the source catalog API.
type category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// product is the wire model for product records of the source catalog API.
type product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Currency     string    `json:"currency"`
	Availability string    `json:"availability"`
	ImageURL     string    `json:"image_url"`
	CategoryID   string    `json:"category_id"`
	Variants     []variant `json:"variants"`
}

// variant is the wire model for variant records of the source catalog API.
type variant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	Availability string  `json:"availability"`
	ImageURL     string  `json:"image_url"`
	Color        *string `json:"color"`
	Size         *string `json:"size"`
}

func toSourceCategory(cat *category) *models.SourceCategory {
	return &models.SourceCategory{
		ID:       cat.ID,
		Name:     strings.TrimSpace(cat.Name),
		ParentID: cat.ParentID,
	}
}

func toSourceProduct(prod *product) (*models.SourceProduct, error) {
	if prod.ID == "" {
		return nil, fmt.Errorf("product has no id")
	}
	if prod.Name == "" {
		return nil, fmt.Errorf("product %q has no name", prod.ID)
	}
	if prod.Price == "" {
		return nil, fmt.Errorf("product %q has no price", prod.ID)
	}

	variants := make([]models.SourceVariant, 0, len(prod.Variants))
	for ix := range prod.Variants {
		sourceVariant, err := toSourceVariant(&prod.Variants[ix])
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", prod.ID, err)
		}
		variants = append(variants, *sourceVariant)
	}

	return &models.SourceProduct{
		ID:           prod.ID,
		Name:         prod.Name,
		Description:  prod.Description,
		Price:        prod.Price,
		Currency:     prod.Currency,
		Availability: prod.Availability,
		ImageURL:     prod.ImageURL,
		CategoryID:   prod.CategoryID,
		Variants:     variants,
	}, nil
}

func toSourceVariant(v *variant) (*models.SourceVariant, error) {
	if v.ID == "" {
		return nil, fmt.Errorf("variant has no id")
	}

	return &models.SourceVariant{
		ID:           v.ID,
		Name:         v.Name,
		Price:        v.Price,
		Availability: v.Availability,
		ImageURL:     v.ImageURL,
		Color:        v.Color,
		Size:         v.Size,
	}, nil
}
