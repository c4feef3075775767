package catalogclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/craftline/catalog-sync/internal/catalogclient"
	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent = "test/0.0.0"
	token     = "test-token"
)

func TestUnitFetchCategories(t *testing.T) {
	wantHeaders := map[string]string{
		"User-Agent":    userAgent,
		"Accept":        "application/json",
		"Authorization": "Bearer " + token,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		validateHeaders(t, req.Header, wantHeaders)
		assert.Equal(t, "/categories", req.URL.Path, "should call the categories endpoint")
		wrt.Write([]byte(`{"result": [
			{"id": "cat-1", "name": " Jackets ", "parent_id": null},
			{"id": "cat-2", "name": "Parkas", "parent_id": "cat-1"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	client := catalogclient.NewClient(srv.Client(), srv.URL, token, userAgent)

	categories, err := client.FetchCategories(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, []models.SourceCategory{
		{ID: "cat-1", Name: "Jackets"},
		{ID: "cat-2", Name: "Parkas", ParentID: lo.ToPtr("cat-1")},
	}, categories, "should return categories with trimmed names")
}

func TestUnitFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/products", req.URL.Path, "should call the products endpoint")
		wrt.Write([]byte(`{"result": [
			{
				"id": "prod-1",
				"name": "Alpine Jacket",
				"description": "Warm.",
				"price": "199.90",
				"currency": "EUR",
				"availability": "in_stock",
				"image_url": "https://img.example.com/prod-1.jpg",
				"category_id": "cat-1",
				"variants": [
					{"id": "var-1", "name": "Alpine Jacket M", "price": "199.90", "availability": "in_stock", "image_url": "", "color": "red", "size": "M"}
				]
			},
			{"id": "prod-2", "name": "Nameless", "price": ""}
		]}`))
	}))
	t.Cleanup(srv.Close)

	client := catalogclient.NewClient(srv.Client(), srv.URL, token, userAgent)

	results, err := client.FetchProducts(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, results, 2, "should return one result per fetched product")

	require.NoError(t, results[0].Error, "valid product shouldn't carry an error")
	assert.Equal(t, models.SourceProduct{
		ID:           "prod-1",
		Name:         "Alpine Jacket",
		Description:  "Warm.",
		Price:        "199.90",
		Currency:     "EUR",
		Availability: "in_stock",
		ImageURL:     "https://img.example.com/prod-1.jpg",
		CategoryID:   "cat-1",
		Variants: []models.SourceVariant{
			{
				ID:           "var-1",
				Name:         "Alpine Jacket M",
				Price:        "199.90",
				Availability: "in_stock",
				Color:        lo.ToPtr("red"),
				Size:         lo.ToPtr("M"),
			},
		},
	}, results[0].Product)

	require.ErrorContains(t, results[1].Error, "has no price", "malformed product should carry its validation error")
	assert.Equal(t, "prod-2", results[1].Product.ID, "malformed result should still carry the source ID")
}

func TestUnitFetchProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/products/prod-1", req.URL.Path, "should call the single product endpoint")
		wrt.Write([]byte(`{"result": {"id": "prod-1", "name": "Alpine Jacket", "price": "199.90"}}`))
	}))
	t.Cleanup(srv.Close)

	client := catalogclient.NewClient(srv.Client(), srv.URL, token, userAgent)

	product, err := client.FetchProduct(context.TODO(), "prod-1")

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, "Alpine Jacket", product.Name)
}

func TestUnitFetchErrors(t *testing.T) {
	tests := map[string]struct {
		status  int
		wantErr error
	}{
		"unauthorized": {
			status:  http.StatusUnauthorized,
			wantErr: platform.ErrUnauthorized,
		},
		"forbidden": {
			status:  http.StatusForbidden,
			wantErr: platform.ErrUnauthorized,
		},
		"not found": {
			status:  http.StatusNotFound,
			wantErr: platform.ErrNotFound,
		},
		"server error": {
			status:  http.StatusInternalServerError,
			wantErr: platform.ErrCatalogUnavailable,
		},
		"throttled": {
			status:  http.StatusTooManyRequests,
			wantErr: platform.ErrCatalogUnavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			client := catalogclient.NewClient(srv.Client(), srv.URL, token, userAgent)

			products, err := client.FetchProducts(context.TODO())

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Nil(t, products)
		})
	}
}

func TestUnitFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := catalogclient.NewClient(http.DefaultClient, srv.URL, token, userAgent)

	_, err := client.FetchCategories(context.TODO())

	require.ErrorIs(t, err, platform.ErrCatalogUnavailable, "unreachable catalog should surface as unavailable")
}

func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
