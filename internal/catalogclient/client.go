package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
)

// Client fetches product, variant and category records from the source
// catalog REST API.
type Client struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
}

// NewClient returns new Client.
func NewClient(client *http.Client, baseURL, token, userAgent string) *Client {
	return &Client{
		client:    client,
		baseURL:   baseURL,
		token:     token,
		userAgent: userAgent,
	}
}

// FetchCategories returns all categories of the source catalog.
func (c *Client) FetchCategories(ctx context.Context) ([]models.SourceCategory, error) {
	var response categoriesResponse
	if err := c.get(ctx, "/categories", &response); err != nil {
		return nil, fmt.Errorf("can't fetch categories: %w", err)
	}

	categories := make([]models.SourceCategory, 0, len(response.Result))
	for ix := range response.Result {
		categories = append(categories, *toSourceCategory(&response.Result[ix]))
	}

	return categories, nil
}

// FetchProducts returns all products of the source catalog. A malformed
// product is returned as a result with a non-nil Error instead of failing
// the whole fetch.
func (c *Client) FetchProducts(ctx context.Context) ([]models.SourceProductResult, error) {
	var response productsResponse
	if err := c.get(ctx, "/products", &response); err != nil {
		return nil, fmt.Errorf("can't fetch products: %w", err)
	}

	results := make([]models.SourceProductResult, 0, len(response.Result))
	for ix := range response.Result {
		product, err := toSourceProduct(&response.Result[ix])
		if err != nil {
			results = append(results, models.SourceProductResult{
				Product: models.SourceProduct{ID: response.Result[ix].ID},
				Error:   err,
			})
			continue
		}
		results = append(results, models.SourceProductResult{Product: *product})
	}

	return results, nil
}

// FetchProduct returns a single product of the source catalog by its ID.
func (c *Client) FetchProduct(ctx context.Context, sourceID string) (*models.SourceProduct, error) {
	var response productResponse
	if err := c.get(ctx, "/products/"+sourceID, &response); err != nil {
		return nil, fmt.Errorf("can't fetch product %q: %w", sourceID, err)
	}

	product, err := toSourceProduct(&response.Result)
	if err != nil {
		return nil, fmt.Errorf("can't fetch product %q: %w", sourceID, err)
	}

	return product, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+c.token)
	req.Header.Add("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", platform.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return platform.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return platform.ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: response status %d", platform.ErrCatalogUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("can't decode response: %w", err)
	}

	return nil
}
