package helpers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/craftline/catalog-sync/internal/platform/models"
	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/craftline/catalog-sync/internal/platform/storage/storagetesting"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

// CatalogState is one snapshot of the mocked source catalog.
type CatalogState struct {
	Categories []models.SourceCategory
	Products   []models.SourceProduct
}

// PrepareMockedCatalogServer is helper function for mocking the source
// catalog API. Returns function for switching the served catalog state,
// state number is from 0 to len(states) exclusive.
func PrepareMockedCatalogServer(t *testing.T, states []CatalogState) (*httptest.Server, func(int)) {
	t.Helper()

	stateToServeIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		state := states[stateToServeIx]

		wrt.Header().Add("Content-Type", "application/json")
		switch req.URL.Path {
		case "/categories":
			writeResult(t, wrt, toWireCategories(state.Categories))
		case "/products":
			writeResult(t, wrt, toWireProducts(state.Products))
		default:
			wrt.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { stateToServeIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// WaitForFinishedRuns is blocking helper function, returns runs ordered by ID
// once count runs have reached a terminal status.
func WaitForFinishedRuns(t *testing.T, db *sql.DB, count int) []pgmodels.SyncRun {
	t.Helper()

	deadline := time.After(30 * time.Second)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "timed out waiting for sync runs to finish")
			return nil
		case <-time.After(250 * time.Millisecond):
		}

		runs := storagetesting.GetRuns(t, db)
		finished := make([]pgmodels.SyncRun, 0, len(runs))
		for ix := range runs {
			if runs[ix].CompletedAt != nil {
				finished = append(finished, runs[ix])
			}
		}

		if len(finished) >= count {
			sort.Slice(finished, func(i, j int) bool { return finished[i].ID < finished[j].ID })
			return finished
		}
	}
}

// GetProductsOrdered returns all local products ordered by external ID.
func GetProductsOrdered(t *testing.T, db *sql.DB) []pgmodels.Product {
	t.Helper()

	products := storagetesting.GetProducts(t, db)
	sort.Slice(products, func(i, j int) bool { return products[i].ExternalID < products[j].ExternalID })

	return products
}

func writeResult(t *testing.T, wrt http.ResponseWriter, result any) {
	t.Helper()

	if err := json.NewEncoder(wrt).Encode(map[string]any{"result": result}); err != nil {
		require.FailNow(t, "can't encode catalog response", err)
	}
}

// wire models of the mocked source catalog API

type wireCategory struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type wireProduct struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Price        string        `json:"price"`
	Currency     string        `json:"currency"`
	Availability string        `json:"availability"`
	ImageURL     string        `json:"image_url"`
	CategoryID   string        `json:"category_id"`
	Variants     []wireVariant `json:"variants"`
}

type wireVariant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	Availability string  `json:"availability"`
	ImageURL     string  `json:"image_url"`
	Color        *string `json:"color"`
	Size         *string `json:"size"`
}

func toWireCategories(categories []models.SourceCategory) []wireCategory {
	result := make([]wireCategory, 0, len(categories))
	for ix := range categories {
		result = append(result, wireCategory{
			ID:       categories[ix].ID,
			Name:     categories[ix].Name,
			ParentID: categories[ix].ParentID,
		})
	}

	return result
}

func toWireProducts(products []models.SourceProduct) []wireProduct {
	result := make([]wireProduct, 0, len(products))
	for ix := range products {
		variants := make([]wireVariant, 0, len(products[ix].Variants))
		for vx := range products[ix].Variants {
			variant := products[ix].Variants[vx]
			variants = append(variants, wireVariant{
				ID:           variant.ID,
				Name:         variant.Name,
				Price:        variant.Price,
				Availability: variant.Availability,
				ImageURL:     variant.ImageURL,
				Color:        variant.Color,
				Size:         variant.Size,
			})
		}

		result = append(result, wireProduct{
			ID:           products[ix].ID,
			Name:         products[ix].Name,
			Description:  products[ix].Description,
			Price:        products[ix].Price,
			Currency:     products[ix].Currency,
			Availability: products[ix].Availability,
			ImageURL:     products[ix].ImageURL,
			CategoryID:   products[ix].CategoryID,
			Variants:     variants,
		})
	}

	return result
}
