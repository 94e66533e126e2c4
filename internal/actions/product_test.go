package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/magento/magentotest"
	"magento-commerce-actions/internal/models"
)

func TestGetProductByID(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodGet, "products/jacket-1", http.StatusOK, magentotest.Product("jacket-1"))

	env := a.GetProductByID(context.Background(), backend.Args(Args{"id": "jacket-1", "currency": "EUR"}))

	require.False(t, env.Failed())
	product := env.Body.(models.Product)
	assert.Equal(t, "jacket-1", product.SKU)
	require.Len(t, product.Assets, 1)
	assert.Equal(t, backend.URL+"/media/catalog/product/m/e/jacket.jpg", product.Assets[0].URL)
	assert.Equal(t, "EUR", product.Prices[0].Currency)
}

func TestGetProductByIDNotFound(t *testing.T) {
	a, backend := newTestActions(t)

	env := a.GetProductByID(context.Background(), backend.Args(Args{"id": "missing"}))

	require.True(t, env.Failed())
	assert.Equal(t, apierror.NameNotFound, env.Error.Name)
	assert.Equal(t, ProductErrorType, env.ErrorType)
}

func TestSearchProductsPaging(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPost, "graphql", http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"products": map[string]interface{}{
				"total_count": 40,
				"items":       []map[string]interface{}{{"sku": "jacket-1", "name": "Jacket"}},
				"page_info":   map[string]interface{}{"current_page": 3, "page_size": 10},
			},
		},
	})

	env := a.SearchProducts(context.Background(), backend.Args(Args{"text": "jacket", "limit": "10", "offset": "20"}))

	require.False(t, env.Failed())
	page := env.Body.(models.PagedResponse)
	assert.Equal(t, 20, page.Offset)
	assert.Equal(t, 40, page.Total)

	var req struct {
		Variables map[string]interface{} `json:"variables"`
	}
	require.NoError(t, json.Unmarshal(backend.Calls()[0].Body, &req))
	assert.Equal(t, "jacket", req.Variables["search"])
	assert.Equal(t, float64(10), req.Variables["pageSize"])
	assert.Equal(t, float64(3), req.Variables["currentPage"])
}

func TestSearchProductsFoldsGraphQLErrors(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPost, "graphql", http.StatusOK, map[string]interface{}{
		"errors": []map[string]interface{}{
			{"message": "Unknown field", "category": "graphql"},
			{"message": "Invalid page", "category": "graphql-input"},
		},
	})

	env := a.SearchProducts(context.Background(), backend.Args(Args{"text": "jacket"}))

	require.True(t, env.Failed())
	assert.Equal(t, apierror.NameInvalidArgument, env.Error.Name)
	assert.Equal(t, "Unknown field | Invalid page", env.Error.Message)
	assert.Equal(t, "graphql | graphql-input", env.ErrorType)
	assert.Equal(t, http.StatusBadRequest, env.HTTPStatus())
}
