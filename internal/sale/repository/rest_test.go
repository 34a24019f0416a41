package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/config"
	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
)

type noTokens struct{}

func (noTokens) Token() string { return "" }

func newTestRepo(t *testing.T, handler http.HandlerFunc) *RESTRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5}
	return NewRESTRepository(api.NewClient(cfg, noTokens{}, zap.NewNop()))
}

func TestSummary_SendsDateOnlyQueryParams(t *testing.T) {
	var gotStart, gotEnd string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start_date")
		gotEnd = r.URL.Query().Get("end_date")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_sales": 12, "total_revenue": 340.50}`))
	})

	rng := dto.SummaryRange{
		StartDate: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
	}
	summary, err := repo.Summary(context.Background(), rng)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", gotStart)
	assert.Equal(t, "2026-08-30", gotEnd)
	assert.Equal(t, 12, summary.TotalSales)
	assert.Equal(t, 340.50, summary.TotalRevenue)
}

func TestCreate_PostsJSONAndDecodesSale(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sales", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 100, "product_id": 1, "customer_id": 7, "quantity": 2, "unit_price": 9.99, "total_amount": 19.98}`))
	})

	s, err := repo.Create(context.Background(), &dto.CreateSaleInput{
		ProductID: 1, CustomerID: 7, Quantity: 2, UnitPrice: 9.99,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), s.ID)
	assert.Equal(t, 19.98, s.TotalAmount)
}
