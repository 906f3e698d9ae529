package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chirostore/pkg/virtusim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtuSimAdapterListServices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {"data": [
				{"id": "123", "name": "WhatsApp", "price": "1000", "pricing": {
					"original_price": 1000,
					"markup_percentage": 10,
					"fixed_markup": 0,
					"selling_price": 1100,
					"profit": 100
				}},
				{"id": "456", "name": "Telegram", "display_price": 2000}
			]}
		}`))
	}))
	defer server.Close()

	adapter := NewVirtuSimAdapter(virtusim.New(server.URL, time.Second))

	services, err := adapter.ListServices(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, "123", services[0].ID)
	assert.Equal(t, "WhatsApp", services[0].Name)
	require.NotNil(t, services[0].Pricing)
	assert.Equal(t, int64(1100), services[0].Pricing.SellingPrice)
	assert.Equal(t, int64(100), services[0].Pricing.Profit)

	assert.Equal(t, "Telegram", services[1].Name)
	assert.Nil(t, services[1].Pricing)
	assert.Equal(t, int64(2000), services[1].DisplayPrice)
}

func TestVirtuSimAdapterListServicesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "message": "API key not configured", "status_code": 401}`))
	}))
	defer server.Close()

	adapter := NewVirtuSimAdapter(virtusim.New(server.URL, time.Second))

	_, err := adapter.ListServices(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not configured")
}

func TestVirtuSimAdapterPricingPreview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pricing/1000", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"original_price": 1000,
				"markup_percentage": 10,
				"fixed_markup": 0,
				"selling_price": 1100,
				"profit": 100
			}
		}`))
	}))
	defer server.Close()

	adapter := NewVirtuSimAdapter(virtusim.New(server.URL, time.Second))

	pricing, err := adapter.PricingPreview(context.Background(), 1000)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), pricing.OriginalPrice)
	assert.Equal(t, int64(1100), pricing.SellingPrice)
	assert.Equal(t, int64(100), pricing.Profit)
}
