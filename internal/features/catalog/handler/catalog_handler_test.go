package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chirostore/internal/features/catalog/domain"
	"chirostore/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a scriptable ServiceProvider.
type stubProvider struct {
	services []domain.Service
	pricing  domain.Pricing
	err      error
}

func (p *stubProvider) ListServices(ctx context.Context) ([]domain.Service, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.services, nil
}

func (p *stubProvider) PricingPreview(ctx context.Context, originalPrice int64) (domain.Pricing, error) {
	if p.err != nil {
		return domain.Pricing{}, p.err
	}
	return p.pricing, nil
}

func newTestApp(provider *stubProvider) *fiber.App {
	h := NewCatalogHandler(service.NewCatalogService(provider))

	app := fiber.New()
	app.Get("/services", h.ListServices)
	app.Get("/pricing/:originalPrice", h.PricingPreview)
	return app
}

func TestListServicesHandler(t *testing.T) {
	app := newTestApp(&stubProvider{services: []domain.Service{
		{ID: "123", Name: "WhatsApp", Pricing: &domain.Pricing{SellingPrice: 1100}},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/services", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var services []domain.Service
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&services))
	require.Len(t, services, 1)
	assert.Equal(t, "WhatsApp", services[0].Name)
	assert.Equal(t, int64(1100), services[0].Pricing.SellingPrice)
}

func TestListServicesHandlerUpstreamFailure(t *testing.T) {
	app := newTestApp(&stubProvider{err: assert.AnError})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/services", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
}

func TestPricingPreviewHandler(t *testing.T) {
	app := newTestApp(&stubProvider{pricing: domain.Pricing{OriginalPrice: 1000, SellingPrice: 1100, Profit: 100}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pricing/1000", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var pricing domain.Pricing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pricing))
	assert.Equal(t, int64(1100), pricing.SellingPrice)
}

func TestPricingPreviewHandlerRejectsBadInput(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pricing/abc", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/pricing/0", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
