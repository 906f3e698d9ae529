package ui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	ordersdomain "chirostore/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUIApp(catalog Catalog, orders Orders) (*fiber.App, *Shell) {
	shell := NewShell(catalog, orders, time.Millisecond)

	app := fiber.New()
	NewHandler(shell).Register(app)
	return app, shell
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestUIPageRendersCatalog(t *testing.T) {
	app, _ := newTestUIApp(whatsAppCatalog(), &fakeOrders{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ui", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "WhatsApp")
	assert.Contains(t, string(body), "Rp1.100")
}

func TestUIPageTabQuerySwitchesTab(t *testing.T) {
	app, shell := newTestUIApp(whatsAppCatalog(), &fakeOrders{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ui?tab=orders", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, TabOrders, shell.ActiveTab())
}

func TestUISelectOperatorRedirects(t *testing.T) {
	app, shell := newTestUIApp(whatsAppCatalog(), &fakeOrders{})

	resp, err := app.Test(formRequest("/ui/catalog/operator", url.Values{
		"service":  {"123"},
		"operator": {"telkomsel"},
	}))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, ordersdomain.OperatorTelkomsel, shell.Catalog().OperatorFor("123"))
}

func TestUIOrderConfirmFlow(t *testing.T) {
	orders := &fakeOrders{}
	app, shell := newTestUIApp(whatsAppCatalog(), orders)

	// First render triggers the catalog fetch.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ui", nil))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(formRequest("/ui/catalog/order", url.Values{"service": {"123"}}))
	require.NoError(t, err)
	resp.Body.Close()
	require.NotNil(t, shell.Form())

	resp, err = app.Test(formRequest("/ui/order/confirm", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, orders.createCalls)
	assert.Equal(t, "123", orders.lastService)

	assert.Eventually(t, func() bool {
		return shell.Form() == nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, TabOrders, shell.ActiveTab())
}

func TestUIOrderCancel(t *testing.T) {
	app, shell := newTestUIApp(whatsAppCatalog(), &fakeOrders{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ui", nil))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(formRequest("/ui/catalog/order", url.Values{"service": {"123"}}))
	require.NoError(t, err)
	resp.Body.Close()
	require.NotNil(t, shell.Form())

	resp, err = app.Test(formRequest("/ui/order/cancel", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Nil(t, shell.Form())
}

func TestUIUpdateOrderStatus(t *testing.T) {
	orders := &fakeOrders{orders: []ordersdomain.Order{{ID: "ord-1", Status: ordersdomain.StatusReady}}}
	app, _ := newTestUIApp(whatsAppCatalog(), orders)

	resp, err := app.Test(formRequest("/ui/orders/status", url.Values{
		"order_id": {"ord-1"},
		"status":   {"4"},
	}))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "ord-1", orders.lastOrderID)
	assert.Equal(t, ordersdomain.StatusComplete, orders.lastStatus)
}

func TestUIRefreshOrders(t *testing.T) {
	orders := &fakeOrders{}
	app, _ := newTestUIApp(whatsAppCatalog(), orders)

	resp, err := app.Test(formRequest("/ui/orders/refresh", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, orders.listCalls)
}
