package ui

import (
	"net/http"
	"strconv"

	ordersdomain "chirostore/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the server-rendered storefront page and the form posts
// that drive the shell.
type Handler struct {
	shell *Shell
}

// NewHandler creates a Handler around a shell.
func NewHandler(shell *Shell) *Handler {
	return &Handler{shell: shell}
}

// Register mounts the storefront routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/ui", h.Page)
	app.Post("/ui/catalog/operator", h.SelectOperator)
	app.Post("/ui/catalog/order", h.OrderService)
	app.Post("/ui/catalog/retry", h.RetryCatalog)
	app.Post("/ui/order/confirm", h.ConfirmOrder)
	app.Post("/ui/order/cancel", h.CancelOrder)
	app.Post("/ui/orders/refresh", h.RefreshOrders)
	app.Post("/ui/orders/status", h.UpdateStatus)
}

// Page renders the storefront. The tab query switches between the two tabs.
func (h *Handler) Page(c *fiber.Ctx) error {
	if tab := c.Query("tab"); tab != "" {
		h.shell.SetTab(Tab(tab))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return h.shell.Render(c.Context(), c.Response().BodyWriter())
}

// SelectOperator records the operator choice on one catalog card.
func (h *Handler) SelectOperator(c *fiber.Ctx) error {
	operator, _ := ordersdomain.ParseOperator(c.FormValue("operator"))
	h.shell.SelectOperator(c.FormValue("service"), operator)
	return c.Redirect("/ui?tab=services", http.StatusSeeOther)
}

// OrderService opens the order form for a catalog service.
func (h *Handler) OrderService(c *fiber.Ctx) error {
	h.shell.RequestOrder(c.FormValue("service"))
	return c.Redirect("/ui", http.StatusSeeOther)
}

// RetryCatalog refetches the service catalog after a failed load.
func (h *Handler) RetryCatalog(c *fiber.Ctx) error {
	h.shell.RefreshCatalog(c.Context())
	return c.Redirect("/ui?tab=services", http.StatusSeeOther)
}

// ConfirmOrder submits the open order form.
func (h *Handler) ConfirmOrder(c *fiber.Ctx) error {
	h.shell.ConfirmOrder(c.Context())
	return c.Redirect("/ui", http.StatusSeeOther)
}

// CancelOrder abandons the open order form.
func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	h.shell.CancelOrder()
	return c.Redirect("/ui", http.StatusSeeOther)
}

// RefreshOrders refetches the active order list.
func (h *Handler) RefreshOrders(c *fiber.Ctx) error {
	h.shell.RefreshOrders(c.Context())
	return c.Redirect("/ui?tab=orders", http.StatusSeeOther)
}

// UpdateStatus requests a status change for one order.
func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	status, err := strconv.Atoi(c.FormValue("status"))
	if err != nil {
		return c.Redirect("/ui?tab=orders", http.StatusSeeOther)
	}

	h.shell.UpdateOrderStatus(c.Context(), c.FormValue("order_id"), ordersdomain.Status(status))
	return c.Redirect("/ui?tab=orders", http.StatusSeeOther)
}
