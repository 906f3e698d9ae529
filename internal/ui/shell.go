package ui

import (
	"context"
	"io"
	"sync"
	"time"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
)

// Tab identifies one of the two storefront tabs.
type Tab string

const (
	TabServices Tab = "services"
	TabOrders   Tab = "orders"
)

// Shell composes the catalog, order form and order list into one page. It is
// either showing the two-tab layout or, after a card order, the order form
// for the selected service. All methods are safe for concurrent use.
type Shell struct {
	mu sync.Mutex

	catalogView *CatalogView
	ordersView  *OrdersView
	form        *OrderForm

	ordersAPI    Orders
	confirmDelay time.Duration
	activeTab    Tab
}

// NewShell creates a Shell on the services tab with both views in their
// initial loading state.
func NewShell(catalog Catalog, orders Orders, confirmDelay time.Duration) *Shell {
	s := &Shell{
		ordersAPI:    orders,
		confirmDelay: confirmDelay,
		activeTab:    TabServices,
	}
	s.catalogView = NewCatalogView(catalog, s.enterOrderForm)
	s.ordersView = NewOrdersView(orders)
	return s
}

// enterOrderForm switches the page to the order form for the given service.
// Called from CatalogView.Order while the shell lock is held.
func (s *Shell) enterOrderForm(svc catalogdomain.Service, operator ordersdomain.Operator) {
	s.form = NewOrderForm(s.ordersAPI, svc, operator, s.confirmDelay, s.completeOrder, s.leaveOrderForm)
}

// completeOrder returns to the tab layout after the confirmation delay and
// refreshes the order list so the new order shows up. Fired from the form's
// timer goroutine, so it takes the lock itself.
func (s *Shell) completeOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = nil
	s.activeTab = TabOrders
	s.ordersView.Load(context.Background())
}

// leaveOrderForm returns to the tab layout without placing an order. Called
// from OrderForm.Cancel while the shell lock is held.
func (s *Shell) leaveOrderForm() {
	s.form = nil
}

// SetTab switches the visible tab. Unknown values are ignored.
func (s *Shell) SetTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tab == TabServices || tab == TabOrders {
		s.activeTab = tab
	}
}

// ActiveTab returns the currently visible tab.
func (s *Shell) ActiveTab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// SelectOperator records the operator choice on one catalog card.
func (s *Shell) SelectOperator(serviceID string, operator ordersdomain.Operator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogView.SelectOperator(serviceID, operator)
}

// RequestOrder opens the order form for a catalog service. It reports false
// for an unknown service id.
func (s *Shell) RequestOrder(serviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalogView.Order(serviceID)
}

// ConfirmOrder submits the open order form. It is ignored when no form is
// open.
func (s *Shell) ConfirmOrder(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form != nil {
		s.form.Submit(ctx)
	}
}

// CancelOrder cancels the open order form. It is ignored when no form is
// open.
func (s *Shell) CancelOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form != nil {
		s.form.Cancel()
	}
}

// RefreshCatalog refetches the service catalog.
func (s *Shell) RefreshCatalog(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogView.Load(ctx)
}

// RefreshOrders refetches the active order list.
func (s *Shell) RefreshOrders(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ordersView.Load(ctx)
}

// UpdateOrderStatus requests a status change for one order and, on success,
// refetches the list.
func (s *Shell) UpdateOrderStatus(ctx context.Context, orderID string, status ordersdomain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ordersView.UpdateStatus(ctx, orderID, status)
}

// Render writes the current page as HTML. The first render of each tab
// triggers its initial fetch.
func (s *Shell) Render(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		switch s.activeTab {
		case TabOrders:
			s.ordersView.EnsureLoaded(ctx)
		default:
			s.catalogView.EnsureLoaded(ctx)
		}
	}

	return pageTemplate.Execute(w, pageData{
		ActiveTab: s.activeTab,
		Catalog:   s.catalogView,
		Orders:    s.ordersView,
		Form:      s.form,
	})
}

// Catalog exposes the catalog view state.
func (s *Shell) Catalog() *CatalogView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalogView
}

// Orders exposes the order list view state.
func (s *Shell) Orders() *OrdersView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersView
}

// Form exposes the open order form, nil when the tab layout is shown.
func (s *Shell) Form() *OrderForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}
