package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
	"chirostore/pkg/virtusim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(orders Orders, delay time.Duration, onComplete, onCancel func()) *OrderForm {
	svc := catalogdomain.Service{ID: "123", Name: "WhatsApp"}
	return NewOrderForm(orders, svc, ordersdomain.OperatorIndosat, delay, onComplete, onCancel)
}

func TestOrderFormSubmitSuccess(t *testing.T) {
	completed := make(chan struct{})
	orders := &fakeOrders{}
	form := newTestForm(orders, time.Millisecond, func() { close(completed) }, nil)

	form.Submit(context.Background())

	assert.True(t, form.Success)
	assert.False(t, form.Submitting)
	assert.Empty(t, form.Err)
	assert.Equal(t, "123", orders.lastService)
	assert.Equal(t, ordersdomain.OperatorIndosat, orders.lastOperator)

	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("completion event never fired")
	}
}

func TestOrderFormSubmitFailureKeepsFormOpen(t *testing.T) {
	orders := &fakeOrders{createErr: &virtusim.Error{Message: "Insufficient balance"}}
	form := newTestForm(orders, time.Millisecond, func() {
		t.Error("completion must not fire on failure")
	}, nil)

	form.Submit(context.Background())

	assert.False(t, form.Success)
	assert.False(t, form.Submitting)
	assert.Equal(t, "Insufficient balance", form.Err)
}

func TestOrderFormSubmitFailureFallbackMessage(t *testing.T) {
	orders := &fakeOrders{createErr: errors.New("dial tcp: timeout")}
	form := newTestForm(orders, time.Millisecond, nil, nil)

	form.Submit(context.Background())

	assert.Equal(t, "Failed to create order", form.Err)
}

func TestOrderFormRetryAfterFailure(t *testing.T) {
	orders := &fakeOrders{createErr: errors.New("boom")}
	form := newTestForm(orders, time.Millisecond, nil, nil)

	form.Submit(context.Background())
	require.NotEmpty(t, form.Err)

	orders.createErr = nil
	form.Submit(context.Background())

	assert.True(t, form.Success)
	assert.Empty(t, form.Err)
	assert.Equal(t, 2, orders.createCalls)
}

func TestOrderFormSubmitIgnoredAfterSuccess(t *testing.T) {
	orders := &fakeOrders{}
	form := newTestForm(orders, time.Hour, nil, nil)

	form.Submit(context.Background())
	form.Submit(context.Background())

	assert.Equal(t, 1, orders.createCalls)
}

func TestOrderFormCancel(t *testing.T) {
	cancelled := false
	form := newTestForm(&fakeOrders{}, time.Millisecond, nil, func() { cancelled = true })

	form.Cancel()

	assert.True(t, cancelled)
}

func TestOrderFormCancelIgnoredAfterSuccess(t *testing.T) {
	form := newTestForm(&fakeOrders{}, time.Hour, nil, func() {
		t.Error("cancel must be ignored once the order succeeded")
	})

	form.Submit(context.Background())
	form.Cancel()
}
