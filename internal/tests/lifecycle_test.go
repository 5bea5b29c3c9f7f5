package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "swaad-sutra/internal/api/http"
	"swaad-sutra/internal/domain"
	"swaad-sutra/internal/service"
)

// capturingPublisher records every published event in order.
type capturingPublisher struct {
	mu       sync.Mutex
	messages []domain.StatusChangedMessage
}

func (p *capturingPublisher) PublishStatusChange(ctx context.Context, msg domain.StatusChangedMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturingPublisher) all() []domain.StatusChangedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.StatusChangedMessage, len(p.messages))
	copy(out, p.messages)
	return out
}

// TestOrderLifecycleEndToEnd drives one order through the whole happy path
// over the real HTTP surface, backed by the in-memory store.
func TestOrderLifecycleEndToEnd(t *testing.T) {
	store := newCountingStore()
	publisher := &capturingPublisher{}
	svc := service.NewOrderService(store, nil, publisher, nil)
	server := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(svc)))
	defer server.Close()

	decode := func(t *testing.T, resp *http.Response) domain.Order {
		t.Helper()
		defer resp.Body.Close()
		var order domain.Order
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
		return order
	}

	// Place the order.
	resp, err := http.Post(server.URL+"/api/orders", "application/json",
		bytes.NewBufferString(`{
			"customerName": "Priya",
			"flatNumber": "B-404",
			"phone": "+919876543210",
			"items": [
				{"id": 2, "qty": 4},
				{"name": "Extra Ghee", "unitPrice": 20, "qty": 1, "isCustom": true}
			],
			"collectDate": "2026-08-25",
			"collectTime": "19:00"
		}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode(t, resp)

	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, domain.StatusNew, order.Status)
	assert.Equal(t, int64(120), order.TotalAmount) // 4 × ₹25 catalog + ₹20 custom

	// Walk it through the kitchen.
	for _, status := range []domain.Status{domain.StatusCooking, domain.StatusReady} {
		resp = putJSON(t, server.URL+"/api/orders/1/status", `{"status":"`+string(status)+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		order = decode(t, resp)
		assert.Equal(t, status, order.Status)
	}

	// Collect payment, then hand it over.
	resp = putJSON(t, server.URL+"/api/orders/1/payment", `{"paymentStatus":"PAID"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = putJSON(t, server.URL+"/api/orders/1/status", `{"status":"DELIVERED"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	order = decode(t, resp)
	assert.Equal(t, domain.StatusDelivered, order.Status)

	// Every accepted transition produced exactly one event, in order, and
	// the payment edit produced none.
	events := publisher.all()
	require.Len(t, events, 3)
	assert.Equal(t, domain.StatusCooking, events[0].NewStatus)
	assert.Equal(t, domain.StatusReady, events[1].NewStatus)
	assert.Equal(t, domain.StatusDelivered, events[2].NewStatus)
	assert.Equal(t, domain.StatusReady, events[2].OldStatus)

	// Settled now, so the default dashboard view hides it.
	resp, err = http.Get(server.URL + "/api/orders")
	require.NoError(t, err)
	var visible []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&visible))
	resp.Body.Close()
	assert.Empty(t, visible)

	resp, err = http.Get(server.URL + "/api/orders?include_settled=true")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&visible))
	resp.Body.Close()
	assert.Len(t, visible, 1)

	// Delivered is terminal; nothing moves it again.
	resp = putJSON(t, server.URL+"/api/orders/1/status",
		`{"status":"CANCELLED","cancelReason":"too late"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// But the payment fact can still be corrected.
	resp = putJSON(t, server.URL+"/api/orders/1/payment", `{"paymentStatus":"REFUNDED"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	order = decode(t, resp)
	assert.Equal(t, domain.PaymentRefunded, order.PaymentStatus)
	assert.Len(t, publisher.all(), 3)
}

func TestOrderLifecycleEndToEnd_CancelPath(t *testing.T) {
	store := newCountingStore()
	publisher := &capturingPublisher{}
	svc := service.NewOrderService(store, nil, publisher, nil)
	server := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(svc)))
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/orders", "application/json",
		bytes.NewBufferString(`{
			"customerName": "Anil",
			"flatNumber": "C-101",
			"items": [{"id": 10, "qty": 2}]
		}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// A reason is mandatory.
	resp = putJSON(t, server.URL+"/api/orders/1/status", `{"status":"CANCELLED"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = putJSON(t, server.URL+"/api/orders/1/status",
		`{"status":"CANCELLED","cancelReason":"customer travelling"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()
	assert.Equal(t, domain.StatusCancelled, order.Status)
	assert.Equal(t, "customer travelling", order.CancelReason)
	assert.NotNil(t, order.CancelledAt)
	// Cancellation keeps the bill intact; refunds are a payment edit.
	assert.Equal(t, int64(60), order.TotalAmount)
	assert.Len(t, order.Items, 1)

	// Items of a cancelled order can no longer be the basis of new state
	// transitions, but the summary must also skip it.
	summaryResp, err := http.Get(server.URL + "/api/summary")
	require.NoError(t, err)
	var summary domain.DaySummary
	require.NoError(t, json.NewDecoder(summaryResp.Body).Decode(&summary))
	summaryResp.Body.Close()
	assert.Zero(t, summary.OrderCount)
	assert.Zero(t, summary.Revenue)
}
