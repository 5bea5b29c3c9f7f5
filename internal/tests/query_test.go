package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swaad-sutra/internal/domain"
	"swaad-sutra/internal/service"
)

func queryFixture() []domain.Order {
	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	return []domain.Order{
		{
			ID: 1, CustomerName: "Priya Kulkarni", FlatNumber: "B-404",
			Items:       []domain.LineItem{{Name: "Pohe", Qty: 2}},
			TotalAmount: 60, Status: domain.StatusNew, PaymentStatus: domain.PaymentPending,
			CreatedAt: base.Add(3 * time.Hour),
		},
		{
			ID: 2, CustomerName: "Anil Deshpande", FlatNumber: "C-101",
			Items:       []domain.LineItem{{Name: "Puran Poli", Qty: 4}},
			TotalAmount: 100, Status: domain.StatusCooking, PaymentStatus: domain.PaymentPaid,
			CreatedAt: base.Add(2 * time.Hour),
		},
		{
			ID: 3, CustomerName: "Sneha", FlatNumber: "B-202",
			Items:       []domain.LineItem{{Name: "Upma", Qty: 1}},
			TotalAmount: 30, Status: domain.StatusDelivered, PaymentStatus: domain.PaymentPaid,
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID: 4, CustomerName: "Rahul", FlatNumber: "A-303",
			Items:       []domain.LineItem{{Name: "Sabudana Vada", Qty: 1}},
			TotalAmount: 60, Status: domain.StatusDelivered, PaymentStatus: domain.PaymentPending,
			CreatedAt: base.AddDate(0, 0, -1),
		},
		{
			ID: 5, CustomerName: "Meera", FlatNumber: "D-10",
			Items:       []domain.LineItem{{Name: "Pohe", Qty: 3}},
			TotalAmount: 90, Status: domain.StatusCancelled, PaymentStatus: domain.PaymentRefunded,
			CreatedAt: base,
		},
	}
}

func ids(orders []domain.Order) []int64 {
	out := make([]int64, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestFilterOrders(t *testing.T) {
	orders := queryFixture()

	tests := []struct {
		name    string
		filter  domain.OrderFilter
		wantIDs []int64
	}{
		{
			name:    "default hides settled orders",
			filter:  domain.OrderFilter{},
			wantIDs: []int64{1, 2, 4, 5}, // 3 is delivered and paid
		},
		{
			name:    "include settled shows everything",
			filter:  domain.OrderFilter{IncludeSettled: true},
			wantIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name:    "delivered but unpaid is not settled",
			filter:  domain.OrderFilter{Status: domain.StatusDelivered},
			wantIDs: []int64{4},
		},
		{
			name:    "status filter",
			filter:  domain.OrderFilter{Status: domain.StatusCooking},
			wantIDs: []int64{2},
		},
		{
			name:    "payment filter",
			filter:  domain.OrderFilter{Payment: domain.PaymentPaid},
			wantIDs: []int64{2},
		},
		{
			name:    "payment filter with settled included",
			filter:  domain.OrderFilter{Payment: domain.PaymentPaid, IncludeSettled: true},
			wantIDs: []int64{2, 3},
		},
		{
			name:    "date filter",
			filter:  domain.OrderFilter{Date: "2026-08-24"},
			wantIDs: []int64{4},
		},
		{
			name:    "search matches customer name case-insensitively",
			filter:  domain.OrderFilter{Search: "priya"},
			wantIDs: []int64{1},
		},
		{
			name:    "search matches flat number",
			filter:  domain.OrderFilter{Search: "c-101"},
			wantIDs: []int64{2},
		},
		{
			name:    "search matches item name",
			filter:  domain.OrderFilter{Search: "pohe"},
			wantIDs: []int64{1, 5},
		},
		{
			name:    "filters combine with AND",
			filter:  domain.OrderFilter{Search: "pohe", Status: domain.StatusCancelled},
			wantIDs: []int64{5},
		},
		{
			name:    "no matches yields empty, not nil error",
			filter:  domain.OrderFilter{Search: "biryani"},
			wantIDs: []int64{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := service.FilterOrders(orders, testCase.filter)
			assert.Equal(t, testCase.wantIDs, ids(got))
		})
	}
}

func TestFilterOrders_DoesNotMutateInput(t *testing.T) {
	orders := queryFixture()
	service.FilterOrders(orders, domain.OrderFilter{Status: domain.StatusNew})
	assert.Equal(t, queryFixture(), orders)
}

func TestSortOrders(t *testing.T) {
	orders := queryFixture()

	tests := []struct {
		name    string
		mode    domain.SortMode
		wantIDs []int64
	}{
		{name: "newest first is the default", mode: "", wantIDs: []int64{1, 2, 3, 5, 4}},
		{name: "unknown mode falls back to newest", mode: "shiniest", wantIDs: []int64{1, 2, 3, 5, 4}},
		{name: "oldest first", mode: domain.SortOldest, wantIDs: []int64{4, 5, 3, 2, 1}},
		{name: "amount descending", mode: domain.SortAmountDesc, wantIDs: []int64{2, 5, 1, 4, 3}},
		{name: "amount ascending", mode: domain.SortAmountAsc, wantIDs: []int64{3, 1, 4, 5, 2}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := service.SortOrders(orders, testCase.mode)
			assert.Equal(t, testCase.wantIDs, ids(got))
		})
	}
}

func TestSortOrders_AmountTiesAreStable(t *testing.T) {
	orders := queryFixture()
	got := service.SortOrders(orders, domain.SortAmountDesc)
	// 1 and 4 both total 60; 1 precedes 4 in the input so it stays first.
	assert.Equal(t, []int64{2, 5, 1, 4, 3}, ids(got))
}

func TestSortOrders_CollectSlot(t *testing.T) {
	base := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: 1, CreatedAt: base, CollectDate: "2026-08-25", CollectTime: "19:00"},
		{ID: 2, CreatedAt: base, CollectDate: "2026-08-25", CollectTime: "12:30"},
		// No collection slot: falls back to creation time, so it sorts first.
		{ID: 3, CreatedAt: base},
		// Garbage slot also falls back to creation time, after 3 (stable).
		{ID: 4, CreatedAt: base, CollectDate: "someday"},
	}

	got := service.SortOrders(orders, domain.SortCollect)
	assert.Equal(t, []int64{3, 4, 2, 1}, ids(got))
}
