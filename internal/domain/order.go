package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNew       Status = "NEW"
	StatusCooking   Status = "COOKING"
	StatusReady     Status = "READY"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusCooking, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further status transitions; completed or
// cancelled orders are historical record only.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// LineItem is one entry of an order. Amounts are whole rupees.
// Qty 0 is how callers express removal; items with qty <= 0 never survive a
// mutation. IsCustom marks an ad-hoc item that is not in the menu catalog,
// so its price is caller-supplied and not verified against anything.
type LineItem struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
	Unit      string `json:"unit,omitempty"`
	IsCustom  bool   `json:"isCustom,omitempty"`
}

func (li LineItem) Subtotal() int64 {
	return li.UnitPrice * int64(li.Qty)
}

// ItemsTotal is the only way a total amount is ever produced.
func ItemsTotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

type Order struct {
	ID            int64         `json:"id"`
	CustomerName  string        `json:"customerName"`
	FlatNumber    string        `json:"flatNumber"`
	Phone         string        `json:"phone,omitempty"`
	Items         []LineItem    `json:"items"`
	TotalAmount   int64         `json:"totalAmount"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CollectDate   string        `json:"collectDate,omitempty"`
	CollectTime   string        `json:"collectTime,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CancelReason  string        `json:"cancelReason,omitempty"`
	CancelledAt   *time.Time    `json:"cancelledAt,omitempty"`
	AdminFeedback string        `json:"adminFeedback,omitempty"`
	FeedbackAt    *time.Time    `json:"feedbackAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Settled orders (delivered and paid) are hidden from dashboard views by
// default.
func (o *Order) Settled() bool {
	return o.Status == StatusDelivered && o.PaymentStatus == PaymentPaid
}

// CollectAt resolves the requested collection moment, falling back to the
// creation time when the customer left the collection fields empty or gave
// something unparseable.
func (o *Order) CollectAt() time.Time {
	if o.CollectDate == "" {
		return o.CreatedAt
	}
	layout := "2006-01-02"
	value := o.CollectDate
	if o.CollectTime != "" {
		layout = "2006-01-02 15:04"
		value = o.CollectDate + " " + o.CollectTime
	}
	at, err := time.ParseInLocation(layout, value, o.CreatedAt.Location())
	if err != nil {
		return o.CreatedAt
	}
	return at
}

type CreateOrderInput struct {
	CustomerName string     `json:"customerName"`
	FlatNumber   string     `json:"flatNumber"`
	Phone        string     `json:"phone"`
	Items        []LineItem `json:"items"`
	CollectDate  string     `json:"collectDate"`
	CollectTime  string     `json:"collectTime"`
	Notes        string     `json:"notes"`

	// Admin backfill overrides. Zero values mean "use the defaults"
	// (NEW, PENDING, now); CancelReason only applies when Status is
	// CANCELLED.
	Status        Status        `json:"status,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	CancelReason  string        `json:"cancelReason,omitempty"`
	CreatedAt     *time.Time    `json:"createdAt,omitempty"`
}

type TransitionInput struct {
	OrderID      int64      `json:"-"`
	Status       Status     `json:"status"`
	CancelReason string     `json:"cancelReason,omitempty"`
	At           *time.Time `json:"at,omitempty"`
}

type MutationMode string

const (
	MutationAppend  MutationMode = "append"
	MutationReplace MutationMode = "replace"
)

type MutateItemsInput struct {
	OrderID int64        `json:"-"`
	Mode    MutationMode `json:"mode"`
	Items   []LineItem   `json:"items"`
}

// StatusChangedMessage is the event published for every accepted status
// transition. Payment-only edits never produce one.
type StatusChangedMessage struct {
	Type      string    `json:"type"`
	Order     Order     `json:"order"`
	OldStatus Status    `json:"old_status"`
	NewStatus Status    `json:"new_status"`
	Timestamp time.Time `json:"timestamp"`
}

const StatusChangedType = "order_status_changed"

// NotificationIntent is a decided-but-not-sent message. The engine only ever
// produces these triples; delivering them is the transport's problem.
type NotificationIntent struct {
	Channel string `json:"channel"`
	Address string `json:"address"`
	Body    string `json:"body"`
	OrderID int64  `json:"order_id"`
	Status  Status `json:"status"`
}

type SortMode string

const (
	SortNewest     SortMode = "newest"
	SortOldest     SortMode = "oldest"
	SortAmountDesc SortMode = "amount_desc"
	SortAmountAsc  SortMode = "amount_asc"
	SortCollect    SortMode = "collect"
)

// OrderFilter describes one dashboard view over a snapshot of orders.
// All filters are optional and combine with AND.
type OrderFilter struct {
	Search         string
	Status         Status
	Payment        PaymentStatus
	Date           string // calendar day, YYYY-MM-DD
	IncludeSettled bool
	Sort           SortMode
}

// MatchesSearch reports whether the free-text query hits the customer name,
// flat number or any item name, case-insensitively.
func (o *Order) MatchesSearch(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(o.FlatNumber), query) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			return true
		}
	}
	return false
}

// DaySummary is the kitchen's end-of-day view: how many orders came in, how
// much was billed, how much cash is already collected and what still has to
// be cooked.
type DaySummary struct {
	Date           string         `json:"date"`
	OrderCount     int            `json:"orderCount"`
	Revenue        int64          `json:"revenue"`
	Collected      int64          `json:"collected"`
	ItemsToPrepare map[string]int `json:"itemsToPrepare"`
}
