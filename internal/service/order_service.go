package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"swaad-sutra/internal/domain"
)

// Counter names handed to OrderStore.NextID.
const CounterOrderID = "orderId"

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidEnum          = errors.New("invalid enum value")
	ErrInvalidTimestamp     = errors.New("createdAt must not be in the future")
	ErrTerminalState        = errors.New("order is in a terminal state")
	ErrMissingCancelReason  = errors.New("cancellation requires a reason")
	ErrEmptyOrder           = errors.New("order must keep at least one item")
	ErrCounterUnavailable   = errors.New("id counter unavailable")
	ErrOrderNotFound        = errors.New("order not found")
)

type OrderService struct {
	store     OrderStore
	cache     SummaryCache
	publisher StatusPublisher
	qrEncoder QRGenerator
}

func NewOrderService(store OrderStore, cache SummaryCache, publisher StatusPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		store:     store,
		cache:     cache,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Create mints a new order. The id comes from the atomic order counter and
// the total is always recomputed from the item list; a total supplied by the
// caller is ignored. Counter failure aborts creation with nothing written.
func (s *OrderService) Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	flatNumber := strings.TrimSpace(in.FlatNumber)
	if customerName == "" || flatNumber == "" {
		return nil, ErrMissingRequiredField
	}

	items, err := normalizeItems(in.Items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrMissingRequiredField
	}

	status := in.Status
	if status == "" {
		status = domain.StatusNew
	}
	if !status.Valid() {
		return nil, ErrInvalidEnum
	}

	payment := in.PaymentStatus
	if payment == "" {
		payment = domain.PaymentPending
	}
	if !payment.Valid() {
		return nil, ErrInvalidEnum
	}

	now := time.Now()
	createdAt := now
	if in.CreatedAt != nil {
		// Backdated admin entry is fine, future-dated is not.
		if in.CreatedAt.After(now) {
			return nil, ErrInvalidTimestamp
		}
		createdAt = *in.CreatedAt
	}

	order := &domain.Order{
		CustomerName:  customerName,
		FlatNumber:    flatNumber,
		Phone:         strings.TrimSpace(in.Phone),
		Items:         items,
		TotalAmount:   domain.ItemsTotal(items),
		Status:        status,
		PaymentStatus: payment,
		CollectDate:   in.CollectDate,
		CollectTime:   in.CollectTime,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}

	if status == domain.StatusCancelled {
		reason := strings.TrimSpace(in.CancelReason)
		if reason == "" {
			return nil, ErrMissingCancelReason
		}
		order.CancelReason = reason
		order.CancelledAt = &now
	}

	id, err := s.store.NextID(CounterOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	order.ID = id

	if err := s.store.PutOrder(order); err != nil {
		// The issued id stays burned; gaps are fine, duplicates are not.
		return nil, fmt.Errorf("failed to store order %d: %w", id, err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order); err == nil {
			if err := s.store.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("Warning: failed to store slip QR for order %d: %v", order.ID, err)
			}
		}
	}

	return order, nil
}

func (s *OrderService) Get(id int64) (*domain.Order, error) {
	return s.loadOrder(id)
}

// List applies the dashboard filter and sort to a fresh snapshot.
func (s *OrderService) List(filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}
	return SortOrders(FilterOrders(orders, filter), filter.Sort), nil
}

// ChangeStatus validates the requested transition against the order state
// the store currently holds. Any transition out of a non-terminal state is
// legal (kitchens skip steps); leaving a terminal state is not. Every
// accepted change publishes a StatusChanged event.
func (s *OrderService) ChangeStatus(ctx context.Context, in domain.TransitionInput) (*domain.Order, error) {
	if !in.Status.Valid() {
		return nil, ErrInvalidEnum
	}

	order, err := s.loadOrder(in.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status.Terminal() {
		return nil, ErrTerminalState
	}
	if in.Status == order.Status {
		// No-op edit: no write, no event, no notification.
		return order, nil
	}

	now := time.Now()
	if in.Status == domain.StatusCancelled {
		reason := strings.TrimSpace(in.CancelReason)
		if reason == "" {
			return nil, ErrMissingCancelReason
		}
		cancelledAt := now
		if in.At != nil {
			cancelledAt = *in.At
		}
		order.CancelReason = reason
		order.CancelledAt = &cancelledAt
		// Items and total stay untouched; there is no auto-refund.
	}

	oldStatus := order.Status
	order.Status = in.Status
	order.UpdatedAt = now

	if err := s.store.PutOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order %d: %w", order.ID, err)
	}

	s.publishStatusChange(ctx, order, oldStatus)
	return order, nil
}

// ChangePayment records the operator-declared payment fact. Payment state is
// independent of the status machine: any value to any value, on any order,
// and it never emits a StatusChanged event.
func (s *OrderService) ChangePayment(ctx context.Context, id int64, payment domain.PaymentStatus) (*domain.Order, error) {
	if !payment.Valid() {
		return nil, ErrInvalidEnum
	}

	order, err := s.loadOrder(id)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == payment {
		return order, nil
	}

	order.PaymentStatus = payment
	order.UpdatedAt = time.Now()

	if err := s.store.PutOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order %d: %w", order.ID, err)
	}
	return order, nil
}

// MutateItems recomputes the item list and total under the requested mode.
// A mutation that would leave the order empty is rejected whole; the stored
// order is never half-updated.
func (s *OrderService) MutateItems(ctx context.Context, in domain.MutateItemsInput) (*domain.Order, error) {
	order, err := s.loadOrder(in.OrderID)
	if err != nil {
		return nil, err
	}

	final, err := applyMutation(order.Items, in.Items, in.Mode)
	if err != nil {
		return nil, err
	}

	order.Items = final
	order.TotalAmount = domain.ItemsTotal(final)
	order.UpdatedAt = time.Now()

	if err := s.store.PutOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order %d: %w", order.ID, err)
	}
	return order, nil
}

// SetFeedback attaches or clears the operator's note on an order,
// independent of status.
func (s *OrderService) SetFeedback(ctx context.Context, id int64, feedback string) (*domain.Order, error) {
	order, err := s.loadOrder(id)
	if err != nil {
		return nil, err
	}

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		order.AdminFeedback = ""
		order.FeedbackAt = nil
	} else {
		now := time.Now()
		order.AdminFeedback = feedback
		order.FeedbackAt = &now
	}
	order.UpdatedAt = time.Now()

	if err := s.store.PutOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order %d: %w", order.ID, err)
	}
	return order, nil
}

// DailySummary aggregates one calendar day for the dashboard, cached in
// Redis for a short while. Cancelled orders do not count.
func (s *OrderService) DailySummary(ctx context.Context, date string) (*domain.DaySummary, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx, date); err == nil && cached != nil {
			return cached, nil
		}
	}

	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}

	summary := &domain.DaySummary{
		Date:           date,
		ItemsToPrepare: map[string]int{},
	}
	for i := range orders {
		order := &orders[i]
		if order.CreatedAt.Format("2006-01-02") != date {
			continue
		}
		if order.Status == domain.StatusCancelled {
			continue
		}
		summary.OrderCount++
		summary.Revenue += order.TotalAmount
		if order.PaymentStatus == domain.PaymentPaid {
			summary.Collected += order.TotalAmount
		}
		for _, item := range order.Items {
			summary.ItemsToPrepare[item.Name] += item.Qty
		}
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, summary); err != nil {
			log.Printf("Warning: failed to cache summary for %s: %v", date, err)
		}
	}
	return summary, nil
}

// QRCode returns the order's collection slip PNG, regenerating it when the
// stored copy is missing.
func (s *OrderService) QRCode(id int64) ([]byte, error) {
	qr, err := s.store.GetQRCode(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(qr) == 0 && s.qrEncoder != nil {
		order, err := s.loadOrder(id)
		if err != nil {
			return nil, err
		}
		regenerated, err := s.qrEncoder.Generate(order)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slip QR: %w", err)
		}
		if err := s.store.SaveQRCode(id, regenerated); err != nil {
			log.Printf("Warning: failed to cache regenerated slip QR: %v", err)
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) loadOrder(id int64) (*domain.Order, error) {
	order, err := s.store.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return order, nil
}

func (s *OrderService) publishStatusChange(ctx context.Context, order *domain.Order, oldStatus domain.Status) {
	if s.publisher == nil {
		return
	}
	msg := domain.StatusChangedMessage{
		Type:      domain.StatusChangedType,
		Order:     *order,
		OldStatus: oldStatus,
		NewStatus: order.Status,
		Timestamp: time.Now(),
	}
	if err := s.publisher.PublishStatusChange(ctx, msg); err != nil {
		log.Printf("Warning: failed to publish status change for order %d: %v", order.ID, err)
	}
}
