package service

import (
	"context"

	"swaad-sutra/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error)
	Get(id int64) (*domain.Order, error)
	List(filter domain.OrderFilter) ([]domain.Order, error)
	ChangeStatus(ctx context.Context, in domain.TransitionInput) (*domain.Order, error)
	ChangePayment(ctx context.Context, id int64, payment domain.PaymentStatus) (*domain.Order, error)
	MutateItems(ctx context.Context, in domain.MutateItemsInput) (*domain.Order, error)
	SetFeedback(ctx context.Context, id int64, feedback string) (*domain.Order, error)
	DailySummary(ctx context.Context, date string) (*domain.DaySummary, error)
	QRCode(id int64) ([]byte, error)
}

// OrderStore is the persistence collaborator. PutOrder must be read-after-
// write consistent for the same id, and NextID must be backed by an atomic
// increment primitive, never a read-then-write pair.
type OrderStore interface {
	NextID(name string) (int64, error)
	GetOrder(id int64) (*domain.Order, error)
	PutOrder(order *domain.Order) error
	ListOrders() ([]domain.Order, error)
	SaveQRCode(orderID int64, qr []byte) error
	GetQRCode(orderID int64) ([]byte, error)
}

type SummaryCache interface {
	GetSummary(ctx context.Context, date string) (*domain.DaySummary, error)
	SetSummary(ctx context.Context, summary *domain.DaySummary) error
}

type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, msg domain.StatusChangedMessage) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
