package storage

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"swaad-sutra/internal/domain"
)

func TestPostgresStore_NextID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO counters (name, value) VALUES ($1, 1)
			ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
			RETURNING value`)).
		WithArgs("orderId").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(42)))

	id, err := store.NextID("orderId")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_NextID_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery("INSERT INTO counters").
		WithArgs("orderId").
		WillReturnError(sql.ErrConnDone)

	_, err = store.NextID("orderId")
	assert.Error(t, err)
}

func orderColumns() []string {
	return []string{
		"id", "customer_name", "flat_number", "phone", "items", "total_amount",
		"status", "payment_status", "collect_date", "collect_time", "notes",
		"cancel_reason", "cancelled_at", "admin_feedback", "feedback_at",
		"created_at", "updated_at",
	}
}

func TestPostgresStore_GetOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	items, _ := json.Marshal([]domain.LineItem{{Name: "Pohe", UnitPrice: 30, Qty: 2}})
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id =").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(orderColumns()).AddRow(
			int64(7), "Priya", "B-404", "+919876543210", items, int64(60),
			"COOKING", "PENDING", "2026-08-25", "19:00", "",
			"", nil, "", nil, now, now,
		))

	order, err := store.GetOrder(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, domain.StatusCooking, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(60), order.TotalAmount)
	assert.Nil(t, order.CancelledAt)
}

func TestPostgresStore_GetOrder_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id =").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	order, err := store.GetOrder(404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, order)
}

func TestPostgresStore_PutOrder_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	now := time.Now()
	order := &domain.Order{
		ID:            7,
		CustomerName:  "Priya",
		FlatNumber:    "B-404",
		Items:         []domain.LineItem{{Name: "Pohe", UnitPrice: 30, Qty: 2}},
		TotalAmount:   60,
		Status:        domain.StatusNew,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items, _ := json.Marshal(order.Items)

	mock.ExpectExec("INSERT INTO orders (.+) ON CONFLICT \\(id\\) DO UPDATE SET").
		WithArgs(int64(7), "Priya", "B-404", "", items, int64(60),
			"NEW", "PENDING", "", "", "", "", nil, "", nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.PutOrder(order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	items, _ := json.Marshal([]domain.LineItem{{Name: "Upma", UnitPrice: 30, Qty: 1}})
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM orders(.+)ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(2), "Anil", "C-101", "", items, int64(30),
				"READY", "PAID", "", "", "", "", nil, "", nil, now, now).
			AddRow(int64(1), "Priya", "B-404", "", items, int64(30),
				"NEW", "PENDING", "", "", "", "", nil, "", nil, now.Add(-time.Hour), now))

	orders, err := store.ListOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
}

func TestPostgresStore_QRCodeRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectExec("UPDATE orders SET qr_code =").
		WithArgs([]byte("png"), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT qr_code FROM orders WHERE id =").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow([]byte("png")))

	assert.NoError(t, store.SaveQRCode(7, []byte("png")))

	qr, err := store.GetQRCode(7)
	assert.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
