package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"swaad-sutra/internal/domain"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGINT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			flat_number TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			items JSONB NOT NULL,
			total_amount BIGINT NOT NULL,
			status TEXT NOT NULL,
			payment_status TEXT NOT NULL,
			collect_date TEXT NOT NULL DEFAULT '',
			collect_time TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			cancel_reason TEXT NOT NULL DEFAULT '',
			cancelled_at TIMESTAMPTZ,
			admin_feedback TEXT NOT NULL DEFAULT '',
			feedback_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS counters (
			name TEXT PRIMARY KEY,
			value BIGINT NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// NextID issues the next value of a named counter through a single atomic
// upsert-increment. Two concurrent callers can never see the same value; a
// value issued to a request that later fails is simply never reused.
func (s *PostgresStore) NextID(name string) (int64, error) {
	var value int64
	err := s.DB.QueryRow(`
		INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return value, nil
}

// PutOrder writes the full order document; a successful write is visible to
// the next read of the same id. The stored QR slip is managed separately and
// survives updates.
func (s *PostgresStore) PutOrder(order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	_, err = s.DB.Exec(`
		INSERT INTO orders (
			id, customer_name, flat_number, phone, items, total_amount,
			status, payment_status, collect_date, collect_time, notes,
			cancel_reason, cancelled_at, admin_feedback, feedback_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			flat_number = EXCLUDED.flat_number,
			phone = EXCLUDED.phone,
			items = EXCLUDED.items,
			total_amount = EXCLUDED.total_amount,
			status = EXCLUDED.status,
			payment_status = EXCLUDED.payment_status,
			collect_date = EXCLUDED.collect_date,
			collect_time = EXCLUDED.collect_time,
			notes = EXCLUDED.notes,
			cancel_reason = EXCLUDED.cancel_reason,
			cancelled_at = EXCLUDED.cancelled_at,
			admin_feedback = EXCLUDED.admin_feedback,
			feedback_at = EXCLUDED.feedback_at,
			updated_at = EXCLUDED.updated_at
	`, order.ID, order.CustomerName, order.FlatNumber, order.Phone, items,
		order.TotalAmount, string(order.Status), string(order.PaymentStatus),
		order.CollectDate, order.CollectTime, order.Notes, order.CancelReason,
		order.CancelledAt, order.AdminFeedback, order.FeedbackAt,
		order.CreatedAt, order.UpdatedAt)
	return err
}

func (s *PostgresStore) GetOrder(id int64) (*domain.Order, error) {
	row := s.DB.QueryRow(`
		SELECT id, customer_name, flat_number, phone, items, total_amount,
			status, payment_status, collect_date, collect_time, notes,
			cancel_reason, cancelled_at, admin_feedback, feedback_at,
			created_at, updated_at
		FROM orders WHERE id = $1
	`, id)
	return scanOrder(row)
}

func (s *PostgresStore) ListOrders() ([]domain.Order, error) {
	rows, err := s.DB.Query(`
		SELECT id, customer_name, flat_number, phone, items, total_amount,
			status, payment_status, collect_date, collect_time, notes,
			cancel_reason, cancelled_at, admin_feedback, feedback_at,
			created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) SaveQRCode(orderID int64, qr []byte) error {
	_, err := s.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (s *PostgresStore) GetQRCode(orderID int64) ([]byte, error) {
	var qr []byte
	if err := s.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order       domain.Order
		items       []byte
		status      string
		payment     string
		cancelledAt sql.NullTime
		feedbackAt  sql.NullTime
	)
	err := row.Scan(&order.ID, &order.CustomerName, &order.FlatNumber,
		&order.Phone, &items, &order.TotalAmount, &status, &payment,
		&order.CollectDate, &order.CollectTime, &order.Notes,
		&order.CancelReason, &cancelledAt, &order.AdminFeedback,
		&feedbackAt, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items for order %d: %w", order.ID, err)
	}
	order.Status = domain.Status(status)
	order.PaymentStatus = domain.PaymentStatus(payment)
	if cancelledAt.Valid {
		order.CancelledAt = &cancelledAt.Time
	}
	if feedbackAt.Valid {
		order.FeedbackAt = &feedbackAt.Time
	}
	return &order, nil
}
