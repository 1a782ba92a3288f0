package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Bakespear/Tasty-Bites/internal/storage"
)

// Validation failures, checked in this order.
var (
	ErrEmptyItems    = errors.New("items array is required and cannot be empty")
	ErrMissingPhone  = errors.New("customerPhone is required")
	ErrMissingAmount = errors.New("totalAmount is required and must be positive")
)

// Saver is the slice of the storage gateway the order service needs.
type Saver interface {
	Save(ctx context.Context, collection string, doc interface{}) (string, error)
}

// CreateInput is the validated-enough payload coming off the wire.
type CreateInput struct {
	Items         []Item
	CustomerPhone string
	TotalAmount   int
	PaymentMethod string
}

// Service validates and persists customer orders.
type Service struct {
	store  Saver
	logger *slog.Logger

	mu     sync.Mutex
	lastID int64

	nowFunc func() time.Time
}

func NewService(store Saver, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// nextOrderID issues a TB-<epochMillis> identifier. Two calls inside
// the same millisecond still get distinct, strictly increasing ids.
func (s *Service) nextOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nowFunc().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return fmt.Sprintf("TB-%d", id)
}

// Create validates in, assigns an order id, and persists the order.
// It returns the stored order and the backend location that took it.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Order, string, error) {
	if len(in.Items) == 0 {
		return nil, "", ErrEmptyItems
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, "", ErrMissingPhone
	}
	if in.TotalAmount <= 0 {
		return nil, "", ErrMissingAmount
	}

	method := in.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
	}

	now := s.nowFunc().UTC()
	order := &Order{
		OrderID:       s.nextOrderID(),
		Items:         in.Items,
		CustomerPhone: NormalizePhone(in.CustomerPhone),
		TotalAmount:   in.TotalAmount,
		PaymentMethod: method,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	location, err := s.store.Save(ctx, storage.CollectionOrders, order)
	if err != nil {
		return nil, "", fmt.Errorf("save order %s: %w", order.OrderID, err)
	}

	s.logger.Info("order saved",
		slog.String("order_id", order.OrderID),
		slog.String("stored", location))
	return order, location, nil
}

// NormalizePhone reduces a Kenyan MSISDN to the 9-digit local
// subscriber form: no plus, no 254 country code, no leading zero.
func NormalizePhone(phone string) string {
	p := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	p = strings.TrimPrefix(p, "+")
	p = strings.TrimPrefix(p, "254")
	p = strings.TrimPrefix(p, "0")
	return p
}
