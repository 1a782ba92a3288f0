package orders

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bakespear/Tasty-Bites/internal/storage"
)

type mockSaver struct {
	mu    sync.Mutex
	saved []interface{}
	err   error
}

func (m *mockSaver) Save(_ context.Context, collection string, doc interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if collection != storage.CollectionOrders {
		return "", errors.New("unexpected collection " + collection)
	}
	m.saved = append(m.saved, doc)
	return storage.LocationFile, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, nil))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func validInput() CreateInput {
	return CreateInput{
		Items: []Item{
			{ID: "1", Name: "Pilau", UnitPrice: 350, Quantity: 2, LineTotal: 700},
		},
		CustomerPhone: "712345678",
		TotalAmount:   850,
	}
}

func TestCreate_Valid(t *testing.T) {
	saver := &mockSaver{}
	svc := NewService(saver, testLogger())

	order, location, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, storage.LocationFile, location)
	assert.Regexp(t, regexp.MustCompile(`^TB-\d+$`), order.OrderID)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, 850, order.TotalAmount)
	assert.Equal(t, "712345678", order.CustomerPhone)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.Len(t, saver.saved, 1)
}

func TestCreate_ValidationOrder(t *testing.T) {
	svc := NewService(&mockSaver{}, testLogger())

	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr error
	}{
		{"empty items", func(in *CreateInput) { in.Items = nil }, ErrEmptyItems},
		{"missing phone", func(in *CreateInput) { in.CustomerPhone = " " }, ErrMissingPhone},
		{"zero amount", func(in *CreateInput) { in.TotalAmount = 0 }, ErrMissingAmount},
		{"negative amount", func(in *CreateInput) { in.TotalAmount = -10 }, ErrMissingAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, _, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// empty items wins over other missing fields
	_, _, err := svc.Create(context.Background(), CreateInput{})
	assert.ErrorIs(t, err, ErrEmptyItems)
}

func TestCreate_UniqueIDsSameMillisecond(t *testing.T) {
	svc := NewService(&mockSaver{}, testLogger())
	fixed := time.Now()
	svc.nowFunc = func() time.Time { return fixed }

	seen := make(map[string]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, _, err := svc.Create(context.Background(), validInput())
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[order.OrderID], "duplicate order id %s", order.OrderID)
			seen[order.OrderID] = true
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func TestCreate_CustomPaymentMethod(t *testing.T) {
	svc := NewService(&mockSaver{}, testLogger())

	in := validInput()
	in.PaymentMethod = "cash"
	order, _, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "cash", order.PaymentMethod)
}

func TestCreate_SaverFailure(t *testing.T) {
	saver := &mockSaver{err: errors.New("disk full")}
	svc := NewService(saver, testLogger())

	_, _, err := svc.Create(context.Background(), validInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"712345678", "712345678"},
		{"0712345678", "712345678"},
		{"254712345678", "712345678"},
		{"+254712345678", "712345678"},
		{"+254 712 345 678", "712345678"},
		{"0712-345-678", "712345678"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}
