package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	saved   []interface{}
	records []Record
	err     error
}

func (s *stubStore) Save(_ context.Context, _ string, doc interface{}) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, doc)
	return nil
}

func (s *stubStore) List(_ context.Context, _, _ string, _ int64) ([]Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestGateway_SavePrefersPrimary(t *testing.T) {
	primary := &stubStore{}
	fallback := &stubStore{}
	g := NewGateway(primary, fallback, discardLogger())

	location, err := g.Save(context.Background(), "orders", map[string]interface{}{"orderId": "TB-1"})
	require.NoError(t, err)
	assert.Equal(t, LocationMongo, location)
	assert.Len(t, primary.saved, 1)
	assert.Empty(t, fallback.saved)
}

func TestGateway_SaveFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubStore{err: errors.New("connection reset")}
	fallback := &stubStore{}
	g := NewGateway(primary, fallback, discardLogger())

	location, err := g.Save(context.Background(), "orders", map[string]interface{}{"orderId": "TB-1"})
	require.NoError(t, err)
	assert.Equal(t, LocationFile, location)
	assert.Len(t, fallback.saved, 1)
}

func TestGateway_SaveWithoutPrimary(t *testing.T) {
	fallback := &stubStore{}
	g := NewGateway(nil, fallback, discardLogger())

	location, err := g.Save(context.Background(), "payments", map[string]interface{}{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, LocationFile, location)
}

func TestGateway_SaveBothFailing(t *testing.T) {
	g := NewGateway(
		&stubStore{err: errors.New("db down")},
		&stubStore{err: errors.New("disk full")},
		discardLogger())

	_, err := g.Save(context.Background(), "orders", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGateway_ListFallsBack(t *testing.T) {
	primary := &stubStore{err: errors.New("db down")}
	fallback := &stubStore{records: []Record{{"orderId": "TB-2"}, {"orderId": "TB-1"}}}
	g := NewGateway(primary, fallback, discardLogger())

	records, source, err := g.List(context.Background(), "orders", "createdAt", 1000)
	require.NoError(t, err)
	assert.Equal(t, LocationFile, source)
	require.Len(t, records, 2)
	assert.Equal(t, "TB-2", records[0]["orderId"])
}

func TestGateway_ListPrimary(t *testing.T) {
	primary := &stubStore{records: []Record{{"orderId": "TB-1"}}}
	g := NewGateway(primary, &stubStore{}, discardLogger())

	records, source, err := g.List(context.Background(), "orders", "createdAt", 1000)
	require.NoError(t, err)
	assert.Equal(t, LocationMongo, source)
	assert.Len(t, records, 1)
}

func TestGateway_FallbackRoundTrip(t *testing.T) {
	// primary permanently failing: appended records come back
	// most-recent-first through the real file store
	g := NewGateway(&stubStore{err: errors.New("db down")}, NewFileStore(t.TempDir()), discardLogger())
	ctx := context.Background()

	for _, id := range []string{"TB-1", "TB-2"} {
		location, err := g.Save(ctx, "orders", map[string]interface{}{"orderId": id})
		require.NoError(t, err)
		assert.Equal(t, LocationFile, location)
	}

	records, source, err := g.List(ctx, "orders", "createdAt", 1000)
	require.NoError(t, err)
	assert.Equal(t, LocationFile, source)
	require.Len(t, records, 2)
	assert.Equal(t, "TB-2", records[0]["orderId"])
	assert.Equal(t, "TB-1", records[1]["orderId"])
}
