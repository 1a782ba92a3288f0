package storage

import "context"

// Storage locations reported back to API callers.
const (
	LocationMongo = "mongodb"
	LocationFile  = "file"
)

// Collection names used across the services.
const (
	CollectionOrders    = "orders"
	CollectionPayments  = "payments"
	CollectionFeedbacks = "feedbacks"
)

// Record is a persisted document in backend-neutral form.
type Record = map[string]interface{}

// Store is the contract both backends satisfy. List returns records
// ordered most-recent-first by sortKey, bounded by limit.
type Store interface {
	Save(ctx context.Context, collection string, doc interface{}) error
	List(ctx context.Context, collection, sortKey string, limit int64) ([]Record, error)
}
