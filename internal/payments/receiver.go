package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Bakespear/Tasty-Bites/internal/storage"
)

// ErrEmptyPayload rejects callbacks with no body at all.
var ErrEmptyPayload = errors.New("empty callback payload")

// Record is the document persisted for every inbound provider
// callback. For recognized STK callbacks the well-known fields are
// passed through verbatim; for anything else only ReceivedAt and
// Payload are set. There is no field linking back to an order — the
// provider sends none.
type Record struct {
	ReceivedAt        time.Time              `json:"receivedAt" bson:"receivedAt"`
	Type              string                 `json:"type,omitempty" bson:"type,omitempty"`
	MerchantRequestID interface{}            `json:"MerchantRequestID,omitempty" bson:"MerchantRequestID,omitempty"`
	CheckoutRequestID interface{}            `json:"CheckoutRequestID,omitempty" bson:"CheckoutRequestID,omitempty"`
	ResultCode        interface{}            `json:"ResultCode,omitempty" bson:"ResultCode,omitempty"`
	ResultDesc        interface{}            `json:"ResultDesc,omitempty" bson:"ResultDesc,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Raw               map[string]interface{} `json:"raw,omitempty" bson:"raw,omitempty"`
	Payload           map[string]interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
}

// Saver is the slice of the storage gateway the receiver needs.
type Saver interface {
	Save(ctx context.Context, collection string, doc interface{}) (string, error)
}

// Receiver ingests provider payment callbacks. The endpoint is
// unauthenticated and must swallow malformed, partial, duplicate and
// out-of-order deliveries without crashing.
type Receiver struct {
	store   Saver
	logger  *slog.Logger
	nowFunc func() time.Time
}

func NewReceiver(store Saver, logger *slog.Logger) *Receiver {
	return &Receiver{
		store:   store,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Receive normalizes and persists one callback delivery. It returns
// the storage location used; only an empty payload or a total
// persistence failure produce an error.
func (r *Receiver) Receive(ctx context.Context, payload map[string]interface{}) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyPayload
	}

	record := Normalize(payload, r.nowFunc().UTC())

	location, err := r.store.Save(ctx, storage.CollectionPayments, record)
	if err != nil {
		return "", fmt.Errorf("save callback: %w", err)
	}

	kind := record.Type
	if kind == "" {
		kind = "unknown"
	}
	r.logger.Info("saved mpesa callback",
		slog.String("type", kind),
		slog.String("stored", location))
	return location, nil
}

// Normalize extracts the Body.stkCallback shape when present and keeps
// the whole payload either way for forensic replay.
func Normalize(payload map[string]interface{}, receivedAt time.Time) Record {
	record := Record{ReceivedAt: receivedAt, Payload: payload}

	stk := stkCallback(payload)
	if stk == nil {
		return record
	}

	record.Type = "stkCallback"
	record.MerchantRequestID = stk["MerchantRequestID"]
	record.CheckoutRequestID = stk["CheckoutRequestID"]
	record.ResultCode = stk["ResultCode"]
	record.ResultDesc = stk["ResultDesc"]
	record.Metadata = flattenMetadata(stk)
	record.Raw = stk
	return record
}

func stkCallback(payload map[string]interface{}) map[string]interface{} {
	body, ok := payload["Body"].(map[string]interface{})
	if !ok {
		return nil
	}
	stk, ok := body["stkCallback"].(map[string]interface{})
	if !ok {
		return nil
	}
	return stk
}

// flattenMetadata turns CallbackMetadata.Item's {Name, Value} list
// into a plain name->value map. Items without a Name are skipped.
func flattenMetadata(stk map[string]interface{}) map[string]interface{} {
	meta, ok := stk["CallbackMetadata"].(map[string]interface{})
	if !ok {
		return nil
	}
	items, ok := meta["Item"].([]interface{})
	if !ok {
		return nil
	}

	out := map[string]interface{}{}
	for _, it := range items {
		item, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		name, ok := item["Name"].(string)
		if !ok || name == "" {
			continue
		}
		out[name] = item["Value"]
	}
	return out
}
