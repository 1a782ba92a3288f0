package orders

import "time"

// Order status. Nothing in-process transitions an order today; status
// changes happen out of band against the store.
const StatusPending = "pending"

// Default payment method when the client omits one.
const DefaultPaymentMethod = "mpesa"

// Item is a single order line as the storefront submits it. LineTotal
// is client-computed and stored as given.
type Item struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	UnitPrice int    `json:"unitPrice" bson:"unitPrice"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	LineTotal int    `json:"lineTotal" bson:"lineTotal"`
}

// Order is the document persisted to the orders collection.
type Order struct {
	OrderID       string    `json:"orderId" bson:"orderId"`
	Items         []Item    `json:"items" bson:"items"`
	CustomerPhone string    `json:"customerPhone" bson:"customerPhone"`
	TotalAmount   int       `json:"totalAmount" bson:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod" bson:"paymentMethod"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
