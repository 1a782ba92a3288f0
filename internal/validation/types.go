package validation

import "github.com/Bakespear/Tasty-Bites/internal/ai"

// OrderItem mirrors a storefront cart line.
type OrderItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	LineTotal int    `json:"lineTotal"`
}

// CreateOrderRequest is the payload for POST /api/orders. TotalAmount
// is the caller's figure, delivery fee included; it is stored as given.
type CreateOrderRequest struct {
	Items         []OrderItem `json:"items" validate:"required,min=1,dive"`
	CustomerPhone string      `json:"customerPhone" validate:"required"`
	TotalAmount   int         `json:"totalAmount" validate:"required,gt=0"`
	PaymentMethod string      `json:"paymentMethod"`
}

// StkPushRequest is the payload for POST /api/mpesa/stk-push.
type StkPushRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

// FeedbackRequest is the payload for POST /api/feedback.
type FeedbackRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"required"`
}

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []ai.ChatTurn `json:"conversationHistory"`
}
