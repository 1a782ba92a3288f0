package ai

import (
	"fmt"
	"strings"
)

const chatSystemPrompt = `You are the Tasty Bites AI assistant. You help customers with:
- Menu recommendations and descriptions
- Order placement assistance
- Delivery information
- Restaurant hours and location
- Payment methods (M-Pesa, cash, card)
- General customer service inquiries

Be friendly, professional, and concise. If you don't know something specific, offer to connect them with a human representative.

Previous conversation:`

// ChatTurn is one prior exchange in a chat conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// FeedbackPrompt asks the model for a short reply to a customer review.
func FeedbackPrompt(rating int, comment string) string {
	return fmt.Sprintf("You are a helpful restaurant assistant. Respond to customer feedback professionally and empathetically. "+
		"Customer feedback: Rating %d/5. Comment: %s. "+
		"Please provide a brief response thanking them and addressing their feedback.", rating, comment)
}

// ChatPrompt assembles the assistant prompt from the system context,
// the last four history turns, and the new customer message.
func ChatPrompt(history []ChatTurn, message string) string {
	if len(history) > 4 {
		history = history[len(history)-4:]
	}

	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString("\n")
	for _, turn := range history {
		speaker := "Assistant"
		if turn.Role == "user" {
			speaker = "Customer"
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", speaker, turn.Message))
	}
	b.WriteString(fmt.Sprintf("Customer: %s\nAssistant:", message))
	return b.String()
}
