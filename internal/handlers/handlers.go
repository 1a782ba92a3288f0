package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bakespear/Tasty-Bites/internal/ai"
	"github.com/Bakespear/Tasty-Bites/internal/feedback"
	"github.com/Bakespear/Tasty-Bites/internal/mpesa"
	"github.com/Bakespear/Tasty-Bites/internal/orders"
	"github.com/Bakespear/Tasty-Bites/internal/payments"
	"github.com/Bakespear/Tasty-Bites/internal/storage"
	"github.com/Bakespear/Tasty-Bites/internal/validation"
)

// Deps groups everything the HTTP layer needs.
type Deps struct {
	Orders   *orders.Service
	Receiver *payments.Receiver
	Mpesa    *mpesa.Client
	Feedback *feedback.Service
	AI       *ai.GeminiClient
	Gateway  *storage.Gateway

	AdminKey   string
	AdminLimit int64

	Logger *slog.Logger
}

// Register wires every API route onto the engine.
func Register(r *gin.Engine, deps Deps) {
	v := validation.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	registerOrderRoutes(r, deps, v)
	registerMpesaRoutes(r, deps, v)
	registerFeedbackRoutes(r, deps, v)
	registerChatRoutes(r, deps, v)
	registerAdminRoutes(r, deps)
}
