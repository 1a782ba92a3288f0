package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Bakespear/Tasty-Bites/internal/ai"
	"github.com/Bakespear/Tasty-Bites/internal/validation"
)

func registerChatRoutes(r *gin.Engine, deps Deps, v *validatorv10.Validate) {
	r.POST("/api/chat", func(c *gin.Context) {
		var req validation.ChatRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		response := ai.ChatUnavailableReply
		if deps.AI.Configured() {
			prompt := ai.ChatPrompt(req.ConversationHistory, req.Message)
			generated, err := deps.AI.GenerateContent(c.Request.Context(), prompt)
			if err != nil {
				deps.Logger.Error("chat generation failed", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process chat message"})
				return
			}
			response = generated
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"response":  response,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
