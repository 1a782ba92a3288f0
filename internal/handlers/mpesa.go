package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Bakespear/Tasty-Bites/internal/mpesa"
	"github.com/Bakespear/Tasty-Bites/internal/payments"
	"github.com/Bakespear/Tasty-Bites/internal/validation"
)

func registerMpesaRoutes(r *gin.Engine, deps Deps, v *validatorv10.Validate) {
	r.POST("/api/mpesa/stk-push", func(c *gin.Context) {
		var req validation.StkPushRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		result, err := deps.Mpesa.StkPush(c.Request.Context(), req.Phone, req.Amount)
		if err != nil {
			deps.Logger.Error("stk push failed", "error", err)
			resp := gin.H{"error": "STK push failed"}
			var provErr *mpesa.ProviderError
			if errors.As(err, &provErr) {
				resp["detail"] = provErr.Detail
			}
			c.JSON(http.StatusInternalServerError, resp)
			return
		}

		c.JSON(http.StatusOK, result)
	})

	// Safaricom POSTs payment confirmations here; the endpoint is
	// unauthenticated and must accept whatever shape arrives.
	r.POST("/api/mpesa/callback", func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil || len(payload) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty callback payload"})
			return
		}

		location, err := deps.Receiver.Receive(c.Request.Context(), payload)
		if err != nil {
			if errors.Is(err, payments.ErrEmptyPayload) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Empty callback payload"})
				return
			}
			deps.Logger.Error("failed to save callback", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save callback"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "received", "stored": location})
	})
}
