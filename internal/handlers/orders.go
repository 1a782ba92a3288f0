package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Bakespear/Tasty-Bites/internal/orders"
	"github.com/Bakespear/Tasty-Bites/internal/validation"
)

func registerOrderRoutes(r *gin.Engine, deps Deps, v *validatorv10.Validate) {
	r.POST("/api/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		if err := v.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.OrderErrorMessage(err)})
			return
		}

		items := make([]orders.Item, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, orders.Item{
				ID:        it.ID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
				LineTotal: it.LineTotal,
			})
		}

		order, location, err := deps.Orders.Create(ctx, orders.CreateInput{
			Items:         items,
			CustomerPhone: req.CustomerPhone,
			TotalAmount:   req.TotalAmount,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			if errors.Is(err, orders.ErrEmptyItems) ||
				errors.Is(err, orders.ErrMissingPhone) ||
				errors.Is(err, orders.ErrMissingAmount) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.Logger.Error("failed to save order", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orderId": order.OrderID,
			"stored":  location,
		})
	})
}
