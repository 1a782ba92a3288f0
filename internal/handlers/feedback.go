package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Bakespear/Tasty-Bites/internal/feedback"
	"github.com/Bakespear/Tasty-Bites/internal/validation"
)

func registerFeedbackRoutes(r *gin.Engine, deps Deps, v *validatorv10.Validate) {
	r.POST("/api/feedback", func(c *gin.Context) {
		var req validation.FeedbackRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		reply, location, err := deps.Feedback.Submit(c.Request.Context(), feedback.SubmitInput{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Rating:        req.Rating,
			Comment:       req.Comment,
		})
		if err != nil {
			deps.Logger.Error("failed to process feedback", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process feedback"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"aiResponse": reply,
			"stored":     location,
		})
	})
}
