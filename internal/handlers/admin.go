package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bakespear/Tasty-Bites/internal/storage"
)

// adminAuth gates admin routes behind the X-Admin-Key header. An
// unset key denies everything.
func adminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-Admin-Key") != adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func registerAdminRoutes(r *gin.Engine, deps Deps) {
	admin := r.Group("/api/admin", adminAuth(deps.AdminKey))

	listing := func(collection, sortKey, field string) gin.HandlerFunc {
		return func(c *gin.Context) {
			docs, source, err := deps.Gateway.List(c.Request.Context(), collection, sortKey, deps.AdminLimit)
			if err != nil {
				deps.Logger.Error("admin listing failed", "collection", collection, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch " + collection})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"source": source,
				"count":  len(docs),
				field:    docs,
			})
		}
	}

	admin.GET("/orders", listing(storage.CollectionOrders, "createdAt", "orders"))
	admin.GET("/payments", listing(storage.CollectionPayments, "receivedAt", "payments"))
	admin.GET("/feedbacks", listing(storage.CollectionFeedbacks, "createdAt", "feedbacks"))
}
