package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/pkg/database"
)

// HealthHandler reports service liveness and the state of the backing
// database.
type HealthHandler struct {
	db database.Database
}

func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
//
//	@Summary	Service health check
//	@Tags		Operations
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": string(h.db.GetType()) + ":down",
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": string(h.db.GetType()) + ":up",
	})
}
