package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

// ConcurrencyLimit bounds in-flight requests to protect the shared mongo
// handle downstream.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, resp.NewErr("server busy"))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
