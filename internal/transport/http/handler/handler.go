// Package handler maps each route to its single storage operation.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/protim1451/task-12-server/internal/domain"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

// fail converts a storage-layer error into the response taxonomy: a
// malformed id is the caller's fault (400), anything else is a 500 with a
// fixed human-readable message.
func fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, domain.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, resp.NewErr("invalid id"))
		return
	}
	c.JSON(http.StatusInternalServerError, resp.NewErr(msg))
}

func intQuery(c *gin.Context, key string, def int64) int64 {
	if v, err := strconv.ParseInt(c.Query(key), 10, 64); err == nil && v > 0 {
		return v
	}
	return def
}
