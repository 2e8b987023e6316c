package httputil

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Listing endpoints page with offset and limit query parameters.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

var (
	errInvalidOffset = errors.New("invalid offset parameter: must be a non-negative integer")
	errInvalidLimit  = errors.New("invalid limit parameter: must be between 1 and 100")
)

// ParsePagination reads offset (default 0) and limit (default 50, at most 100)
// from the query string.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, ok := queryInt(c, "offset", 0)
	if !ok || offset < 0 {
		return 0, 0, errInvalidOffset
	}

	limit, ok = queryInt(c, "limit", DefaultPageLimit)
	if !ok || limit < 1 || limit > MaxPageLimit {
		return 0, 0, errInvalidLimit
	}

	return offset, limit, nil
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
