package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipe-extract/backend/internal/logger"
	"github.com/pageza/recipe-extract/backend/internal/service"
)

var (
	errMissingParameter = errors.New("missing query parameter")
	errUndecodable      = errors.New("query parameter is not valid percent-encoded UTF-8")
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrLinkUnavailable),
		errors.Is(err, service.ErrBadFormat),
		errors.Is(err, errMissingParameter),
		errors.Is(err, errUndecodable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrImportNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status statusFor picks for it. Unexpected
// errors are logged and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// decodedQuery returns the named query parameter percent-decoded once more
// than gin already did. Clients that encode the whole value end up with
// plain text either way. Only invalid UTF-8 is rejected.
func decodedQuery(c *gin.Context, key string) (string, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errMissingParameter, key)
	}
	value := lenientUnescape(raw)
	if !utf8.ValidString(value) {
		return "", errUndecodable
	}
	return value, nil
}

// lenientUnescape decodes every valid %XX triplet in s and copies any other
// '%' through unchanged, so "2% milk" survives.
func lenientUnescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
