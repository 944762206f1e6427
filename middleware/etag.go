package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/racefinder/models"
)

const (
	headerETag         = "ETag"
	headerIfNoneMatch  = "If-None-Match"
	headerCacheControl = "Cache-Control"
)

// DatasetVersion returns a deterministic hash of the record set. The records
// never change while the process runs, so it doubles as a strong ETag.
func DatasetVersion(records []models.Race) (string, error) {
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:16]), nil
}

// ETag returns an Echo middleware that tags GET and HEAD responses with the
// dataset version and answers 304 when the client already holds it.
//
// The base filter window moves with the clock, so the tag also carries the
// day it was computed for; listings are revalidated at least daily.
func ETag(version string, day func() string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				return next(c)
			}

			tag := `"` + version + "-" + day() + `"`
			c.Response().Header().Set(headerETag, tag)
			c.Response().Header().Set(headerCacheControl, "no-cache")

			if matches(req.Header.Get(headerIfNoneMatch), tag) {
				return c.NoContent(http.StatusNotModified)
			}
			return next(c)
		}
	}
}

func matches(ifNoneMatch, tag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}
