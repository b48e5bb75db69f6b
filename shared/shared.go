package shared

import (
	"net/http"
	"strconv"
	"strings"

	"scaffold/shared/constant"
	"scaffold/shared/failure"

	"github.com/go-chi/chi/v5"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a single cache key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

// ParseID reads the integer id route parameter. A malformed id is a validation failure.
func ParseID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.UnprocessableEntity("id must be an integer") //nolint:wrapcheck
	}

	return id, nil
}
