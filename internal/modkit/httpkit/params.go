package httpkit

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	perr "addressbook/internal/platform/errors"
	phttp "addressbook/internal/platform/net/http"
)

// Param returns a trimmed path parameter
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(phttp.URLParam(r, name))
}

// IntParam parses a required integer path parameter that fits a postgres integer
// missing, malformed or out of range values are validation errors carrying the field name
func IntParam(r *http.Request, name string) (int, error) {
	raw := Param(r, name)
	if raw == "" {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s is required", name), name)
	}
	return parseInt32(name, raw)
}

// IntQuery parses an optional integer query parameter, def when absent
func IntQuery(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	return parseInt32(name, raw)
}

func parseInt32(name, raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s is out of range", name), name)
	case err != nil:
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be an integer", name), name)
	}
	return int(n), nil
}
