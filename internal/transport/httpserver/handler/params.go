package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func parseIDParam(r *http.Request, name string) (int64, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

// parsePage converts page/limit query values to a limit/offset pair.
func parsePage(query map[string][]string) (limit, offset int, err error) {
	get := func(key string) string {
		values := query[key]
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}

	page, err := parseIntParam(get("page"), 1)
	if err != nil || page == 0 {
		return 0, 0, fmt.Errorf("invalid page")
	}
	limit, err = parseIntParam(get("limit"), 10)
	if err != nil || limit == 0 {
		return 0, 0, fmt.Errorf("invalid limit")
	}
	return limit, (page - 1) * limit, nil
}
