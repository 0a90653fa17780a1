package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"expedientes_app_go/query"
	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// pagination reads page and limit, ignoring values outside 1..maxLimit
func pagination(c echo.Context) (page, limit int) {
	page = 1
	limit = defaultLimit
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			page = p
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 && l <= maxLimit {
			limit = l
		}
	}
	return page, limit
}

// multi returns every value of a repeated or comma separated query parameter
func multi(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// upperMulti is multi for enum parameters
func upperMulti(c echo.Context, name string) []string {
	values := multi(c, name)
	for i := range values {
		values[i] = strings.ToUpper(values[i])
	}
	return values
}

// dateRange reads date_from and date_to, rejecting values that are not YYYY-MM-DD
func dateRange(c echo.Context) (query.DateRange, error) {
	var r query.DateRange
	parse := func(name string) (string, error) {
		raw := strings.TrimSpace(c.QueryParam(name))
		if raw == "" {
			return "", nil
		}
		if _, err := services.ParseDate(raw); err != nil {
			return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+": "+err.Error())
		}
		return raw, nil
	}
	var err error
	if r.From, err = parse("date_from"); err != nil {
		return r, err
	}
	if r.To, err = parse("date_to"); err != nil {
		return r, err
	}
	return r, nil
}

func amountRange(c echo.Context) (query.AmountRange, error) {
	var r query.AmountRange
	parse := func(name string) (*float64, error) {
		raw := strings.TrimSpace(c.QueryParam(name))
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
		}
		return &v, nil
	}
	var err error
	if r.Min, err = parse("min_amount"); err != nil {
		return r, err
	}
	if r.Max, err = parse("max_amount"); err != nil {
		return r, err
	}
	return r, nil
}

func order(c echo.Context) query.Order {
	return query.Order{
		Field:     strings.TrimSpace(c.QueryParam("sort")),
		Direction: query.ParseDirection(c.QueryParam("dir")),
	}
}

// listResponse is the body of every list endpoint
func listResponse[T any](c echo.Context, p query.Page[T], activeFilters int, o query.Order) error {
	body := map[string]interface{}{
		"data": p.Items,
		"pagination": map[string]interface{}{
			"page":        p.Page,
			"limit":       p.PageSize,
			"total":       p.Total,
			"total_pages": p.TotalPages,
		},
		"active_filters": activeFilters,
	}
	if o.Field != "" {
		body["sort"] = o
	}
	return c.JSON(http.StatusOK, body)
}
