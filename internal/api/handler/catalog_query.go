package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northmart/commerce-system/internal/core/ports"
)

// parseCatalogQuery translates the free-form /products query parameters
// into a structured filter. Absent or malformed parameters impose no
// constraint; page and limit fall back to their defaults downstream when
// non-numeric, absent, zero or negative.
func parseCatalogQuery(c echo.Context) ports.CatalogQuery {
	q := ports.CatalogQuery{
		Keyword:  c.QueryParam("keyword"),
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
	}

	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		q.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		q.Limit = v
	}

	return q
}
