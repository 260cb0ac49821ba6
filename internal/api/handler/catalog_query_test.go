package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseCatalogQuery_Empty(t *testing.T) {
	q := parseCatalogQuery(queryContext(t, ""))

	if q.Keyword != "" || q.Category != "" || q.Brand != "" {
		t.Fatalf("empty query must carry no filters: %+v", q)
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		t.Fatalf("empty query must carry no price bounds: %+v", q)
	}
	if q.Page != 0 || q.Limit != 0 {
		t.Fatalf("absent paging must be zero (defaults applied downstream): %+v", q)
	}
}

func TestParseCatalogQuery_AllParams(t *testing.T) {
	q := parseCatalogQuery(queryContext(t,
		"keyword=phone&category=electronics&brand=acme&minPrice=10.5&maxPrice=99&page=2&limit=4"))

	if q.Keyword != "phone" || q.Category != "electronics" || q.Brand != "acme" {
		t.Fatalf("unexpected filters: %+v", q)
	}
	if q.MinPrice == nil || *q.MinPrice != 10.5 {
		t.Fatalf("unexpected min price: %+v", q.MinPrice)
	}
	if q.MaxPrice == nil || *q.MaxPrice != 99 {
		t.Fatalf("unexpected max price: %+v", q.MaxPrice)
	}
	if q.Page != 2 || q.Limit != 4 {
		t.Fatalf("unexpected paging: %+v", q)
	}
}

func TestParseCatalogQuery_Malformed(t *testing.T) {
	q := parseCatalogQuery(queryContext(t, "minPrice=cheap&maxPrice=&page=abc&limit=x"))

	if q.MinPrice != nil || q.MaxPrice != nil {
		t.Fatalf("malformed price bounds must be ignored: %+v", q)
	}
	if q.Page != 0 || q.Limit != 0 {
		t.Fatalf("malformed paging must fall through to defaults: %+v", q)
	}
}

func TestParseCatalogQuery_NegativePaging(t *testing.T) {
	// Negative values survive parsing; the service saturates them so the
	// computed skip can never go negative.
	q := parseCatalogQuery(queryContext(t, "page=-2&limit=-8"))

	if q.Page != -2 || q.Limit != -8 {
		t.Fatalf("unexpected paging: %+v", q)
	}
}
