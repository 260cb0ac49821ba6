package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/northmart/commerce-system/internal/core/domain"
)

type stubTokens struct {
	verifyFn func(token string) (string, error)
}

func (s *stubTokens) Issue(userID string) (string, error) { return "token-" + userID, nil }

func (s *stubTokens) Verify(token string) (string, error) { return s.verifyFn(token) }

type stubUsers struct {
	findFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }

func (s *stubUsers) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findFn(ctx, id)
}

func validStubs() (*stubTokens, *stubUsers) {
	tokens := &stubTokens{
		verifyFn: func(token string) (string, error) {
			if token != "good-token" {
				return "", domain.ErrInvalidToken
			}
			return "user_1", nil
		},
	}
	users := &stubUsers{
		findFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Alice", Role: domain.RoleUser}, nil
		},
	}
	return tokens, users
}

func TestAuth_CookieToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens, users := validStubs()
	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		principal := Principal(c)
		if principal == nil || principal.ID != "user_1" {
			t.Fatalf("principal not attached: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_BearerFallback(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens, users := validStubs()
	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens, users := validStubs()
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens, users := validStubs()
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens, _ := validStubs()
	users := &stubUsers{
		findFn: func(_ context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
