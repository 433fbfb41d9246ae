package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

func TestRequireMiddleware(t *testing.T) {
	svc := NewService(store.New(afero.NewMemMapFs(), "data", nil), nil)
	session, err := svc.LoginOrRegister("test@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	app.Get("/private", Require(svc), func(c *fiber.Ctx) error {
		identity, ok := CallerFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "identity missing")
		}
		return c.SendString(identity.Email)
	})

	// missing token
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %d", resp.StatusCode)
	}

	// garbage token
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer nope")
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %d", resp.StatusCode)
	}

	// valid token
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ok, got %d", resp.StatusCode)
	}
}

func TestOptionalMiddleware(t *testing.T) {
	svc := NewService(store.New(afero.NewMemMapFs(), "data", nil), nil)
	session, err := svc.LoginOrRegister("test@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	app.Get("/open", Optional(svc), func(c *fiber.Ctx) error {
		if identity, ok := CallerFrom(c); ok {
			return c.SendString(identity.Email)
		}
		return c.SendString("anonymous")
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ok without token, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ok with token, got %d", resp.StatusCode)
	}
}
