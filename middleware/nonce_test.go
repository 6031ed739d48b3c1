package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"travel_crm_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directives splits a policy into its source lists
func directives(policy string) map[string][]string {
	out := make(map[string][]string)
	for _, part := range strings.Split(policy, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		out[fields[0]] = fields[1:]
	}
	return out
}

// allowsHost reports whether a source list admits an https URL's host
func allowsHost(sources []string, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	for _, src := range sources {
		host := strings.TrimPrefix(src, "https://")
		if host == u.Host {
			return true
		}
		if strings.HasPrefix(host, "*.") && strings.HasSuffix(u.Host, host[1:]) {
			return true
		}
	}
	return false
}

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CSPNonce()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	nonce := c.Get(string(NonceKey)).(string)
	assert.NotEmpty(t, nonce)
	assert.Equal(t, nonce, GetNonce(c.Request().Context()))

	policy := directives(rec.Header().Get("Content-Security-Policy"))

	t.Run("Scripts", func(t *testing.T) {
		scripts := policy["script-src"]
		assert.Contains(t, scripts, "'nonce-"+nonce+"'")
		assert.NotContains(t, scripts, "'unsafe-inline'")
		assert.NotContains(t, scripts, "'unsafe-eval'")
		for _, src := range []string{
			"https://unpkg.com/htmx.org@2.0.4",
			"https://cdn.tailwindcss.com",
			"https://challenges.cloudflare.com/turnstile/v0/api.js",
		} {
			assert.True(t, allowsHost(scripts, src), "script blocked: %s", src)
		}
	})

	t.Run("Turnstile", func(t *testing.T) {
		assert.True(t, allowsHost(policy["frame-src"], "https://challenges.cloudflare.com/"))
		assert.True(t, allowsHost(policy["connect-src"], "https://challenges.cloudflare.com/"))
	})

	t.Run("LiveSession", func(t *testing.T) {
		assert.Contains(t, policy["connect-src"], "ws:")
		assert.Contains(t, policy["connect-src"], "wss:")
	})

	t.Run("Images", func(t *testing.T) {
		images := policy["img-src"]
		assert.True(t, allowsHost(images, "https://images.pexels.com/photos/590022/pexels-photo-590022.jpeg"))
		for _, it := range services.GetLandingContent().Integrations {
			assert.True(t, allowsHost(images, it.Logo), "integration logo blocked: %s", it.Logo)
		}
		assert.False(t, allowsHost(images, "https://evil.example/x.png"))
	})
}

func TestGetNonce(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
		assert.Equal(t, "test-nonce", GetNonce(ctx))
	})

	t.Run("NotExists", func(t *testing.T) {
		assert.Equal(t, "", GetNonce(context.Background()))
	})
}
