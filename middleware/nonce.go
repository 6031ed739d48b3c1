package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// buildCSP returns the policy for the landing page. Scripts are limited to the
// nonce, htmx, the Tailwind CDN and Turnstile; the live session needs ws/wss.
func buildCSP(nonce string) string {
	return fmt.Sprintf("default-src 'self'; "+
		"script-src 'self' 'nonce-%s' https://unpkg.com https://cdn.tailwindcss.com https://challenges.cloudflare.com; "+
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
		"img-src 'self' data: https://images.pexels.com https://*.google.com https://*.gstatic.com https://stripe.com https://slack.com https://web.whatsapp.com; "+
		"font-src 'self' https://fonts.gstatic.com; "+
		"connect-src 'self' ws: wss: https://challenges.cloudflare.com; "+
		"frame-src https://challenges.cloudflare.com", nonce)
}

// CSPNonce middleware generates a nonce for each request and adds it to the context
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			c.Set(string(NonceKey), nonce)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", buildCSP(nonce))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
