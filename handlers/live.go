package handlers

import (
	"log"
	"net/url"
	"travel_crm_go/config"
	"travel_crm_go/middleware"
	"travel_crm_go/services/live"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
)

// LiveSessionHandler upgrades to the per-page-load websocket that drives the
// signup modal and the typed headlines. The session ends with the connection.
func LiveSessionHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: originPatterns(cfg.AllowedOrigins),
	})
	if err != nil {
		// Accept has already written the error response
		log.Printf("[WARNING] Live session upgrade failed: %v", err)
		return nil
	}
	defer conn.CloseNow()

	opts := live.DefaultOptions()
	opts.Interval = cfg.TypewriterInterval
	session := live.NewSession(middleware.GetLocale(c), opts)

	log.Printf("[INFO] Live session %s started (lang=%s)", session.ID, session.Lang())
	if err := live.Serve(c.Request().Context(), conn, session); err != nil {
		log.Printf("[WARNING] Live session %s ended: %v", session.ID, err)
		return nil
	}
	log.Printf("[INFO] Live session %s closed", session.ID)
	return nil
}

// originPatterns converts CORS origins to the host patterns the websocket
// origin check expects. Same-host requests are always accepted.
func originPatterns(origins []string) []string {
	var patterns []string
	for _, origin := range origins {
		if origin == "*" {
			return []string{"*"}
		}
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}
