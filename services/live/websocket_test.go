package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOverWebsocket(t *testing.T) {
	served := make(chan error, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			served <- err
			return
		}
		defer conn.CloseNow()
		served <- Serve(r.Context(), conn, NewSession("en", testOptions(time.Millisecond)))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	read := func(keep func(Outbound) bool) Outbound {
		for {
			var msg Outbound
			require.NoError(t, wsjson.Read(ctx, conn, &msg))
			if keep(msg) {
				return msg
			}
		}
	}

	var hero []string
	for {
		msg := read(func(m Outbound) bool { return m.Section == SectionHero })
		hero = append(hero, msg.Text)
		if msg.Done {
			break
		}
	}
	assert.Equal(t, []string{"", "H", "He", "Hel", "Hell", "Hello"}, hero)

	// Malformed input is skipped, not fatal
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))

	require.NoError(t, wsjson.Write(ctx, conn, scroll(9000)))
	assert.Equal(t, "show", read(isModal).Action)

	require.NoError(t, wsjson.Write(ctx, conn, Inbound{Type: TypeDismiss}))
	assert.Equal(t, "hide", read(isModal).Action)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after client close")
	}
}

func TestIsClientGone(t *testing.T) {
	assert.True(t, isClientGone(nil))
	assert.True(t, isClientGone(context.Canceled))
	assert.False(t, isClientGone(assert.AnError))
}
